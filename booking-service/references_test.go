package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomReferenceFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, referencePattern, randomReference())
	}
}
