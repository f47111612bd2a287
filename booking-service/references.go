package main

import (
	"math/rand/v2"

	"plane-booking/shared"
)

// randomReference draws an uppercase alphanumeric booking reference.
func randomReference() string {
	b := make([]byte, shared.ReferenceLength)
	for i := range b {
		b[i] = shared.ReferenceCharset[rand.IntN(len(shared.ReferenceCharset))]
	}
	return string(b)
}
