package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SeatLetters maps column indexes to the letters printed on the plane.
var SeatLetters = [PlaneCols]string{"F", "E", "D", "X", "C", "B", "A"}

var seatCodePattern = regexp.MustCompile(`^(\d+)([FEDXCBA])$`)

// ColumnLetter returns the letter for a column index, or "" if out of range.
func ColumnLetter(column int) string {
	if column < 0 || column >= PlaneCols {
		return ""
	}
	return SeatLetters[column]
}

// ColumnIndex returns the column index for a seat letter.
func ColumnIndex(letter string) (int, bool) {
	for i, l := range SeatLetters {
		if l == letter {
			return i, true
		}
	}
	return 0, false
}

// ParseSeatCode turns a code such as "22d" into a zero-based (row, column) grid position.
func ParseSeatCode(input string) (row, column int, err error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	match := seatCodePattern.FindStringSubmatch(code)
	if match == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	rowNum, err := strconv.Atoi(match[1])
	if err != nil || rowNum < 1 || rowNum > PlaneRows {
		return 0, 0, fmt.Errorf("%w: %s (must be 1-%d)", ErrInvalidRow, match[1], PlaneRows)
	}

	column, _ = ColumnIndex(match[2])
	return rowNum - 1, column, nil
}
