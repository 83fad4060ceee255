package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const alphabet = 26

// LabelToIndex converts a spreadsheet-style row label to its one-based index:
// "A" is 1, "Z" is 26, "AA" is 27. Labels are case-insensitive.
func LabelToIndex(label string) (int, error) {
	return labelToIndex(label, 0)
}

// labelToIndex stops accumulating once the index exceeds limit (when limit > 0),
// so arbitrarily long labels cannot overflow.
func labelToIndex(label string, limit int) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty row label", ErrInvalidCoordinates)
	}
	for i := 0; i < len(label); i++ {
		if label[i] > unicode.MaxASCII {
			return 0, fmt.Errorf("%w: row label %q", ErrInvalidCoordinates, label)
		}
	}
	res := 0
	for _, ch := range strings.ToUpper(label) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: row label %q", ErrInvalidCoordinates, label)
		}
		res = res*alphabet + int(ch-'A') + 1
		if limit > 0 && res > limit {
			return 0, fmt.Errorf("%w: row label %q out of range", ErrInvalidCoordinates, label)
		}
	}
	return res, nil
}

// RowLabel returns the label for a zero-based row index: 0 is "A", 25 is "Z",
// 26 is "AA".
func RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	var buf []byte
	for n := row + 1; n > 0; n = (n - 1) / alphabet {
		buf = append(buf, byte('A'+(n-1)%alphabet))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ParseCoordinates resolves a row label and a one-based column number to
// zero-based indices inside a rows×cols grid.
func ParseCoordinates(row, col string, rows, cols int) (int, int, error) {
	if row == "" || col == "" {
		return 0, 0, fmt.Errorf("%w: [%s:%s]", ErrInvalidCoordinates, row, col)
	}
	r, err := labelToIndex(row, rows)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: [%s:%s]", ErrInvalidCoordinates, row, col)
	}
	for _, ch := range col {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("%w: [%s:%s]", ErrInvalidCoordinates, row, col)
		}
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: [%s:%s]", ErrInvalidCoordinates, row, col)
	}
	r, c = r-1, c-1
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return 0, 0, fmt.Errorf("%w: [%s:%s]", ErrInvalidCoordinates, row, col)
	}
	return r, c, nil
}
