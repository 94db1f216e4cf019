package source

import "fmt"

// Location is a position range in a single source text.
// Line and Column are 1-based; Start and End are 0-based byte offsets, End exclusive.
type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
}

// Empty reports whether the location covers zero bytes.
func (l Location) Empty() bool {
	return l.Start == l.End
}

// Len returns the number of covered bytes.
func (l Location) Len() uint32 {
	if l.End < l.Start {
		return 0
	}
	return l.End - l.Start
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Through returns a location that starts at l and ends where other ends.
// Line and Column stay those of l.
func (l Location) Through(other Location) Location {
	if other.End > l.End {
		l.End = other.End
	}
	return l
}

// Contains reports whether other lies fully inside l.
func (l Location) Contains(other Location) bool {
	return other.Start >= l.Start && other.End <= l.End
}
