package boardingpass

import (
	"fmt"

	"github.com/vk/seatfinder/internal/partition"
)

// Segment describes one part of a pass: how many characters it spans and
// which alphabet drives its partition.
type Segment struct {
	Symbols  int
	Alphabet partition.Alphabet
}

// Layout is the shape of a pass code.
type Layout struct {
	Row    Segment
	Column Segment
}

// DefaultLayout is the 128-row, 8-column cabin.
var DefaultLayout = Layout{
	Row:    Segment{Symbols: 7, Alphabet: partition.Alphabet{Lower: 'F', Upper: 'B'}},
	Column: Segment{Symbols: 3, Alphabet: partition.Alphabet{Lower: 'L', Upper: 'R'}},
}

// PassLength is the number of characters a pass must have.
func (l Layout) PassLength() int {
	return l.Row.Symbols + l.Column.Symbols
}

// SeatsPerRow is the multiplier applied to the row when computing a seat id.
func (l Layout) SeatsPerRow() int {
	return 1 << l.Column.Symbols
}

// Validate checks that every segment is usable and that the whole pass fits
// within partition.MaxSymbols.
func (l Layout) Validate() error {
	for _, s := range []struct {
		name string
		seg  Segment
	}{{"row", l.Row}, {"column", l.Column}} {
		if s.seg.Symbols < 1 {
			return fmt.Errorf("%s segment must have at least one symbol, got %d", s.name, s.seg.Symbols)
		}
		if err := s.seg.Alphabet.Validate(); err != nil {
			return fmt.Errorf("%s segment: %w", s.name, err)
		}
	}
	if l.PassLength() > partition.MaxSymbols {
		return fmt.Errorf("pass length %d exceeds the maximum of %d symbols", l.PassLength(), partition.MaxSymbols)
	}
	return nil
}
