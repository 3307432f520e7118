package boardingpass

import (
	"fmt"

	"github.com/vk/seatfinder/internal/partition"
)

// Seat is a decoded pass.
type Seat struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	SeatID int `json:"seat_id"`
}

// InvalidPassLengthError is returned when a pass does not have exactly the
// number of characters its layout requires.
type InvalidPassLengthError struct {
	Expected int
	Actual   int
}

// Error implements the error interface for InvalidPassLengthError.
func (e *InvalidPassLengthError) Error() string {
	return fmt.Sprintf("boarding pass code should be %d characters long but it is %d", e.Expected, e.Actual)
}

// Decoder turns pass codes into seats for a fixed layout. It holds no
// mutable state and is safe for concurrent use.
type Decoder struct {
	layout Layout
}

// NewDecoder returns a Decoder for the given layout.
func NewDecoder(layout Layout) (*Decoder, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return &Decoder{layout: layout}, nil
}

var defaultDecoder = &Decoder{layout: DefaultLayout}

// Decode decodes pass with DefaultLayout.
func Decode(pass string) (Seat, error) {
	return defaultDecoder.Decode(pass)
}

// Layout returns the layout the decoder was built with.
func (d *Decoder) Layout() Layout {
	return d.layout
}

// Decode validates the pass length, resolves the row and column segments
// and derives the seat id.
//
// A *partition.InvalidSymbolError from either segment is returned as is.
func (d *Decoder) Decode(pass string) (Seat, error) {
	chars := []rune(pass)
	if len(chars) != d.layout.PassLength() {
		return Seat{}, &InvalidPassLengthError{Expected: d.layout.PassLength(), Actual: len(chars)}
	}

	split := d.layout.Row.Symbols
	row, err := partition.Partition(string(chars[:split]), d.layout.Row.Alphabet)
	if err != nil {
		return Seat{}, err
	}
	col, err := partition.Partition(string(chars[split:]), d.layout.Column.Alphabet)
	if err != nil {
		return Seat{}, err
	}

	return Seat{
		Row:    row,
		Column: col,
		SeatID: row*d.layout.SeatsPerRow() + col,
	}, nil
}
