package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySymbols is returned when there is nothing to partition.
	ErrEmptySymbols = errors.New("partition: symbol sequence must not be empty")
	// ErrTooManySymbols is returned when the range would not fit in an int32.
	ErrTooManySymbols = fmt.Errorf("partition: symbol sequence must not be longer than %d", MaxSymbols)
	// ErrInvalidAlphabet is returned when both halves share the same symbol.
	ErrInvalidAlphabet = errors.New("partition: lower and upper symbols must differ")
)

// InvalidSymbolError reports a character that belongs to neither half of the
// alphabet. Only the first offending character is reported.
type InvalidSymbolError struct {
	Symbol   rune
	Alphabet Alphabet
}

// Error implements the error interface for InvalidSymbolError.
func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("character '%c' should be either '%c' or '%c'", e.Symbol, e.Alphabet.Lower, e.Alphabet.Upper)
}
