package partition

// MaxSymbols bounds the sequence length so that 2^n-1 fits in an int32.
const MaxSymbols = 30

// Alphabet names the symbol selecting the lower half of a range and the one
// selecting the upper half.
type Alphabet struct {
	Lower rune
	Upper rune
}

// Validate reports whether the alphabet can drive a partition.
func (a Alphabet) Validate() error {
	if a.Lower == a.Upper {
		return ErrInvalidAlphabet
	}
	return nil
}

// Contains reports whether r is one of the two symbols.
func (a Alphabet) Contains(r rune) bool {
	return r == a.Lower || r == a.Upper
}

// Partition bisects [0, 2^len(symbols)-1] once per symbol, left to right,
// and returns the index the range collapses to.
//
// The first character outside the alphabet aborts the walk with an
// *InvalidSymbolError; symbols before it have no effect on the outcome.
func Partition(symbols string, alphabet Alphabet) (int, error) {
	if err := alphabet.Validate(); err != nil {
		return 0, err
	}

	seq := []rune(symbols)
	switch {
	case len(seq) == 0:
		return 0, ErrEmptySymbols
	case len(seq) > MaxSymbols:
		return 0, ErrTooManySymbols
	}

	start, finish := 0, (1<<len(seq))-1
	for _, r := range seq {
		mid := start + (finish-start)/2
		switch r {
		case alphabet.Lower:
			finish = mid
		case alphabet.Upper:
			start = mid + 1
		default:
			return 0, &InvalidSymbolError{Symbol: r, Alphabet: alphabet}
		}
	}

	// start == finish once every symbol has been consumed.
	return start, nil
}
