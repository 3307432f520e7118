// Package partition resolves a numeric index from a string of binary
// space-partitioning symbols.
//
// Each symbol halves the current range: the alphabet's Lower symbol keeps the
// lower half, its Upper symbol keeps the upper half. A string of n symbols
// starts from the range [0, 2^n-1] and collapses it to a single index.
//
//	Partition("FBFBBFF", Alphabet{Lower: 'F', Upper: 'B'}) // 44
//	Partition("RLR", Alphabet{Lower: 'L', Upper: 'R'})     // 5
//
// The package is pure and safe for concurrent use.
package partition
