// Package boardingpass decodes boarding-pass codes into seat coordinates.
//
// A code is a row segment followed by a column segment. In the standard
// layout the row segment is seven characters over {F, B} and the column
// segment three characters over {L, R}; each segment is resolved with
// partition.Partition and combined into a seat identifier.
package boardingpass
