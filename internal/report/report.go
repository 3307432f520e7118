// Package report renders scan results for the user.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vk/seatfinder/internal/boardingpass"
	"github.com/vk/seatfinder/internal/scan"
)

// Writer renders a result to w.
type Writer func(w io.Writer, result *scan.Result) error

var writers = map[string]Writer{
	"text": writeText,
	"json": writeJSON,
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the writer registered for format.
func New(format string) (Writer, error) {
	fn, ok := writers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q, must be one of %s", format, strings.Join(Formats(), ", "))
	}
	return fn, nil
}

func writeText(w io.Writer, result *scan.Result) error {
	_, err := fmt.Fprintf(w, "The highest seat id is %d\n", result.Highest.SeatID)
	return err
}

type jsonReport struct {
	Seats         []boardingpass.Seat `json:"seats"`
	HighestSeatID int                 `json:"highest_seat_id"`
}

func writeJSON(w io.Writer, result *scan.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(jsonReport{
		Seats:         result.Seats,
		HighestSeatID: result.Highest.SeatID,
	})
}
