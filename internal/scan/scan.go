package scan

import (
	"context"
	"errors"

	"github.com/vk/seatfinder/internal/boardingpass"
	"github.com/vk/seatfinder/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// ErrNoPasses is returned when there is nothing to pick a highest seat from.
var ErrNoPasses = errors.New("no boarding passes to scan")

// Decoder turns one pass into a seat.
type Decoder interface {
	Decode(pass string) (boardingpass.Seat, error)
}

// Result holds every decoded seat, in input order, and the highest one.
type Result struct {
	Seats   []boardingpass.Seat
	Highest boardingpass.Seat
}

// Scanner decodes batches of passes.
type Scanner struct {
	decoder Decoder
	workers int
}

// New returns a Scanner using up to workers goroutines. Values below 2 make
// it sequential.
func New(decoder Decoder, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{decoder: decoder, workers: workers}
}

// Scan decodes every pass. The first invalid pass, by position, aborts the
// scan and its decode error is returned unchanged.
func (s *Scanner) Scan(ctx context.Context, passes []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if len(passes) == 0 {
		return nil, ErrNoPasses
	}

	var (
		seats []boardingpass.Seat
		err   error
	)
	if s.workers > 1 && len(passes) > 1 {
		seats, err = s.scanParallel(ctx, passes)
	} else {
		seats, err = s.scanSequential(ctx, passes)
	}
	if err != nil {
		return nil, err
	}

	highest, err := Highest(seats)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scan finished.", "passes", len(passes), "highest_seat_id", highest.SeatID)
	return &Result{Seats: seats, Highest: highest}, nil
}

func (s *Scanner) scanSequential(ctx context.Context, passes []string) ([]boardingpass.Seat, error) {
	logger := ctxlog.FromContext(ctx)
	seats := make([]boardingpass.Seat, len(passes))

	for i, pass := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seat, err := s.decoder.Decode(pass)
		if err != nil {
			logger.Error("Boarding pass rejected.", "line", i+1, "pass", pass, "error", err)
			return nil, err
		}
		seats[i] = seat
	}
	return seats, nil
}

func (s *Scanner) scanParallel(ctx context.Context, passes []string) ([]boardingpass.Seat, error) {
	logger := ctxlog.FromContext(ctx)
	seats := make([]boardingpass.Seat, len(passes))
	errs := make([]error, len(passes))

	workers := min(s.workers, len(passes))
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	for workerID := range workers {
		g.Go(func() error {
			logger.Debug("Worker started.", "workerID", workerID)
			for i := range jobs {
				seats[i], errs[i] = s.decoder.Decode(passes[i])
			}
			logger.Debug("Worker finished.", "workerID", workerID)
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range passes {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			logger.Error("Boarding pass rejected.", "line", i+1, "pass", passes[i], "error", err)
			return nil, err
		}
	}
	return seats, nil
}

// Highest returns the seat with the largest seat id. Ties keep the earliest
// seat.
func Highest(seats []boardingpass.Seat) (boardingpass.Seat, error) {
	if len(seats) == 0 {
		return boardingpass.Seat{}, ErrNoPasses
	}
	best := seats[0]
	for _, seat := range seats[1:] {
		if seat.SeatID > best.SeatID {
			best = seat
		}
	}
	return best, nil
}
