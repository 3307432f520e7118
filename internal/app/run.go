package app

import (
	"context"
	"fmt"

	"github.com/vk/seatfinder/internal/boardingpass"
	"github.com/vk/seatfinder/internal/ctxlog"
	"github.com/vk/seatfinder/internal/fsutil"
	"github.com/vk/seatfinder/internal/layout"
	"github.com/vk/seatfinder/internal/report"
	"github.com/vk/seatfinder/internal/scan"
)

// Run loads the layout, decodes every pass of the input and writes the
// report. Decode errors are returned unchanged so they can be shown as is.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "workers", a.config.WorkerCount)

	l, err := layout.Load(ctx, a.config.LayoutPath)
	if err != nil {
		return err
	}
	decoder, err := boardingpass.NewDecoder(l)
	if err != nil {
		return err
	}
	a.logger.Debug("Layout ready.", "pass_length", l.PassLength(), "seats_per_row", l.SeatsPerRow())

	writer, err := report.New(a.config.Format)
	if err != nil {
		return err
	}

	passes, err := fsutil.ReadLines(ctx, a.config.InputPath)
	if err != nil {
		return err
	}
	a.logger.Info("Passes loaded.", "count", len(passes))

	result, err := scan.New(decoder, a.config.WorkerCount).Scan(ctx, passes)
	if err != nil {
		return err
	}
	a.logger.Info("Highest seat found.", "row", result.Highest.Row, "column", result.Highest.Column, "seat_id", result.Highest.SeatID)

	if err := writer(a.outW, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
