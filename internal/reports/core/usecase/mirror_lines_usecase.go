package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"
)

// MirrorLinesUseCase copies return lines from the primary store into a
// secondary report store.
type MirrorLinesUseCase struct {
	source ports.ReportReaderPort
	sink   ports.LineWriterPort
	now    func() time.Time
}

func NewMirrorLinesUseCase(source ports.ReportReaderPort, sink ports.LineWriterPort) *MirrorLinesUseCase {
	return &MirrorLinesUseCase{source: source, sink: sink, now: time.Now}
}

// Execute replaces the sink's lines dated in [from, to] with the source's and
// returns how many lines were written.
func (uc *MirrorLinesUseCase) Execute(ctx context.Context, from, to time.Time) (int, error) {
	from, to = domain.CalendarDate(from), domain.CalendarDate(to)
	if to.Before(from) {
		return 0, fmt.Errorf("%w: from must not be after to", ErrInvalidDateRange)
	}

	lines, err := uc.source.ReturnLines(ctx, ports.LinesFilter{From: from, To: to})
	if err != nil {
		return 0, fmt.Errorf("loading return lines: %w", err)
	}

	if err := uc.sink.ReplaceLines(ctx, from, to, lines); err != nil {
		return 0, fmt.Errorf("writing return lines: %w", err)
	}
	return len(lines), nil
}

// Window mirrors the trailing days calendar days ending today.
func (uc *MirrorLinesUseCase) Window(ctx context.Context, days int) (int, error) {
	if days < 1 {
		days = 1
	}
	to := domain.CalendarDate(uc.now())
	return uc.Execute(ctx, to.AddDate(0, 0, -(days-1)), to)
}

// Run mirrors the window once and then on every tick until ctx is done.
// Failed rounds are logged and retried on the next tick.
func (uc *MirrorLinesUseCase) Run(ctx context.Context, interval time.Duration, days int) {
	round := func() {
		n, err := uc.Window(ctx, days)
		switch {
		case errors.Is(err, context.Canceled):
		case err != nil:
			log.Printf("mirroring return lines: %v", err)
		default:
			log.Printf("mirrored %d return lines (last %d days)", n, days)
		}
	}

	round()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			round()
		}
	}
}
