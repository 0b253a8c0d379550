package ports

import (
	"context"
	"time"

	"returns-report-service/internal/reports/core/domain"
)

type LinesFilter struct {
	From  time.Time // calendar date, inclusive
	To    time.Time // calendar date, inclusive
	Zones []string  // optional
}

type AssignmentReader interface {
	// Assignments returns the aisle assignments active at some point in
	// [from, to], oldest first.
	Assignments(ctx context.Context, from, to time.Time) ([]domain.Assignment, error)
}

type ReportReaderPort interface {
	AssignmentReader
	ReturnLines(ctx context.Context, f LinesFilter) ([]domain.ReturnLine, error)
}

// LineWriterPort keeps a secondary report store in step with the primary one.
type LineWriterPort interface {
	// ReplaceLines drops every stored line dated in [from, to] and writes
	// lines in their place.
	ReplaceLines(ctx context.Context, from, to time.Time, lines []domain.ReturnLine) error
}
