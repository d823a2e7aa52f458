package logging

import (
	"log/slog"
	"time"
)

// Common field names for consistent logging.
const (
	FieldRunID      = "run_id"
	FieldOperation  = "operation"
	FieldScale      = "scale"
	FieldDiff       = "diff"
	FieldMax        = "max"
	FieldRangeMin   = "range_min"
	FieldRangeMax   = "range_max"
	FieldSizeBefore = "size_before"
	FieldSizeAfter  = "size_after"
	FieldActions    = "actions"
	FieldPath       = "path"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
)

// RunID returns a slog attribute for the run identifier.
func RunID(id string) slog.Attr {
	return slog.String(FieldRunID, id)
}

// Operation returns a slog attribute for an operation name.
func Operation(name string) slog.Attr {
	return slog.String(FieldOperation, name)
}

// Scale returns a slog attribute for a linear scale factor.
func Scale(v float64) slog.Attr {
	return slog.Float64(FieldScale, v)
}

// Diff returns a slog attribute for a shorten threshold.
func Diff(v float64) slog.Attr {
	return slog.Float64(FieldDiff, v)
}

// Max returns a slog attribute for a measured maximum.
func Max(v float64) slog.Attr {
	return slog.Float64(FieldMax, v)
}

// Range returns the attributes describing a target range.
func Range(lo, hi float64) []any {
	return []any{slog.Float64(FieldRangeMin, lo), slog.Float64(FieldRangeMax, hi)}
}

// SizeBefore returns a slog attribute for a signal size before an operation.
func SizeBefore(n int) slog.Attr {
	return slog.Int(FieldSizeBefore, n)
}

// SizeAfter returns a slog attribute for a signal size after an operation.
func SizeAfter(n int) slog.Attr {
	return slog.Int(FieldSizeAfter, n)
}

// Actions returns a slog attribute for an action count.
func Actions(n int) slog.Attr {
	return slog.Int(FieldActions, n)
}

// Path returns a slog attribute for a file path.
func Path(p string) slog.Attr {
	return slog.String(FieldPath, p)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// Duration returns a slog attribute for a duration in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Int64(FieldDuration, d.Milliseconds())
}
