package entity

import (
	"strconv"
	"time"
)

// Layouts used for every date and timestamp cell.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// TruncateToDate drops the clock part of t, keeping its calendar day in UTC.
func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
