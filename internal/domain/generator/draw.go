// Package generator produces the record lists of a rental-marketplace dataset.
// Every function draws from an explicit service.Provider, so two runs with the
// same provider seed and reference time produce the same records.
package generator

import (
	"math"
	"time"

	"rentgen/internal/domain/service"
)

// Bounds of the drawn values, shared with dataset validation.
const (
	MaxStayDays      = 30
	MaxPromotionDays = 30
	MinPriceCents    = 1000
	MaxPriceCents    = 9999
	MaxDiscountRate  = 100
	MaxRating        = 5
)

const (
	passwordLength = 16
	titleWords     = 6
	commentWords   = 10
	maxTextChars   = 200
	minAge         = 18
	maxAge         = 90
)

// pick returns a uniformly chosen element of items. Callers guarantee len(items) > 0.
func pick[T any](p service.Provider, items []T) T {
	return items[p.IntBetween(0, len(items)-1)]
}

// uniform2 returns a uniform value in [lo, hi] rounded to two decimals.
func uniform2(p service.Provider, lo, hi float64) float64 {
	v := lo + p.Float64()*(hi-lo)

	return math.Round(v*100) / 100
}

// startOfYear is midnight UTC on January 1st of t's year.
func startOfYear(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// dateTimeThisYear returns a moment between the start of the reference year and
// the reference time, both inclusive, at second resolution.
func dateTimeThisYear(p service.Provider) time.Time {
	now := p.Now().UTC()
	start := startOfYear(now)
	span := int64(now.Sub(start) / time.Second)

	return start.Add(time.Duration(p.Int64N(span+1)) * time.Second)
}

// dateOfBirth returns a birth date for someone aged between minAge and maxAge
// (inclusive) at the reference time.
func dateOfBirth(p service.Provider) time.Time {
	now := p.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	latest := today.AddDate(-minAge, 0, 0)
	earliest := today.AddDate(-(maxAge + 1), 0, 1)
	days := int64(latest.Sub(earliest).Hours() / 24)

	return earliest.AddDate(0, 0, int(p.Int64N(days+1)))
}
