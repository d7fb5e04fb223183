// Package service defines interfaces for the collaborators a generation run depends on.
package service

import "time"

// Provider is the source of every random draw made while generating a dataset.
// Implementations must be deterministic for a given seed and reference time so
// that a run can be reproduced.
type Provider interface {
	// IntBetween returns a uniform integer in [lo, hi].
	IntBetween(lo, hi int) int

	// Int64N returns a uniform integer in [0, n). n must be positive.
	Int64N(n int64) int64

	// Float64 returns a uniform float in [0, 1).
	Float64() float64

	// Now is the reference time that "this year" and ages are measured from.
	Now() time.Time

	Password(length int) string
	Name() string
	PhoneNumber() string
	Email() string

	// Sentence returns a sentence of about words words.
	Sentence(words int) string

	// Text returns free text of at most maxChars characters.
	Text(maxChars int) string
}
