// Package errors defines the domain failures a generation or validation run can end with.
package errors

import (
	"rentgen/internal/errors"
)

var (
	// ErrEmptyReferenceSet is returned when a generator has to pick a foreign key
	// from a list that holds no records.
	ErrEmptyReferenceSet = errors.New("empty reference set")

	// ErrFavoriteCapacityExceeded is returned when more distinct (guest, property)
	// pairs are requested than the two lists can form.
	ErrFavoriteCapacityExceeded = errors.New("favorite target exceeds available guest/property pairs")

	// ErrInvalidProbability is returned for a guest probability outside [0, 1].
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")

	// ErrInvalidDensity is returned for a negative favorite density.
	ErrInvalidDensity = errors.New("density must not be negative")

	// ErrNegativeCount is returned when a generator is asked for fewer than zero records.
	ErrNegativeCount = errors.New("record count must not be negative")

	// ErrDatasetInvalid is returned when an exported dataset fails validation.
	ErrDatasetInvalid = errors.New("dataset is invalid")
)

// EmptyReference reports that no record of the named kind is available to reference.
func EmptyReference(plural string) error {
	return errors.Wrapf(ErrEmptyReferenceSet, "no %s available", plural)
}

// NegativeCount reports a negative record count for the named entity.
func NegativeCount(entity string, n int) error {
	return errors.Wrapf(ErrNegativeCount, "%s: %d", entity, n)
}
