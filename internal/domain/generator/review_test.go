package generator

import (
	"testing"

	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews_RatingsAndReferences(t *testing.T) {
	bookings := []entity.Booking{{ID: "B000000000"}, {ID: "B000000001"}}

	reviews, err := Reviews(newTestProvider(19), 200, bookings)
	require.NoError(t, err)
	require.Len(t, reviews, 200)

	for _, r := range reviews {
		assert.Contains(t, []string{"B000000000", "B000000001"}, r.BookingID)
		assert.GreaterOrEqual(t, r.Rating, 0.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		assert.NotEmpty(t, r.Comment)
	}
}

func TestReviews_NoBookings(t *testing.T) {
	_, err := Reviews(newTestProvider(1), 3, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyReferenceSet))
	assert.Contains(t, err.Error(), "no bookings available")
}
