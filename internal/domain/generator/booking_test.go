package generator

import (
	"testing"

	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookings_DatesAndReferences(t *testing.T) {
	guests := newGuests(4)
	properties := newProperties(6)

	bookings, err := Bookings(newTestProvider(11), 400, guests, properties)
	require.NoError(t, err)
	require.Len(t, bookings, 400)

	yearStart := startOfYear(referenceTime)
	for _, b := range bookings {
		nights := b.Nights()
		assert.True(t, b.CheckOut.After(b.CheckIn))
		assert.GreaterOrEqual(t, nights, 1)
		assert.LessOrEqual(t, nights, MaxStayDays)

		assert.False(t, b.Timestamp.Before(yearStart), b.Timestamp)
		assert.False(t, b.Timestamp.After(referenceTime), b.Timestamp)
		assert.False(t, b.CheckIn.Before(yearStart))
		assert.False(t, b.CheckIn.After(referenceTime))

		assert.Contains(t, []string{"U000000000", "U000000001", "U000000002", "U000000003"}, b.GuestUserID)
		assert.Regexp(t, `^P00000000[0-5]$`, b.PropertyID)
	}
}

func TestBookings_EmptyReferences(t *testing.T) {
	_, err := Bookings(newTestProvider(1), 1, nil, newProperties(1))
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyReferenceSet))
	assert.Contains(t, err.Error(), "no guests available")

	_, err = Bookings(newTestProvider(1), 1, newGuests(1), nil)
	assert.Contains(t, err.Error(), "no properties available")
}
