package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Bookings generates n stays of one to thirty nights. The booking timestamp is
// drawn independently of the check-in moment.
func Bookings(p service.Provider, n int, guests []entity.Guest, properties []entity.Property) ([]entity.Booking, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("bookings", n)
	}
	if n > 0 && len(guests) == 0 {
		return nil, domainerrors.EmptyReference("guests")
	}
	if n > 0 && len(properties) == 0 {
		return nil, domainerrors.EmptyReference("properties")
	}

	bookings := make([]entity.Booking, 0, n)
	for i := range n {
		checkIn := dateTimeThisYear(p)
		nights := p.IntBetween(1, MaxStayDays)
		checkOut := checkIn.AddDate(0, 0, nights)

		bookings = append(bookings, entity.Booking{
			ID:          entity.FormatID(entity.BookingIDPrefix, i),
			Timestamp:   dateTimeThisYear(p),
			CheckIn:     entity.TruncateToDate(checkIn),
			CheckOut:    entity.TruncateToDate(checkOut),
			GuestUserID: pick(p, guests).UserID,
			PropertyID:  pick(p, properties).ID,
		})
	}

	return bookings, nil
}
