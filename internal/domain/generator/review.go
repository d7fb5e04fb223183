package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Reviews generates n reviews of bookings drawn with replacement.
func Reviews(p service.Provider, n int, bookings []entity.Booking) ([]entity.Review, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("reviews", n)
	}
	if n > 0 && len(bookings) == 0 {
		return nil, domainerrors.EmptyReference("bookings")
	}

	reviews := make([]entity.Review, 0, n)
	for i := range n {
		reviews = append(reviews, entity.Review{
			ID:        entity.FormatID(entity.ReviewIDPrefix, i),
			BookingID: pick(p, bookings).ID,
			Comment:   p.Sentence(commentWords),
			Rating:    uniform2(p, 0, MaxRating),
		})
	}

	return reviews, nil
}
