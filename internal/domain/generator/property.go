package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Properties generates n listings, each owned by a host drawn with replacement.
// Prices are four-digit cent amounts, so they fall in [10.00, 99.99].
func Properties(p service.Provider, n int, hosts []entity.Host) ([]entity.Property, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("properties", n)
	}
	if n > 0 && len(hosts) == 0 {
		return nil, domainerrors.EmptyReference("hosts")
	}

	properties := make([]entity.Property, 0, n)
	for i := range n {
		properties = append(properties, entity.Property{
			ID:         entity.FormatID(entity.PropertyIDPrefix, i),
			Bathrooms:  p.IntBetween(1, 5),
			Title:      p.Sentence(titleWords),
			Beds:       p.IntBetween(1, 10),
			Type:       pick(p, entity.PropertyTypes),
			Guests:     p.IntBetween(1, 20),
			Rooms:      p.IntBetween(1, 10),
			HostUserID: pick(p, hosts).UserID,
			PriceCents: p.IntBetween(MinPriceCents, MaxPriceCents),
		})
	}

	return properties, nil
}
