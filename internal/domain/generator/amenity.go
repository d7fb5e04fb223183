package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Amenities generates n amenities from the fixed vocabulary.
func Amenities(p service.Provider, n int, properties []entity.Property) ([]entity.Amenity, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("amenities", n)
	}
	if n > 0 && len(properties) == 0 {
		return nil, domainerrors.EmptyReference("properties")
	}

	amenities := make([]entity.Amenity, 0, n)
	for i := range n {
		amenities = append(amenities, entity.Amenity{
			ID:         entity.FormatID(entity.AmenityIDPrefix, i),
			Condition:  pick(p, entity.AmenityConditions),
			Name:       pick(p, entity.AmenityNames),
			PropertyID: pick(p, properties).ID,
		})
	}

	return amenities, nil
}
