package generator

import (
	"math"

	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
	"rentgen/internal/errors"
)

// FavoriteTarget is the number of favorites a density asks for: floor(guests × density).
func FavoriteTarget(guests int, density float64) int64 {
	return int64(math.Floor(float64(guests) * density))
}

// Favorites generates floor(len(guests) × density) distinct (guest, property)
// pairs. The pairs are a uniform sample without replacement of the
// len(guests) × len(properties) universe, in random order.
func Favorites(p service.Provider, guests []entity.Guest, properties []entity.Property, density float64) ([]entity.Favorite, error) {
	if density < 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidDensity, "favorite density %v", density)
	}

	target := FavoriteTarget(len(guests), density)
	if target == 0 {
		return []entity.Favorite{}, nil
	}
	if len(properties) == 0 {
		return nil, domainerrors.EmptyReference("properties")
	}

	capacity := int64(len(guests)) * int64(len(properties))
	if target > capacity {
		return nil, errors.Wrapf(domainerrors.ErrFavoriteCapacityExceeded,
			"requested %d pairs from %d guests and %d properties", target, len(guests), len(properties))
	}

	pairs := samplePairIndexes(p, capacity, target)
	shuffle(p, pairs)

	width := int64(len(properties))
	favorites := make([]entity.Favorite, 0, len(pairs))
	for _, idx := range pairs {
		favorites = append(favorites, entity.Favorite{
			PropertyID:  properties[idx%width].ID,
			GuestUserID: guests[idx/width].UserID,
		})
	}

	return favorites, nil
}

// samplePairIndexes draws k distinct integers from [0, universe) with Floyd's
// algorithm: exactly k draws, no rejection.
func samplePairIndexes(p service.Provider, universe, k int64) []int64 {
	chosen := make(map[int64]struct{}, k)
	picked := make([]int64, 0, k)

	for j := universe - k; j < universe; j++ {
		t := p.Int64N(j + 1)
		if _, taken := chosen[t]; taken {
			t = j
		}
		chosen[t] = struct{}{}
		picked = append(picked, t)
	}

	return picked
}

func shuffle(p service.Provider, xs []int64) {
	for i := int64(len(xs)) - 1; i > 0; i-- {
		j := p.Int64N(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
