package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Promotions generates n discounts lasting one to thirty days.
func Promotions(p service.Provider, n int, properties []entity.Property) ([]entity.Promotion, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("promotions", n)
	}
	if n > 0 && len(properties) == 0 {
		return nil, domainerrors.EmptyReference("properties")
	}

	promotions := make([]entity.Promotion, 0, n)
	for i := range n {
		start := dateTimeThisYear(p)
		end := start.AddDate(0, 0, p.IntBetween(1, MaxPromotionDays))

		promotions = append(promotions, entity.Promotion{
			ID:           entity.FormatID(entity.PromotionIDPrefix, i),
			StartDate:    entity.TruncateToDate(start),
			EndDate:      entity.TruncateToDate(end),
			DiscountRate: uniform2(p, 0, MaxDiscountRate),
			Description:  p.Text(maxTextChars),
			PropertyID:   pick(p, properties).ID,
		})
	}

	return promotions, nil
}
