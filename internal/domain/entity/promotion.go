package entity

import "time"

// PromotionColumns is the CSV header of the promotions table.
var PromotionColumns = []string{
	"promotion_id", "start_date", "end_date", "discount_rate", "prom_description", "property_id",
}

// Promotion is a time-boxed discount on a property.
type Promotion struct {
	ID           string
	StartDate    time.Time // date only
	EndDate      time.Time // date only
	DiscountRate float64   // percent, [0, 100]
	Description  string
	PropertyID   string
}

// Values returns the cells of p in PromotionColumns order.
func (p Promotion) Values() []string {
	return []string{
		p.ID,
		formatDate(p.StartDate),
		formatDate(p.EndDate),
		formatDecimal(p.DiscountRate),
		p.Description,
		p.PropertyID,
	}
}
