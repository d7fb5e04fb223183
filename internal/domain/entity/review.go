package entity

// ReviewColumns is the CSV header of the reviews table.
var ReviewColumns = []string{"review_id", "booking_id", "comment", "rating"}

// Review rates a booking. A booking may have any number of reviews.
type Review struct {
	ID        string
	BookingID string
	Comment   string
	Rating    float64 // [0, 5]
}

// Values returns the cells of r in ReviewColumns order.
func (r Review) Values() []string {
	return []string{r.ID, r.BookingID, r.Comment, formatDecimal(r.Rating)}
}
