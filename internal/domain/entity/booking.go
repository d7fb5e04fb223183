package entity

import "time"

// BookingColumns is the CSV header of the bookings table.
var BookingColumns = []string{
	"booking_id", "timestamp", "check_in_date", "check_out_date", "guest_user_id", "property_id",
}

// Booking is a stay of one guest at one property.
type Booking struct {
	ID          string
	Timestamp   time.Time
	CheckIn     time.Time // date only
	CheckOut    time.Time // date only
	GuestUserID string
	PropertyID  string
}

// Nights returns the number of whole days between check-in and check-out.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Values returns the cells of b in BookingColumns order.
func (b Booking) Values() []string {
	return []string{
		b.ID,
		formatTimestamp(b.Timestamp),
		formatDate(b.CheckIn),
		formatDate(b.CheckOut),
		b.GuestUserID,
		b.PropertyID,
	}
}
