package entity

// Dataset holds every record list of one generation run.
type Dataset struct {
	Users      []User
	Guests     []Guest
	Hosts      []Host
	Properties []Property
	Bookings   []Booking
	Promotions []Promotion
	Amenities  []Amenity
	Reviews    []Review
	Favorites  []Favorite
	Messages   []Message
}

// Tables returns one table per entity, in Schemas order.
func (d *Dataset) Tables() []Table {
	return []Table{
		NewTable(TableUsers, UserColumns, d.Users),
		NewTable(TableGuests, RoleColumns, d.Guests),
		NewTable(TableHosts, RoleColumns, d.Hosts),
		NewTable(TableProperties, PropertyColumns, d.Properties),
		NewTable(TableBookings, BookingColumns, d.Bookings),
		NewTable(TablePromotions, PromotionColumns, d.Promotions),
		NewTable(TableAmenities, AmenityColumns, d.Amenities),
		NewTable(TableReviews, ReviewColumns, d.Reviews),
		NewTable(TableFavorites, FavoriteColumns, d.Favorites),
		NewTable(TableMessages, MessageColumns, d.Messages),
	}
}

// Counts returns the number of rows per table name.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int, len(Schemas))
	for _, t := range d.Tables() {
		counts[t.Name] = t.Len
	}

	return counts
}
