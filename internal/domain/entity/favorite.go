package entity

// FavoriteColumns is the CSV header of the select_favorites table.
var FavoriteColumns = []string{"property_id", "guest_user_id"}

// Favorite marks a property saved by a guest. Pairs are unique within a dataset.
type Favorite struct {
	PropertyID  string
	GuestUserID string
}

// Values returns the cells of f in FavoriteColumns order.
func (f Favorite) Values() []string {
	return []string{f.PropertyID, f.GuestUserID}
}
