package entity

// Table names double as file stems of the exported CSV files.
const (
	TableUsers      = "usuarios"
	TableGuests     = "guests"
	TableHosts      = "hosts"
	TableProperties = "properties"
	TableBookings   = "bookings"
	TablePromotions = "promotions"
	TableAmenities  = "amenities"
	TableReviews    = "reviews"
	TableFavorites  = "select_favorites"
	TableMessages   = "messages"
)

// Schema describes the header of one exported table.
type Schema struct {
	Name    string
	Columns []string
}

// Schemas lists every table in export order.
var Schemas = []Schema{
	{Name: TableUsers, Columns: UserColumns},
	{Name: TableGuests, Columns: RoleColumns},
	{Name: TableHosts, Columns: RoleColumns},
	{Name: TableProperties, Columns: PropertyColumns},
	{Name: TableBookings, Columns: BookingColumns},
	{Name: TablePromotions, Columns: PromotionColumns},
	{Name: TableAmenities, Columns: AmenityColumns},
	{Name: TableReviews, Columns: ReviewColumns},
	{Name: TableFavorites, Columns: FavoriteColumns},
	{Name: TableMessages, Columns: MessageColumns},
}

// SchemaByName returns the schema of the named table.
func SchemaByName(name string) (Schema, bool) {
	for _, s := range Schemas {
		if s.Name == name {
			return s, true
		}
	}

	return Schema{}, false
}

// Record is a flat row that renders its own cells.
type Record interface {
	Values() []string
}

// Table is a read-only tabular view over a record list. Rows are rendered on
// demand so that exporting does not hold a second copy of the dataset.
type Table struct {
	Name    string
	Columns []string
	Len     int
	Row     func(i int) []string
}

// NewTable wraps records as a table whose row order is the slice order.
func NewTable[T Record](name string, columns []string, records []T) Table {
	return Table{
		Name:    name,
		Columns: columns,
		Len:     len(records),
		Row: func(i int) []string {
			return records[i].Values()
		},
	}
}
