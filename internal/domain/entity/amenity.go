package entity

// Amenity conditions.
const (
	AmenityAvailable    = "Available"
	AmenityNotAvailable = "Not Available"
)

// AmenityConditions lists the conditions in draw order.
var AmenityConditions = []string{AmenityAvailable, AmenityNotAvailable}

// AmenityNames is the fixed amenity vocabulary. Physical amenities and views share it.
var AmenityNames = []string{
	"WiFi", "Pool", "Gym", "Air Conditioning", "Heating", "Kitchen", "Free Parking", "Washer", "Dryer", "TV",
	"Hot Tub", "Fireplace", "Breakfast Included", "24-Hour Check-in", "Pet Friendly", "Elevator", "Balcony",
	"BBQ Grill", "Laptop-friendly Workspace", "Smoke Detector", "Parking", "Breakfast", "Laundry", "Concierge",
	"Mini Bar", "Safe", "Room Service", "Hair Dryer", "Coffee Maker", "Shuttle Service", "BBQ Area",
	"Nearby Attractions", "Nearby Dining", "Beach", "Mountain View", "Forest View", "Lake View", "City View",
	"Country View", "River View", "Sea View", "Garden View", "Pool View", "Park View",
}

// AmenityColumns is the CSV header of the amenities table.
var AmenityColumns = []string{"amenity_id", "condition", "amenity_name", "property_id"}

// Amenity is one feature attached to a property. A property may list the same name twice.
type Amenity struct {
	ID         string
	Condition  string
	Name       string
	PropertyID string
}

// Values returns the cells of a in AmenityColumns order.
func (a Amenity) Values() []string {
	return []string{a.ID, a.Condition, a.Name, a.PropertyID}
}
