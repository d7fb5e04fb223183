package entity

import (
	"fmt"
	"strconv"
)

// PropertyType is the kind of space a listing offers.
type PropertyType string

const (
	PropertyTypeEntirePlace PropertyType = "Entire place"
	PropertyTypePrivateRoom PropertyType = "Private room"
	PropertyTypeSharedRoom  PropertyType = "Shared room"
)

// PropertyTypes lists every PropertyType in draw order.
var PropertyTypes = []PropertyType{
	PropertyTypeEntirePlace,
	PropertyTypePrivateRoom,
	PropertyTypeSharedRoom,
}

// PropertyColumns is the CSV header of the properties table.
var PropertyColumns = []string{
	"property_id", "n_bathrooms", "title", "n_beds", "property_type",
	"n_guests", "n_rooms", "host_user_id", "price",
}

// Property is a listing owned by one host.
type Property struct {
	ID         string
	Bathrooms  int
	Title      string
	Beds       int
	Type       PropertyType
	Guests     int
	Rooms      int
	HostUserID string
	PriceCents int
}

// Price returns the nightly price in currency units.
func (p Property) Price() float64 {
	return float64(p.PriceCents) / 100
}

// Values returns the cells of p in PropertyColumns order.
func (p Property) Values() []string {
	return []string{
		p.ID,
		strconv.Itoa(p.Bathrooms),
		p.Title,
		strconv.Itoa(p.Beds),
		string(p.Type),
		strconv.Itoa(p.Guests),
		strconv.Itoa(p.Rooms),
		p.HostUserID,
		fmt.Sprintf("%d.%02d", p.PriceCents/100, p.PriceCents%100),
	}
}
