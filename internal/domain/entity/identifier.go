// Package entity holds the records of a generated rental-marketplace dataset.
// Every record is flat and references other records by copied identifier strings.
package entity

import "fmt"

// Identifier prefixes, one per entity with a surrogate key.
const (
	UserIDPrefix      = "U"
	PropertyIDPrefix  = "P"
	BookingIDPrefix   = "B"
	PromotionIDPrefix = "PR"
	AmenityIDPrefix   = "A"
	ReviewIDPrefix    = "R"
	MessageIDPrefix   = "M"
)

// FormatID builds an identifier from a prefix and a zero-padded nine digit index.
func FormatID(prefix string, index int) string {
	return fmt.Sprintf("%s%09d", prefix, index)
}
