package generator

import (
	"time"

	"rentgen/internal/domain/entity"
	"rentgen/internal/domain/service"
	"rentgen/internal/infra/fake"
)

var referenceTime = time.Date(2024, time.October, 18, 9, 30, 0, 0, time.UTC)

func newTestProvider(seed int64) service.Provider {
	return fake.NewProvider(seed, referenceTime)
}

func newHosts(ids ...string) []entity.Host {
	hosts := make([]entity.Host, 0, len(ids))
	for _, id := range ids {
		hosts = append(hosts, entity.Host{UserID: id})
	}

	return hosts
}

func newGuests(n int) []entity.Guest {
	guests := make([]entity.Guest, 0, n)
	for i := range n {
		guests = append(guests, entity.Guest{UserID: entity.FormatID(entity.UserIDPrefix, i)})
	}

	return guests
}

func newProperties(n int) []entity.Property {
	properties := make([]entity.Property, 0, n)
	for i := range n {
		properties = append(properties, entity.Property{ID: entity.FormatID(entity.PropertyIDPrefix, i)})
	}

	return properties
}

// fixedProvider replays Float64 draws from a list and answers everything else trivially.
type fixedProvider struct {
	service.Provider
	floats []float64
}

func (f *fixedProvider) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]

	return v
}
