package model

import (
	"agrirent/internal/domains/pricing"
	userModel "agrirent/internal/domains/user/model"
	"slices"
)

const (
	EntityName = "equipment"

	CacheKeyGet    = "equipment:get"
	CacheKeyGetAll = "equipment:gets"
)

var Categories = []string{"Tractor", "Harvester", "Planter", "Tillage", "Irrigation", "Other"}

func ValidCategory(category string) bool {
	return slices.Contains(Categories, category)
}

type Equipment struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Location         string          `json:"location"`
	Coordinates      []float64       `json:"coordinates,omitempty"`
	PricePerHour     *float64        `json:"pricePerHour,omitempty"`
	PricePerDay      float64         `json:"pricePerDay"`
	PricePerWeek     *float64        `json:"pricePerWeek,omitempty"`
	ImageURL         string          `json:"imageUrl,omitempty"`
	IsAvailable      bool            `json:"isAvailable"`
	IsApproved       bool            `json:"isApproved"`
	AvailabilityFrom string          `json:"availabilityFrom,omitempty"`
	AvailabilityTo   string          `json:"availabilityTo,omitempty"`
	Rating           float64         `json:"rating"`
	TotalBookings    int             `json:"totalBookings"`
	Owner            *userModel.User `json:"owner,omitempty"`
}

func (e Equipment) Prices() pricing.Prices {
	return pricing.Prices{
		PerHour: e.PricePerHour,
		PerDay:  e.PricePerDay,
		PerWeek: e.PricePerWeek,
	}
}

// Bookable reports whether farmers may request this equipment.
func (e Equipment) Bookable() bool {
	return e.IsApproved && e.IsAvailable
}

// Point returns the stored [lng, lat] pair as latitude and longitude.
func (e Equipment) Point() (lat, lng float64, ok bool) {
	if len(e.Coordinates) != 2 {
		return 0, 0, false
	}

	return e.Coordinates[1], e.Coordinates[0], true
}
