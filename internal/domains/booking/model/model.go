package model

import (
	equipmentModel "agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/lifecycle"
	"agrirent/internal/domains/pricing"
	userModel "agrirent/internal/domains/user/model"
)

const EntityName = "booking"

// Booking is the authoritative record kept by the backend. StartTime and EndTime
// are local date-times and only set for hourly rentals.
type Booking struct {
	ID                string                    `json:"id"`
	Farmer            *userModel.User           `json:"farmer,omitempty"`
	Equipment         *equipmentModel.Equipment `json:"equipment,omitempty"`
	BookingDate       string                    `json:"bookingDate,omitempty"`
	StartDate         string                    `json:"startDate,omitempty"`
	EndDate           string                    `json:"endDate,omitempty"`
	StartTime         string                    `json:"startTime,omitempty"`
	EndTime           string                    `json:"endTime,omitempty"`
	RentalType        pricing.RentalType        `json:"rentalType"`
	FarmerCoordinates []float64                 `json:"farmerCoordinates,omitempty"`
	TotalDuration     int                       `json:"totalDuration"`
	PricePerDay       float64                   `json:"pricePerDay"`
	TotalAmount       float64                   `json:"totalAmount"`
	Status            lifecycle.Status          `json:"status"`
	Notes             string                    `json:"notes,omitempty"`
	CreatedAt         string                    `json:"createdAt,omitempty"`
}

func (b Booking) Item() lifecycle.Item {
	return lifecycle.Item{ID: b.ID, Status: b.Status}
}

func Items(bookings []Booking) []lifecycle.Item {
	items := make([]lifecycle.Item, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, b.Item())
	}

	return items
}

// Owner returns the owner of the booked equipment, if the backend embedded it.
func (b Booking) Owner() *userModel.User {
	if b.Equipment == nil {
		return nil
	}

	return b.Equipment.Owner
}

// Participant reports whether userID is the farmer or the equipment owner.
func (b Booking) Participant(userID string) bool {
	if b.Farmer != nil && b.Farmer.ID == userID {
		return true
	}

	owner := b.Owner()

	return owner != nil && owner.ID == userID
}

// Peer returns the other participant of the booking as seen by userID.
func (b Booking) Peer(userID string) *userModel.User {
	if b.Farmer != nil && b.Farmer.ID == userID {
		return b.Owner()
	}

	return b.Farmer
}

func Find(bookings []Booking, id string) (Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}

	return Booking{}, false
}
