package model

import (
	bookingModel "agrirent/internal/domains/booking/model"
	equipmentModel "agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/lifecycle"
)

// OwnerDashboard is the owner's fleet and the bookings made on it.
type OwnerDashboard struct {
	Bookings  []bookingModel.Booking     `json:"bookings"`
	Equipment []equipmentModel.Equipment `json:"equipment"`
}

// AdminStats are the platform totals computed by the backend.
type AdminStats struct {
	TotalUsers       int                        `json:"totalUsers"`
	TotalEquipment   int                        `json:"totalEquipment"`
	TotalBookings    int                        `json:"totalBookings"`
	TotalRevenue     float64                    `json:"totalRevenue"`
	PendingEquipment []equipmentModel.Equipment `json:"pendingEquipment"`
	RecentBookings   []bookingModel.Booking     `json:"recentBookings"`
}

// Active reports whether a booking still occupies its equipment or waits for a decision.
func Active(status lifecycle.Status) bool {
	return status == lifecycle.Pending || status == lifecycle.Confirmed
}

// Earning reports whether the amount of a booking counts towards the owner's earnings.
func Earning(status lifecycle.Status) bool {
	return status == lifecycle.Confirmed || status == lifecycle.Completed
}
