package dto

import (
	bookingDto "agrirent/internal/domains/booking/model/dto"
	"agrirent/internal/domains/dashboard/model"
	equipmentDto "agrirent/internal/domains/equipment/model/dto"
	userDto "agrirent/internal/domains/user/model/dto"
)

type FarmerDashboardResponse struct {
	ActiveBookings int                     `json:"activeBookings"`
	Bookings       bookingDto.ViewResponse `json:"bookings"`
}

func (r *FarmerDashboardResponse) FromView(view bookingDto.ViewResponse) {
	r.Bookings = view
	r.ActiveBookings = 0

	for _, b := range view.Bookings {
		if model.Active(b.Status) {
			r.ActiveBookings++
		}
	}
}

type OwnerDashboardResponse struct {
	TotalEarnings  float64                          `json:"totalEarnings"`
	EquipmentCount int                              `json:"equipmentCount"`
	Equipment      []equipmentDto.EquipmentResponse `json:"equipment"`
	Bookings       bookingDto.ViewResponse          `json:"bookings"`
}

func (r *OwnerDashboardResponse) FromView(view bookingDto.ViewResponse, equipment equipmentDto.GetEquipmentsResponse) {
	r.Bookings = view
	r.Equipment = equipment.Equipment
	r.EquipmentCount = equipment.Total
	r.TotalEarnings = 0

	for _, b := range view.Bookings {
		if model.Earning(b.Status) {
			r.TotalEarnings += b.TotalAmount
		}
	}
}

type AdminStatsResponse struct {
	TotalUsers       int                              `json:"totalUsers"`
	TotalEquipment   int                              `json:"totalEquipment"`
	TotalBookings    int                              `json:"totalBookings"`
	TotalRevenue     float64                          `json:"totalRevenue"`
	PendingEquipment []equipmentDto.EquipmentResponse `json:"pendingEquipment"`
	RecentBookings   []bookingDto.BookingResponse     `json:"recentBookings"`
}

func (r *AdminStatsResponse) FromModel(m model.AdminStats, role, assetHost string) {
	r.TotalUsers = m.TotalUsers
	r.TotalEquipment = m.TotalEquipment
	r.TotalBookings = m.TotalBookings
	r.TotalRevenue = m.TotalRevenue

	var pending equipmentDto.GetEquipmentsResponse
	pending.FromModels(m.PendingEquipment, assetHost)
	r.PendingEquipment = pending.Equipment

	r.RecentBookings = make([]bookingDto.BookingResponse, 0, len(m.RecentBookings))
	for _, b := range m.RecentBookings {
		var booking bookingDto.BookingResponse
		booking.FromModel(b, role, assetHost)
		r.RecentBookings = append(r.RecentBookings, booking)
	}
}

type AdminDashboardResponse struct {
	Stats     AdminStatsResponse                 `json:"stats"`
	Users     userDto.GetUsersResponse           `json:"users"`
	Bookings  bookingDto.ViewResponse            `json:"bookings"`
	Equipment equipmentDto.GetEquipmentsResponse `json:"equipment"`
}
