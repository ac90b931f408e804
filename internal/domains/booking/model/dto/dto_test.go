package dto_test

import (
	"agrirent/internal/domains/booking/model"
	"agrirent/internal/domains/booking/model/dto"
	equipmentModel "agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/lifecycle"
	"agrirent/internal/domains/pricing"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/validator"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr string
	}{
		{
			name: "daily",
			req:  dto.CreateBookingRequest{EquipmentID: "e1", RentalType: pricing.Daily, StartDate: "2026-11-01", EndDate: "2026-11-03"},
		},
		{
			name: "hourly without end date",
			req:  dto.CreateBookingRequest{EquipmentID: "e1", RentalType: pricing.Hourly, StartDate: "2026-11-01", StartTime: "08:00", EndTime: "11:00"},
		},
		{
			name:    "hourly without times",
			req:     dto.CreateBookingRequest{EquipmentID: "e1", RentalType: pricing.Hourly, StartDate: "2026-11-01"},
			wantErr: "startTime",
		},
		{
			name:    "daily without end date",
			req:     dto.CreateBookingRequest{EquipmentID: "e1", RentalType: pricing.Daily, StartDate: "2026-11-01"},
			wantErr: "endDate",
		},
		{
			name:    "monthly rental",
			req:     dto.CreateBookingRequest{EquipmentID: "e1", RentalType: "MONTHLY", StartDate: "2026-11-01", EndDate: "2026-12-01"},
			wantErr: "rentalType",
		},
		{
			name:    "bad clock",
			req:     dto.CreateBookingRequest{EquipmentID: "e1", RentalType: pricing.Hourly, StartDate: "2026-11-01", StartTime: "8am", EndTime: "11:00"},
			wantErr: "startTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateBookingRequest_CheckSchedule(t *testing.T) {
	today := time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{name: "starts today", req: dto.CreateBookingRequest{RentalType: pricing.Daily, StartDate: "2026-10-16", EndDate: "2026-10-17"}},
		{name: "started yesterday", req: dto.CreateBookingRequest{RentalType: pricing.Daily, StartDate: "2026-10-15", EndDate: "2026-10-17"}, wantErr: true},
		{name: "zero days", req: dto.CreateBookingRequest{RentalType: pricing.Weekly, StartDate: "2026-10-20", EndDate: "2026-10-20"}, wantErr: true},
		{name: "hourly", req: dto.CreateBookingRequest{RentalType: pricing.Hourly, StartDate: "2026-10-20", StartTime: "09:00", EndTime: "11:30"}},
		{name: "hourly backwards", req: dto.CreateBookingRequest{RentalType: pricing.Hourly, StartDate: "2026-10-20", StartTime: "11:00", EndTime: "09:00"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.CheckSchedule(today)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestCreateBookingRequest_ToBackend(t *testing.T) {
	lat, lng := 18.52, 73.85

	hourly := dto.CreateBookingRequest{
		EquipmentID: "e1",
		RentalType:  pricing.Hourly,
		StartDate:   "2026-11-01",
		EndDate:     "2026-11-05",
		StartTime:   "09:00",
		EndTime:     "12:00",
		Latitude:    &lat,
		Longitude:   &lng,
	}

	payload := hourly.ToBackend()
	assert.Empty(t, payload.EndDate, "hourly bookings are single day")
	assert.Equal(t, "09:00", payload.StartTime)
	assert.Equal(t, []float64{73.85, 18.52}, payload.FarmerCoordinates)

	daily := dto.CreateBookingRequest{RentalType: pricing.Daily, StartDate: "2026-11-01", EndDate: "2026-11-05", StartTime: "09:00", Latitude: &lat}

	payload = daily.ToBackend()
	assert.Equal(t, "2026-11-05", payload.EndDate)
	assert.Empty(t, payload.StartTime)
	assert.Nil(t, payload.FarmerCoordinates)

	estimate := daily.Estimate()
	assert.Equal(t, "2026-11-05", estimate.EndDate)
	assert.Empty(t, estimate.StartTime)
}

func TestBookingResponse_ContactGating(t *testing.T) {
	farmer := &userModel.User{ID: "f1", FullName: "Sunita", PhoneNumber: "9800000001", Address: "Plot 4", City: "Satara", State: "Maharashtra"}
	owner := &userModel.User{ID: "o1", FullName: "Vikram", PhoneNumber: "9800000002", City: "Pune"}
	equipment := &equipmentModel.Equipment{ID: "e1", Name: "Harvester", ImageURL: "img/h.png", Owner: owner}

	tests := []struct {
		name      string
		status    lifecycle.Status
		role      string
		wantPhone bool
	}{
		{name: "pending", status: lifecycle.Pending, role: constant.RoleOwner},
		{name: "confirmed", status: lifecycle.Confirmed, role: constant.RoleOwner, wantPhone: true},
		{name: "completed", status: lifecycle.Completed, role: constant.RoleFarmer, wantPhone: true},
		{name: "cancelled", status: lifecycle.Cancelled, role: constant.RoleFarmer},
		{name: "admin always", status: lifecycle.Pending, role: constant.RoleAdmin, wantPhone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.BookingResponse
			res.FromModel(model.Booking{ID: "b1", Status: tt.status, Farmer: farmer, Equipment: equipment, RentalType: pricing.Daily}, tt.role, "https://assets.test")

			require.NotNil(t, res.Farmer)
			require.NotNil(t, res.Owner)

			assert.Equal(t, "Sunita", res.Farmer.FullName)
			assert.Equal(t, tt.wantPhone, res.Farmer.PhoneNumber != "")
			assert.Equal(t, tt.wantPhone, res.Owner.PhoneNumber != "")
			assert.Equal(t, tt.wantPhone, res.Farmer.Address != "")
			assert.Equal(t, tt.wantPhone, res.Farmer.City != "")
			assert.Equal(t, tt.wantPhone, res.Farmer.State != "")
			assert.Equal(t, tt.wantPhone, res.Owner.City != "")
			assert.Equal(t, "https://assets.test/img/h.png", res.Equipment.ImageURL)
			assert.Equal(t, "days", res.DurationUnit)
		})
	}
}
