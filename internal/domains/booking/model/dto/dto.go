package dto

import (
	"agrirent/internal/domains/booking/model"
	"agrirent/internal/domains/lifecycle"
	"agrirent/internal/domains/pricing"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/timezone"
	"time"
)

// EstimateRequest is the live booking form. Every field but the equipment may be
// incomplete while the farmer is still typing.
type EstimateRequest struct {
	EquipmentID string             `json:"equipmentId" validate:"required"`
	RentalType  pricing.RentalType `json:"rentalType"  validate:"required,oneof=HOURLY DAILY WEEKLY"`
	StartDate   string             `json:"startDate"   validate:"omitempty,isodate"`
	EndDate     string             `json:"endDate"     validate:"omitempty,isodate"`
	StartTime   string             `json:"startTime"   validate:"omitempty,hhmm"`
	EndTime     string             `json:"endTime"     validate:"omitempty,hhmm"`
}

func (r EstimateRequest) Input(prices pricing.Prices) pricing.Input {
	return pricing.Input{
		RentalType: r.RentalType,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Prices:     prices,
	}
}

type EstimateResponse struct {
	pricing.Quote
	Rounded int64         `json:"rounded"`
	Rates   pricing.Rates `json:"rates"`
}

func (r *EstimateResponse) FromQuote(quote pricing.Quote, prices pricing.Prices) {
	r.Quote = quote
	r.Rounded = quote.Rounded()
	r.Rates = pricing.EffectiveRates(prices)
}

type CreateBookingRequest struct {
	EquipmentID string             `json:"equipmentId" validate:"required"`
	RentalType  pricing.RentalType `json:"rentalType"  validate:"required,oneof=HOURLY DAILY WEEKLY"`
	StartDate   string             `json:"startDate"   validate:"required,isodate"`
	EndDate     string             `json:"endDate"     validate:"required_unless=RentalType HOURLY,omitempty,isodate"`
	StartTime   string             `json:"startTime"   validate:"required_if=RentalType HOURLY,omitempty,hhmm"`
	EndTime     string             `json:"endTime"     validate:"required_if=RentalType HOURLY,omitempty,hhmm"`
	Latitude    *float64           `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64           `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	Notes       string             `json:"notes"       validate:"omitempty,max=500"`
}

func (r CreateBookingRequest) Estimate() EstimateRequest {
	estimate := EstimateRequest{
		EquipmentID: r.EquipmentID,
		RentalType:  r.RentalType,
		StartDate:   r.StartDate,
	}

	if r.RentalType == pricing.Hourly {
		estimate.StartTime, estimate.EndTime = r.StartTime, r.EndTime
	} else {
		estimate.EndDate = r.EndDate
	}

	return estimate
}

// CheckSchedule rejects bookings that start before today or do not end after they start.
func (r CreateBookingRequest) CheckSchedule(today time.Time) error {
	start, err := timezone.ParseDate(r.StartDate)
	if err != nil {
		return failure.BadRequestFromString("startDate must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if start.Before(timezone.StartOfDay(today)) {
		return failure.BadRequestFromString("startDate cannot be in the past") // nolint:wrapcheck
	}

	if r.RentalType == pricing.Hourly {
		from, fromErr := timezone.Combine(r.StartDate, r.StartTime)
		to, toErr := timezone.Combine(r.StartDate, r.EndTime)

		if fromErr != nil || toErr != nil || !to.After(from) {
			return failure.BadRequestFromString("endTime must be after startTime") // nolint:wrapcheck
		}

		return nil
	}

	end, err := timezone.ParseDate(r.EndDate)
	if err != nil || !end.After(start) {
		return failure.BadRequestFromString("endDate must be after startDate") // nolint:wrapcheck
	}

	return nil
}

// BackendBookingRequest is the payload of the backend booking endpoint. Coordinates
// are sent as [longitude, latitude].
type BackendBookingRequest struct {
	EquipmentID       string             `json:"equipmentId"`
	RentalType        pricing.RentalType `json:"rentalType"`
	StartDate         string             `json:"startDate"`
	EndDate           string             `json:"endDate,omitempty"`
	StartTime         string             `json:"startTime,omitempty"`
	EndTime           string             `json:"endTime,omitempty"`
	FarmerCoordinates []float64          `json:"farmerCoordinates,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToBackend() BackendBookingRequest {
	payload := BackendBookingRequest{
		EquipmentID: r.EquipmentID,
		RentalType:  r.RentalType,
		StartDate:   r.StartDate,
		Notes:       r.Notes,
	}

	if r.RentalType == pricing.Hourly {
		payload.StartTime, payload.EndTime = r.StartTime, r.EndTime
	} else {
		payload.EndDate = r.EndDate
	}

	if r.Latitude != nil && r.Longitude != nil {
		payload.FarmerCoordinates = []float64{*r.Longitude, *r.Latitude}
	}

	return payload
}

type EquipmentSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type PartyResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
}

// NewPartyResponse describes a booking participant. Phone and address are only
// kept when showContact is set.
func NewPartyResponse(u *userModel.User, showContact bool) *PartyResponse {
	if u == nil {
		return nil
	}

	user := *u
	if !showContact {
		user = user.WithoutContact()
	}

	return &PartyResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		City:        user.City,
		State:       user.State,
		Pincode:     user.Pincode,
	}
}

type BookingResponse struct {
	ID            string             `json:"id"`
	Equipment     *EquipmentSummary  `json:"equipment,omitempty"`
	Farmer        *PartyResponse     `json:"farmer,omitempty"`
	Owner         *PartyResponse     `json:"owner,omitempty"`
	RentalType    pricing.RentalType `json:"rentalType"`
	StartDate     string             `json:"startDate,omitempty"`
	EndDate       string             `json:"endDate,omitempty"`
	StartTime     string             `json:"startTime,omitempty"`
	EndTime       string             `json:"endTime,omitempty"`
	TotalDuration int                `json:"totalDuration"`
	DurationUnit  string             `json:"durationUnit"`
	TotalAmount   float64            `json:"totalAmount"`
	Status        lifecycle.Status   `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     string             `json:"createdAt,omitempty"`
	Bucket        lifecycle.Bucket   `json:"bucket,omitempty"`
	Actions       []lifecycle.Action `json:"actions"`
}

// FromModel fills the response as seen by role. Administrators see contact details
// regardless of status, participants only once the booking is confirmed.
func (r *BookingResponse) FromModel(m model.Booking, role, assetHost string) {
	showContact := role == constant.RoleAdmin || m.Status.ContactVisible()

	r.ID = m.ID
	r.Farmer = NewPartyResponse(m.Farmer, showContact)
	r.Owner = NewPartyResponse(m.Owner(), showContact)
	r.RentalType = m.RentalType
	r.StartDate = m.StartDate
	r.EndDate = m.EndDate
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.TotalDuration = m.TotalDuration
	r.DurationUnit = m.RentalType.Unit()
	r.TotalAmount = m.TotalAmount
	r.Status = m.Status
	r.Notes = m.Notes
	r.CreatedAt = m.CreatedAt
	r.Actions = []lifecycle.Action{}

	if m.Equipment != nil {
		r.Equipment = &EquipmentSummary{
			ID:       m.Equipment.ID,
			Name:     m.Equipment.Name,
			Category: m.Equipment.Category,
			Location: m.Equipment.Location,
			ImageURL: shared.ResolveAssetURL(assetHost, m.Equipment.ImageURL),
		}
	}
}

func (r *BookingResponse) FromRow(row lifecycle.Row) {
	r.Bucket = row.Bucket
	r.Actions = row.Actions
}

// ViewResponse is a role dashboard of bookings: the bucket groups in display order
// and every booking with the actions legal for it. Stale is set when the view
// predates a committed action and should be reloaded.
type ViewResponse struct {
	Role     string            `json:"role"`
	Groups   []lifecycle.Group `json:"groups"`
	Bookings []BookingResponse `json:"bookings"`
	Stale    bool              `json:"stale,omitempty"`
}

func (r *ViewResponse) FromView(view lifecycle.View, bookings []model.Booking, assetHost string) {
	r.Role = view.Role()
	r.Groups = view.Groups()
	r.Bookings = make([]BookingResponse, 0, len(bookings))

	for _, b := range bookings {
		var booking BookingResponse
		booking.FromModel(b, view.Role(), assetHost)

		if row, ok := view.Row(b.ID); ok {
			booking.FromRow(row)
		}

		r.Bookings = append(r.Bookings, booking)
	}
}

type CreateBookingResponse struct {
	Booking  BookingResponse  `json:"booking"`
	Estimate EstimateResponse `json:"estimate"`
}
