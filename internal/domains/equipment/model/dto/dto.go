package dto

import (
	"agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/pricing"
	reviewDto "agrirent/internal/domains/review/model/dto"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/timezone"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ListRequest filters public equipment. Coordinates take precedence over category
// and return the nearest listings first.
type ListRequest struct {
	Category  string   `json:"category"  validate:"omitempty,oneof=Tractor Harvester Planter Tillage Irrigation Other"`
	Latitude  *float64 `json:"lat"       validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"lng"       validate:"omitempty,gte=-180,lte=180"`
}

func (r *ListRequest) FromRequest(request *http.Request) {
	query := request.URL.Query()

	r.Category = query.Get(constant.RequestParamCategory)
	r.Latitude = shared.ConvertStringToFloat(query.Get(constant.RequestParamLatitude))
	r.Longitude = shared.ConvertStringToFloat(query.Get(constant.RequestParamLongitude))
}

func (r ListRequest) Query() url.Values {
	query := url.Values{}

	if r.Latitude != nil && r.Longitude != nil {
		query.Set(constant.RequestParamLatitude, strconv.FormatFloat(*r.Latitude, 'f', -1, 64))
		query.Set(constant.RequestParamLongitude, strconv.FormatFloat(*r.Longitude, 'f', -1, 64))

		return query
	}

	if r.Category != "" {
		query.Set(constant.RequestParamCategory, r.Category)
	}

	return query
}

type OwnerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	City     string `json:"city,omitempty"`
}

type EquipmentResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Location         string         `json:"location"`
	Latitude         *float64       `json:"latitude,omitempty"`
	Longitude        *float64       `json:"longitude,omitempty"`
	PricePerHour     *float64       `json:"pricePerHour,omitempty"`
	PricePerDay      float64        `json:"pricePerDay"`
	PricePerWeek     *float64       `json:"pricePerWeek,omitempty"`
	Rates            pricing.Rates  `json:"rates"`
	ImageURL         string         `json:"imageUrl,omitempty"`
	IsAvailable      bool           `json:"isAvailable"`
	IsApproved       bool           `json:"isApproved"`
	AvailabilityFrom string         `json:"availabilityFrom,omitempty"`
	AvailabilityTo   string         `json:"availabilityTo,omitempty"`
	Rating           float64        `json:"rating"`
	TotalBookings    int            `json:"totalBookings"`
	Owner            *OwnerResponse `json:"owner,omitempty"`
}

func (r *EquipmentResponse) FromModel(m model.Equipment, assetHost string) {
	r.ID = m.ID
	r.Name = m.Name
	r.Category = m.Category
	r.Description = m.Description
	r.Location = m.Location
	r.PricePerHour = m.PricePerHour
	r.PricePerDay = m.PricePerDay
	r.PricePerWeek = m.PricePerWeek
	r.Rates = pricing.EffectiveRates(m.Prices())
	r.ImageURL = shared.ResolveAssetURL(assetHost, m.ImageURL)
	r.IsAvailable = m.IsAvailable
	r.IsApproved = m.IsApproved
	r.AvailabilityFrom = m.AvailabilityFrom
	r.AvailabilityTo = m.AvailabilityTo
	r.Rating = m.Rating
	r.TotalBookings = m.TotalBookings

	if lat, lng, ok := m.Point(); ok {
		r.Latitude, r.Longitude = &lat, &lng
	}

	if m.Owner != nil {
		r.Owner = &OwnerResponse{ID: m.Owner.ID, FullName: m.Owner.FullName, City: m.Owner.City}
	}
}

type GetEquipmentsResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int                 `json:"total"`
}

func (r *GetEquipmentsResponse) FromModels(models []model.Equipment, assetHost string) {
	r.Equipment = make([]EquipmentResponse, 0, len(models))

	for _, m := range models {
		var equipment EquipmentResponse
		equipment.FromModel(m, assetHost)
		r.Equipment = append(r.Equipment, equipment)
	}

	r.Total = len(r.Equipment)
}

type EquipmentDetailResponse struct {
	EquipmentResponse
	Reviews reviewDto.GetReviewsResponse `json:"reviews"`
}

// SaveEquipmentRequest is the owner or admin listing form. It arrives as multipart
// form data; ImageContentType and ImageSize describe the optional uploaded image.
type SaveEquipmentRequest struct {
	Name             string   `json:"name"             validate:"required,max=120"`
	Category         string   `json:"category"         validate:"required,oneof=Tractor Harvester Planter Tillage Irrigation Other"`
	Description      string   `json:"description"      validate:"required,max=2000"`
	PricePerDay      float64  `json:"pricePerDay"      validate:"required,gt=0"`
	PricePerHour     *float64 `json:"pricePerHour"     validate:"omitempty,gt=0"`
	PricePerWeek     *float64 `json:"pricePerWeek"     validate:"omitempty,gt=0"`
	Latitude         *float64 `json:"latitude"         validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude"        validate:"omitempty,gte=-180,lte=180"`
	Location         string   `json:"location"         validate:"required,max=255"`
	AvailabilityFrom string   `json:"availabilityFrom" validate:"required,isodate"`
	AvailabilityTo   string   `json:"availabilityTo"   validate:"required,isodate"`

	ImageName        string    `json:"-"`
	ImageContentType string    `json:"imageContentType" validate:"omitempty,mimetypes=image/jpeg image/png image/webp"`
	ImageSize        int64     `json:"imageSize"        validate:"omitempty,maxfilesize=5"`
	Image            io.Reader `json:"-"`
}

func (r *SaveEquipmentRequest) FromRequest(request *http.Request) {
	r.Name = request.FormValue("name")
	r.Category = request.FormValue("category")
	r.Description = request.FormValue("description")
	r.Location = request.FormValue("location")
	r.AvailabilityFrom = request.FormValue("availabilityFrom")
	r.AvailabilityTo = request.FormValue("availabilityTo")
	r.PricePerHour = shared.ConvertStringToFloat(request.FormValue("pricePerHour"))
	r.PricePerWeek = shared.ConvertStringToFloat(request.FormValue("pricePerWeek"))
	r.Latitude = shared.ConvertStringToFloat(request.FormValue("latitude"))
	r.Longitude = shared.ConvertStringToFloat(request.FormValue("longitude"))

	if price := shared.ConvertStringToFloat(request.FormValue("pricePerDay")); price != nil {
		r.PricePerDay = *price
	}
}

// CheckAvailability rejects windows that end before they start.
func (r SaveEquipmentRequest) CheckAvailability() error {
	from, err := timezone.ParseDate(r.AvailabilityFrom)
	if err != nil {
		return failure.BadRequestFromString("availabilityFrom must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	to, err := timezone.ParseDate(r.AvailabilityTo)
	if err != nil {
		return failure.BadRequestFromString("availabilityTo must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if to.Before(from) {
		return failure.BadRequestFromString("availabilityTo must not be before availabilityFrom") // nolint:wrapcheck
	}

	return nil
}

// Fields returns the form fields expected by the backend listing endpoints.
func (r SaveEquipmentRequest) Fields() map[string]string {
	fields := map[string]string{
		"name":             r.Name,
		"category":         r.Category,
		"description":      r.Description,
		"pricePerDay":      formatFloat(r.PricePerDay),
		"location":         r.Location,
		"availabilityFrom": r.AvailabilityFrom,
		"availabilityTo":   r.AvailabilityTo,
	}

	optional := map[string]*float64{
		"pricePerHour": r.PricePerHour,
		"pricePerWeek": r.PricePerWeek,
	}

	if r.Latitude != nil && r.Longitude != nil {
		optional["latitude"] = r.Latitude
		optional["longitude"] = r.Longitude
	}

	for key, value := range optional {
		if value != nil {
			fields[key] = formatFloat(*value)
		}
	}

	return fields
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
