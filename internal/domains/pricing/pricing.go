// Package pricing computes the advisory booking estimate shown before a booking is
// submitted. The marketplace backend computes the billed amount on its own; the
// estimate is never sent as authoritative.
package pricing

import (
	"math"
	"time"
)

type RentalType string

const (
	Hourly RentalType = "HOURLY"
	Daily  RentalType = "DAILY"
	Weekly RentalType = "WEEKLY"
)

const (
	hoursPerDay         = 8
	billableDaysPerWeek = 6
	daysPerWeek         = 7

	placeholderDate = "2000-01-01"
	dateLayout      = "2006-01-02"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// Valid reports whether t is one of the supported rental types.
func (t RentalType) Valid() bool {
	switch t {
	case Hourly, Daily, Weekly:
		return true
	}

	return false
}

// Unit is the duration unit a booking of this type is billed in.
func (t RentalType) Unit() string {
	switch t {
	case Hourly:
		return "hours"
	case Weekly:
		return "weeks"
	default:
		return "days"
	}
}

// Prices are the price points listed on an equipment. PerHour and PerWeek are optional.
type Prices struct {
	PerHour *float64 `json:"pricePerHour,omitempty"`
	PerDay  float64  `json:"pricePerDay"`
	PerWeek *float64 `json:"pricePerWeek,omitempty"`
}

// Rates are the prices actually charged per unit once missing price points are derived.
type Rates struct {
	Hourly float64 `json:"hourly"`
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

// Rate returns the per unit price for a rental type.
func (r Rates) Rate(t RentalType) float64 {
	switch t {
	case Hourly:
		return r.Hourly
	case Weekly:
		return r.Weekly
	default:
		return r.Daily
	}
}

// EffectiveRates derives the hourly rate as a day's price over 8 hours and the weekly
// rate as 6 days when the equipment does not list them.
func EffectiveRates(p Prices) Rates {
	daily := math.Max(p.PerDay, 0)

	rates := Rates{
		Hourly: daily / hoursPerDay,
		Daily:  daily,
		Weekly: daily * billableDaysPerWeek,
	}

	if p.PerHour != nil && *p.PerHour > 0 {
		rates.Hourly = *p.PerHour
	}

	if p.PerWeek != nil && *p.PerWeek > 0 {
		rates.Weekly = *p.PerWeek
	}

	return rates
}

// Input is a possibly incomplete booking form. Dates are "2006-01-02", times "15:04".
type Input struct {
	RentalType RentalType `json:"rentalType"`
	StartDate  string     `json:"startDate,omitempty"`
	EndDate    string     `json:"endDate,omitempty"`
	StartTime  string     `json:"startTime,omitempty"`
	EndTime    string     `json:"endTime,omitempty"`
	Prices     Prices     `json:"prices"`
}

type Quote struct {
	RentalType RentalType `json:"rentalType"`
	Duration   int        `json:"duration"`
	Unit       string     `json:"unit"`
	Rate       float64    `json:"rate"`
	Amount     float64    `json:"amount"`
}

// Rounded is the amount to display, rounded to the nearest whole currency unit.
func (q Quote) Rounded() int64 {
	return int64(math.Round(q.Amount))
}

// Estimate never fails. Missing or unparseable input for the chosen rental type,
// or a range whose end is not after its start, gives a zero amount.
func Estimate(in Input) Quote {
	rates := EffectiveRates(in.Prices)

	quote := Quote{
		RentalType: in.RentalType,
		Unit:       in.RentalType.Unit(),
		Rate:       rates.Rate(in.RentalType),
	}

	var duration int

	switch in.RentalType {
	case Hourly:
		duration = hours(in.StartDate, in.StartTime, in.EndTime)
	case Daily:
		duration = days(in.StartDate, in.EndDate)
	case Weekly:
		if d := days(in.StartDate, in.EndDate); d > 0 {
			duration = int(math.Ceil(float64(d) / daysPerWeek))
		}
	}

	if duration <= 0 {
		return quote
	}

	quote.Duration = duration
	quote.Amount = float64(duration) * quote.Rate

	return quote
}

func hours(date, start, end string) int {
	if start == "" || end == "" {
		return 0
	}

	if date == "" {
		date = placeholderDate
	}

	from, ok := at(date, start)
	if !ok {
		return 0
	}

	to, ok := at(date, end)
	if !ok {
		return 0
	}

	return int(math.Ceil(to.Sub(from).Hours()))
}

func days(start, end string) int {
	if start == "" || end == "" {
		return 0
	}

	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}

	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0
	}

	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

func at(date, clock string) (time.Time, bool) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}

	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clock)
		if err == nil {
			return day.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute + time.Duration(c.Second())*time.Second), true
		}
	}

	return time.Time{}, false
}
