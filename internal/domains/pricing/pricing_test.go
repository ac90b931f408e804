package pricing_test

import (
	"agrirent/internal/domains/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name         string
		input        pricing.Input
		wantDuration int
		wantAmount   float64
	}{
		{
			name: "daily three days",
			input: pricing.Input{
				RentalType: pricing.Daily,
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-04",
				Prices:     pricing.Prices{PerDay: 1500},
			},
			wantDuration: 3,
			wantAmount:   4500,
		},
		{
			name: "hourly derived rate rounds duration up",
			input: pricing.Input{
				RentalType: pricing.Hourly,
				StartDate:  "2024-03-10",
				StartTime:  "09:00",
				EndTime:    "11:30",
				Prices:     pricing.Prices{PerDay: 800},
			},
			wantDuration: 3,
			wantAmount:   300,
		},
		{
			name: "hourly without a date uses a placeholder day",
			input: pricing.Input{
				RentalType: pricing.Hourly,
				StartTime:  "06:15",
				EndTime:    "08:00",
				Prices:     pricing.Prices{PerHour: ptr(250), PerDay: 800},
			},
			wantDuration: 2,
			wantAmount:   500,
		},
		{
			name: "weekly derived rate",
			input: pricing.Input{
				RentalType: pricing.Weekly,
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-11",
				Prices:     pricing.Prices{PerDay: 1000},
			},
			wantDuration: 2,
			wantAmount:   12000,
		},
		{
			name: "weekly listed rate",
			input: pricing.Input{
				RentalType: pricing.Weekly,
				StartDate:  "2024-01-01",
				EndDate:    "2024-01-08",
				Prices:     pricing.Prices{PerDay: 1000, PerWeek: ptr(5000)},
			},
			wantDuration: 1,
			wantAmount:   5000,
		},
		{
			name: "daily end equals start",
			input: pricing.Input{
				RentalType: pricing.Daily,
				StartDate:  "2024-01-04",
				EndDate:    "2024-01-04",
				Prices:     pricing.Prices{PerDay: 1500},
			},
		},
		{
			name: "daily end before start",
			input: pricing.Input{
				RentalType: pricing.Daily,
				StartDate:  "2024-01-04",
				EndDate:    "2024-01-01",
				Prices:     pricing.Prices{PerDay: 1500},
			},
		},
		{
			name: "weekly end before start",
			input: pricing.Input{
				RentalType: pricing.Weekly,
				StartDate:  "2024-01-10",
				EndDate:    "2024-01-01",
				Prices:     pricing.Prices{PerDay: 1000},
			},
		},
		{
			name: "hourly end before start",
			input: pricing.Input{
				RentalType: pricing.Hourly,
				StartTime:  "11:00",
				EndTime:    "09:00",
				Prices:     pricing.Prices{PerDay: 800},
			},
		},
		{
			name: "hourly missing end time",
			input: pricing.Input{
				RentalType: pricing.Hourly,
				StartTime:  "09:00",
				Prices:     pricing.Prices{PerDay: 800},
			},
		},
		{
			name: "daily missing end date",
			input: pricing.Input{
				RentalType: pricing.Daily,
				StartDate:  "2024-01-01",
				Prices:     pricing.Prices{PerDay: 800},
			},
		},
		{
			name: "unparseable date",
			input: pricing.Input{
				RentalType: pricing.Daily,
				StartDate:  "01/01/2024",
				EndDate:    "2024-01-03",
				Prices:     pricing.Prices{PerDay: 800},
			},
		},
		{
			name: "unknown rental type",
			input: pricing.Input{
				RentalType: "MONTHLY",
				StartDate:  "2024-01-01",
				EndDate:    "2024-02-01",
				Prices:     pricing.Prices{PerDay: 800},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.Estimate(tt.input)

			assert.Equal(t, tt.wantDuration, quote.Duration)
			assert.InDelta(t, tt.wantAmount, quote.Amount, 1e-9)
			assert.GreaterOrEqual(t, quote.Amount, 0.0)
		})
	}
}

func TestEstimateIsIdempotent(t *testing.T) {
	input := pricing.Input{
		RentalType: pricing.Hourly,
		StartDate:  "2024-05-01",
		StartTime:  "07:10",
		EndTime:    "10:05",
		Prices:     pricing.Prices{PerHour: ptr(133.33), PerDay: 900},
	}

	first := pricing.Estimate(input)
	second := pricing.Estimate(input)

	assert.Equal(t, first, second)
}

func TestQuoteRounded(t *testing.T) {
	quote := pricing.Estimate(pricing.Input{
		RentalType: pricing.Hourly,
		StartTime:  "09:00",
		EndTime:    "12:00",
		Prices:     pricing.Prices{PerDay: 1001},
	})

	assert.InDelta(t, 375.375, quote.Amount, 1e-9)
	assert.Equal(t, int64(375), quote.Rounded())
	assert.Equal(t, "hours", quote.Unit)
}

func TestEffectiveRates(t *testing.T) {
	tests := []struct {
		name   string
		prices pricing.Prices
		want   pricing.Rates
	}{
		{
			name:   "derived",
			prices: pricing.Prices{PerDay: 800},
			want:   pricing.Rates{Hourly: 100, Daily: 800, Weekly: 4800},
		},
		{
			name:   "listed",
			prices: pricing.Prices{PerHour: ptr(120), PerDay: 800, PerWeek: ptr(4000)},
			want:   pricing.Rates{Hourly: 120, Daily: 800, Weekly: 4000},
		},
		{
			name:   "non positive listed rates are ignored",
			prices: pricing.Prices{PerHour: ptr(0), PerDay: 800, PerWeek: ptr(-1)},
			want:   pricing.Rates{Hourly: 100, Daily: 800, Weekly: 4800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.EffectiveRates(tt.prices))
		})
	}
}

func TestRentalType(t *testing.T) {
	assert.True(t, pricing.Daily.Valid())
	assert.False(t, pricing.RentalType("MONTHLY").Valid())
	assert.Equal(t, "weeks", pricing.Weekly.Unit())
}
