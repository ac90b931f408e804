// Package timezone keeps every booking date and time in one application timezone.
//
// Booking requests carry a calendar date ("2006-01-02") and, for hourly
// rentals, a wall-clock time ("15:04"). Both are interpreted in the zone set
// by APP_TIMEZONE, which defaults to UTC when empty or unknown:
//
//	start, err := timezone.Combine("2025-06-01", "09:30")
//	today := timezone.Today()
//	label := timezone.Format(start, "02 Jan 2006")
//
// Use standard IANA names such as "Asia/Kolkata" or "UTC".
package timezone
