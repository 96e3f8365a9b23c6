package domain

import "time"

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
)

// Booking is created exactly once at submission time and never mutated
// afterwards. TestName is a snapshot of the test's name at booking time.
type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	TestID     string        `json:"test_id"`
	TestName   string        `json:"test_name"`
	Date       string        `json:"date"` // YYYY-MM-DD
	Time       string        `json:"time"` // slot label, e.g. "8:00 AM"
	LocationID string        `json:"location_id"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
