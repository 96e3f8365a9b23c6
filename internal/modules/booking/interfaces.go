package booking

import (
	"context"

	"healthportal/internal/domain"
)

// Repository persists created bookings. Save appends exactly one record;
// records are never mutated afterwards.
type Repository interface {
	Save(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// CatalogProvider resolves the test and location reference data the workflow
// validates selections against.
type CatalogProvider interface {
	TestByID(id string) (domain.LabTest, bool)
	LocationByID(id string) (domain.Location, bool)
}

// SlotProvider produces the appointment time slots for a booking session.
type SlotProvider interface {
	Slots() []domain.TimeSlot
}
