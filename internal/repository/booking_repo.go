package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"healthportal/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	UserID     string    `gorm:"column:user_id;index"`
	TestID     string    `gorm:"column:test_id"`
	TestName   string    `gorm:"column:test_name"`
	Date       string    `gorm:"column:date"`
	Time       string    `gorm:"column:time"`
	LocationID string    `gorm:"column:location_id"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		TestID:     m.TestID,
		TestName:   m.TestName,
		Date:       m.Date,
		Time:       m.Time,
		LocationID: m.LocationID,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		UserID:     b.UserID,
		TestID:     b.TestID,
		TestName:   b.TestName,
		Date:       b.Date,
		Time:       b.Time,
		LocationID: b.LocationID,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

// Save appends one booking record. Records are never updated afterwards.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

// Migrate ensures the bookings table exists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&bookingModel{})
}
