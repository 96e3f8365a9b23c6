package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthportal/internal/config"
	"healthportal/internal/database"
	"healthportal/internal/domain"
	"healthportal/internal/modules/catalog"
	jwtsvc "healthportal/internal/pkg/jwt"
	"healthportal/internal/pkg/logger"
	"healthportal/internal/repository"
)

// Seeds the local database with demo bookings for a demo patient and prints
// a session token for that patient.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("config", zap.Error(err))
	}

	logger.Init(cfg.Env)
	log := logger.Get()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("database migrate", zap.Error(err))
	}

	log.Info("cleaning old data")
	db.Exec("DELETE FROM bookings")

	gofakeit.Seed(time.Now().UnixNano())

	patient := domain.Patient{
		ID:    "patient-1",
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Phone: gofakeit.Phone(),
	}

	repo := repository.NewBookingRepository(db)
	provider := catalog.NewStaticProvider()
	tests := provider.Tests()
	locations := provider.Locations()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		test := tests[gofakeit.Number(0, len(tests)-1)]
		loc := locations[gofakeit.Number(0, len(locations)-1)]
		b := domain.Booking{
			ID:         uuid.NewString(),
			UserID:     patient.ID,
			TestID:     test.ID,
			TestName:   test.Name,
			Date:       time.Now().AddDate(0, 0, gofakeit.Number(1, 14)).Format("2006-01-02"),
			Time:       "9:00 AM",
			LocationID: loc.ID,
			Status:     domain.BookingScheduled,
			CreatedAt:  time.Now(),
		}
		if err := repo.Save(ctx, &b); err != nil {
			log.Fatal("seed booking", zap.Error(err))
		}
		log.Info("seeded booking", zap.String("id", b.ID), zap.String("test", b.TestName))
	}

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	token, err := j.GenerateToken(patient)
	if err != nil {
		log.Fatal("token", zap.Error(err))
	}

	fmt.Printf("demo patient: %s <%s> %s\n", patient.Name, patient.Email, patient.Phone)
	fmt.Printf("demo token:\n%s\n", token)
}
