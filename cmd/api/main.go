package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthportal/internal/config"
	"healthportal/internal/database"
	"healthportal/internal/middleware"
	"healthportal/internal/modules/booking"
	"healthportal/internal/modules/catalog"
	"healthportal/internal/modules/dashboard"
	"healthportal/internal/modules/reports"
	jwtsvc "healthportal/internal/pkg/jwt"
	"healthportal/internal/pkg/logger"
	"healthportal/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("config", zap.Error(err))
	}

	logger.Init(cfg.Env)
	log := logger.Get()
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connect", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("database migrate", zap.Error(err))
	}

	bookingRepo := repository.NewBookingRepository(db)
	catalogProvider := catalog.NewStaticProvider()
	reportProvider := reports.NewStaticProvider()
	slotProvider := booking.NewFixedSlotProvider()

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	catalogService := catalog.NewService(catalogProvider)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogProvider, slotProvider, cfg.SubmitDelay, log)
	bookingHandler := booking.NewHandler(bookingService)

	reportService := reports.NewService(reportProvider)
	reportHandler := reports.NewHandler(reportService)

	dashboardService := dashboard.NewService(reportProvider, bookingRepo, log)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterRoutes(v1)

		// protected (booking, reports, dashboard)
		protected := v1.Group("/")
		protected.Use(middleware.Identity(j))
		{
			bookingHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	log.Info("listening", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
