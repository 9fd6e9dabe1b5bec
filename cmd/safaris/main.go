package main

import (
	"context"
	"time"

	bookinghandler "aldosafaris/internal/bookings/handler"
	bookingrepository "aldosafaris/internal/bookings/repository"
	bookingservice "aldosafaris/internal/bookings/service"
	bookingvalidator "aldosafaris/internal/bookings/validator"
	carhandler "aldosafaris/internal/cars/handler"
	carrepository "aldosafaris/internal/cars/repository"
	carservice "aldosafaris/internal/cars/service"
	healthhandler "aldosafaris/internal/health/handler"
	packagehandler "aldosafaris/internal/packages/handler"
	packagerepository "aldosafaris/internal/packages/repository"
	packageservice "aldosafaris/internal/packages/service"
	packagevalidator "aldosafaris/internal/packages/validator"
	paymenthandler "aldosafaris/internal/payments/handler"
	paymentrepository "aldosafaris/internal/payments/repository"
	paymentservice "aldosafaris/internal/payments/service"
	userhandler "aldosafaris/internal/users/handler"
	userrepository "aldosafaris/internal/users/repository"
	userservice "aldosafaris/internal/users/service"
	uservalidator "aldosafaris/internal/users/validator"

	"aldosafaris/internal/api"
	"aldosafaris/pkg/app"
	"aldosafaris/pkg/auth"
	"aldosafaris/pkg/config"
	"aldosafaris/pkg/db/postgres"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/upload"
)

func main() {
	cfg := config.Load("safaris")
	cfg.Log.Info("Starting safaris service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := postgres.Connect(ctx, cfg)
	cancel()
	if err != nil {
		cfg.Log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	defer db.Close()

	store, err := upload.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize upload store", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authenticator := middleware.NewAuthenticator(tokens)

	userRepo := userrepository.NewPostgresUserRepository(db)
	userService := userservice.NewUserService(userRepo, uservalidator.NewUserValidator(cfg.Log), tokens, cfg)

	bookingRepo := bookingrepository.NewPostgresBookingRepository(db)
	bookingService := bookingservice.NewBookingService(bookingRepo, bookingvalidator.NewBookingValidator(cfg.Log), cfg)

	paymentRepo := paymentrepository.NewPostgresPaymentRepository(db)
	paymentService := paymentservice.NewPaymentService(paymentRepo, cfg)

	packageRepo := packagerepository.NewPostgresTravelPackageRepository(db)
	packageService := packageservice.NewTravelPackageService(packageRepo, packagevalidator.NewTravelPackageValidator(cfg.Log), cfg)

	carRepo := carrepository.NewPostgresCarRepository(db)
	carService := carservice.NewCarService(carRepo, cfg)

	router := api.NewRouter(
		userhandler.NewUserHandler(userService, authenticator, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, authenticator, cfg.Log),
		paymenthandler.NewPaymentHandler(paymentService, authenticator, cfg.Log),
		packagehandler.NewTravelPackageHandler(packageService, authenticator, cfg.Log),
		carhandler.NewCarHandler(carService, store, authenticator, cfg.Log),
	)

	application := app.NewApplication()
	application.SetApp(cfg, healthhandler.NewHealthHandler(db, cfg.Log), router)
	application.Run()
}
