package service

import (
	"context"
	"errors"
	"time"

	carerrors "aldosafaris/internal/cars/errors"
	"aldosafaris/internal/cars/repository"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/sanitizer"
)

type CarService interface {
	CreateCar(ctx context.Context, cc *model.CarCreate) (*model.Car, error)
	GetCar(ctx context.Context, id int64) (*model.Car, error)
	ListCars(ctx context.Context) ([]*model.Car, error)
	UpdateCar(ctx context.Context, id int64, updates *model.CarUpdate) (*model.Car, error)
	CreateRental(ctx context.Context, callerID int64, rc *model.RentalCreate) (*model.Rental, error)
	ListRentals(ctx context.Context, callerID int64) ([]*model.Rental, error)
}

type carService struct {
	repo repository.CarRepository
	cfg  *config.Config
}

func NewCarService(repo repository.CarRepository, cfg *config.Config) CarService {
	return &carService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *carService) CreateCar(ctx context.Context, cc *model.CarCreate) (*model.Car, error) {
	cc.Make = sanitizer.TrimAndNormalize(cc.Make)
	cc.Model = sanitizer.TrimAndNormalize(cc.Model)

	if cc.Make == "" || cc.Model == "" || cc.Year == 0 || cc.PricePerDay == 0 {
		return nil, apperrors.Validation("Make, model, year, and price per day are required", nil)
	}

	car := &model.Car{
		Make:        cc.Make,
		Model:       cc.Model,
		Year:        cc.Year,
		Available:   true,
		ImageURL:    cc.ImageURL,
		PricePerDay: cc.PricePerDay,
	}
	if err := s.repo.CreateCar(ctx, car); err != nil {
		s.cfg.Log.Error("Failed to create car", "make", car.Make, "model", car.Model, "error", err)
		return nil, apperrors.Internal("Failed to create car", err)
	}

	s.cfg.Log.Info("Car created successfully",
		"id", car.ID,
		"make", car.Make,
		"model", car.Model,
	)
	return car, nil
}

func (s *carService) GetCar(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.repo.FindCarByID(ctx, id)
	if err != nil {
		if errors.Is(err, carerrors.ErrCarNotFound) {
			return nil, apperrors.NotFoundWithID("Car", id)
		}
		s.cfg.Log.Error("Failed to get car", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve car", err)
	}
	return car, nil
}

func (s *carService) ListCars(ctx context.Context) ([]*model.Car, error) {
	cars, err := s.repo.FindAllCars(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list cars", "error", err)
		return nil, apperrors.Internal("Failed to retrieve cars", err)
	}
	return cars, nil
}

func (s *carService) UpdateCar(ctx context.Context, id int64, updates *model.CarUpdate) (*model.Car, error) {
	existing, err := s.repo.FindCarByID(ctx, id)
	if err != nil {
		if errors.Is(err, carerrors.ErrCarNotFound) {
			return nil, apperrors.NotFoundWithID("Car", id)
		}
		return nil, apperrors.Internal("Failed to check car existence", err)
	}

	merged := *existing
	if updates.Make != nil {
		merged.Make = sanitizer.TrimAndNormalize(*updates.Make)
	}
	if updates.Model != nil {
		merged.Model = sanitizer.TrimAndNormalize(*updates.Model)
	}
	if updates.Year != nil {
		merged.Year = *updates.Year
	}
	if updates.PricePerDay != nil {
		merged.PricePerDay = *updates.PricePerDay
	}
	if updates.ImageURL != nil {
		merged.ImageURL = updates.ImageURL
	}

	if err := s.repo.UpdateCar(ctx, &merged); err != nil {
		if errors.Is(err, carerrors.ErrCarNotFound) {
			return nil, apperrors.NotFoundWithID("Car", id)
		}
		s.cfg.Log.Error("Failed to update car", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update car", err)
	}

	s.cfg.Log.Info("Car updated successfully", "id", id)
	return &merged, nil
}

// CreateRental books a car for the caller. The total cost is the whole
// number of days between the dates times the car's daily price, fixed
// at creation time; later price changes do not reprice the rental.
func (s *carService) CreateRental(ctx context.Context, callerID int64, rc *model.RentalCreate) (*model.Rental, error) {
	if rc.CarID == 0 || rc.StartDate == "" || rc.EndDate == "" {
		return nil, apperrors.Validation("Car ID, start date, and end date are required", nil)
	}

	start, err := time.Parse(model.TravelDateLayout, rc.StartDate)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	end, err := time.Parse(model.TravelDateLayout, rc.EndDate)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	if !start.Before(end) {
		return nil, apperrors.InvalidInput("End date must be after start date")
	}

	car, err := s.repo.FindCarByID(ctx, rc.CarID)
	if err != nil {
		if errors.Is(err, carerrors.ErrCarNotFound) {
			return nil, apperrors.NotFoundWithID("Car", rc.CarID)
		}
		return nil, apperrors.Internal("Failed to retrieve car", err)
	}

	daysRented := int64(end.Sub(start).Hours() / 24)
	rental := &model.Rental{
		CarID:     car.ID,
		StartDate: start,
		EndDate:   end,
		UserID:    callerID,
		TotalCost: float64(daysRented) * car.PricePerDay,
	}
	if err := s.repo.CreateRental(ctx, rental); err != nil {
		s.cfg.Log.Error("Failed to create rental", "car_id", rc.CarID, "user_id", callerID, "error", err)
		return nil, apperrors.Internal("Failed to create rental", err)
	}

	s.cfg.Log.Info("Rental created successfully",
		"id", rental.ID,
		"car_id", rental.CarID,
		"user_id", callerID,
		"total_cost", rental.TotalCost,
	)
	return rental, nil
}

func (s *carService) ListRentals(ctx context.Context, callerID int64) ([]*model.Rental, error) {
	rentals, err := s.repo.FindRentalsByUser(ctx, callerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list rentals", "user_id", callerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve rentals", err)
	}
	return rentals, nil
}
