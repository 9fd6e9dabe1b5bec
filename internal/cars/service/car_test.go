package service

import (
	"context"
	"testing"
	"time"

	carerrors "aldosafaris/internal/cars/errors"
	"aldosafaris/pkg/config"
	apperrors "aldosafaris/pkg/errors"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/model"
)

type mockCarRepository struct {
	createCarFunc         func(ctx context.Context, c *model.Car) error
	findCarByIDFunc       func(ctx context.Context, id int64) (*model.Car, error)
	findAllCarsFunc       func(ctx context.Context) ([]*model.Car, error)
	updateCarFunc         func(ctx context.Context, c *model.Car) error
	createRentalFunc      func(ctx context.Context, rental *model.Rental) error
	findRentalsByUserFunc func(ctx context.Context, userID int64) ([]*model.Rental, error)
}

func (m *mockCarRepository) CreateCar(ctx context.Context, c *model.Car) error {
	if m.createCarFunc != nil {
		return m.createCarFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *mockCarRepository) FindCarByID(ctx context.Context, id int64) (*model.Car, error) {
	if m.findCarByIDFunc != nil {
		return m.findCarByIDFunc(ctx, id)
	}
	return nil, carerrors.ErrCarNotFound
}

func (m *mockCarRepository) FindAllCars(ctx context.Context) ([]*model.Car, error) {
	if m.findAllCarsFunc != nil {
		return m.findAllCarsFunc(ctx)
	}
	return []*model.Car{}, nil
}

func (m *mockCarRepository) UpdateCar(ctx context.Context, c *model.Car) error {
	if m.updateCarFunc != nil {
		return m.updateCarFunc(ctx, c)
	}
	return nil
}

func (m *mockCarRepository) CreateRental(ctx context.Context, rental *model.Rental) error {
	if m.createRentalFunc != nil {
		return m.createRentalFunc(ctx, rental)
	}
	rental.ID = 1
	return nil
}

func (m *mockCarRepository) FindRentalsByUser(ctx context.Context, userID int64) ([]*model.Rental, error) {
	if m.findRentalsByUserFunc != nil {
		return m.findRentalsByUserFunc(ctx, userID)
	}
	return []*model.Rental{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func rav4(id int64) *model.Car {
	return &model.Car{
		ID:          id,
		Make:        "Toyota",
		Model:       "RAV4",
		Year:        2022,
		Available:   true,
		PricePerDay: 50,
	}
}

func TestCreateCarDefaultsToAvailable(t *testing.T) {
	var stored *model.Car
	repo := &mockCarRepository{
		createCarFunc: func(ctx context.Context, c *model.Car) error {
			c.ID = 3
			stored = c
			return nil
		},
	}
	svc := NewCarService(repo, testConfig())

	car, err := svc.CreateCar(context.Background(), &model.CarCreate{
		Make:        " Toyota ",
		Model:       "RAV4",
		Year:        2022,
		PricePerDay: 50,
	})
	if err != nil {
		t.Fatalf("CreateCar() error = %v", err)
	}
	if !stored.Available {
		t.Error("new car should be available")
	}
	if stored.Make != "Toyota" {
		t.Errorf("make = %q", stored.Make)
	}
	if car.ID != 3 {
		t.Errorf("car.ID = %d, want 3", car.ID)
	}
}

func TestCreateCarMissingFieldsRejected(t *testing.T) {
	svc := NewCarService(&mockCarRepository{}, testConfig())

	_, err := svc.CreateCar(context.Background(), &model.CarCreate{Make: "Toyota"})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestCreateRentalComputesWholeDayCost(t *testing.T) {
	var stored *model.Rental
	repo := &mockCarRepository{
		findCarByIDFunc: func(ctx context.Context, id int64) (*model.Car, error) {
			return rav4(id), nil
		},
		createRentalFunc: func(ctx context.Context, rental *model.Rental) error {
			rental.ID = 11
			stored = rental
			return nil
		},
	}
	svc := NewCarService(repo, testConfig())

	rental, err := svc.CreateRental(context.Background(), 1, &model.RentalCreate{
		CarID:     2,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	})
	if err != nil {
		t.Fatalf("CreateRental() error = %v", err)
	}

	// 3 whole days at 50 per day.
	if stored.TotalCost != 150 {
		t.Errorf("total_cost = %v, want 150", stored.TotalCost)
	}
	if stored.UserID != 1 {
		t.Errorf("user_id = %d, want the caller's id 1", stored.UserID)
	}
	if stored.CarID != 2 {
		t.Errorf("car_id = %d, want 2", stored.CarID)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !stored.StartDate.Equal(want) {
		t.Errorf("start_date = %v, want %v", stored.StartDate, want)
	}
	if rental.ID != 11 {
		t.Errorf("rental.ID = %d, want 11", rental.ID)
	}
}

func TestCreateRentalRejectsReversedAndEqualDates(t *testing.T) {
	repo := &mockCarRepository{
		findCarByIDFunc: func(ctx context.Context, id int64) (*model.Car, error) {
			return rav4(id), nil
		},
	}
	svc := NewCarService(repo, testConfig())

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "2026-03-04", "2026-03-01"},
		{"equal dates", "2026-03-01", "2026-03-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRental(context.Background(), 1, &model.RentalCreate{
				CarID:     2,
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			appErr := apperrors.AsAppError(err)
			if appErr.StatusCode() != 400 {
				t.Errorf("status = %d, want 400", appErr.StatusCode())
			}
			if appErr.Message != "End date must be after start date" {
				t.Errorf("message = %q", appErr.Message)
			}
		})
	}
}

func TestCreateRentalBadDateFormat(t *testing.T) {
	svc := NewCarService(&mockCarRepository{}, testConfig())

	_, err := svc.CreateRental(context.Background(), 1, &model.RentalCreate{
		CarID:     2,
		StartDate: "01-03-2026",
		EndDate:   "2026-03-04",
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Message != "Invalid date format. Use YYYY-MM-DD" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestCreateRentalMissingCarNotFound(t *testing.T) {
	svc := NewCarService(&mockCarRepository{}, testConfig())

	_, err := svc.CreateRental(context.Background(), 1, &model.RentalCreate{
		CarID:     77,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-04",
	})
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("missing car should be 404, got %v", err)
	}
}

func TestRentalCostFixedAtCreation(t *testing.T) {
	price := 50.0
	repo := &mockCarRepository{
		findCarByIDFunc: func(ctx context.Context, id int64) (*model.Car, error) {
			c := rav4(id)
			c.PricePerDay = price
			return c, nil
		},
	}
	svc := NewCarService(repo, testConfig())

	rental, err := svc.CreateRental(context.Background(), 1, &model.RentalCreate{
		CarID:     2,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-03",
	})
	if err != nil {
		t.Fatalf("CreateRental() error = %v", err)
	}

	// Raising the price afterwards must not touch the stored cost.
	price = 500
	if rental.TotalCost != 100 {
		t.Errorf("total_cost = %v, want 100", rental.TotalCost)
	}
}

func TestUpdateCarPartialLeavesOtherFields(t *testing.T) {
	var stored *model.Car
	repo := &mockCarRepository{
		findCarByIDFunc: func(ctx context.Context, id int64) (*model.Car, error) {
			return rav4(id), nil
		},
		updateCarFunc: func(ctx context.Context, c *model.Car) error {
			stored = c
			return nil
		},
	}
	svc := NewCarService(repo, testConfig())

	price := 65.0
	car, err := svc.UpdateCar(context.Background(), 2, &model.CarUpdate{PricePerDay: &price})
	if err != nil {
		t.Fatalf("UpdateCar() error = %v", err)
	}
	if stored.PricePerDay != 65 {
		t.Errorf("price_per_day = %v", stored.PricePerDay)
	}
	if stored.Make != "Toyota" || stored.Model != "RAV4" || stored.Year != 2022 {
		t.Error("untouched fields were modified")
	}
	if car.PricePerDay != 65 {
		t.Errorf("returned price_per_day = %v", car.PricePerDay)
	}
}
