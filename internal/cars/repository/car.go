package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	carerrors "aldosafaris/internal/cars/errors"
	"aldosafaris/pkg/model"

	"github.com/jmoiron/sqlx"
)

type CarRepository interface {
	CreateCar(ctx context.Context, c *model.Car) error
	FindCarByID(ctx context.Context, id int64) (*model.Car, error)
	FindAllCars(ctx context.Context) ([]*model.Car, error)
	UpdateCar(ctx context.Context, c *model.Car) error
	CreateRental(ctx context.Context, rental *model.Rental) error
	FindRentalsByUser(ctx context.Context, userID int64) ([]*model.Rental, error)
}

type postgresCarRepository struct {
	db *sqlx.DB
}

func NewPostgresCarRepository(db *sqlx.DB) CarRepository {
	return &postgresCarRepository{db: db}
}

func (r *postgresCarRepository) CreateCar(ctx context.Context, c *model.Car) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cars (make, model, year, available, image_url, price_per_day)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id`,
		c.Make, c.Model, c.Year, c.Available, c.ImageURL, c.PricePerDay,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to insert car: %w", err)
	}
	return nil
}

func (r *postgresCarRepository) FindCarByID(ctx context.Context, id int64) (*model.Car, error) {
	var c model.Car
	err := r.db.GetContext(ctx, &c, `SELECT * FROM cars WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, carerrors.ErrCarNotFound
		}
		return nil, fmt.Errorf("failed to find car by id: %w", err)
	}
	return &c, nil
}

func (r *postgresCarRepository) FindAllCars(ctx context.Context) ([]*model.Car, error) {
	cars := []*model.Car{}
	err := r.db.SelectContext(ctx, &cars, `SELECT * FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (r *postgresCarRepository) UpdateCar(ctx context.Context, c *model.Car) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cars
         SET make = $1, model = $2, year = $3, available = $4,
             image_url = $5, price_per_day = $6
         WHERE id = $7`,
		c.Make, c.Model, c.Year, c.Available, c.ImageURL, c.PricePerDay, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return carerrors.ErrCarNotFound
	}
	return nil
}

func (r *postgresCarRepository) CreateRental(ctx context.Context, rental *model.Rental) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO rentals (car_id, start_date, end_date, user_id, total_cost)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id`,
		rental.CarID, rental.StartDate, rental.EndDate, rental.UserID, rental.TotalCost,
	).Scan(&rental.ID)
	if err != nil {
		return fmt.Errorf("failed to insert rental: %w", err)
	}
	return nil
}

func (r *postgresCarRepository) FindRentalsByUser(ctx context.Context, userID int64) ([]*model.Rental, error) {
	rentals := []*model.Rental{}
	err := r.db.SelectContext(ctx, &rentals,
		`SELECT * FROM rentals WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals for user: %w", err)
	}
	return rentals, nil
}
