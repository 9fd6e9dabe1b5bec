package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	packageerrors "aldosafaris/internal/packages/errors"
	"aldosafaris/pkg/model"

	"github.com/jmoiron/sqlx"
)

type TravelPackageRepository interface {
	Create(ctx context.Context, tp *model.TravelPackage) error
	FindByID(ctx context.Context, id int64) (*model.TravelPackage, error)
	FindAvailable(ctx context.Context) ([]*model.TravelPackage, error)
	Update(ctx context.Context, tp *model.TravelPackage) error
	Delete(ctx context.Context, id int64) error
}

type postgresTravelPackageRepository struct {
	db *sqlx.DB
}

func NewPostgresTravelPackageRepository(db *sqlx.DB) TravelPackageRepository {
	return &postgresTravelPackageRepository{db: db}
}

func (r *postgresTravelPackageRepository) Create(ctx context.Context, tp *model.TravelPackage) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO travel_packages (package_name, description, destinations,
            activities, inclusions, price, duration, availability, image_url)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id`,
		tp.PackageName, tp.Description, tp.Destinations,
		tp.Activities, tp.Inclusions, tp.Price, tp.Duration,
		tp.Availability, tp.ImageURL,
	).Scan(&tp.ID)
	if err != nil {
		return fmt.Errorf("failed to insert travel package: %w", err)
	}
	return nil
}

func (r *postgresTravelPackageRepository) FindByID(ctx context.Context, id int64) (*model.TravelPackage, error) {
	var tp model.TravelPackage
	err := r.db.GetContext(ctx, &tp, `SELECT * FROM travel_packages WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, packageerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find travel package by id: %w", err)
	}
	return &tp, nil
}

// FindAvailable returns only packages currently open for booking. The
// public catalog never shows withdrawn packages.
func (r *postgresTravelPackageRepository) FindAvailable(ctx context.Context) ([]*model.TravelPackage, error) {
	packages := []*model.TravelPackage{}
	err := r.db.SelectContext(ctx, &packages,
		`SELECT * FROM travel_packages WHERE availability = TRUE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list available travel packages: %w", err)
	}
	return packages, nil
}

func (r *postgresTravelPackageRepository) Update(ctx context.Context, tp *model.TravelPackage) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE travel_packages
         SET package_name = $1, description = $2, destinations = $3,
             activities = $4, inclusions = $5, price = $6,
             duration = $7, availability = $8, image_url = $9
         WHERE id = $10`,
		tp.PackageName, tp.Description, tp.Destinations,
		tp.Activities, tp.Inclusions, tp.Price, tp.Duration,
		tp.Availability, tp.ImageURL, tp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update travel package: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return packageerrors.ErrNotFound
	}
	return nil
}

// Delete removes the package. Existing bookings keep their rows with a
// detached package reference.
func (r *postgresTravelPackageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM travel_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete travel package: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return packageerrors.ErrNotFound
	}
	return nil
}
