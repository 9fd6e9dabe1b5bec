package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	bookingerrors "aldosafaris/internal/bookings/errors"
	"aldosafaris/pkg/model"

	"github.com/jmoiron/sqlx"
)

type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	FindByID(ctx context.Context, id int64) (*model.Booking, error)
	FindByUser(ctx context.Context, userID int64) ([]*model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id int64) error
}

type postgresBookingRepository struct {
	db *sqlx.DB
}

func NewPostgresBookingRepository(db *sqlx.DB) BookingRepository {
	return &postgresBookingRepository{db: db}
}

func (r *postgresBookingRepository) Create(ctx context.Context, b *model.Booking) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO bookings (package_id, user_id, date_of_booking,
            travel_start_date, travel_end_date, total_cost,
            payment_status, booking_status, destination,
            accommodation, transportation, activities, booking_source)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
         RETURNING id`,
		b.PackageID, b.UserID, b.DateOfBooking,
		b.TravelStartDate, b.TravelEndDate, b.TotalCost,
		b.PaymentStatus, b.BookingStatus, b.Destination,
		b.Accommodation, b.Transportation, b.Activities, b.BookingSource,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *postgresBookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	var b model.Booking
	err := r.db.GetContext(ctx, &b, `SELECT * FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookingerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return &b, nil
}

func (r *postgresBookingRepository) FindByUser(ctx context.Context, userID int64) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT * FROM bookings WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user: %w", err)
	}
	return bookings, nil
}

func (r *postgresBookingRepository) Update(ctx context.Context, b *model.Booking) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings
         SET package_id = $1, user_id = $2, travel_start_date = $3,
             travel_end_date = $4, total_cost = $5, payment_status = $6,
             booking_status = $7, destination = $8, accommodation = $9,
             transportation = $10, activities = $11, booking_source = $12
         WHERE id = $13`,
		b.PackageID, b.UserID, b.TravelStartDate,
		b.TravelEndDate, b.TotalCost, b.PaymentStatus,
		b.BookingStatus, b.Destination, b.Accommodation,
		b.Transportation, b.Activities, b.BookingSource,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return bookingerrors.ErrNotFound
	}
	return nil
}

// Delete removes the booking; its payments follow through the foreign
// key cascade.
func (r *postgresBookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return bookingerrors.ErrNotFound
	}
	return nil
}
