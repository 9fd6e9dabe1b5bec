package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	paymenterrors "aldosafaris/internal/payments/errors"
	"aldosafaris/pkg/model"

	"github.com/jmoiron/sqlx"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	FindByID(ctx context.Context, id int64) (*model.Payment, error)
	FindByBooking(ctx context.Context, bookingID int64) ([]*model.Payment, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id int64) error
	BookingOwner(ctx context.Context, bookingID int64) (int64, error)
}

type postgresPaymentRepository struct {
	db *sqlx.DB
}

func NewPostgresPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &postgresPaymentRepository{db: db}
}

func (r *postgresPaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO payments (booking_id, payment_date, amount, payment_method, status)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id`,
		p.BookingID, p.PaymentDate, p.Amount, p.PaymentMethod, p.Status,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *postgresPaymentRepository) FindByID(ctx context.Context, id int64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.GetContext(ctx, &p, `SELECT * FROM payments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, paymenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by id: %w", err)
	}
	return &p, nil
}

func (r *postgresPaymentRepository) FindByBooking(ctx context.Context, bookingID int64) ([]*model.Payment, error) {
	payments := []*model.Payment{}
	err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM payments WHERE booking_id = $1 ORDER BY id`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for booking: %w", err)
	}
	return payments, nil
}

func (r *postgresPaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payments
         SET amount = $1, payment_method = $2, status = $3
         WHERE id = $4`,
		p.Amount, p.PaymentMethod, p.Status, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return paymenterrors.ErrNotFound
	}
	return nil
}

func (r *postgresPaymentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return paymenterrors.ErrNotFound
	}
	return nil
}

// BookingOwner returns the user id owning the given booking. Payment
// authorization is transitive through the booking.
func (r *postgresPaymentRepository) BookingOwner(ctx context.Context, bookingID int64) (int64, error) {
	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID,
		`SELECT user_id FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, paymenterrors.ErrBookingNotFound
		}
		return 0, fmt.Errorf("failed to find booking owner: %w", err)
	}
	return ownerID, nil
}
