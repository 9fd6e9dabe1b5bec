package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The relational graph: users own bookings and rentals, bookings own
// payments. Deleting a user cascades to everything they own; deleting
// a booking cascades to its payments; deleting a package detaches its
// bookings instead of destroying them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        user_name TEXT NOT NULL UNIQUE,
        email TEXT NOT NULL UNIQUE,
        contact TEXT NOT NULL UNIQUE,
        password_hash TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS travel_packages (
        id BIGSERIAL PRIMARY KEY,
        package_name TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        destinations TEXT[] NOT NULL DEFAULT '{}',
        activities TEXT[] NOT NULL DEFAULT '{}',
        inclusions TEXT NOT NULL DEFAULT '',
        price DOUBLE PRECISION NOT NULL,
        duration INTEGER NOT NULL,
        availability BOOLEAN NOT NULL DEFAULT TRUE,
        image_url TEXT
    )`,
	`CREATE TABLE IF NOT EXISTS bookings (
        id BIGSERIAL PRIMARY KEY,
        package_id BIGINT REFERENCES travel_packages(id) ON DELETE SET NULL,
        user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        date_of_booking TIMESTAMPTZ NOT NULL,
        travel_start_date DATE NOT NULL,
        travel_end_date DATE NOT NULL,
        total_cost DOUBLE PRECISION NOT NULL,
        payment_status TEXT NOT NULL DEFAULT '',
        booking_status TEXT NOT NULL DEFAULT '',
        destination TEXT NOT NULL,
        accommodation TEXT NOT NULL DEFAULT '',
        transportation TEXT NOT NULL DEFAULT '',
        activities TEXT[] NOT NULL DEFAULT '{}',
        booking_source TEXT NOT NULL DEFAULT ''
    )`,
	`CREATE TABLE IF NOT EXISTS payments (
        id BIGSERIAL PRIMARY KEY,
        booking_id BIGINT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
        payment_date TIMESTAMPTZ NOT NULL,
        amount DOUBLE PRECISION NOT NULL,
        payment_method TEXT NOT NULL,
        status TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS cars (
        id BIGSERIAL PRIMARY KEY,
        make TEXT NOT NULL,
        model TEXT NOT NULL,
        year INTEGER NOT NULL,
        available BOOLEAN NOT NULL DEFAULT TRUE,
        image_url TEXT,
        price_per_day DOUBLE PRECISION NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS rentals (
        id BIGSERIAL PRIMARY KEY,
        car_id BIGINT NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
        start_date TIMESTAMPTZ NOT NULL,
        end_date TIMESTAMPTZ NOT NULL,
        user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        total_cost DOUBLE PRECISION NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS notifications (
        id BIGSERIAL PRIMARY KEY,
        recipient_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        message TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
        status TEXT NOT NULL DEFAULT 'unread'
    )`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_package_id ON bookings(package_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_car_id ON rentals(car_id)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_user_id ON rentals(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_travel_packages_availability ON travel_packages(availability)`,
}

// ApplySchema runs the DDL in one transaction so an interrupted start
// never leaves a half-created schema behind.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	return InTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, query := range schema {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("error executing schema statement: %w", err)
			}
		}
		return nil
	})
}
