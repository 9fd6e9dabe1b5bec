package model

import "time"

type Payment struct {
	ID            int64     `json:"id" db:"id"`
	BookingID     int64     `json:"booking_id" db:"booking_id"`
	PaymentDate   time.Time `json:"payment_date" db:"payment_date"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	Status        string    `json:"status" db:"status"`
}

type PaymentCreate struct {
	BookingID     int64   `json:"booking_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	Status        string  `json:"status" validate:"required,max=20"`
}

type PaymentUpdate struct {
	Amount        *float64 `json:"amount,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,max=20"`
}
