package model

import (
	"time"

	"github.com/lib/pq"
)

// TravelDateLayout is the calendar format bookings and rentals accept
// on the wire.
const TravelDateLayout = "2006-01-02"

type Booking struct {
	ID              int64          `json:"id" db:"id"`
	PackageID       *int64         `json:"package_id" db:"package_id"`
	UserID          int64          `json:"user_id" db:"user_id"`
	DateOfBooking   time.Time      `json:"date_of_booking" db:"date_of_booking"`
	TravelStartDate time.Time      `json:"travel_start_date" db:"travel_start_date"`
	TravelEndDate   time.Time      `json:"travel_end_date" db:"travel_end_date"`
	TotalCost       float64        `json:"total_cost" db:"total_cost"`
	PaymentStatus   string         `json:"payment_status" db:"payment_status"`
	BookingStatus   string         `json:"booking_status" db:"booking_status"`
	Destination     string         `json:"destination" db:"destination"`
	Accommodation   string         `json:"accommodation" db:"accommodation"`
	Transportation  string         `json:"transportation" db:"transportation"`
	Activities      pq.StringArray `json:"activities" db:"activities"`
	BookingSource   string         `json:"booking_source" db:"booking_source"`
}

// BookingCreate carries the creation request. UserID must be present
// on the wire but the authenticated caller always becomes the owner.
type BookingCreate struct {
	PackageID       int64    `json:"package_id" validate:"required"`
	UserID          int64    `json:"user_id" validate:"required"`
	TravelStartDate string   `json:"travel_start_date" validate:"required"`
	TravelEndDate   string   `json:"travel_end_date" validate:"required"`
	TotalCost       float64  `json:"total_cost" validate:"required"`
	PaymentStatus   string   `json:"payment_status"`
	BookingStatus   string   `json:"booking_status"`
	Destination     string   `json:"destination" validate:"required"`
	Accommodation   string   `json:"accommodation"`
	Transportation  string   `json:"transportation"`
	Activities      []string `json:"activities"`
	BookingSource   string   `json:"booking_source"`
}

// BookingUpdate applies only the fields present in the request body;
// nil means "keep the stored value".
type BookingUpdate struct {
	PackageID       *int64    `json:"package_id,omitempty"`
	TravelStartDate *string   `json:"travel_start_date,omitempty"`
	TravelEndDate   *string   `json:"travel_end_date,omitempty"`
	TotalCost       *float64  `json:"total_cost,omitempty"`
	PaymentStatus   *string   `json:"payment_status,omitempty"`
	BookingStatus   *string   `json:"booking_status,omitempty"`
	Destination     *string   `json:"destination,omitempty"`
	Accommodation   *string   `json:"accommodation,omitempty"`
	Transportation  *string   `json:"transportation,omitempty"`
	Activities      *[]string `json:"activities,omitempty"`
	BookingSource   *string   `json:"booking_source,omitempty"`
}
