package model

import "time"

type Car struct {
	ID          int64   `json:"id" db:"id"`
	Make        string  `json:"make" db:"make"`
	Model       string  `json:"model" db:"model"`
	Year        int     `json:"year" db:"year"`
	Available   bool    `json:"available" db:"available"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	PricePerDay float64 `json:"price_per_day" db:"price_per_day"`
}

// CarCreate is decoded from multipart form fields; the optional image
// part is handled separately by the upload store.
type CarCreate struct {
	Make        string
	Model       string
	Year        int
	PricePerDay float64
	ImageURL    *string
}

type CarUpdate struct {
	Make        *string
	Model       *string
	Year        *int
	PricePerDay *float64
	ImageURL    *string
}

type Rental struct {
	ID        int64     `json:"id" db:"id"`
	CarID     int64     `json:"car_id" db:"car_id"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TotalCost float64   `json:"total_cost" db:"total_cost"`
}

type RentalCreate struct {
	CarID     int64
	StartDate string
	EndDate   string
}
