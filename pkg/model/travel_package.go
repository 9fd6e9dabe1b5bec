package model

import "github.com/lib/pq"

type TravelPackage struct {
	ID           int64          `json:"id" db:"id"`
	PackageName  string         `json:"package_name" db:"package_name"`
	Description  string         `json:"description" db:"description"`
	Destinations pq.StringArray `json:"destinations" db:"destinations"`
	Activities   pq.StringArray `json:"activities" db:"activities"`
	Inclusions   string         `json:"inclusions" db:"inclusions"`
	Price        float64        `json:"price" db:"price"`
	Duration     int            `json:"duration" db:"duration"`
	Availability bool           `json:"availability" db:"availability"`
	ImageURL     *string        `json:"image_url" db:"image_url"`
}

type TravelPackageCreate struct {
	PackageName  string   `json:"package_name" validate:"required,max=100"`
	Description  string   `json:"description"`
	Destinations []string `json:"destinations"`
	Activities   []string `json:"activities"`
	Inclusions   string   `json:"inclusions"`
	Price        float64  `json:"price" validate:"required"`
	Duration     int      `json:"duration" validate:"required"`
	Availability *bool    `json:"availability"`
	ImageURL     *string  `json:"image_url"`
}

type TravelPackageUpdate struct {
	PackageName  *string   `json:"package_name,omitempty" validate:"omitempty,max=100"`
	Description  *string   `json:"description,omitempty"`
	Destinations *[]string `json:"destinations,omitempty"`
	Activities   *[]string `json:"activities,omitempty"`
	Inclusions   *string   `json:"inclusions,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	Duration     *int      `json:"duration,omitempty"`
	Availability *bool     `json:"availability,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
}
