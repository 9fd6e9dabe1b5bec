package model

import "time"

type User struct {
	ID           int64     `json:"id" db:"id"`
	UserName     string    `json:"user_name" db:"user_name"`
	Email        string    `json:"email" db:"email"`
	Contact      string    `json:"contact" db:"contact"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type UserRegistration struct {
	UserName string `json:"user_name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Contact  string `json:"contact" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdate struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=2,max=80"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Contact  *string `json:"contact,omitempty" validate:"omitempty,max=20"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

// TokenPair is the login response. Refresh responses reuse it with the
// refresh token left empty.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
