package models

import "time"

type Customer struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Password         string     `json:"-"`
	Phone            string     `json:"phone"`
	Birth            *time.Time `json:"birth,omitempty"`
	Verified         bool       `json:"verified"`
	VerificationCode string     `json:"-"`
	VerifyExpiredAt  *time.Time `json:"-"`
	Balance          int64      `json:"balance"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Seller struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Password         string     `json:"-"`
	Phone            string     `json:"phone"`
	Verified         bool       `json:"verified"`
	VerificationCode string     `json:"-"`
	VerifyExpiredAt  *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SignUpForm struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Birth    string `json:"birth"`
}
