package model

import "time"

// Account is an administrative login. Only staff accounts exist; beneficiary
// owners are not logins.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPair mirrors the token endpoint's response shape.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
