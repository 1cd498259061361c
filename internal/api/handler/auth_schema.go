package handler

import "github.com/palmbay-resort/portal-api/internal/core/domain"

// --- Request / Response types ---

type guestRegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"     validate:"required"`
}

type guestLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type staffRegisterRequest struct {
	Username   string `json:"username"   validate:"required"`
	Password   string `json:"password"   validate:"required,min=6"`
	FullName   string `json:"full_name"  validate:"required"`
	Phone      string `json:"phone"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role"       validate:"required"`
}

type adminRegisterRequest struct {
	Username string `json:"username"  validate:"required"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
}

type staffLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse carries the sanitized identity. The bearer token travels only
// in the Set-Cookie header, never in the body.
type authResponse struct {
	User *domain.Identity `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
