package model

import (
	"time"

	"github.com/muhammadheryan/tamirse/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           string            `db:"id" json:"id"`
	Name         string            `db:"name" json:"name"`
	Email        string            `db:"email" json:"email"`
	PasswordHash string            `db:"password_hash" json:"-"`
	Type         constant.UserType `db:"type" json:"type"`
	IsActive     bool              `db:"is_active" json:"isActive"`
	Phone        *string           `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updatedAt"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
}

// AuthUser is the caller identity attached to the request context
type AuthUser struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Type  constant.UserType `json:"type"`
}

func (u *AuthUser) IsBusiness() bool {
	return u != nil && u.Type == constant.UserTypeBusiness
}

func (u *AuthUser) IsCustomer() bool {
	return u != nil && u.Type == constant.UserTypeCustomer
}

// UserProfile is a user together with the businesses it owns
type UserProfile struct {
	UserEntity
	Business []BusinessEntity `json:"business"`
}

// SignupRequest for customer registration
type SignupRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=20"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=20"`
	Phone    *string `json:"phone"`
}

// BusinessDetails carries the shop profile submitted at business signup
type BusinessDetails struct {
	BusinessName    string `json:"businessName" validate:"required"`
	BusinessAddress string `json:"businessAddress" validate:"required"`
	BusinessPhone   string `json:"businessPhone" validate:"required"`
	Services        string `json:"services" validate:"required"`
	WorkingHours    string `json:"workingHours" validate:"required"`
	Description     string `json:"description"`
}

// BusinessSignupRequest for business registration, pending manual approval
type BusinessSignupRequest struct {
	SignupRequest
	BusinessDetails *BusinessDetails `json:"businessDetails" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is the access/refresh pair issued at login and refresh
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User   *UserProfile
	Tokens TokenPair
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    *UserProfile `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=20"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type UpdateBusinessProfileRequest struct {
	BusinessName          *string `json:"businessName"`
	BusinessAddress       *string `json:"businessAddress"`
	BusinessPhone         *string `json:"businessPhone"`
	Services              *string `json:"services"`
	WorkingHours          *string `json:"workingHours"`
	Description           *string `json:"description"`
	EstimatedDeliveryTime *string `json:"estimatedDeliveryTime"`
}
