package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessCheckUsername = "success check username availability"

	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedCheckUsername = "failed to check username availability"

	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailUnresolvable  = errors.New("no email could be resolved for profile")
	ErrFullNameRequired   = errors.New("full name is required")
	ErrUsernameTaken      = errors.New("username already taken")
)

type (
	UpdateProfileRequest struct {
		FullName string `json:"full_name" validate:"required"`
		Username string `json:"username" validate:"omitempty,min=3,max=30"`
		Bio      string `json:"bio" validate:"omitempty,max=500"`
	}

	ProfileResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username,omitempty"`
		FullName  string    `json:"full_name"`
		Email     string    `json:"email"`
		Bio       string    `json:"bio,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	UsernameAvailabilityResponse struct {
		Username  string `json:"username"`
		Available bool   `json:"available"`
	}
)
