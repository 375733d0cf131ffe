package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessDeleteUser     = "user removed successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessSubscribe      = "subscription checkout created"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedSubscribe      = "failed to create subscription checkout"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPlan        = errors.New("invalid subscription plan")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Password       string `json:"password" validate:"omitempty,min=6"`
		OpenAIKey      string `json:"openai_key" validate:"omitempty"`
		SpoonacularKey string `json:"spoonacular_key" validate:"omitempty"`
	}

	AdminUpdateUserRequest struct {
		Name   string `json:"name" validate:"omitempty"`
		Role   string `json:"role" validate:"omitempty,oneof=admin manager user"`
		Plan   string `json:"plan" validate:"omitempty,oneof=Free Pro Premium"`
		Status string `json:"status" validate:"omitempty,oneof=Active Suspended"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=6"`
	}

	SubscribeRequest struct {
		Plan  string `json:"plan" validate:"required,oneof=Pro Premium"`
		Email string `json:"email" validate:"required,email"`
	}

	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		RedirectURL string `json:"redirect_url"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Plan      string    `json:"plan"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
