// Package server provides the HTTP REST API for the CV optimizer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidResetToken indicates a password-reset token is missing, expired or forged
type ErrInvalidResetToken struct{}

func (e *ErrInvalidResetToken) Error() string {
	return "invalid or expired reset token"
}

// ErrProRequired indicates the endpoint needs a Pro subscription
type ErrProRequired struct{}

func (e *ErrProRequired) Error() string {
	return "this feature requires a Pro subscription"
}

// ErrEmptyDocument indicates an uploaded or submitted document had no usable text
type ErrEmptyDocument struct {
	What string // "cv" or "job description"
}

func (e *ErrEmptyDocument) Error() string {
	return fmt.Sprintf("%s contains no usable text", e.What)
}

// ErrResumeNotFound indicates the referenced resume does not exist or belongs to another user
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch, *ErrInvalidResetToken:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrEmptyDocument:
		return http.StatusBadRequest
	case *ErrProRequired:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
