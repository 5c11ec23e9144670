package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrOTPMismatch       = errors.New("otp mismatch")
	ErrOTPExpired        = errors.New("otp expired")
)
