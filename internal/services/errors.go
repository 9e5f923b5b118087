// Package services defines the business logic for subscriber registration,
// CDR lifecycle, and billing. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

// Validation errors (client input, 400-equivalent).
var (
	// ErrSameParty is returned when a call record names the same MSISDN as
	// both caller and receiver.
	ErrSameParty = errors.New("caller and receiver must be different")

	// ErrInvalidMSISDN is returned when an MSISDN is not a digit string of
	// 11 to 15 characters.
	ErrInvalidMSISDN = errors.New("msisdn must be between 11 and 15 digits")

	// ErrInvalidCallType is returned when a call type is not one of
	// local, long-distance, international (case-insensitive).
	ErrInvalidCallType = errors.New("call type must be one of: local, long-distance, international")

	// ErrNegativeDuration is returned when a call record carries a negative
	// duration.
	ErrNegativeDuration = errors.New("duration must not be negative")

	// ErrEmptyName is returned when a user registration carries an empty name.
	ErrEmptyName = errors.New("name must not be empty")
)

// Store-dependent errors.
var (
	// ErrDuplicateMSISDN indicates that the MSISDN is already registered.
	ErrDuplicateMSISDN = errors.New("msisdn already registered")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecordNotFound indicates that the requested call record does not
	// exist, including the case where it vanished between lookup and update.
	ErrRecordNotFound = errors.New("call record not found")
)
