// Package services – validation rules.
//
// Pure predicates over candidate user and call-record input. Nothing here
// touches the store; the MSISDN uniqueness check is store-dependent and lives
// in UserService.Register instead.
package services

import (
	"regexp"
	"strings"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

// msisdnRE accepts digit strings of 11 to 15 characters (E.164-style, e.g.
// 962790123456: country code, network code, subscriber number).
var msisdnRE = regexp.MustCompile(`^\d{11,15}$`)

// ValidMSISDN reports whether s is an 11–15 digit string.
func ValidMSISDN(s string) bool { return msisdnRE.MatchString(s) }

// ValidateCallRecord checks a candidate call record against the ingestion
// rules. The call type is checked case-insensitively; callers persist the
// normalized form (domain.NormalizeCallType) after validation succeeds.
//
// Returned sentinels, in check order:
//   - ErrSameParty when caller and receiver MSISDNs are identical
//   - ErrInvalidMSISDN when either MSISDN fails the 11–15 digit rule
//   - ErrInvalidCallType when the normalized call type is outside the allowed set
//   - ErrNegativeDuration when the duration is negative
func ValidateCallRecord(caller, receiver, callType string, durationSeconds int) error {
	if caller == receiver {
		return ErrSameParty
	}
	if !ValidMSISDN(caller) || !ValidMSISDN(receiver) {
		return ErrInvalidMSISDN
	}
	if !domain.IsValidCallType(domain.NormalizeCallType(callType)) {
		return ErrInvalidCallType
	}
	if durationSeconds < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// ValidateUser checks a candidate registration. Uniqueness of the MSISDN is
// not checked here; it requires the store and is performed separately before
// insertion.
//
// Returned sentinels, in check order:
//   - ErrInvalidMSISDN when the MSISDN fails the 11–15 digit rule
//   - ErrEmptyName when the name is empty or whitespace-only
func ValidateUser(name, msisdn string) error {
	if !ValidMSISDN(msisdn) {
		return ErrInvalidMSISDN
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
