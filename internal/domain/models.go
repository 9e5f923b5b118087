// Package domain defines the persistence models for subscribers and call
// data records (CDRs). These types are mapped with GORM and form the core
// data layer of the CDR billing application.
package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical call types. Input is case-insensitive; records always store the
// lowercase canonical form.
const (
	CallTypeLocal         = "local"
	CallTypeLongDistance  = "long-distance"
	CallTypeInternational = "international"
)

// lowerCaser folds call-type input to its canonical lowercase form in a
// locale-independent way.
var lowerCaser = cases.Lower(language.Und)

// NormalizeCallType returns the lowercase canonical form of a call type.
// It does not validate membership in the allowed set; see services.ValidateCallRecord.
func NormalizeCallType(callType string) string {
	return lowerCaser.String(callType)
}

// IsValidCallType reports whether the (already normalized) call type is one
// of the canonical values.
func IsValidCallType(callType string) bool {
	switch callType {
	case CallTypeLocal, CallTypeLongDistance, CallTypeInternational:
		return true
	}
	return false
}

// User represents a registered subscriber identified by an MSISDN.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), store-assigned, never echoed on
//     registration responses.
//   - Name: human-readable subscriber name (non-empty).
//   - MSISDN: digit string of 11–15 digits, unique across all users. The
//     unique index is the store-side backstop for the service-level
//     duplicate check.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID        string    `json:"id"     gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"   gorm:"type:varchar(255);not null"`
	MSISDN    string    `json:"msisdn" gorm:"type:varchar(15);not null;uniqueIndex:ux_users_msisdn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// CallRecord represents one logged call event (CDR).
//
// Fields:
//   - ID: UUID primary key (char(36)), store-assigned.
//   - CallerMSISDN / ReceiverMSISDN: 11–15 digit strings; a record never has
//     the same caller and receiver.
//   - DurationSeconds: non-negative call duration in seconds.
//   - Timestamp: point in time the call occurred.
//   - CallType: one of "local", "long-distance", "international", stored in
//     lowercase canonical form.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// A CallRecord references a User only implicitly, by CallerMSISDN matching
// the user's MSISDN. There is no foreign key and no cascade between the two.
type CallRecord struct {
	ID              string    `json:"id"               gorm:"type:char(36);primaryKey"`
	CallerMSISDN    string    `json:"caller_msisdn"    gorm:"type:varchar(15);not null;index:idx_cdr_caller"`
	ReceiverMSISDN  string    `json:"receiver_msisdn"  gorm:"type:varchar(15);not null"`
	DurationSeconds int       `json:"duration_seconds" gorm:"not null;default:0"`
	Timestamp       time.Time `json:"timestamp"`
	CallType        string    `json:"call_type"        gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the database table name for CallRecord.
func (CallRecord) TableName() string { return "call_records" }
