// Package rating implements the billing core: the per-call-type rate table,
// duration-to-billed-minute rounding, and pure aggregation over in-memory
// sequences of call records.
//
// All monetary values are exact decimals (shopspring/decimal). Binary floats
// are never used for charges, so repeated summation cannot accumulate
// rounding drift.
package rating

import (
	"github.com/shopspring/decimal"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

// Per-minute rates by canonical call type.
var (
	rateLocal         = decimal.RequireFromString("0.05")
	rateLongDistance  = decimal.RequireFromString("0.10")
	rateInternational = decimal.RequireFromString("0.50")
)

// RatePerMinute returns the per-minute rate for the given call type. The key
// is matched against the canonical lowercase forms; anything else yields a
// zero rate. Validation upstream makes the zero branch unreachable for
// records that passed ingestion, but it is kept rather than turned into a
// failure so that rating stays a total function.
func RatePerMinute(callType string) decimal.Decimal {
	switch callType {
	case domain.CallTypeLocal:
		return rateLocal
	case domain.CallTypeLongDistance:
		return rateLongDistance
	case domain.CallTypeInternational:
		return rateInternational
	default:
		return decimal.Zero
	}
}

// BilledMinutes rounds a duration in seconds up to the next whole minute.
// Zero seconds bills zero minutes. Negative durations are clamped to zero;
// validation rejects them before they ever reach persistence.
func BilledMinutes(durationSeconds int) int64 {
	if durationSeconds <= 0 {
		return 0
	}
	return int64((durationSeconds + 59) / 60)
}

// Rate computes the charge for one call: billed minutes times the per-minute
// rate for the call type. The call type must already be in canonical
// lowercase form (see domain.NormalizeCallType).
func Rate(durationSeconds int, callType string) decimal.Decimal {
	return RatePerMinute(callType).Mul(decimal.NewFromInt(BilledMinutes(durationSeconds)))
}
