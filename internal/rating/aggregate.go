// Package rating – pure aggregation over call records.
//
// The functions in this file operate on slices already fetched from the
// store. Keeping them free of any persistence concern lets the scan-based
// repository queries be swapped for server-side aggregation later without
// touching the billing arithmetic.
package rating

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

// Totals holds the aggregate billing figures for a set of call records.
type Totals struct {
	TotalCalls           int
	TotalDurationSeconds int
	TotalCharge          decimal.Decimal
}

// Summarize computes call count, total duration, and total charge over the
// given records. An empty slice yields zero totals.
func Summarize(records []domain.CallRecord) Totals {
	t := Totals{TotalCharge: decimal.Zero}
	for _, r := range records {
		t.TotalCalls++
		t.TotalDurationSeconds += r.DurationSeconds
		t.TotalCharge = t.TotalCharge.Add(Rate(r.DurationSeconds, r.CallType))
	}
	return t
}

// UserRank is one entry of a top-users ranking.
type UserRank struct {
	UserID               string
	UserName             string
	TotalDurationSeconds int
	TotalCharge          decimal.Decimal
}

// DefaultTopLimit is the number of entries returned by a top-users ranking
// when the caller does not ask for a specific limit.
const DefaultTopLimit = 5

// RankUsers computes per-user totals over the given users and records,
// sorts descending by total duration, and truncates to limit. Ties keep the
// input order of users (the sort is stable); there is no secondary tie-break
// key. A limit <= 0 falls back to DefaultTopLimit. An empty user slice
// yields an empty (non-nil) ranking.
func RankUsers(users []domain.User, records []domain.CallRecord, limit int) []UserRank {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	// Bucket records by caller so ranking stays linear in the scan size.
	byCaller := make(map[string][]domain.CallRecord, len(users))
	for _, r := range records {
		byCaller[r.CallerMSISDN] = append(byCaller[r.CallerMSISDN], r)
	}

	ranks := make([]UserRank, 0, len(users))
	for _, u := range users {
		t := Summarize(byCaller[u.MSISDN])
		ranks = append(ranks, UserRank{
			UserID:               u.ID,
			UserName:             u.Name,
			TotalDurationSeconds: t.TotalDurationSeconds,
			TotalCharge:          t.TotalCharge,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalDurationSeconds > ranks[j].TotalDurationSeconds
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
