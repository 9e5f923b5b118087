// Package services – BillingService
//
// This file implements the BillingService, which rates single calls and
// aggregates billing figures per user. It composes the scan-based repository
// queries with the pure functions in internal/rating, so the store-specific
// scans can later be replaced by server-side aggregation without touching
// the arithmetic.
package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
	"github.com/tbourn/go-cdr-backend/internal/rating"
	"github.com/tbourn/go-cdr-backend/internal/repo"
)

// BillingService implements the rating and aggregation use-cases.
type BillingService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Charge rates a single call record: billed minutes (duration rounded up to
// the next whole minute) times the per-minute rate of its call type.
// Returns ErrRecordNotFound when the record is absent.
func (s *BillingService) Charge(ctx context.Context, id string) (*domain.CallRecord, decimal.Decimal, error) {
	rec, err := repo.GetCallRecord(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, decimal.Zero, ErrRecordNotFound
	}
	if err != nil {
		return nil, decimal.Zero, err
	}
	return rec, rating.Rate(rec.DurationSeconds, rec.CallType), nil
}

// Summarize computes the per-user billing summary: the count, total duration,
// and total charge of all calls where the user's MSISDN is the caller.
// Returns ErrUserNotFound when the user is absent. A user without calls
// yields zero totals, not an error.
func (s *BillingService) Summarize(ctx context.Context, userID string) (rating.Totals, error) {
	user, err := repo.GetUser(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return rating.Totals{}, ErrUserNotFound
	}
	if err != nil {
		return rating.Totals{}, err
	}

	records, err := repo.ListCallRecordsByCaller(ctx, s.DB, user.MSISDN)
	if err != nil {
		return rating.Totals{}, err
	}
	return rating.Summarize(records), nil
}

// TopUsers ranks users by total call duration (descending, stable for ties)
// and truncates to limit; a limit <= 0 falls back to rating.DefaultTopLimit.
// The ranking is computed over two full scans, which is acceptable at the
// intended scale. An empty user set yields an empty list.
func (s *BillingService) TopUsers(ctx context.Context, limit int) ([]rating.UserRank, error) {
	users, err := repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	records, err := repo.ListCallRecords(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return rating.RankUsers(users, records, limit), nil
}
