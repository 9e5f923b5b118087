// Package services – CDRService
//
// This file implements the CDRService, which manages the lifecycle of call
// records: validated ingestion (with optional idempotent replay), point
// lookup, full listing, replacement, and deletion. Service-level errors
// (ErrRecordNotFound, the validation sentinels) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
	"github.com/tbourn/go-cdr-backend/internal/repo"
)

// CallRecordInput carries the client-supplied fields of a call record.
// The assigned ID is never part of the input; it is store-generated.
type CallRecordInput struct {
	CallerMSISDN    string
	ReceiverMSISDN  string
	DurationSeconds int
	Timestamp       time.Time
	CallType        string
}

// CDRService implements the use-cases around call data records.
type CDRService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// IdempotencyTTL bounds how long an Idempotency-Key replays a previous
	// ingestion. Zero disables receipt storage entirely.
	IdempotencyTTL time.Duration
}

// Create validates, normalizes, and stores a new call record.
//
// Semantics:
//   - The input is validated per ValidateCallRecord; on failure nothing is
//     stored and the validation sentinel is returned.
//   - The call type is folded to its lowercase canonical form before
//     persisting, so "LOCAL" round-trips as "local".
//   - When idemKey is non-empty and a non-expired receipt exists for it, the
//     originally stored record is returned with replayed=true and no new row
//     is created.
//   - A successful fresh ingestion best-effort stores a receipt; receipt
//     failures never fail the ingestion itself.
func (s *CDRService) Create(ctx context.Context, in CallRecordInput, idemKey string) (rec *domain.CallRecord, replayed bool, err error) {
	if err := ValidateCallRecord(in.CallerMSISDN, in.ReceiverMSISDN, in.CallType, in.DurationSeconds); err != nil {
		return nil, false, err
	}
	callType := domain.NormalizeCallType(in.CallType)

	if idemKey != "" && s.IdempotencyTTL > 0 {
		if receipt, err := repo.GetIngestReceipt(ctx, s.DB, idemKey, time.Now().UTC()); err == nil {
			if prev, err := repo.GetCallRecord(ctx, s.DB, receipt.RecordID); err == nil {
				return prev, true, nil
			}
			// The replayed record was deleted in the meantime; fall through
			// and ingest fresh.
		}
	}

	rec, err = repo.CreateCallRecord(ctx, s.DB, in.CallerMSISDN, in.ReceiverMSISDN, in.DurationSeconds, in.Timestamp, callType)
	if err != nil {
		return nil, false, err
	}

	if idemKey != "" && s.IdempotencyTTL > 0 {
		if _, err := repo.CreateIngestReceipt(ctx, s.DB, idemKey, rec.ID, http.StatusCreated, s.IdempotencyTTL); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			// Best effort only; the record itself is already durable.
		}
	}
	return rec, false, nil
}

// Get fetches one call record by ID. Returns ErrRecordNotFound when absent.
func (s *CDRService) Get(ctx context.Context, id string) (*domain.CallRecord, error) {
	rec, err := repo.GetCallRecord(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

// List returns all call records in deterministic scan order.
func (s *CDRService) List(ctx context.Context) ([]domain.CallRecord, error) {
	return repo.ListCallRecords(ctx, s.DB)
}

// Update fully replaces the call record with the given ID.
//
// The replacement payload is validated and normalized exactly like a fresh
// ingestion. A record that is absent, or that vanished between the request
// and the row update, yields ErrRecordNotFound; there is no optimistic
// locking beyond that (last writer wins).
func (s *CDRService) Update(ctx context.Context, id string, in CallRecordInput) error {
	if err := ValidateCallRecord(in.CallerMSISDN, in.ReceiverMSISDN, in.CallType, in.DurationSeconds); err != nil {
		return err
	}
	callType := domain.NormalizeCallType(in.CallType)

	err := repo.UpdateCallRecord(ctx, s.DB, id, in.CallerMSISDN, in.ReceiverMSISDN, in.DurationSeconds, in.Timestamp, callType)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// Delete removes the call record with the given ID. Returns
// ErrRecordNotFound when absent.
func (s *CDRService) Delete(ctx context.Context, id string) error {
	err := repo.DeleteCallRecord(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrRecordNotFound
	}
	return err
}
