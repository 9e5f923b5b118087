// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the CallRecord
// model.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

// CreateCallRecord inserts a new CDR row and returns it with the assigned ID.
func CreateCallRecord(ctx context.Context, db *gorm.DB, caller, receiver string, durationSeconds int, timestamp time.Time, callType string) (*domain.CallRecord, error) {
	r := &domain.CallRecord{
		ID:              uuid.NewString(),
		CallerMSISDN:    caller,
		ReceiverMSISDN:  receiver,
		DurationSeconds: durationSeconds,
		Timestamp:       timestamp,
		CallType:        callType,
		CreatedAt:       time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetCallRecord fetches a CDR by ID. Returns ErrNotFound when absent.
func GetCallRecord(ctx context.Context, db *gorm.DB, id string) (*domain.CallRecord, error) {
	var r domain.CallRecord
	err := db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListCallRecords returns all CDRs ordered deterministically
// (CreatedAt ASC, ID ASC).
func ListCallRecords(ctx context.Context, db *gorm.DB) ([]domain.CallRecord, error) {
	var out []domain.CallRecord
	err := db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

// ListCallRecordsByCaller returns all CDRs whose caller matches the given
// MSISDN, in scan order (CreatedAt ASC, ID ASC). Implemented as an indexed
// filter; a store-side aggregation can replace callers of this function
// without touching the rating logic.
func ListCallRecordsByCaller(ctx context.Context, db *gorm.DB, msisdn string) ([]domain.CallRecord, error) {
	var out []domain.CallRecord
	err := db.WithContext(ctx).
		Where("caller_msisdn = ?", msisdn).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// UpdateCallRecord fully replaces the mutable fields of the CDR with the
// given ID. Returns ErrNotFound when no row was affected, which also covers
// a record deleted concurrently between lookup and update (last writer wins
// at the row level, there is no optimistic locking).
func UpdateCallRecord(ctx context.Context, db *gorm.DB, id string, caller, receiver string, durationSeconds int, timestamp time.Time, callType string) error {
	res := db.WithContext(ctx).
		Model(&domain.CallRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"caller_msisdn":    caller,
			"receiver_msisdn":  receiver,
			"duration_seconds": durationSeconds,
			"timestamp":        timestamp,
			"call_type":        callType,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCallRecord removes the CDR with the given ID. Returns ErrNotFound
// when no row was deleted.
func DeleteCallRecord(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CallRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
