// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the IngestReceipt
// model used to implement safe-retry semantics for CDR ingestion.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
)

// GetIngestReceipt returns a non-expired receipt for the given key, or
// ErrNotFound.
func GetIngestReceipt(ctx context.Context, db *gorm.DB, key string, now time.Time) (*domain.IngestReceipt, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.IngestReceipt
	err := db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateIngestReceipt inserts a receipt and returns ErrDuplicate on unique
// violation (two concurrent ingestions racing on the same key).
func CreateIngestReceipt(ctx context.Context, db *gorm.DB, key, recordID string, status int, ttl time.Duration) (*domain.IngestReceipt, error) {
	now := time.Now().UTC()
	rec := &domain.IngestReceipt{
		ID:        uuid.NewString(),
		Key:       key,
		RecordID:  recordID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
