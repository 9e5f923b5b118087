// Package domain defines the core persistence models for the application.
package domain

import "time"

// IngestReceipt records the outcome of a previously processed CDR ingestion,
// keyed by the client-supplied Idempotency-Key. It enables safe retries of
// POST /cdrs by returning the originally stored record without creating a
// duplicate CDR.
type IngestReceipt struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_ingest_key"`
	RecordID  string    `gorm:"type:TEXT NOT NULL"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (IngestReceipt) TableName() string { return "ingest_receipts" }
