// CDR HTTP handlers.
//
// This file exposes the REST endpoints for call records:
//   - GET    /cdrs        (list, weak ETag support)
//   - GET    /cdrs/:id    (fetch one)
//   - POST   /cdrs        (ingest; optional Idempotency-Key replay)
//   - PUT    /cdrs/:id    (full replacement)
//   - DELETE /cdrs/:id    (remove)
//
// Handlers are transport-thin: they validate input shape, call application
// services, and translate results into HTTP responses. Business rules
// (MSISDN format, call-type set, caller≠receiver) live in the service layer.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-cdr-backend/internal/domain"
	"github.com/tbourn/go-cdr-backend/internal/http/middleware"
	"github.com/tbourn/go-cdr-backend/internal/rating"
	"github.com/tbourn/go-cdr-backend/internal/repo"
	"github.com/tbourn/go-cdr-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// CDRService defines call-record lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type CDRService interface {
	// Create validates and stores a call record; a non-empty idemKey may
	// replay a previous ingestion instead of storing a duplicate.
	Create(ctx context.Context, in services.CallRecordInput, idemKey string) (rec *domain.CallRecord, replayed bool, err error)
	// Get fetches one call record by ID.
	Get(ctx context.Context, id string) (*domain.CallRecord, error)
	// List returns all call records.
	List(ctx context.Context) ([]domain.CallRecord, error)
	// Update fully replaces the record with the given ID.
	Update(ctx context.Context, id string, in services.CallRecordInput) error
	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id string) error
}

// UserService defines subscriber operations consumed by HTTP handlers.
type UserService interface {
	// Register validates and stores a new subscriber.
	Register(ctx context.Context, name, msisdn string) (*domain.User, error)
	// List returns all subscribers.
	List(ctx context.Context) ([]domain.User, error)
}

// BillingService defines rating and aggregation operations consumed by HTTP
// handlers.
type BillingService interface {
	// Charge rates a single stored call record.
	Charge(ctx context.Context, id string) (*domain.CallRecord, decimal.Decimal, error)
	// Summarize computes the per-user billing summary.
	Summarize(ctx context.Context, userID string) (rating.Totals, error)
	// TopUsers ranks users by total call duration.
	TopUsers(ctx context.Context, limit int) ([]rating.UserRank, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for call records, users, and billing.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	cdrSvc  CDRService
	userSvc UserService
	billSvc BillingService
}

// New constructs a Handlers instance bound to the given services.
func New(cdrSvc CDRService, userSvc UserService, billSvc BillingService) *Handlers {
	return &Handlers{cdrSvc: cdrSvc, userSvc: userSvc, billSvc: billSvc}
}

//
// DTOs
//

// CallRecordRequest is the JSON payload for creating or replacing a call
// record. The call type is case-insensitive; it is stored lowercase.
type CallRecordRequest struct {
	// ID may be set on PUT payloads; when present it must match the path.
	ID              string    `json:"id,omitempty" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	CallerMSISDN    string    `json:"caller_msisdn"    binding:"required" example:"962790123456"`
	ReceiverMSISDN  string    `json:"receiver_msisdn"  binding:"required" example:"962790123457"`
	DurationSeconds int       `json:"duration_seconds" binding:"gte=0"    example:"61"`
	Timestamp       time.Time `json:"timestamp"        example:"2024-11-10T13:17:54Z"`
	CallType        string    `json:"call_type"        binding:"required" example:"local"`
}

// input converts the request payload into the service-layer input type.
func (r CallRecordRequest) input() services.CallRecordInput {
	return services.CallRecordInput{
		CallerMSISDN:    r.CallerMSISDN,
		ReceiverMSISDN:  r.ReceiverMSISDN,
		DurationSeconds: r.DurationSeconds,
		Timestamp:       r.Timestamp,
		CallType:        r.CallType,
	}
}

// IngestResponse is the success payload for POST /cdrs. The assigned record
// ID is deliberately omitted: creation responses echo only the call data.
type IngestResponse struct {
	CallerMSISDN    string    `json:"caller_msisdn"    example:"962790123456"`
	ReceiverMSISDN  string    `json:"receiver_msisdn"  example:"962790123457"`
	DurationSeconds int       `json:"duration_seconds" example:"61"`
	Timestamp       time.Time `json:"timestamp"        example:"2024-11-10T13:17:54Z"`
	CallType        string    `json:"call_type"        example:"local"`
}

//
// Handlers
//

// ListCDRs godoc
// @ID          listCallRecords
// @Summary     List all call records
// @Description Returns every stored call record. Supports weak ETag via If-None-Match and may return 304.
// @Tags        CDRs
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {array}  domain.CallRecord
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs [get]
func (h *Handlers) ListCDRs(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okSvc := h.cdrSvc.(*services.CDRService); okSvc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.CallRecordsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"cdrs:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	records, err := h.cdrSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, records)
}

// GetCDR godoc
// @ID          getCallRecord
// @Summary     Fetch one call record
// @Tags        CDRs
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id  path  string  true  "Call record ID"
//
// @Success     200  {object} domain.CallRecord
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/{id} [get]
func (h *Handlers) GetCDR(c *gin.Context) {
	rec, err := h.cdrSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "call record not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rec)
}

// CreateCDR godoc
// @ID          createCallRecord
// @Summary     Ingest a call record
// @Description Validates and stores a CDR. The success payload echoes the call data without the assigned ID. An optional Idempotency-Key header makes retries replay the original ingestion.
// @Tags        CDRs
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       Idempotency-Key  header  string  false "Stable key for safe retries"
// @Param       body  body  handlers.CallRecordRequest  true  "Call record payload"
//
// @Success     201  {object} handlers.IngestResponse
// @Failure     400  {object} handlers.ErrorResponse "Validation failure"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs [post]
func (h *Handlers) CreateCDR(c *gin.Context) {
	var req CallRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	idemKey, _ := middleware.GetIdempotencyKey(c)
	rec, replayed, err := h.cdrSvc.Create(c.Request.Context(), req.input(), idemKey)
	if err != nil {
		if isValidationErr(err) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	if !replayed {
		middleware.CountIngest(rec.CallType)
	}

	ok(c, http.StatusCreated, IngestResponse{
		CallerMSISDN:    rec.CallerMSISDN,
		ReceiverMSISDN:  rec.ReceiverMSISDN,
		DurationSeconds: rec.DurationSeconds,
		Timestamp:       rec.Timestamp,
		CallType:        rec.CallType,
	})
}

// UpdateCDR godoc
// @ID          updateCallRecord
// @Summary     Replace a call record
// @Tags        CDRs
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id    path  string  true  "Call record ID"
// @Param       body  body  handlers.CallRecordRequest  true  "Replacement payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Validation failure or ID mismatch"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/{id} [put]
func (h *Handlers) UpdateCDR(c *gin.Context) {
	id := c.Param("id")

	var req CallRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if req.ID != "" && req.ID != id {
		fail(c, http.StatusBadRequest, ErrCodeIDMismatch, "payload id does not match path id")
		return
	}

	if err := h.cdrSvc.Update(c.Request.Context(), id, req.input()); err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "call record not found")
		case isValidationErr(err):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// DeleteCDR godoc
// @ID          deleteCallRecord
// @Summary     Remove a call record
// @Tags        CDRs
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id  path  string  true  "Call record ID"
//
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/{id} [delete]
func (h *Handlers) DeleteCDR(c *gin.Context) {
	if err := h.cdrSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "call record not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// isValidationErr reports whether err is one of the service validation
// sentinels that map to 400.
func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrSameParty) ||
		errors.Is(err, services.ErrInvalidMSISDN) ||
		errors.Is(err, services.ErrInvalidCallType) ||
		errors.Is(err, services.ErrNegativeDuration) ||
		errors.Is(err, services.ErrEmptyName)
}
