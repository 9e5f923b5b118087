// Billing HTTP handlers.
//
// This file exposes the rating and aggregation endpoints:
//   - GET /cdrs/calculate-charge/:id  (rate one call)
//   - GET /cdrs/summary/:userId       (per-user billing summary)
//   - GET /cdrs/top-users             (ranking by total call duration)
//
// Charges are decimal values and serialize as JSON strings (e.g. "0.25") to
// keep money exact on the wire.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tbourn/go-cdr-backend/internal/rating"
	"github.com/tbourn/go-cdr-backend/internal/services"
	"github.com/tbourn/go-cdr-backend/internal/utils"
)

// maxTopLimit caps the ?limit query parameter of the top-users endpoint.
const maxTopLimit = 100

// ChargeResponse is the payload for a single rated call.
type ChargeResponse struct {
	CallType        string          `json:"call_type"        example:"local"`
	DurationSeconds int             `json:"duration_seconds" example:"61"`
	BilledMinutes   int64           `json:"billed_minutes"   example:"2"`
	Charge          decimal.Decimal `json:"charge"           swaggertype:"string" example:"0.10"`
}

// SummaryResponse is the per-user billing summary payload.
type SummaryResponse struct {
	TotalCalls           int             `json:"total_calls"            example:"2"`
	TotalDurationSeconds int             `json:"total_duration_seconds" example:"150"`
	TotalCharge          decimal.Decimal `json:"total_charge"           swaggertype:"string" example:"0.25"`
}

// TopUserResponse is one entry of the top-users ranking.
type TopUserResponse struct {
	UserID               string          `json:"user_id"                example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	UserName             string          `json:"user_name"              example:"Lina Haddad"`
	TotalDurationSeconds int             `json:"total_duration_seconds" example:"150"`
	TotalCharge          decimal.Decimal `json:"total_charge"           swaggertype:"string" example:"0.25"`
}

// CalculateCharge godoc
// @ID          calculateCharge
// @Summary     Rate a single call
// @Description Computes the charge for one stored call record: duration rounded up to whole minutes times the per-minute rate of its call type.
// @Tags        Billing
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id  path  string  true  "Call record ID"
//
// @Success     200  {object} handlers.ChargeResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/calculate-charge/{id} [get]
func (h *Handlers) CalculateCharge(c *gin.Context) {
	rec, charge, err := h.billSvc.Charge(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "call record not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, ChargeResponse{
		CallType:        rec.CallType,
		DurationSeconds: rec.DurationSeconds,
		BilledMinutes:   rating.BilledMinutes(rec.DurationSeconds),
		Charge:          charge,
	})
}

// UserSummary godoc
// @ID          userSummary
// @Summary     Per-user billing summary
// @Description Returns call count, total duration, and total charge over every call where the user's MSISDN is the caller.
// @Tags        Billing
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       userId  path  string  true  "User ID"
//
// @Success     200  {object} handlers.SummaryResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "User not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/summary/{userId} [get]
func (h *Handlers) UserSummary(c *gin.Context) {
	totals, err := h.billSvc.Summarize(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, SummaryResponse{
		TotalCalls:           totals.TotalCalls,
		TotalDurationSeconds: totals.TotalDurationSeconds,
		TotalCharge:          totals.TotalCharge,
	})
}

// TopUsers godoc
// @ID          topUsers
// @Summary     Top users by call duration
// @Description Ranks users by total call duration, descending and stable for ties. Returns at most `limit` entries (default 5).
// @Tags        Billing
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       limit  query  int  false "Maximum entries"  minimum(1) maximum(100) default(5)
//
// @Success     200  {array}  handlers.TopUserResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /cdrs/top-users [get]
func (h *Handlers) TopUsers(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), rating.DefaultTopLimit)
	if limit < 1 {
		limit = rating.DefaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	ranks, err := h.billSvc.TopUsers(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	out := make([]TopUserResponse, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, TopUserResponse{
			UserID:               r.UserID,
			UserName:             r.UserName,
			TotalDurationSeconds: r.TotalDurationSeconds,
			TotalCharge:          r.TotalCharge,
		})
	}
	ok(c, http.StatusOK, out)
}
