package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-cdr-backend/internal/domain"
	"github.com/tbourn/go-cdr-backend/internal/repo"
	"github.com/tbourn/go-cdr-backend/internal/services"
)

// ---------- test DB + router ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:cdr_handlers_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.CallRecord{}, &domain.IngestReceipt{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newGinTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(
		&services.CDRService{DB: db, IdempotencyTTL: time.Hour},
		&services.UserService{DB: db},
		&services.BillingService{DB: db},
	)

	r := gin.New()
	r.GET("/cdrs", h.ListCDRs)
	r.POST("/cdrs", h.CreateCDR)
	r.GET("/cdrs/calculate-charge/:id", h.CalculateCharge)
	r.GET("/cdrs/summary/:userId", h.UserSummary)
	r.GET("/cdrs/top-users", h.TopUsers)
	r.GET("/cdrs/:id", h.GetCDR)
	r.PUT("/cdrs/:id", h.UpdateCDR)
	r.DELETE("/cdrs/:id", h.DeleteCDR)
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.RegisterUser)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"caller_msisdn":    "96279111111",
		"receiver_msisdn":  "96279222222",
		"duration_seconds": 61,
		"timestamp":        "2024-11-10T13:17:54Z",
		"call_type":        "local",
	}
}

// ---------- tests ----------

func TestCreateCDR_Returns201WithoutID(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/cdrs", validPayload(), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, hasID := got["id"]; hasID {
		t.Fatalf("creation response must not echo the assigned id: %s", w.Body.String())
	}
	if got["caller_msisdn"] != "96279111111" || got["call_type"] != "local" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateCDR_NormalizesCallTypeCase(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	p := validPayload()
	p["call_type"] = "LOCAL"
	w := doJSON(t, r, http.MethodPost, "/cdrs", p, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got["call_type"] != "local" {
		t.Fatalf("call_type = %v, want local", got["call_type"])
	}
}

func TestCreateCDR_ValidationFailures(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"same party", func(p map[string]any) { p["receiver_msisdn"] = p["caller_msisdn"] }},
		{"short msisdn", func(p map[string]any) { p["caller_msisdn"] = "12345" }},
		{"bad call type", func(p map[string]any) { p["call_type"] = "telepathy" }},
	}
	for _, tc := range cases {
		p := validPayload()
		tc.mutate(p)
		w := doJSON(t, r, http.MethodPost, "/cdrs", p, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, body = %s", tc.name, w.Code, w.Body.String())
		}
		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if resp.Code != ErrCodeBadRequest {
			t.Fatalf("%s: code = %q, want %q", tc.name, resp.Code, ErrCodeBadRequest)
		}
	}
}

func TestCreateCDR_MalformedJSON(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	req := httptest.NewRequest(http.MethodPost, "/cdrs", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetCDR_FoundAndNotFound(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	rec, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/cdrs/"+rec.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/cdrs/"+uuid.NewString(), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != ErrCodeNotFound {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeNotFound)
	}
}

func TestListCDRs_EmptyAndPopulated(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodGet, "/cdrs", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	if _, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/cdrs", nil, nil)
	var got []domain.CallRecord
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestListCDRs_ETagRoundTrip(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	if _, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/cdrs", nil, nil)
	etag := w.Header().Get("ETag")
	if w.Code != http.StatusOK || etag == "" {
		t.Fatalf("status = %d etag = %q", w.Code, etag)
	}

	w = doJSON(t, r, http.MethodGet, "/cdrs", nil, map[string]string{"If-None-Match": etag})
	if w.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", w.Code)
	}
}

func TestUpdateCDR_Replaces(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	rec, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := validPayload()
	p["call_type"] = "international"
	w := doJSON(t, r, http.MethodPut, "/cdrs/"+rec.ID, p, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	got, err := repo.GetCallRecord(context.Background(), db, rec.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.CallType != "international" {
		t.Fatalf("call_type = %q, want international", got.CallType)
	}
}

func TestUpdateCDR_IDMismatch(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	rec, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := validPayload()
	p["id"] = uuid.NewString()
	w := doJSON(t, r, http.MethodPut, "/cdrs/"+rec.ID, p, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != ErrCodeIDMismatch {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeIDMismatch)
	}
}

func TestUpdateCDR_NotFound(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodPut, "/cdrs/"+uuid.NewString(), validPayload(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteCDR(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	rec, err := repo.CreateCallRecord(context.Background(), db, "96279111111", "96279222222", 60, time.Now().UTC(), "local")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodDelete, "/cdrs/"+rec.ID, nil, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/cdrs/"+rec.ID, nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}
