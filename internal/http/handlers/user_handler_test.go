package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegisterUser_Returns201WithoutID(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"name":   "Lina Haddad",
		"msisdn": "96279111111",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, hasID := got["id"]; hasID {
		t.Fatalf("registration response must not echo the assigned id: %s", w.Body.String())
	}
	if got["name"] != "Lina Haddad" || got["msisdn"] != "96279111111" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRegisterUser_DuplicateMSISDN(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	payload := map[string]any{"name": "Lina", "msisdn": "96279111111"}
	if w := doJSON(t, r, http.MethodPost, "/users", payload, nil); w.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", w.Code)
	}

	payload["name"] = "Omar"
	w := doJSON(t, r, http.MethodPost, "/users", payload, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != ErrCodeDuplicateMSISDN {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeDuplicateMSISDN)
	}
}

func TestRegisterUser_InvalidMSISDN(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"name":   "Lina",
		"msisdn": "12345",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Code != ErrCodeBadRequest {
		t.Fatalf("code = %q, want %q", resp.Code, ErrCodeBadRequest)
	}
}

func TestRegisterUser_MissingFields(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	// binding:"required" rejects the payload before the service runs
	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{"name": "Lina"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListUsers_ReturnsPublicShape(t *testing.T) {
	db := newHandlerDB(t)
	r := newTestRouter(t, db)

	for _, u := range []map[string]any{
		{"name": "Lina", "msisdn": "96279111111"},
		{"name": "Omar", "msisdn": "96279222222"},
	} {
		if w := doJSON(t, r, http.MethodPost, "/users", u, nil); w.Code != http.StatusCreated {
			t.Fatalf("seed register status = %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/users", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got []UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Lina" || got[1].Name != "Omar" {
		t.Fatalf("unexpected users: %+v", got)
	}
}
