package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unifiedcommerce/shop-service/internal/domain"
	appCtx "github.com/unifiedcommerce/shop-service/internal/pkg/context"
)

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ErrMissingFields(), http.StatusBadRequest, "missing_fields"},
		{"auth", domain.ErrInvalidCredentials(), http.StatusUnauthorized, "invalid_credentials"},
		{"token missing", domain.ErrTokenMissing(), http.StatusUnauthorized, "token_missing"},
		{"forbidden", domain.ErrForbidden(), http.StatusForbidden, "forbidden"},
		{"not found", domain.ErrUserNotFound(), http.StatusNotFound, "user_not_found"},
		{"conflict", domain.ErrEmailAlreadyExists(), http.StatusConflict, "email_already_exists"},
		{"rate limited", domain.ErrRateLimited("auth.login"), http.StatusTooManyRequests, "rate_limited"},
		{"infrastructure", domain.ErrStoreUnavailable(errors.New("down")), http.StatusServiceUnavailable, "store_unavailable"},
		{"internal", domain.ErrInternal(errors.New("x")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			WriteError(rec, req, tc.err)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}

			var body ErrorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, body.Code)
			}
			if body.Message == "" {
				t.Fatalf("expected message")
			}
		})
	}
}

func TestWriteError_NonDomainError_Opaque500(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, errors.New("pq: secret connection string"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(appCtx.WithRequestID(req.Context(), "req-42"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, domain.ErrUserNotFound())

	var body ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.RequestID != "req-42" {
		t.Fatalf("expected request id, got %q", body.RequestID)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		var p payload
		if err := DecodeJSON(req, &p); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if p.Name != "x" {
			t.Fatalf("unexpected payload: %+v", p)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{name`))
		var p payload
		err := DecodeJSON(req, &p)
		if err == nil || !domain.Is(err, "invalid_json") {
			t.Fatalf("expected invalid_json, got %v", err)
		}
	})

	t.Run("trailing values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}{"name":"y"}`))
		var p payload
		err := DecodeJSON(req, &p)
		if err == nil || !domain.Is(err, "invalid_json") {
			t.Fatalf("expected invalid_json, got %v", err)
		}
	})
}

func TestWriteJSONHelpers(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, map[string]string{"message": "hi"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type: %q", ct)
	}

	rec = httptest.NewRecorder()
	Created(rec, map[string]string{"id": "p1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
