package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubStore struct {
	ok       bool
	err      error
	calls    []string
	released []string
}

func (s *stubStore) Claim(_ context.Context, key string) (bool, error) {
	s.calls = append(s.calls, key)
	return s.ok, s.err
}

func (s *stubStore) Release(_ context.Context, key string) error {
	s.released = append(s.released, key)
	return nil
}

func runIdempotency(t *testing.T, store *stubStore, method, key string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	return runIdempotencyWith(t, store, method, key, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func runIdempotencyWith(t *testing.T, store *stubStore, method, key string, next echo.HandlerFunc) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/users", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Idempotency(store)(func(c echo.Context) error {
		called = true
		return next(c)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestIdempotencySkipsWithoutHeader(t *testing.T) {
	store := &stubStore{}
	_, called := runIdempotency(t, store, http.MethodPost, "")
	if !called || len(store.calls) != 0 {
		t.Fatalf("expected pass-through without claim, calls=%v", store.calls)
	}
}

func TestIdempotencySkipsReads(t *testing.T) {
	store := &stubStore{}
	_, called := runIdempotency(t, store, http.MethodGet, "abc")
	if !called || len(store.calls) != 0 {
		t.Fatalf("GET must not claim keys, calls=%v", store.calls)
	}
}

func TestIdempotencyScopesKeyByPath(t *testing.T) {
	store := &stubStore{ok: true}
	_, called := runIdempotency(t, store, http.MethodPost, "abc")
	if !called {
		t.Fatalf("first claim should reach the handler")
	}
	if len(store.calls) != 1 || store.calls[0] != "/api/users:abc" {
		t.Fatalf("unexpected claim keys %v", store.calls)
	}
}

func TestIdempotencyKeepsKeyOnSuccess(t *testing.T) {
	store := &stubStore{ok: true}
	runIdempotency(t, store, http.MethodPost, "abc")
	if len(store.released) != 0 {
		t.Fatalf("successful request must keep its key, released=%v", store.released)
	}
}

func TestIdempotencyReleasesKeyOnFailure(t *testing.T) {
	for name, next := range map[string]echo.HandlerFunc{
		"rendered 400": func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		},
		"returned http error": func(echo.Context) error {
			return echo.NewHTTPError(http.StatusUnprocessableEntity)
		},
		"returned plain error": func(echo.Context) error {
			return errors.New("boom")
		},
	} {
		t.Run(name, func(t *testing.T) {
			store := &stubStore{ok: true}
			rec, _ := runIdempotencyWith(t, store, http.MethodPost, "abc", next)
			if rec.Code < http.StatusBadRequest {
				t.Fatalf("expected error status, got %d", rec.Code)
			}
			if len(store.released) != 1 || store.released[0] != "/api/users:abc" {
				t.Fatalf("unexpected released keys %v", store.released)
			}
		})
	}
}

func TestIdempotencyStoreError(t *testing.T) {
	store := &stubStore{err: errors.New("redis down")}
	rec, called := runIdempotency(t, store, http.MethodPost, "abc")
	if called {
		t.Fatalf("handler must not run when the store fails")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRequestValidatorUsesJSONNames(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(&struct {
		DurationMinutes int `json:"duration_minutes" validate:"required,gt=0"`
	}{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if got := describeInvalid(err); got != "duration_minutes failed on 'required'" {
		t.Fatalf("unexpected description %q", got)
	}
}
