package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
)

func checkOK(context.Context) error { return nil }

func checkDown(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler_Liveness(t *testing.T) {
	e := newEcho()
	c, rec := jsonContext(e, http.MethodGet, "/health", "")

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthDependencies_Readiness(t *testing.T) {
	cases := []struct {
		name   string
		db     Check
		redis  Check
		code   int
		status string
	}{
		{"all up", checkOK, checkOK, http.StatusOK, "ok"},
		{"mongo down", checkDown, checkOK, http.StatusServiceUnavailable, "degraded"},
		{"redis down", checkOK, checkDown, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tc := range cases {
		e := newEcho()
		h := NewHealthDependenciesHandler(tc.db, map[string]Check{"redis": tc.redis}, zerolog.Nop())
		c, rec := jsonContext(e, http.MethodGet, "/health/ready", "")

		if err := h.Readiness(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}

		var resp readinessResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Status != tc.status || len(resp.Dependencies) != 2 {
			t.Errorf("%s: unexpected body %+v", tc.name, resp)
		}
	}
}

func TestHealthDependencies_TestDB(t *testing.T) {
	e := newEcho()

	c, rec := jsonContext(e, http.MethodGet, "/test-db", "")
	if err := NewHealthDependenciesHandler(checkOK, nil, zerolog.Nop()).TestDB(c); err != nil {
		t.Fatal(err)
	}
	var resp testDBResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusOK || !resp.Success || resp.Message == "" {
		t.Fatalf("unexpected success response %d %+v", rec.Code, resp)
	}

	c, rec = jsonContext(e, http.MethodGet, "/test-db", "")
	if err := NewHealthDependenciesHandler(checkDown, nil, zerolog.Nop()).TestDB(c); err != nil {
		t.Fatal(err)
	}
	resp = testDBResponse{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusInternalServerError || resp.Success || resp.Error != "connection refused" {
		t.Fatalf("unexpected failure response %d %+v", rec.Code, resp)
	}
}
