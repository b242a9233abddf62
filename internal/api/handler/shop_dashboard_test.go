package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopfront/admin-api/internal/api/middleware"
	"github.com/shopfront/admin-api/internal/core/domain"
	"github.com/shopfront/admin-api/internal/core/ports"
)

func TestShopHandler_ListShowsNewestHundred(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
			if in.Page != 1 || in.Limit != 100 || in.Search != "" {
				t.Fatalf("unexpected storefront query %+v", in)
			}
			return &ports.ListProductsResult{Products: []*domain.Product{sampleProduct()}}, nil
		},
	}

	c, rec := jsonContext(e, http.MethodGet, "/shop?search=ignored&limit=5", "")
	if err := NewShopHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestShopHandler_DetailNotFound(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}

	c, _ := jsonContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := NewShopHandler(stub).Detail(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDashboardHandler_Overview(t *testing.T) {
	e := newEcho()
	h := NewDashboardHandler(&stubProductService{count: 7}, stubUserCounter{n: 3})

	c, rec := jsonContext(e, http.MethodGet, "/dashboard", "")
	middleware.SetSession(c, &domain.Session{UserID: "u1", Name: "Alice", Role: domain.RoleUser})
	if err := h.Overview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		User         map[string]any `json:"user"`
		IsAdmin      bool           `json:"isAdmin"`
		ProductCount int64          `json:"productCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ProductCount != 7 || resp.User["name"] != "Alice" || resp.IsAdmin {
		t.Fatalf("unexpected overview %+v", resp)
	}
}

func TestDashboardHandler_OverviewWithoutSession(t *testing.T) {
	e := newEcho()
	h := NewDashboardHandler(&stubProductService{}, stubUserCounter{})

	c, _ := jsonContext(e, http.MethodGet, "/dashboard", "")
	if err := h.Overview(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestDashboardHandler_AdminStats(t *testing.T) {
	e := newEcho()
	h := NewDashboardHandler(&stubProductService{count: 12}, stubUserCounter{n: 4})

	c, rec := jsonContext(e, http.MethodGet, "/admin", "")
	if err := h.AdminStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]int64
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["productCount"] != 12 || resp["userCount"] != 4 {
		t.Fatalf("unexpected stats %+v", resp)
	}
}
