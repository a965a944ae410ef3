package pharmacy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthsight/healthsight/internal/store"
)

func newTestService() *Service {
	st := store.New(store.NewMemoryRepository(), zerolog.Nop())
	st.Initialize(context.Background())
	return NewService(st)
}

func TestList_StockStatusFilter(t *testing.T) {
	svc := newTestService()

	all := svc.List(ListOptions{})
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}

	ok := svc.List(ListOptions{StockStatus: store.StockOK})
	if len(ok) != 1 || ok[0].ID != "DRG-050" {
		t.Errorf("unexpected OK filter result: %+v", ok)
	}

	if got := svc.List(ListOptions{StockStatus: store.StockLow}); len(got) != 0 {
		t.Errorf("expected no LOW items in defaults, got %+v", got)
	}

	if got := svc.List(ListOptions{StockStatus: store.FilterAll}); len(got) != 3 {
		t.Errorf("ALL sentinel must match everything, got %d", len(got))
	}
}

func TestList_StatusIsStoredNotDerived(t *testing.T) {
	svc := newTestService()
	// DRG-001 has stock 18 but stored status CRITICAL; the filter must trust
	// the stored value.
	crit := svc.List(ListOptions{StockStatus: store.StockCritical})
	if len(crit) != 1 || crit[0].Stock != 18 {
		t.Errorf("expected stored status to drive the filter, got %+v", crit)
	}
}

func TestLowStock_Summary(t *testing.T) {
	svc := newTestService()
	sum := svc.LowStock()

	if sum.TotalTracked != 3 {
		t.Errorf("expected 3 tracked, got %d", sum.TotalTracked)
	}
	if sum.LowCount != 2 || sum.CriticalCount != 1 || sum.OutOfStockCount != 1 {
		t.Errorf("unexpected counts: %+v", sum)
	}
	if len(sum.Items) != sum.LowCount {
		t.Errorf("items length %d != lowCount %d", len(sum.Items), sum.LowCount)
	}
}

func TestHandler_ListItems(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?stock_status=OUT", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListItems(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var items []store.PharmacyItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(items) != 1 || items[0].ID != "CON-200" {
		t.Errorf("unexpected result: %+v", items)
	}
}

func TestHandler_GetLowStockSummary(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetLowStockSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum store.LowStockSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if sum.LowCount != 2 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}
