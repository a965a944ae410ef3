package doctors

import (
	"context"
	"errors"
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

func TestList_ReturnsRosterInOrder(t *testing.T) {
	svc := newTestService()
	got := svc.List()
	if len(got) != 4 {
		t.Fatalf("expected 4 doctors, got %d", len(got))
	}
	if got[0].ID != "DOC-001" || got[3].ID != "DOC-004" {
		t.Errorf("expected collection order preserved, got %+v", got)
	}
}

func TestGet(t *testing.T) {
	svc := newTestService()

	d, err := svc.Get("DOC-003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Department != "Pediatrics" {
		t.Errorf("unexpected doctor: %+v", d)
	}

	if _, err := svc.Get("DOC-999"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHandler_GetDoctor_NotFound(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("DOC-404")

	err := h.GetDoctor(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_ListDoctors(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
