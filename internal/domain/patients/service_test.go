package patients

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/healthsight/healthsight/internal/store"
)

func newTestService() *Service {
	st := store.New(store.NewMemoryRepository(), zerolog.Nop())
	st.Initialize(context.Background())
	return NewService(st)
}

func TestList_NoFilterReturnsAllInOrder(t *testing.T) {
	svc := newTestService()
	got := svc.List(ListOptions{})
	if len(got) != 4 {
		t.Fatalf("expected 4 patients, got %d", len(got))
	}
	wantOrder := []string{"UHID-20261", "UHID-20262", "UHID-20237", "UHID-20177"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestList_TypeFilter(t *testing.T) {
	svc := newTestService()

	opd := svc.List(ListOptions{Type: store.PatientOPD})
	if len(opd) != 2 {
		t.Errorf("expected 2 OPD patients, got %d", len(opd))
	}
	for _, p := range opd {
		if p.Type != store.PatientOPD {
			t.Errorf("non-OPD patient in result: %+v", p)
		}
	}

	er := svc.List(ListOptions{Type: store.PatientER})
	if len(er) != 1 || er[0].ID != "UHID-20177" {
		t.Errorf("expected only the ER patient, got %+v", er)
	}

	if got := svc.List(ListOptions{Type: store.FilterAll}); len(got) != 4 {
		t.Errorf("ALL sentinel must match everything, got %d", len(got))
	}
}

func TestList_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newTestService()

	byName := svc.List(ListOptions{Query: "rAhUl"})
	if len(byName) != 1 || byName[0].Name != "Rahul Verma" {
		t.Errorf("expected match by name, got %+v", byName)
	}

	byID := svc.List(ListOptions{Query: "uhid-202"})
	if len(byID) != 4 {
		t.Errorf("expected id substring to match all, got %d", len(byID))
	}

	byDept := svc.List(ListOptions{Query: "ortho"})
	if len(byDept) != 1 || byDept[0].ID != "UHID-20262" {
		t.Errorf("expected match by department, got %+v", byDept)
	}

	if got := svc.List(ListOptions{Query: "zzz-no-match"}); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestList_WhitespaceQueryMatchesAll(t *testing.T) {
	svc := newTestService()
	if got := svc.List(ListOptions{Query: "   "}); len(got) != 4 {
		t.Errorf("whitespace-only query must match all, got %d", len(got))
	}
}

func TestList_FiltersCombine(t *testing.T) {
	svc := newTestService()
	// "sharma" matches Anita Sharma (OPD); the type filter must run first.
	got := svc.List(ListOptions{Type: store.PatientIPD, Query: "sharma"})
	if len(got) != 0 {
		t.Errorf("expected categorical filter to reject before search, got %+v", got)
	}
}

func TestGet(t *testing.T) {
	svc := newTestService()

	p, err := svc.Get("UHID-20237")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Vikram Desai" {
		t.Errorf("unexpected patient: %+v", p)
	}

	if _, err := svc.Get("UHID-0000"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
