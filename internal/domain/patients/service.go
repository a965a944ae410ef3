package patients

import (
	"strings"

	"github.com/healthsight/healthsight/internal/store"
)

// ListOptions filters the patient list. Zero values mean "match all".
type ListOptions struct {
	Type  string // ALL, OPD, IPD, ER
	Query string // free-text, matched against name, id, department
}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List applies the type filter first, then the free-text search, preserving
// the collection order. An empty query passes every record that survived the
// categorical filter.
func (s *Service) List(opts ListOptions) []store.Patient {
	q := strings.ToLower(strings.TrimSpace(opts.Query))

	out := []store.Patient{}
	for _, p := range s.store.Patients() {
		if opts.Type != "" && opts.Type != store.FilterAll && p.Type != opts.Type {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) &&
			!strings.Contains(strings.ToLower(p.Department), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Service) Get(id string) (store.Patient, error) {
	return s.store.PatientByID(id)
}
