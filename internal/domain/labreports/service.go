package labreports

import (
	"github.com/healthsight/healthsight/internal/store"
)

// ListOptions filters lab reports by status. Free-text search is layered by
// the caller, not here.
type ListOptions struct {
	Status string // ALL, COMPLETED, IN_PROGRESS, SAMPLE_COLLECTED, CANCELLED
}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(opts ListOptions) []store.LabReport {
	out := []store.LabReport{}
	for _, r := range s.store.LabReports() {
		if opts.Status != "" && opts.Status != store.FilterAll && r.Status != opts.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}
