package dashboard

import (
	"github.com/healthsight/healthsight/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Snapshot returns the stored dashboard singleton with the four derived
// counts recomputed from the live collections on every call.
func (s *Service) Snapshot() store.DashboardOverview {
	return s.store.Dashboard()
}
