package billing

import (
	"github.com/healthsight/healthsight/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Summary returns a copy of the billing singleton.
func (s *Service) Summary() store.BillingSummary {
	return s.store.Billing()
}
