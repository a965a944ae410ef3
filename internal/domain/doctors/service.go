package doctors

import (
	"github.com/healthsight/healthsight/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns the full roster in collection order; the doctors page has no
// server-side filters.
func (s *Service) List() []store.Doctor {
	return s.store.Doctors()
}

func (s *Service) Get(id string) (store.Doctor, error) {
	return s.store.DoctorByID(id)
}
