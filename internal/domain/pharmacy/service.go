package pharmacy

import (
	"github.com/healthsight/healthsight/internal/store"
)

// ListOptions filters pharmacy items by stored stock status. Free-text search
// is layered by the caller, not here.
type ListOptions struct {
	StockStatus string // ALL, OK, LOW, CRITICAL, OUT
}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(opts ListOptions) []store.PharmacyItem {
	out := []store.PharmacyItem{}
	for _, item := range s.store.PharmacyItems() {
		if opts.StockStatus != "" && opts.StockStatus != store.FilterAll && item.Status != opts.StockStatus {
			continue
		}
		out = append(out, item)
	}
	return out
}

// LowStock reports every item whose stored status is LOW, CRITICAL or OUT,
// with the per-status breakdown.
func (s *Service) LowStock() store.LowStockSummary {
	return s.store.LowStock()
}
