package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by lookups and mutations when no record matches the
// given identifier.
var ErrNotFound = errors.New("record not found")

// Store owns the six demo collections plus the two singletons. All reads hand
// out copies, all mutations persist the full state through the repository
// before returning. Mutual exclusion is a single RWMutex, so every operation
// applies atomically.
type Store struct {
	mu     sync.RWMutex
	state  *State
	repo   Repository
	logger zerolog.Logger
}

func New(repo Repository, logger zerolog.Logger) *Store {
	return &Store{
		state:  defaultState(),
		repo:   repo,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Initialize overlays a previously persisted snapshot onto the compiled-in
// defaults. The merge is shallow: a top-level key present in the snapshot
// replaces the default value wholesale, keys absent keep their default. Any
// load or decode failure falls back to pure defaults with a warning; the
// caller never sees an error.
func (s *Store) Initialize(ctx context.Context) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load snapshot, using defaults")
		return
	}
	if raw == nil {
		return
	}

	merged, err := mergeSnapshot(defaultState(), raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("corrupt snapshot, using defaults")
		return
	}

	s.mu.Lock()
	s.state = merged
	s.mu.Unlock()
}

// mergeSnapshot applies top-level keys of the raw snapshot over defaults.
// Collections are replaced as a unit, never reconciled record by record.
func mergeSnapshot(base *State, raw []byte) (*State, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	// Each present key decodes into a fresh value before assignment, so a
	// persisted collection can never merge record-by-record with defaults.
	if v, ok := keys["doctors"]; ok {
		var doctors []Doctor
		if err := json.Unmarshal(v, &doctors); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "doctors", err)
		}
		base.Doctors = doctors
	}
	if v, ok := keys["patients"]; ok {
		var patients []Patient
		if err := json.Unmarshal(v, &patients); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "patients", err)
		}
		base.Patients = patients
	}
	if v, ok := keys["appointments"]; ok {
		var appointments []Appointment
		if err := json.Unmarshal(v, &appointments); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "appointments", err)
		}
		base.Appointments = appointments
	}
	if v, ok := keys["pharmacyItems"]; ok {
		var items []PharmacyItem
		if err := json.Unmarshal(v, &items); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "pharmacyItems", err)
		}
		base.PharmacyItems = items
	}
	if v, ok := keys["labReports"]; ok {
		var reports []LabReport
		if err := json.Unmarshal(v, &reports); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "labReports", err)
		}
		base.LabReports = reports
	}
	if v, ok := keys["billing"]; ok {
		var billing BillingSummary
		if err := json.Unmarshal(v, &billing); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "billing", err)
		}
		base.Billing = billing
	}
	if v, ok := keys["dashboardSnapshot"]; ok {
		var dashboard DashboardSnapshot
		if err := json.Unmarshal(v, &dashboard); err != nil {
			return nil, fmt.Errorf("decode snapshot key %q: %w", "dashboardSnapshot", err)
		}
		base.Dashboard = dashboard
	}

	return base, nil
}

// persistLocked serializes the whole state into the repository slot. Failure
// is logged, never propagated: the in-memory state stays authoritative for the
// rest of the session. Callers must hold at least a read lock.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode snapshot")
		return
	}
	if err := s.repo.Save(ctx, data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

// Reset discards all runtime state, restores the compiled-in defaults and
// persists that restoration immediately.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = defaultState()
	s.persistLocked(ctx)
}

// -- Read accessors (all return fresh copies) --

func (s *Store) Doctors() []Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Doctor, len(s.state.Doctors))
	copy(out, s.state.Doctors)
	return out
}

func (s *Store) DoctorByID(id string) (Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.state.Doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, ErrNotFound
}

func (s *Store) Patients() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Patient, len(s.state.Patients))
	copy(out, s.state.Patients)
	return out
}

func (s *Store) PatientByID(id string) (Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Patients {
		if p.ID == id {
			return p, nil
		}
	}
	return Patient{}, ErrNotFound
}

func (s *Store) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appointment, len(s.state.Appointments))
	for i, a := range s.state.Appointments {
		out[i] = copyAppointment(a)
	}
	return out
}

func (s *Store) AppointmentByID(id string) (Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.Appointments {
		if a.ID == id {
			return copyAppointment(a), nil
		}
	}
	return Appointment{}, ErrNotFound
}

func (s *Store) PharmacyItems() []PharmacyItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PharmacyItem, len(s.state.PharmacyItems))
	copy(out, s.state.PharmacyItems)
	return out
}

func (s *Store) LabReports() []LabReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]LabReport, len(s.state.LabReports))
	for i, r := range s.state.LabReports {
		out[i] = copyLabReport(r)
	}
	return out
}

func (s *Store) Billing() BillingSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Billing
}

// -- Derivations --

// Dashboard returns the stored snapshot overlaid with counts computed fresh
// from the live collections. The derived fields are never read from the
// stored singleton.
func (s *Store) Dashboard() DashboardOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	low := 0
	for _, item := range s.state.PharmacyItems {
		if lowStock(item.Status) {
			low++
		}
	}
	return DashboardOverview{
		DashboardSnapshot:      s.state.Dashboard,
		TotalDoctors:           len(s.state.Doctors),
		TotalPatientsToday:     len(s.state.Patients),
		TotalAppointmentsToday: len(s.state.Appointments),
		LowStockCount:          low,
	}
}

// LowStock summarizes the pharmacy collection: every item whose status is one
// of LOW, CRITICAL, OUT, in source order, plus the per-status counts.
func (s *Store) LowStock() LowStockSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := LowStockSummary{
		TotalTracked: len(s.state.PharmacyItems),
		Items:        []PharmacyItem{},
	}
	for _, item := range s.state.PharmacyItems {
		if !lowStock(item.Status) {
			continue
		}
		sum.Items = append(sum.Items, item)
		sum.LowCount++
		switch item.Status {
		case StockCritical:
			sum.CriticalCount++
		case StockOut:
			sum.OutOfStockCount++
		}
	}
	return sum
}

// -- Mutations --

// NewAppointment carries the caller-supplied fields for CreateAppointment.
// Everything but PatientName and DoctorID is optional.
type NewAppointment struct {
	Token       string
	PatientName string
	PatientID   *string
	DoctorID    string
	DoctorName  string
	Department  string
	Type        string
	Time        string
}

// CreateAppointment materializes a new appointment with defaults for omitted
// fields, a fresh identifier and status forced to PENDING regardless of input,
// appends it at the end of the collection and persists. Returns the full
// record.
func (s *Store) CreateAppointment(ctx context.Context, in NewAppointment) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt := Appointment{
		ID:          GenerateID("APT"),
		Token:       in.Token,
		PatientName: in.PatientName,
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		DoctorName:  in.DoctorName,
		Department:  in.Department,
		Type:        in.Type,
		Time:        in.Time,
		Status:      AppointmentPending,
	}
	if apt.Token == "" {
		apt.Token = fmt.Sprintf("T-%d", len(s.state.Appointments)+1)
	}
	if apt.DoctorName == "" {
		apt.DoctorName = "Unknown doctor"
	}
	if apt.Department == "" {
		apt.Department = "General"
	}
	if apt.Type == "" {
		apt.Type = "OPD"
	}
	if apt.Time == "" {
		apt.Time = "To be decided"
	}

	s.state.Appointments = append(s.state.Appointments, apt)
	s.persistLocked(ctx)
	return copyAppointment(apt)
}

// UpdateAppointmentStatus stores the given status verbatim on the matching
// appointment; no enum validation is performed. Returns the updated record or
// ErrNotFound, in which case the collection is untouched.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id, status string) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Appointments {
		if s.state.Appointments[i].ID != id {
			continue
		}
		s.state.Appointments[i].Status = status
		s.persistLocked(ctx)
		return copyAppointment(s.state.Appointments[i]), nil
	}
	return Appointment{}, ErrNotFound
}

// -- Copy helpers for records carrying pointer fields --

func copyAppointment(a Appointment) Appointment {
	if a.PatientID != nil {
		pid := *a.PatientID
		a.PatientID = &pid
	}
	return a
}

func copyLabReport(r LabReport) LabReport {
	if r.TATMinutes != nil {
		tat := *r.TATMinutes
		r.TATMinutes = &tat
	}
	if r.VerifiedAt != nil {
		v := *r.VerifiedAt
		r.VerifiedAt = &v
	}
	return r
}
