package appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthsight/healthsight/internal/store"
)

// ListOptions filters the appointment list. Zero values mean "match all".
type ListOptions struct {
	Status   string // ALL, PENDING, CONFIRMED, CHECKED_IN, CANCELLED, NO_SHOW
	DoctorID string // ALL or a doctor id
	Type     string // ALL, OPD, IPD_REVIEW, TELE, ...
	Search   string // matched against patientName, patientId, doctorName, department, token
}

// CreateInput carries the caller-supplied fields for Create. PatientName and
// DoctorID are required, everything else defaults.
type CreateInput struct {
	Token       string  `json:"token"`
	PatientName string  `json:"patientName"`
	PatientID   *string `json:"patientId"`
	DoctorID    string  `json:"doctorId"`
	DoctorName  string  `json:"doctorName"`
	Department  string  `json:"department"`
	Type        string  `json:"type"`
	Time        string  `json:"time"`
}

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func matchAll(v string) bool {
	return v == "" || v == store.FilterAll
}

// List applies the categorical filters first (any mismatch rejects the
// record), then the free-text search, preserving collection order.
func (s *Service) List(opts ListOptions) []store.Appointment {
	q := strings.ToLower(strings.TrimSpace(opts.Search))

	out := []store.Appointment{}
	for _, apt := range s.store.Appointments() {
		if !matchAll(opts.Status) && apt.Status != opts.Status {
			continue
		}
		if !matchAll(opts.DoctorID) && apt.DoctorID != opts.DoctorID {
			continue
		}
		if !matchAll(opts.Type) && apt.Type != opts.Type {
			continue
		}
		if q != "" && !searchMatch(apt, q) {
			continue
		}
		out = append(out, apt)
	}
	return out
}

func searchMatch(apt store.Appointment, q string) bool {
	if strings.Contains(strings.ToLower(apt.PatientName), q) {
		return true
	}
	if apt.PatientID != nil && strings.Contains(strings.ToLower(*apt.PatientID), q) {
		return true
	}
	return strings.Contains(strings.ToLower(apt.DoctorName), q) ||
		strings.Contains(strings.ToLower(apt.Department), q) ||
		strings.Contains(strings.ToLower(apt.Token), q)
}

func (s *Service) Get(id string) (store.Appointment, error) {
	return s.store.AppointmentByID(id)
}

// Create books a new appointment. Status is always PENDING, whatever the
// caller sends.
func (s *Service) Create(ctx context.Context, in CreateInput) (store.Appointment, error) {
	if strings.TrimSpace(in.PatientName) == "" {
		return store.Appointment{}, fmt.Errorf("patientName is required")
	}
	if strings.TrimSpace(in.DoctorID) == "" {
		return store.Appointment{}, fmt.Errorf("doctorId is required")
	}
	apt := s.store.CreateAppointment(ctx, store.NewAppointment{
		Token:       in.Token,
		PatientName: in.PatientName,
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		DoctorName:  in.DoctorName,
		Department:  in.Department,
		Type:        in.Type,
		Time:        in.Time,
	})
	return apt, nil
}

// UpdateStatus stores the given status verbatim; unknown values are accepted
// by design. Returns store.ErrNotFound when the id does not exist.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (store.Appointment, error) {
	return s.store.UpdateAppointmentStatus(ctx, id, status)
}
