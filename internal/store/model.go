package store

// Known status values. The store accepts and persists any string verbatim
// (the demo contract is permissive); these constants document the set the
// seed data uses so callers can opt into stricter handling.
const (
	DoctorOnDuty    = "ON_DUTY"
	DoctorInOT      = "IN_OT"
	DoctorICURounds = "ICU_ROUNDS"
	DoctorOffDuty   = "OFF_DUTY"

	PatientOPD = "OPD"
	PatientIPD = "IPD"
	PatientER  = "ER"

	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCheckedIn = "CHECKED_IN"
	AppointmentCancelled = "CANCELLED"
	AppointmentNoShow    = "NO_SHOW"

	StockOK       = "OK"
	StockLow      = "LOW"
	StockCritical = "CRITICAL"
	StockOut      = "OUT"

	LabCompleted       = "COMPLETED"
	LabInProgress      = "IN_PROGRESS"
	LabSampleCollected = "SAMPLE_COLLECTED"
	LabCancelled       = "CANCELLED"
)

// FilterAll is the sentinel that disables a categorical filter.
const FilterAll = "ALL"

type Doctor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	SlotsToday  int    `json:"slotsToday"`
	SlotsBooked int    `json:"slotsBooked"`
	Status      string `json:"status"`
}

type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Department string `json:"department"`
	DoctorID   string `json:"doctorId"`
	Status     string `json:"status"`
	LastEvent  string `json:"lastEvent"`
}

// Appointment's PatientID is a weak reference: it may be nil and is never
// validated against the patients collection.
type Appointment struct {
	ID          string  `json:"id"`
	Token       string  `json:"token"`
	PatientName string  `json:"patientName"`
	PatientID   *string `json:"patientId"`
	DoctorID    string  `json:"doctorId"`
	DoctorName  string  `json:"doctorName"`
	Department  string  `json:"department"`
	Type        string  `json:"type"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
}

// PharmacyItem's Status is stored, not derived from Stock; no invariant ties
// the two together.
type PharmacyItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Form         string `json:"form"`
	Stock        int    `json:"stock"`
	Unit         string `json:"unit"`
	Status       string `json:"status"`
	LastMovement string `json:"lastMovement"`
}

type LabReport struct {
	ID          string  `json:"id"`
	TestName    string  `json:"testName"`
	PatientName string  `json:"patientName"`
	PatientID   string  `json:"patientId"`
	Department  string  `json:"department"`
	Status      string  `json:"status"`
	TATMinutes  *int    `json:"tatMinutes"`
	CollectedAt string  `json:"collectedAt"`
	VerifiedAt  *string `json:"verifiedAt"`
}

// BillingSummary is a singleton record, one per store.
type BillingSummary struct {
	TodayRevenue     int    `json:"todayRevenue"`
	TodayBillsCount  int    `json:"todayBillsCount"`
	AverageBillValue int    `json:"averageBillValue"`
	PendingClearance int    `json:"pendingClearance"`
	LastSync         string `json:"lastSync"`
}

// DashboardSnapshot holds the stored half of the dashboard singleton. The
// derived counts live on DashboardOverview and are recomputed on every read.
type DashboardSnapshot struct {
	DailyConsultations  int    `json:"dailyConsultations"`
	RevenueToday        int    `json:"revenueToday"`
	BedOccupancyPercent int    `json:"bedOccupancyPercent"`
	EmergencyCases      int    `json:"emergencyCases"`
	StaffOnDuty         int    `json:"staffOnDuty"`
	LastUpdated         string `json:"lastUpdated"`
}

// DashboardOverview is what callers get: the stored snapshot overlaid with
// counts derived fresh from the live collections.
type DashboardOverview struct {
	DashboardSnapshot
	TotalDoctors           int `json:"totalDoctors"`
	TotalPatientsToday     int `json:"totalPatientsToday"`
	TotalAppointmentsToday int `json:"totalAppointmentsToday"`
	LowStockCount          int `json:"lowStockCount"`
}

type LowStockSummary struct {
	TotalTracked    int            `json:"totalTracked"`
	LowCount        int            `json:"lowCount"`
	CriticalCount   int            `json:"criticalCount"`
	OutOfStockCount int            `json:"outOfStockCount"`
	Items           []PharmacyItem `json:"items"`
}

// State aggregates every collection plus the two singletons. Its JSON shape
// is the persisted snapshot format.
type State struct {
	Doctors       []Doctor          `json:"doctors"`
	Patients      []Patient         `json:"patients"`
	Appointments  []Appointment     `json:"appointments"`
	PharmacyItems []PharmacyItem    `json:"pharmacyItems"`
	LabReports    []LabReport       `json:"labReports"`
	Billing       BillingSummary    `json:"billing"`
	Dashboard     DashboardSnapshot `json:"dashboardSnapshot"`
}

func lowStock(status string) bool {
	switch status {
	case StockLow, StockCritical, StockOut:
		return true
	}
	return false
}
