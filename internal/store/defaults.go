package store

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// defaultState builds a fresh copy of the compiled-in demo dataset. Every call
// allocates new records, so the result is always safe to mutate.
func defaultState() *State {
	return &State{
		Doctors: []Doctor{
			{ID: "DOC-001", Name: "Dr. Meera Nair", Department: "Cardiology", SlotsToday: 18, SlotsBooked: 14, Status: DoctorOnDuty},
			{ID: "DOC-002", Name: "Dr. Karthik Rao", Department: "Orthopedics", SlotsToday: 20, SlotsBooked: 17, Status: DoctorOnDuty},
			{ID: "DOC-003", Name: "Dr. Anjali Sharma", Department: "Pediatrics", SlotsToday: 16, SlotsBooked: 15, Status: DoctorInOT},
			{ID: "DOC-004", Name: "Dr. Joseph Menon", Department: "ICU / Critical Care", SlotsToday: 10, SlotsBooked: 9, Status: DoctorICURounds},
		},
		Patients: []Patient{
			{ID: "UHID-20261", Name: "Rahul Verma", Type: PatientOPD, Department: "Cardiology", DoctorID: "DOC-001", Status: "IN_CONSULT", LastEvent: "10:08 AM · Entered room"},
			{ID: "UHID-20262", Name: "Anita Sharma", Type: PatientOPD, Department: "Orthopedics", DoctorID: "DOC-002", Status: "WAITING", LastEvent: "09:56 AM · Checked-in"},
			{ID: "UHID-20237", Name: "Vikram Desai", Type: PatientIPD, Department: "ICU", DoctorID: "DOC-004", Status: "ICU_HIGH_RISK", LastEvent: "10:02 AM · ABG sample sent"},
			{ID: "UHID-20177", Name: "Rohan Gupta", Type: PatientER, Department: "Emergency", DoctorID: "DOC-004", Status: "TRIAGE", LastEvent: "10:11 AM · Triage started"},
		},
		Appointments: []Appointment{
			{ID: "APT-1001", Token: "A-01", PatientName: "Rahul Verma", PatientID: strPtr("UHID-20261"), DoctorID: "DOC-001", DoctorName: "Dr. Meera", Department: "Cardiology", Type: "OPD", Time: "10:00 AM", Status: AppointmentConfirmed},
			{ID: "APT-1002", Token: "A-02", PatientName: "Anita Sharma", PatientID: strPtr("UHID-20262"), DoctorID: "DOC-002", DoctorName: "Dr. Karthik", Department: "Orthopedics", Type: "OPD", Time: "10:15 AM", Status: AppointmentPending},
			{ID: "APT-1003", Token: "C-01", PatientName: "Vikram Desai", PatientID: strPtr("UHID-20237"), DoctorID: "DOC-004", DoctorName: "Dr. Menon", Department: "ICU", Type: "IPD_REVIEW", Time: "Ongoing", Status: AppointmentCheckedIn},
		},
		PharmacyItems: []PharmacyItem{
			{ID: "DRG-001", Name: "Inj. Adrenaline 1mg/ml", Code: "DRG-001", Form: "Ampoule", Stock: 18, Unit: "amp", Status: StockCritical, LastMovement: "Today · Issued to ER"},
			{ID: "DRG-050", Name: "Tab. Paracetamol 500mg", Code: "DRG-050", Form: "Tablet", Stock: 9420, Unit: "tab", Status: StockOK, LastMovement: "Today · Multiple wards"},
			{ID: "CON-200", Name: "N95 mask", Code: "CON-200", Form: "Consumable", Stock: 0, Unit: "pcs", Status: StockOut, LastMovement: "Yesterday · Last lot issued"},
		},
		LabReports: []LabReport{
			{ID: "LAB-0001", TestName: "CBC", PatientName: "Rahul Verma", PatientID: "UHID-20261", Department: "Pathology", Status: LabCompleted, TATMinutes: intPtr(35), CollectedAt: "09:20 AM", VerifiedAt: strPtr("09:55 AM")},
			{ID: "LAB-0002", TestName: "Troponin I", PatientName: "Rohan Gupta", PatientID: "UHID-20177", Department: "Biochemistry", Status: LabInProgress, TATMinutes: nil, CollectedAt: "10:05 AM", VerifiedAt: nil},
		},
		Billing: BillingSummary{
			TodayRevenue:     195500,
			TodayBillsCount:  73,
			AverageBillValue: 2680,
			PendingClearance: 5,
			LastSync:         "10:10 AM",
		},
		Dashboard: DashboardSnapshot{
			DailyConsultations:  182,
			RevenueToday:        195500,
			BedOccupancyPercent: 76,
			EmergencyCases:      14,
			StaffOnDuty:         89,
			LastUpdated:         "10:12 AM",
		},
	}
}
