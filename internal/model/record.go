package model

// Status traffic-light status of a record
type Status string

const (
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusOnTrack  Status = "on-track"
)

// Record canonical plan/achievement row for one (team, product)
//
// A record with ReportDate == "" is a master-plan row (monthly target); a
// record with ReportDate set is a daily-achievement row for that exact header
// string. Plan is non-zero only on master rows, Actual only on daily rows.
type Record struct {
	Department string  `json:"department"`
	Team       string  `json:"team,omitempty"`
	Metric     string  `json:"metric"`
	Plan       float64 `json:"plan"`
	Actual     float64 `json:"actual"`
	Variance   float64 `json:"variance"`
	Unit       string  `json:"unit"`
	Status     Status  `json:"status"`
	Reasoning  string  `json:"reasoning,omitempty"`

	// ReportDate keeps the raw header text from the uploaded sheet
	// (e.g. "Thursday, January 01, 2026"), never a parsed date.
	ReportDate string `json:"reportDate,omitempty"`
}

// IsMaster reports whether the record is a master-plan row.
func (r *Record) IsMaster() bool {
	return r.ReportDate == ""
}

// HolidaysMap month-key ("YYYY-M") -> non-working day numbers (1-based)
type HolidaysMap map[string][]int

// LocksMap month-key ("YYYY-M") -> finalized flag
type LocksMap map[string]bool

// DepartmentSales the only department populated by uploads
const DepartmentSales = "Sales"
