package models

import "time"

// Attendance represents a single attendance record for an employee on a date.
// EmployeeName is resolved from the owning employee when available and is not
// stored on the record itself.
type Attendance struct {
	ID           int64            `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	EmployeeName *string          `json:"employee_name,omitempty"`
}

// AttendanceFilter narrows attendance queries. Zero values mean "no filter".
// DateFrom and DateTo are inclusive bounds.
type AttendanceFilter struct {
	EmployeeIDs []string
	DateFrom    *time.Time
	DateTo      *time.Time
	Status      *AttendanceStatus
}

// WithoutStatus returns a copy of the filter with the status filter cleared.
// Summary counts ignore the status filter so totals always reflect both
// statuses.
func (f AttendanceFilter) WithoutStatus() AttendanceFilter {
	f.Status = nil
	return f
}

// AttendanceSummary holds aggregate Present/Absent counts for a filter set
type AttendanceSummary struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
}
