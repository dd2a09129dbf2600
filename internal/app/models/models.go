package models

// AttendanceStatus defines the attendance status type
type AttendanceStatus string

// Attendance status constants
const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// IsValid reports whether the status is one of the enumerated literals.
// Comparison is case-sensitive, anything else is rejected at the boundary.
func (s AttendanceStatus) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}
