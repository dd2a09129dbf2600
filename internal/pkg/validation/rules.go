package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/models/dto"
)

// Validation rule patterns
var (
	// Employee identifier pattern - alphanumeric, hyphen and underscore only
	EmployeeIDPattern = `^[A-Za-z0-9_-]+$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	EmployeeID *regexp.Regexp
	Email      *regexp.Regexp
}{
	EmployeeID: regexp.MustCompile(EmployeeIDPattern),
	Email:      regexp.MustCompile(EmailPattern),
}

// futureDateAllowance is how far past the server's current date an attendance
// date may lie. One day absorbs client/server timezone skew.
const futureDateAllowance = 24 * time.Hour

// WithinAllowedWindow reports whether an attendance date does not exceed
// "now + 1 day". There is no lower bound, arbitrarily old dates are allowed.
func WithinAllowedWindow(date, now time.Time) bool {
	limit := now.AddDate(0, 0, 1)
	cutoff := time.Date(limit.Year(), limit.Month(), limit.Day(), 0, 0, 0, 0, time.UTC)
	return !date.After(cutoff)
}

// ValidateCreateEmployee checks an employee creation request and normalizes
// its string fields in place. The stored values are the trimmed forms.
func ValidateCreateEmployee(req *dto.CreateEmployeeRequest) *dto.ValidationErrors {
	errs := dto.NewValidationErrors()

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)

	if req.EmployeeID == "" {
		errs.AddError("employee_id", "Employee ID is required")
	} else if !CompiledPatterns.EmployeeID.MatchString(req.EmployeeID) {
		errs.AddError("employee_id", "Employee ID must contain only alphanumeric characters, hyphens, and underscores")
	}

	if req.FullName == "" {
		errs.AddError("full_name", "Full name is required")
	}

	if req.Email == "" {
		errs.AddError("email", "Email is required")
	} else if !CompiledPatterns.Email.MatchString(req.Email) {
		errs.AddError("email", "Email must be a valid email address")
	}

	if req.Department == "" {
		errs.AddError("department", "Department is required")
	}

	return errs
}

// ValidateAttendanceDate parses and checks an attendance date string
func ValidateAttendanceDate(value string, errs *dto.ValidationErrors) (time.Time, bool) {
	date, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		errs.AddError("date", "Date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	if !WithinAllowedWindow(date, time.Now()) {
		errs.AddError("date", "Attendance date cannot be in the future")
		return time.Time{}, false
	}
	return date, true
}

// ValidateAttendanceStatus checks that a status is one of the enumerated
// literals, case-sensitive
func ValidateAttendanceStatus(value string, errs *dto.ValidationErrors) (models.AttendanceStatus, bool) {
	status := models.AttendanceStatus(value)
	if !status.IsValid() {
		errs.AddError("status", "Status must be one of: Present, Absent")
		return "", false
	}
	return status, true
}

// ValidateMarkAttendance checks a single attendance marking request and
// returns the parsed date and status when valid
func ValidateMarkAttendance(req *dto.MarkAttendanceRequest) (time.Time, models.AttendanceStatus, *dto.ValidationErrors) {
	errs := dto.NewValidationErrors()

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		errs.AddError("employee_id", "Employee ID is required")
	} else if !CompiledPatterns.EmployeeID.MatchString(req.EmployeeID) {
		errs.AddError("employee_id", "Employee ID must contain only alphanumeric characters, hyphens, and underscores")
	}

	date, _ := ValidateAttendanceDate(req.Date, errs)
	status, _ := ValidateAttendanceStatus(req.Status, errs)

	return date, status, errs
}

// ValidateBulkMarkAttendance checks a bulk attendance marking request and
// returns the parsed date and status when valid
func ValidateBulkMarkAttendance(req *dto.BulkMarkAttendanceRequest) (time.Time, models.AttendanceStatus, *dto.ValidationErrors) {
	errs := dto.NewValidationErrors()

	if len(req.EmployeeIDs) == 0 {
		errs.AddError("employee_ids", "At least one employee must be selected")
	}

	date, _ := ValidateAttendanceDate(req.Date, errs)
	status, _ := ValidateAttendanceStatus(req.Status, errs)

	return date, status, errs
}

// ValidateUpdateAttendance checks an attendance status update request
func ValidateUpdateAttendance(req *dto.UpdateAttendanceRequest) (models.AttendanceStatus, *dto.ValidationErrors) {
	errs := dto.NewValidationErrors()
	status, _ := ValidateAttendanceStatus(req.Status, errs)
	return status, errs
}
