package validation

import (
	"testing"
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/models/dto"
)

func TestWithinAllowedWindow(t *testing.T) {
	now := time.Date(2025, 6, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), true},
		{"day after tomorrow", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"far future", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"yesterday", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"years in the past", time.Date(2019, 2, 28, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinAllowedWindow(tt.date, now); got != tt.want {
				t.Errorf("WithinAllowedWindow(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestValidateCreateEmployee(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateEmployeeRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "EMP-001",
				FullName:   "Jane Doe",
				Email:      "jane.doe@example.com",
				Department: "Engineering",
			},
		},
		{
			name: "identifier with underscore and digits",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "emp_42",
				FullName:   "John Roe",
				Email:      "john@example.org",
				Department: "Sales",
			},
		},
		{
			name: "identifier with space",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "EMP 001",
				FullName:   "Jane Doe",
				Email:      "jane@example.com",
				Department: "Engineering",
			},
			wantFields: []string{"employee_id"},
		},
		{
			name: "identifier with unicode",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "EMPÖ01",
				FullName:   "Jane Doe",
				Email:      "jane@example.com",
				Department: "Engineering",
			},
			wantFields: []string{"employee_id"},
		},
		{
			name: "invalid email",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "EMP-002",
				FullName:   "Jane Doe",
				Email:      "not-an-email",
				Department: "Engineering",
			},
			wantFields: []string{"email"},
		},
		{
			name: "whitespace-only fields are missing",
			req: dto.CreateEmployeeRequest{
				EmployeeID: "   ",
				FullName:   "\t",
				Email:      " ",
				Department: "",
			},
			wantFields: []string{"employee_id", "full_name", "email", "department"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCreateEmployee(&tt.req)

			if len(tt.wantFields) == 0 {
				if errs.HasErrors() {
					t.Fatalf("expected no errors, got %+v", errs.Errors)
				}
				return
			}

			got := make(map[string]bool, len(errs.Errors))
			for _, e := range errs.Errors {
				got[e.Field] = true
			}
			for _, field := range tt.wantFields {
				if !got[field] {
					t.Errorf("expected error for field %q, got %+v", field, errs.Errors)
				}
			}
			if len(errs.Errors) != len(tt.wantFields) {
				t.Errorf("expected %d errors, got %d: %+v", len(tt.wantFields), len(errs.Errors), errs.Errors)
			}
		})
	}
}

func TestValidateCreateEmployeeTrimsInPlace(t *testing.T) {
	req := dto.CreateEmployeeRequest{
		EmployeeID: "  EMP-003  ",
		FullName:   " Jane Doe ",
		Email:      " jane@example.com ",
		Department: " Engineering ",
	}

	errs := ValidateCreateEmployee(&req)
	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %+v", errs.Errors)
	}

	if req.EmployeeID != "EMP-003" {
		t.Errorf("EmployeeID not trimmed: %q", req.EmployeeID)
	}
	if req.FullName != "Jane Doe" {
		t.Errorf("FullName not trimmed: %q", req.FullName)
	}
	if req.Email != "jane@example.com" {
		t.Errorf("Email not trimmed: %q", req.Email)
	}
	if req.Department != "Engineering" {
		t.Errorf("Department not trimmed: %q", req.Department)
	}
}

func TestValidateAttendanceDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).UTC().Format(dto.DateLayout)
	dayAfter := time.Now().AddDate(0, 0, 2).UTC().Format(dto.DateLayout)

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"past date", "2024-01-15", true},
		{"tomorrow", tomorrow, true},
		{"day after tomorrow", dayAfter, false},
		{"wrong format", "15/01/2024", false},
		{"not a date", "yesterday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := dto.NewValidationErrors()
			_, ok := ValidateAttendanceDate(tt.value, errs)
			if ok != tt.ok {
				t.Errorf("ValidateAttendanceDate(%q) ok = %v, want %v (%+v)", tt.value, ok, tt.ok, errs.Errors)
			}
			if !tt.ok && !errs.HasErrors() {
				t.Error("expected a field error on failure")
			}
		})
	}
}

func TestValidateAttendanceStatus(t *testing.T) {
	tests := []struct {
		value string
		want  models.AttendanceStatus
		ok    bool
	}{
		{"Present", models.StatusPresent, true},
		{"Absent", models.StatusAbsent, true},
		{"present", "", false},
		{"ABSENT", "", false},
		{"Late", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			errs := dto.NewValidationErrors()
			got, ok := ValidateAttendanceStatus(tt.value, errs)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValidateAttendanceStatus(%q) = (%q, %v), want (%q, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidateMarkAttendance(t *testing.T) {
	req := dto.MarkAttendanceRequest{
		EmployeeID: " EMP-001 ",
		Date:       "2025-03-10",
		Status:     "Present",
	}

	date, status, errs := ValidateMarkAttendance(&req)
	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %+v", errs.Errors)
	}
	if req.EmployeeID != "EMP-001" {
		t.Errorf("EmployeeID not trimmed: %q", req.EmployeeID)
	}
	if want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC); !date.Equal(want) {
		t.Errorf("date = %v, want %v", date, want)
	}
	if status != models.StatusPresent {
		t.Errorf("status = %q, want %q", status, models.StatusPresent)
	}
}

func TestValidateMarkAttendanceCollectsAllFieldErrors(t *testing.T) {
	req := dto.MarkAttendanceRequest{
		EmployeeID: "bad id!",
		Date:       "03/10/2025",
		Status:     "Late",
	}

	_, _, errs := ValidateMarkAttendance(&req)
	if len(errs.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %+v", len(errs.Errors), errs.Errors)
	}
}

func TestValidateBulkMarkAttendance(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := dto.BulkMarkAttendanceRequest{
			EmployeeIDs: []string{"EMP-001", "EMP-002"},
			Date:        "2025-03-10",
			Status:      "Absent",
		}
		_, status, errs := ValidateBulkMarkAttendance(&req)
		if errs.HasErrors() {
			t.Fatalf("expected no errors, got %+v", errs.Errors)
		}
		if status != models.StatusAbsent {
			t.Errorf("status = %q, want %q", status, models.StatusAbsent)
		}
	})

	t.Run("empty employee list", func(t *testing.T) {
		req := dto.BulkMarkAttendanceRequest{
			EmployeeIDs: []string{},
			Date:        "2025-03-10",
			Status:      "Present",
		}
		_, _, errs := ValidateBulkMarkAttendance(&req)
		if !errs.HasErrors() {
			t.Fatal("expected an error for empty employee list")
		}
		if errs.Errors[0].Field != "employee_ids" {
			t.Errorf("error field = %q, want employee_ids", errs.Errors[0].Field)
		}
	})
}

func TestValidateUpdateAttendance(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := dto.UpdateAttendanceRequest{Status: "Absent"}
		status, errs := ValidateUpdateAttendance(&req)
		if errs.HasErrors() {
			t.Fatalf("expected no errors, got %+v", errs.Errors)
		}
		if status != models.StatusAbsent {
			t.Errorf("status = %q, want %q", status, models.StatusAbsent)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		req := dto.UpdateAttendanceRequest{Status: "OnLeave"}
		_, errs := ValidateUpdateAttendance(&req)
		if !errs.HasErrors() {
			t.Fatal("expected an error for unknown status")
		}
	})
}
