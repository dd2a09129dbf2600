package models

import (
	"testing"
	"time"
)

func TestAttendanceStatusIsValid(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		want   bool
	}{
		{StatusPresent, true},
		{StatusAbsent, true},
		{"present", false},
		{"PRESENT", false},
		{"Late", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.want {
			t.Errorf("AttendanceStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAttendanceFilterWithoutStatus(t *testing.T) {
	status := StatusPresent
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := AttendanceFilter{
		EmployeeIDs: []string{"EMP-001"},
		DateFrom:    &from,
		Status:      &status,
	}

	cleared := filter.WithoutStatus()

	if cleared.Status != nil {
		t.Error("expected status filter cleared")
	}
	if len(cleared.EmployeeIDs) != 1 || cleared.DateFrom == nil {
		t.Errorf("other filter fields changed: %+v", cleared)
	}
	if filter.Status == nil {
		t.Error("original filter mutated")
	}
}
