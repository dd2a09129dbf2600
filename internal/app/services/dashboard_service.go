package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
)

// dashboardService implements DashboardService as a pure read composition
// over the employee directory and the attendance ledger
type dashboardService struct {
	employeeService   EmployeeService
	attendanceService AttendanceService
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(employeeService EmployeeService, attendanceService AttendanceService) DashboardService {
	return &dashboardService{
		employeeService:   employeeService,
		attendanceService: attendanceService,
	}
}

// GetStats returns the employee total and the Present/Absent counts for the
// target date
func (s *dashboardService) GetStats(ctx context.Context, target time.Time) (*DashboardStats, error) {
	total, err := s.employeeService.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting employees: %w", err)
	}

	present, err := s.attendanceService.CountByDateAndStatus(ctx, target, models.StatusPresent)
	if err != nil {
		return nil, fmt.Errorf("error counting present records: %w", err)
	}

	absent, err := s.attendanceService.CountByDateAndStatus(ctx, target, models.StatusAbsent)
	if err != nil {
		return nil, fmt.Errorf("error counting absent records: %w", err)
	}

	return &DashboardStats{
		TotalEmployees: total,
		Present:        present,
		Absent:         absent,
	}, nil
}
