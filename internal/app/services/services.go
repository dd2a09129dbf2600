package services

import (
	"context"
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
)

// Repository interfaces are declared on the consumer side so the services
// stay free of storage specifics. The pgx implementations live in
// internal/app/repositories.

// EmployeeRepository is the persistence gateway for employees
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, employeeID string) error
	Count(ctx context.Context) (int64, error)
}

// AttendanceRepository is the persistence gateway for attendance records
type AttendanceRepository interface {
	GetAll(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error)
	GetSummary(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceSummary, error)
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]*models.Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.Attendance, error)
	Create(ctx context.Context, attendance *models.Attendance) error
	UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) (*models.Attendance, error)
	CountByDateAndStatus(ctx context.Context, date time.Time, status models.AttendanceStatus) (int64, error)
}

// EmployeeService handles employee directory operations
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	CountEmployees(ctx context.Context) (int64, error)
}

// AttendanceService handles attendance ledger operations
type AttendanceService interface {
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, models.AttendanceSummary, error)
	GetEmployeeAttendance(ctx context.Context, employeeID string) ([]*models.Attendance, error)
	MarkAttendance(ctx context.Context, employeeID string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error)
	MarkBulkAttendance(ctx context.Context, employeeIDs []string, date time.Time, status models.AttendanceStatus) (*BulkMarkResult, error)
	UpdateAttendanceStatus(ctx context.Context, id int64, status models.AttendanceStatus) (*models.Attendance, error)
	CountByDateAndStatus(ctx context.Context, date time.Time, status models.AttendanceStatus) (int64, error)
}

// DashboardService composes dashboard aggregates from the two ledgers
type DashboardService interface {
	GetStats(ctx context.Context, target time.Time) (*DashboardStats, error)
}

// DashboardStats holds the dashboard aggregate counts for one date
type DashboardStats struct {
	TotalEmployees int64
	Present        int64
	Absent         int64
}
