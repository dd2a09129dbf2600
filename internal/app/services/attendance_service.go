package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/repositories"
	"github.com/ecetin/hrmslite/internal/pkg/apperrors"
	"github.com/ecetin/hrmslite/internal/pkg/dberrors"
)

// Skip reasons reported by bulk marking
const (
	SkipReasonNotFound      = "Employee not found"
	SkipReasonAlreadyMarked = "Attendance already marked"
	SkipReasonDatabaseError = "Database error"
)

// SkippedEntry describes one bulk input that was not created
type SkippedEntry struct {
	EmployeeID string
	Reason     string
}

// BulkMarkResult folds the independent per-employee attempt outcomes into
// created and skipped lists, both preserving input order
type BulkMarkResult struct {
	Created []*models.Attendance
	Skipped []SkippedEntry
}

// attendanceService implements AttendanceService
type attendanceService struct {
	attendanceRepo AttendanceRepository
	employeeRepo   EmployeeRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo AttendanceRepository, employeeRepo EmployeeRepository, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// ListAttendance retrieves records matching the filter together with the
// Present/Absent summary. The summary is computed under the same employee
// and date filters but ignores the status filter, so the counts reflect both
// statuses regardless of the list view.
func (s *attendanceService) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, models.AttendanceSummary, error) {
	records, err := s.attendanceRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, models.AttendanceSummary{}, fmt.Errorf("error listing attendance: %w", err)
	}

	summary, err := s.attendanceRepo.GetSummary(ctx, filter.WithoutStatus())
	if err != nil {
		return nil, models.AttendanceSummary{}, fmt.Errorf("error summarizing attendance: %w", err)
	}

	return records, summary, nil
}

// GetEmployeeAttendance retrieves all records for one employee, newest date
// first. The employee must exist.
func (s *attendanceService) GetEmployeeAttendance(ctx context.Context, employeeID string) ([]*models.Attendance, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error checking employee: %w", err)
	}
	if employee == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance for employee: %w", err)
	}
	return records, nil
}

// MarkAttendance creates a single attendance record. The employee must exist
// and no record may exist for the same employee and date. A store-level
// uniqueness violation at commit time maps to the same conflict the
// pre-check would have produced, which covers concurrent double-submission.
func (s *attendanceService) MarkAttendance(ctx context.Context, employeeID string, date time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error checking employee: %w", err)
	}
	if employee == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("error checking existing attendance: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAttendanceAlreadyExists
	}

	record := &models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAttendanceAlreadyExists
		}
		return nil, fmt.Errorf("error creating attendance record: %w", err)
	}

	record.EmployeeName = &employee.FullName
	return record, nil
}

// MarkBulkAttendance marks attendance for a set of employees on one date
// with one status. Each employee is processed independently and
// sequentially; a failing row is recorded as skipped with a reason and never
// aborts the batch. Partial success is the expected outcome.
func (s *attendanceService) MarkBulkAttendance(ctx context.Context, employeeIDs []string, date time.Time, status models.AttendanceStatus) (*BulkMarkResult, error) {
	result := &BulkMarkResult{
		Created: make([]*models.Attendance, 0, len(employeeIDs)),
		Skipped: make([]SkippedEntry, 0),
	}

	for _, employeeID := range employeeIDs {
		employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("error checking employee: %w", err)
		}
		if employee == nil {
			result.Skipped = append(result.Skipped, SkippedEntry{EmployeeID: employeeID, Reason: SkipReasonNotFound})
			continue
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return nil, fmt.Errorf("error checking existing attendance: %w", err)
		}
		if existing != nil {
			result.Skipped = append(result.Skipped, SkippedEntry{EmployeeID: employeeID, Reason: SkipReasonAlreadyMarked})
			continue
		}

		record := &models.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
		}
		if err := s.attendanceRepo.Create(ctx, record); err != nil {
			// A late constraint violation (or any other insert failure)
			// downgrades to a skipped entry rather than aborting the batch.
			s.logger.Warn().Err(err).Str("employeeId", employeeID).Msg("Bulk attendance insert failed, skipping entry")
			result.Skipped = append(result.Skipped, SkippedEntry{EmployeeID: employeeID, Reason: SkipReasonDatabaseError})
			continue
		}

		record.EmployeeName = &employee.FullName
		result.Created = append(result.Created, record)
	}

	return result, nil
}

// UpdateAttendanceStatus updates the status of an existing record in place.
// Date and employee are immutable through this path.
func (s *attendanceService) UpdateAttendanceStatus(ctx context.Context, id int64, status models.AttendanceStatus) (*models.Attendance, error) {
	record, err := s.attendanceRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrAttendanceNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error updating attendance status: %w", err)
	}

	// Resolve the owning employee's name for the response
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, record.EmployeeID)
	if err == nil && employee != nil {
		record.EmployeeName = &employee.FullName
	}

	return record, nil
}

// CountByDateAndStatus counts records with an exact date and status.
// Used by the dashboard facade.
func (s *attendanceService) CountByDateAndStatus(ctx context.Context, date time.Time, status models.AttendanceStatus) (int64, error) {
	return s.attendanceRepo.CountByDateAndStatus(ctx, date, status)
}
