package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/pkg/apperrors"
)

type attendanceFixture struct {
	employeeRepo   *fakeEmployeeRepo
	attendanceRepo *fakeAttendanceRepo
	svc            AttendanceService
}

func newAttendanceFixture(t *testing.T, employeeIDs ...string) *attendanceFixture {
	t.Helper()
	employeeRepo := newFakeEmployeeRepo()
	for i, id := range employeeIDs {
		emp := &models.Employee{
			EmployeeID: id,
			FullName:   "Employee " + id,
			Email:      id + "@example.com",
			Department: "Engineering",
		}
		if err := employeeRepo.Create(context.Background(), emp); err != nil {
			t.Fatalf("seeding employee %d: %v", i, err)
		}
	}
	attendanceRepo := newFakeAttendanceRepo()
	return &attendanceFixture{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		svc:            NewAttendanceService(attendanceRepo, employeeRepo, zerolog.Nop()),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMarkAttendance(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	ctx := context.Background()

	record, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 10), models.StatusPresent)
	if err != nil {
		t.Fatalf("MarkAttendance() error = %v", err)
	}
	if record.ID == 0 {
		t.Error("expected a generated ID")
	}
	if record.EmployeeName == nil || *record.EmployeeName != "Employee EMP-001" {
		t.Errorf("EmployeeName = %v, want Employee EMP-001", record.EmployeeName)
	}
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	fx := newAttendanceFixture(t)

	_, err := fx.svc.MarkAttendance(context.Background(), "EMP-404", day(2025, 3, 10), models.StatusPresent)
	if !errors.Is(err, apperrors.ErrEmployeeNotFound) {
		t.Errorf("error = %v, want ErrEmployeeNotFound", err)
	}
}

func TestMarkAttendanceDuplicate(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	ctx := context.Background()

	if _, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 10), models.StatusPresent); err != nil {
		t.Fatalf("MarkAttendance() error = %v", err)
	}

	_, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 10), models.StatusAbsent)
	if !errors.Is(err, apperrors.ErrAttendanceAlreadyExists) {
		t.Errorf("error = %v, want ErrAttendanceAlreadyExists", err)
	}

	// A different date for the same employee is fine
	if _, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 11), models.StatusAbsent); err != nil {
		t.Errorf("MarkAttendance() on another date error = %v", err)
	}
}

// A concurrent double-submission hits the unique constraint instead of the
// pre-check. It must surface the same conflict.
func TestMarkAttendanceConstraintViolationAtInsert(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	fx.attendanceRepo.createErrFor["EMP-001"] = &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}

	_, err := fx.svc.MarkAttendance(context.Background(), "EMP-001", day(2025, 3, 10), models.StatusPresent)
	if !errors.Is(err, apperrors.ErrAttendanceAlreadyExists) {
		t.Errorf("error = %v, want ErrAttendanceAlreadyExists", err)
	}
}

func TestMarkBulkAttendance(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001", "EMP-002")
	ctx := context.Background()

	// EMP-002 already has a record on the target date
	if _, err := fx.svc.MarkAttendance(ctx, "EMP-002", day(2025, 3, 10), models.StatusAbsent); err != nil {
		t.Fatalf("seeding attendance: %v", err)
	}

	result, err := fx.svc.MarkBulkAttendance(ctx, []string{"EMP-001", "EMP-002", "EMP-404"}, day(2025, 3, 10), models.StatusPresent)
	if err != nil {
		t.Fatalf("MarkBulkAttendance() error = %v", err)
	}

	if len(result.Created) != 1 || result.Created[0].EmployeeID != "EMP-001" {
		t.Errorf("created = %+v, want exactly EMP-001", result.Created)
	}

	wantSkipped := []SkippedEntry{
		{EmployeeID: "EMP-002", Reason: SkipReasonAlreadyMarked},
		{EmployeeID: "EMP-404", Reason: SkipReasonNotFound},
	}
	if len(result.Skipped) != len(wantSkipped) {
		t.Fatalf("skipped = %+v, want %+v", result.Skipped, wantSkipped)
	}
	for i, want := range wantSkipped {
		if result.Skipped[i] != want {
			t.Errorf("skipped[%d] = %+v, want %+v", i, result.Skipped[i], want)
		}
	}
}

func TestMarkBulkAttendanceInsertFailureSkipsEntry(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001", "EMP-002")
	fx.attendanceRepo.createErrFor["EMP-001"] = &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}

	result, err := fx.svc.MarkBulkAttendance(context.Background(), []string{"EMP-001", "EMP-002"}, day(2025, 3, 10), models.StatusPresent)
	if err != nil {
		t.Fatalf("MarkBulkAttendance() error = %v", err)
	}

	if len(result.Created) != 1 || result.Created[0].EmployeeID != "EMP-002" {
		t.Errorf("created = %+v, want exactly EMP-002", result.Created)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != (SkippedEntry{EmployeeID: "EMP-001", Reason: SkipReasonDatabaseError}) {
		t.Errorf("skipped = %+v, want EMP-001 with database error reason", result.Skipped)
	}
}

func TestListAttendanceSummaryIgnoresStatusFilter(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001", "EMP-002", "EMP-003")
	ctx := context.Background()

	for _, seed := range []struct {
		id     string
		status models.AttendanceStatus
	}{
		{"EMP-001", models.StatusPresent},
		{"EMP-002", models.StatusPresent},
		{"EMP-003", models.StatusAbsent},
	} {
		if _, err := fx.svc.MarkAttendance(ctx, seed.id, day(2025, 3, 10), seed.status); err != nil {
			t.Fatalf("seeding attendance: %v", err)
		}
	}

	status := models.StatusAbsent
	records, summary, err := fx.svc.ListAttendance(ctx, models.AttendanceFilter{Status: &status})
	if err != nil {
		t.Fatalf("ListAttendance() error = %v", err)
	}

	if len(records) != 1 {
		t.Errorf("got %d records, want 1 (only the absent one)", len(records))
	}
	if summary.Present != 2 || summary.Absent != 1 {
		t.Errorf("summary = %+v, want Present=2 Absent=1 regardless of status filter", summary)
	}
}

func TestListAttendanceDateRange(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	ctx := context.Background()

	for d := 10; d <= 14; d++ {
		if _, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, d), models.StatusPresent); err != nil {
			t.Fatalf("seeding attendance: %v", err)
		}
	}

	from := day(2025, 3, 11)
	to := day(2025, 3, 13)
	records, summary, err := fx.svc.ListAttendance(ctx, models.AttendanceFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("ListAttendance() error = %v", err)
	}

	// Both bounds are inclusive
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
	if summary.Present != 3 {
		t.Errorf("summary.Present = %d, want 3", summary.Present)
	}
}

func TestGetEmployeeAttendance(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	ctx := context.Background()

	if _, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 10), models.StatusPresent); err != nil {
		t.Fatalf("seeding attendance: %v", err)
	}

	records, err := fx.svc.GetEmployeeAttendance(ctx, "EMP-001")
	if err != nil {
		t.Fatalf("GetEmployeeAttendance() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}

	_, err = fx.svc.GetEmployeeAttendance(ctx, "EMP-404")
	if !errors.Is(err, apperrors.ErrEmployeeNotFound) {
		t.Errorf("error = %v, want ErrEmployeeNotFound", err)
	}
}

func TestUpdateAttendanceStatus(t *testing.T) {
	fx := newAttendanceFixture(t, "EMP-001")
	ctx := context.Background()

	created, err := fx.svc.MarkAttendance(ctx, "EMP-001", day(2025, 3, 10), models.StatusPresent)
	if err != nil {
		t.Fatalf("MarkAttendance() error = %v", err)
	}

	updated, err := fx.svc.UpdateAttendanceStatus(ctx, created.ID, models.StatusAbsent)
	if err != nil {
		t.Fatalf("UpdateAttendanceStatus() error = %v", err)
	}

	if updated.Status != models.StatusAbsent {
		t.Errorf("status = %q, want Absent", updated.Status)
	}
	// Date and employee are immutable through this path
	if !updated.Date.Equal(created.Date) || updated.EmployeeID != created.EmployeeID {
		t.Errorf("date/employee changed: %+v", updated)
	}
	if updated.EmployeeName == nil || *updated.EmployeeName != "Employee EMP-001" {
		t.Errorf("EmployeeName = %v, want Employee EMP-001", updated.EmployeeName)
	}
}

func TestUpdateAttendanceStatusNotFound(t *testing.T) {
	fx := newAttendanceFixture(t)

	_, err := fx.svc.UpdateAttendanceStatus(context.Background(), 99, models.StatusAbsent)
	if !errors.Is(err, apperrors.ErrAttendanceNotFound) {
		t.Errorf("error = %v, want ErrAttendanceNotFound", err)
	}
}
