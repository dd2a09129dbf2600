package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/hrmslite/internal/app/models"
)

// Attendance error types
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// buildFilterClauses translates an attendance filter into WHERE clauses and
// positional arguments. Clauses reference the attendance table as "a".
func buildFilterClauses(filter models.AttendanceFilter) ([]string, []interface{}) {
	var clauses []string
	var args []interface{}

	if len(filter.EmployeeIDs) > 0 {
		args = append(args, filter.EmployeeIDs)
		clauses = append(clauses, fmt.Sprintf("a.employee_id = ANY($%d)", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		clauses = append(clauses, fmt.Sprintf("a.status = $%d", len(args)))
	}

	return clauses, args
}

// GetAll retrieves attendance records matching the filter, ordered by date
// descending then by identity descending, each enriched with the owning
// employee's name when resolvable
func (r *AttendanceRepository) GetAll(ctx context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
	`

	clauses, args := buildFilterClauses(filter)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY a.date DESC, a.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// GetSummary returns the Present/Absent counts for the filter. A status
// missing from the result set means zero, not omission.
func (r *AttendanceRepository) GetSummary(ctx context.Context, filter models.AttendanceFilter) (models.AttendanceSummary, error) {
	query := `
		SELECT a.status, COUNT(a.id)
		FROM attendance a
	`

	clauses, args := buildFilterClauses(filter)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " GROUP BY a.status"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return models.AttendanceSummary{}, fmt.Errorf("error retrieving attendance summary: %w", err)
	}
	defer rows.Close()

	var summary models.AttendanceSummary
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return models.AttendanceSummary{}, err
		}
		switch models.AttendanceStatus(status) {
		case models.StatusPresent:
			summary.Present = count
		case models.StatusAbsent:
			summary.Absent = count
		}
	}

	if err := rows.Err(); err != nil {
		return models.AttendanceSummary{}, err
	}

	return summary, nil
}

// GetByID retrieves an attendance record by its identity.
// Returns nil without error when no record matches.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.id = $1
	`

	record, err := scanAttendanceRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeID retrieves all attendance records for one employee,
// ordered by date descending
func (r *AttendanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC, a.id DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance for employee: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// GetByEmployeeAndDate retrieves the record for one employee on one date.
// Used for duplicate detection before insert. Returns nil without error when
// no record matches.
func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*models.Attendance, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, e.full_name
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	record, err := scanAttendanceRow(r.db.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving attendance by employee and date: %w", err)
	}

	return record, nil
}

// Create inserts a new attendance record and fills in the system-assigned
// identity and creation timestamp. A unique violation on
// uq_attendance_employee_date surfaces to the caller unchanged so it can be
// mapped to the same conflict the pre-check would have produced.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		attendance.EmployeeID,
		attendance.Date,
		string(attendance.Status),
	).Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// UpdateStatus updates the status of an existing record in place. Date and
// employee are immutable through this path.
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id int64, status models.AttendanceStatus) (*models.Attendance, error) {
	query := `
		UPDATE attendance
		SET status = $1
		WHERE id = $2
		RETURNING id, employee_id, date, created_at
	`

	var record models.Attendance
	err := r.db.QueryRow(ctx, query, string(status), id).Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error updating attendance status: %w", err)
	}
	record.Status = status

	return &record, nil
}

// CountByDateAndStatus counts records with an exact date and status
func (r *AttendanceRepository) CountByDateAndStatus(ctx context.Context, date time.Time, status models.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		date, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting attendance: %w", err)
	}
	return count, nil
}

// scanAttendanceRow scans a single joined attendance row
func scanAttendanceRow(row pgx.Row) (*models.Attendance, error) {
	var record models.Attendance
	var status string
	if err := row.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&status,
		&record.CreatedAt,
		&record.EmployeeName,
	); err != nil {
		return nil, err
	}
	record.Status = models.AttendanceStatus(status)
	return &record, nil
}

// scanAttendanceRows scans all joined attendance rows
func scanAttendanceRows(rows pgx.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		var status string
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&status,
			&record.CreatedAt,
			&record.EmployeeName,
		); err != nil {
			return nil, err
		}
		record.Status = models.AttendanceStatus(status)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
