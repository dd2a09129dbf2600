package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/db"
)

// Employee error types
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

// GetAll retrieves all employees ordered by creation time, newest first
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query := `
		SELECT id, employee_id, full_name, email, department, created_at, updated_at
		FROM employees
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.EmployeeID,
			&employee.FullName,
			&employee.Email,
			&employee.Department,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmployeeID retrieves an employee by its external identifier.
// Returns nil without error when no employee matches.
func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	query := `
		SELECT id, employee_id, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return &employee, nil
}

// GetByEmail retrieves an employee by email. Used for duplicate detection,
// not part of the public read surface. Returns nil without error when no
// employee matches.
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	query := `
		SELECT id, employee_id, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var employee models.Employee
	err := r.db.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving employee by email: %w", err)
	}

	return &employee, nil
}

// Create inserts a new employee and fills in the system-assigned identity
// and timestamps
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.FullName,
		employee.Email,
		employee.Department,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return err
	}

	return nil
}

// Delete removes an employee and all of its attendance records within a
// single transaction. The schema-level ON DELETE CASCADE is the backstop,
// the explicit delete keeps both writes in one commit-or-rollback scope.
func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
			return fmt.Errorf("error deleting attendance records: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
		if err != nil {
			return fmt.Errorf("error deleting employee: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrEmployeeNotFound
		}

		return nil
	})
}

// Count returns the total number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}
