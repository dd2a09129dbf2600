package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/repositories"
	"github.com/ecetin/hrmslite/internal/pkg/apperrors"
	"github.com/ecetin/hrmslite/internal/pkg/dberrors"
)

// Schema constraint names backing the employee uniqueness invariants
const (
	constraintEmployeeID = "uq_employees_employee_id"
	constraintEmail      = "uq_employees_email"
)

// employeeService implements EmployeeService
type employeeService struct {
	employeeRepo EmployeeRepository
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees retrieves every employee, newest first
func (s *employeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	return employees, nil
}

// GetEmployee retrieves one employee by its external identifier
func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	if employee == nil {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return employee, nil
}

// CreateEmployee registers a new employee. The identifier check runs before
// the email check, first match wins. A uniqueness violation surfaced by the
// store at commit time (race between check and insert) is mapped to the same
// conflict the pre-check would have produced.
func (s *employeeService) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	existing, err := s.employeeRepo.GetByEmployeeID(ctx, employee.EmployeeID)
	if err != nil {
		return fmt.Errorf("error checking employee ID: %w", err)
	}
	if existing != nil {
		return apperrors.ErrEmployeeIDExists
	}

	existing, err = s.employeeRepo.GetByEmail(ctx, employee.Email)
	if err != nil {
		return fmt.Errorf("error checking employee email: %w", err)
	}
	if existing != nil {
		return apperrors.ErrEmailAlreadyExists
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		switch {
		case dberrors.IsUniqueConstraintViolation(err, constraintEmployeeID):
			return apperrors.ErrEmployeeIDExists
		case dberrors.IsUniqueConstraintViolation(err, constraintEmail):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrEmployeeIDExists
		}
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// DeleteEmployee removes an employee together with all of its attendance
// records
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

// CountEmployees returns the total number of employees
func (s *employeeService) CountEmployees(ctx context.Context) (int64, error) {
	return s.employeeRepo.Count(ctx)
}
