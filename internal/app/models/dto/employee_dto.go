package dto

import (
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
)

// CreateEmployeeRequest represents an employee registration request
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required" example:"EMP-001"`
	FullName   string `json:"full_name" binding:"required" example:"Jane Doe"`
	Email      string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Department string `json:"department" binding:"required" example:"Engineering"`
}

// EmployeeResponse represents employee information returned by the API
type EmployeeResponse struct {
	ID         int64     `json:"id" example:"1"`
	EmployeeID string    `json:"employee_id" example:"EMP-001"`
	FullName   string    `json:"full_name" example:"Jane Doe"`
	Email      string    `json:"email" example:"jane.doe@example.com"`
	Department string    `json:"department" example:"Engineering"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmployeeListResponse represents the full employee list with its count
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total" example:"12"`
}

// NewEmployeeResponse maps an employee model to its response representation
func NewEmployeeResponse(employee *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		EmployeeID: employee.EmployeeID,
		FullName:   employee.FullName,
		Email:      employee.Email,
		Department: employee.Department,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

// NewEmployeeListResponse maps a list of employee models to a list response
func NewEmployeeListResponse(employees []*models.Employee) EmployeeListResponse {
	items := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		items = append(items, NewEmployeeResponse(employee))
	}
	return EmployeeListResponse{
		Employees: items,
		Total:     len(items),
	}
}
