package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/models/dto"
	"github.com/ecetin/hrmslite/internal/app/services"
	"github.com/ecetin/hrmslite/internal/middleware"
	"github.com/ecetin/hrmslite/internal/pkg/validation"
)

// EmployeeController handles employee directory operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// ListEmployees retrieves all employees
// @Summary List all employees
// @Description Retrieves every employee ordered by creation time, newest first
// @Tags employees
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeListResponse} "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEmployeeListResponse(employees),
		Timestamp: time.Now(),
	})
}

// GetEmployee retrieves an employee by its external identifier
// @Summary Get employee details
// @Description Retrieves a single employee by its external identifier
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeId path string true "External employee identifier"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	employee, err := c.employeeService.GetEmployee(ctx, ctx.Param("employeeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEmployeeResponse(employee),
		Timestamp: time.Now(),
	})
}

// CreateEmployee registers a new employee
// @Summary Create a new employee
// @Description Creates a new employee with a unique identifier and email
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Employee ID or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if errs := validation.ValidateCreateEmployee(&req); errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ToErrorDetail()))
		return
	}

	employee := &models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := c.employeeService.CreateEmployee(ctx, employee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewEmployeeResponse(employee),
		Timestamp: time.Now(),
	})
}

// DeleteEmployee removes an employee and all of its attendance records
// @Summary Delete an employee
// @Description Deletes an employee by its external identifier, cascading to its attendance records
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeId path string true "External employee identifier"
// @Success 204 "Employee deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	if err := c.employeeService.DeleteEmployee(ctx, ctx.Param("employeeId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
