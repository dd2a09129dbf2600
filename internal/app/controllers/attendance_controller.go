package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/models/dto"
	"github.com/ecetin/hrmslite/internal/app/services"
	"github.com/ecetin/hrmslite/internal/middleware"
	"github.com/ecetin/hrmslite/internal/pkg/validation"
)

// AttendanceController handles attendance ledger operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// parseListFilter reads the optional employee/date/status filters from the
// query string. Returns false after writing the error response when a value
// is malformed.
func parseListFilter(ctx *gin.Context) (models.AttendanceFilter, bool) {
	var filter models.AttendanceFilter
	errs := dto.NewValidationErrors()

	filter.EmployeeIDs = ctx.QueryArray("employee_ids")

	if value := ctx.Query("date_from"); value != "" {
		date, err := time.Parse(dto.DateLayout, value)
		if err != nil {
			errs.AddError("date_from", "Date must be in YYYY-MM-DD format")
		} else {
			filter.DateFrom = &date
		}
	}

	if value := ctx.Query("date_to"); value != "" {
		date, err := time.Parse(dto.DateLayout, value)
		if err != nil {
			errs.AddError("date_to", "Date must be in YYYY-MM-DD format")
		} else {
			filter.DateTo = &date
		}
	}

	if value := ctx.Query("status"); value != "" {
		status := models.AttendanceStatus(value)
		if !status.IsValid() {
			errs.AddError("status", "Status must be one of: Present, Absent")
		} else {
			filter.Status = &status
		}
	}

	if errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ToErrorDetail()))
		return models.AttendanceFilter{}, false
	}

	return filter, true
}

// ListAttendance retrieves attendance records with optional filters
// @Summary List attendance records
// @Description Retrieves attendance records filtered by employees, date range and status, together with Present/Absent counts computed under the same filters minus status
// @Tags attendance
// @Accept json
// @Produce json
// @Param employee_ids query []string false "External employee identifiers (match any)"
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param status query string false "Status filter" Enums(Present, Absent)
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter values"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	filter, ok := parseListFilter(ctx)
	if !ok {
		return
	}

	records, summary, err := c.attendanceService.ListAttendance(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := dto.NewAttendanceResponses(records)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AttendanceListResponse{
			Attendance:   items,
			Total:        len(items),
			PresentCount: summary.Present,
			AbsentCount:  summary.Absent,
		},
		Timestamp: time.Now(),
	})
}

// GetEmployeeAttendance retrieves all attendance records for one employee
// @Summary Get attendance by employee
// @Description Retrieves all attendance records for one employee, newest date first
// @Tags attendance
// @Accept json
// @Produce json
// @Param employeeId path string true "External employee identifier"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse} "Attendance retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{employeeId} [get]
func (c *AttendanceController) GetEmployeeAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetEmployeeAttendance(ctx, ctx.Param("employeeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := dto.NewAttendanceResponses(records)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AttendanceListResponse{
			Attendance: items,
			Total:      len(items),
		},
		Timestamp: time.Now(),
	})
}

// MarkAttendance creates a single attendance record
// @Summary Mark attendance
// @Description Marks attendance for one employee on one date. At most one record may exist per employee and date.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already marked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	date, status, errs := validation.ValidateMarkAttendance(&req)
	if errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ToErrorDetail()))
		return
	}

	record, err := c.attendanceService.MarkAttendance(ctx, req.EmployeeID, date, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewAttendanceResponse(record),
		Timestamp: time.Now(),
	})
}

// MarkBulkAttendance marks attendance for multiple employees at once
// @Summary Mark attendance in bulk
// @Description Marks attendance for a set of employees on one date with one status. Each employee succeeds or is skipped with a reason independently; the batch never fails as a whole for per-row issues.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.BulkMarkAttendanceRequest true "Bulk attendance information"
// @Success 201 {object} dto.APIResponse{data=dto.BulkAttendanceResult} "Bulk marking processed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/bulk [post]
func (c *AttendanceController) MarkBulkAttendance(ctx *gin.Context) {
	var req dto.BulkMarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	date, status, errs := validation.ValidateBulkMarkAttendance(&req)
	if errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ToErrorDetail()))
		return
	}

	result, err := c.attendanceService.MarkBulkAttendance(ctx, req.EmployeeIDs, date, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	skipped := make([]dto.SkippedAttendance, 0, len(result.Skipped))
	for _, entry := range result.Skipped {
		skipped = append(skipped, dto.SkippedAttendance{
			EmployeeID: entry.EmployeeID,
			Reason:     entry.Reason,
		})
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.BulkAttendanceResult{
			Created: dto.NewAttendanceResponses(result.Created),
			Skipped: skipped,
		},
		Timestamp: time.Now(),
	})
}

// UpdateAttendance updates the status of an existing attendance record
// @Summary Update attendance status
// @Description Updates the status of an attendance record in place. Date and employee are immutable.
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Attendance record ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAttendanceRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance record ID")
		errorDetail = errorDetail.WithDetails("Attendance record ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	status, errs := validation.ValidateUpdateAttendance(&req)
	if errs.HasErrors() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errs.ToErrorDetail()))
		return
	}

	record, err := c.attendanceService.UpdateAttendanceStatus(ctx, id, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewAttendanceResponse(record),
		Timestamp: time.Now(),
	})
}
