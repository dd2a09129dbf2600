package dto

import (
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
)

// DateLayout is the wire format for attendance dates
const DateLayout = "2006-01-02"

// MarkAttendanceRequest represents a single attendance marking request
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required" example:"EMP-001"`
	Date       string `json:"date" binding:"required" example:"2025-06-12"`
	Status     string `json:"status" binding:"required" example:"Present"`
}

// BulkMarkAttendanceRequest represents a bulk attendance marking request for
// one date and status across multiple employees
type BulkMarkAttendanceRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required" example:"EMP-001,EMP-002"`
	Date        string   `json:"date" binding:"required" example:"2025-06-12"`
	Status      string   `json:"status" binding:"required" example:"Present"`
}

// UpdateAttendanceRequest represents a status update for an existing record.
// Date and employee are immutable through this path.
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required" example:"Absent"`
}

// AttendanceResponse represents an attendance record returned by the API,
// enriched with the owning employee's name when resolvable
type AttendanceResponse struct {
	ID           int64     `json:"id" example:"1"`
	EmployeeID   string    `json:"employee_id" example:"EMP-001"`
	Date         string    `json:"date" example:"2025-06-12"`
	Status       string    `json:"status" example:"Present"`
	CreatedAt    time.Time `json:"created_at"`
	EmployeeName *string   `json:"employee_name"`
}

// AttendanceListResponse represents a filtered attendance listing together
// with summary counts. The counts are computed under the same employee/date
// filters but ignore any status filter applied to the listing.
type AttendanceListResponse struct {
	Attendance   []AttendanceResponse `json:"attendance"`
	Total        int                  `json:"total" example:"3"`
	PresentCount int64                `json:"present_count" example:"2"`
	AbsentCount  int64                `json:"absent_count" example:"1"`
}

// SkippedAttendance describes a bulk entry that was not created, with the
// reason it was skipped
type SkippedAttendance struct {
	EmployeeID string `json:"employee_id" example:"EMP-404"`
	Reason     string `json:"reason" example:"Employee not found"`
}

// BulkAttendanceResult reports the outcome of a bulk marking operation.
// Partial success is the expected outcome, not a failure mode.
type BulkAttendanceResult struct {
	Created []AttendanceResponse `json:"created"`
	Skipped []SkippedAttendance  `json:"skipped"`
}

// NewAttendanceResponse maps an attendance model to its response representation
func NewAttendanceResponse(attendance *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           attendance.ID,
		EmployeeID:   attendance.EmployeeID,
		Date:         attendance.Date.Format(DateLayout),
		Status:       string(attendance.Status),
		CreatedAt:    attendance.CreatedAt,
		EmployeeName: attendance.EmployeeName,
	}
}

// NewAttendanceResponses maps a list of attendance models to responses
func NewAttendanceResponses(records []*models.Attendance) []AttendanceResponse {
	items := make([]AttendanceResponse, 0, len(records))
	for _, record := range records {
		items = append(items, NewAttendanceResponse(record))
	}
	return items
}
