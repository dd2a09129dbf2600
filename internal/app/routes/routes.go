package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecetin/hrmslite/internal/app/controllers"
	"github.com/ecetin/hrmslite/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	employeeController *controllers.EmployeeController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Employee directory routes
	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.ListEmployees)
		employees.GET("/:employeeId", employeeController.GetEmployee)
		employees.POST("", employeeController.CreateEmployee)
		employees.DELETE("/:employeeId", employeeController.DeleteEmployee)
	}

	// Attendance ledger routes
	attendance := v1.Group("/attendance")
	{
		attendance.GET("", attendanceController.ListAttendance)
		attendance.POST("", attendanceController.MarkAttendance)
		attendance.POST("/bulk", attendanceController.MarkBulkAttendance)
		attendance.GET("/:employeeId", attendanceController.GetEmployeeAttendance)
		attendance.PUT("/:id", attendanceController.UpdateAttendance)
	}

	// Dashboard routes
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardController.GetStats)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
