package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/hrmslite/internal/app/models/dto"
	"github.com/ecetin/hrmslite/internal/app/services"
	"github.com/ecetin/hrmslite/internal/middleware"
	"github.com/ecetin/hrmslite/internal/pkg/helpers"
)

// DashboardController handles dashboard aggregation
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats retrieves dashboard aggregate counts
// @Summary Get dashboard statistics
// @Description Returns the employee total and the Present/Absent counts for the target date. A caller-supplied date takes precedence over the server clock to avoid timezone skew.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param today query string false "Target date (YYYY-MM-DD), defaults to the server's current date"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse} "Statistics retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	target := helpers.DateOnly(time.Now())
	if value := ctx.Query("today"); value != "" {
		date, err := time.Parse(dto.DateLayout, value)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date").
				WithField("today").
				WithDetails("Date must be in YYYY-MM-DD format")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		target = date
	}

	stats, err := c.dashboardService.GetStats(ctx, target)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DashboardStatsResponse{
			TotalEmployees: stats.TotalEmployees,
			PresentToday:   stats.Present,
			AbsentToday:    stats.Absent,
		},
		Timestamp: time.Now(),
	})
}
