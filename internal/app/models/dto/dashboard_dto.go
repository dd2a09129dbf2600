package dto

// DashboardStatsResponse represents dashboard aggregate counts for a date
type DashboardStatsResponse struct {
	TotalEmployees int64 `json:"total_employees" example:"12"`
	PresentToday   int64 `json:"present_today" example:"9"`
	AbsentToday    int64 `json:"absent_today" example:"2"`
}
