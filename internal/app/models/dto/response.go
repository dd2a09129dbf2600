package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-06-12T09:30:05.123Z"`
}

// SuccessResponse represents a standard success response with a message only
type SuccessResponse struct {
	Message string `json:"message"`
}
