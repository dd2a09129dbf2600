package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/hrmslite/internal/app/models/dto"
	"github.com/ecetin/hrmslite/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"employee not found", apperrors.ErrEmployeeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"attendance not found", apperrors.ErrAttendanceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"employee ID conflict", apperrors.ErrEmployeeIDExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"email conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"attendance conflict", apperrors.ErrAttendanceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshaling response: %v", err)
			}
			if resp.Success {
				t.Error("success = true in error response")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %v, want %v", resp.Error, tt.wantCode)
			}
		})
	}
}

// Wrapped sentinels must map the same way as bare ones.
func TestHandleAPIErrorWrapped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/test", nil)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrEmployeeNotFound, "employee EMP-404 not found"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
