package dto

import "time"

// APIResponse is the envelope used by operational endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in an APIResponse stamped with the current time
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// HealthResponse reports liveness and the size of the course collection
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Courses int    `json:"courses" example:"5"`
}
