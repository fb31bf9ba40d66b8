package dto

import "encoding/json"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Details carries the payment provider's response body when it rejected the request
	Details json.RawMessage `json:"details,omitempty"`
}

// SuccessResponse wraps a successful payload
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// OK builds a SuccessResponse around data
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}
