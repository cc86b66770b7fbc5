// Package dto defines data transfer objects for API requests and responses.
package dto

// DataResponse wraps successful responses in a data envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// NewDataResponse wraps a payload in the response envelope.
func NewDataResponse(data any) DataResponse {
	return DataResponse{Data: data}
}
