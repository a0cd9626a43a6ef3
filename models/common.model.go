package models

// APIResponse represents the standardized API response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Total   *int64      `json:"total,omitempty"`
}

// SuccessResponse creates a standardized success response
func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ListResponse creates a success response carrying a collection and its count
func ListResponse(data interface{}, total int64) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
		Total:   &total,
	}
}

// ErrorResponse creates a standardized error response
func ErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   message,
	}
}
