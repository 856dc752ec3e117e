package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string              `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Message string              `json:"message"`           // User-friendly error message
	Details string              `json:"details,omitempty"` // Detailed error information (optional)
	Fields  map[string][]string `json:"fields,omitempty"`  // Per-field validation messages (optional)
}

// Response defines the envelope written by the error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
