package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CUSTOMER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope used by the HTTP error handler.
type Response struct {
	Success bool          `json:"success"`
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Error   *ResponseInfo `json:"error,omitempty"`
}

// ResponseInfo carries the machine-readable error section of a Response.
type ResponseInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
