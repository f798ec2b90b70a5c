package response

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// --- Response Builders ---

// Success creates a success response with data
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// SuccessMessage creates a success response with a message and optional data
func SuccessMessage(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Error creates an error response with a single message
func Error(message string) *Response {
	return &Response{
		Success: false,
		Message: message,
	}
}

// ValidationFailed creates an error response carrying every validation error
// encountered, never just the first.
func ValidationFailed(errs []string) *Response {
	return &Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// --- Common Error Responses ---

// BadRequest creates a bad request error response
func BadRequest(message string) *Response {
	if message == "" {
		message = "Bad request"
	}
	return Error(message)
}

// Unauthorized creates an unauthorized error response
func Unauthorized(message string) *Response {
	if message == "" {
		message = "Unauthorized. Admin access required."
	}
	return Error(message)
}

// NotFound creates a not found error response
func NotFound(message string) *Response {
	if message == "" {
		message = "Resource not found"
	}
	return Error(message)
}

// TooManyRequests creates a rate limit error response
func TooManyRequests(message string) *Response {
	if message == "" {
		message = "Too many requests, please try again later"
	}
	return Error(message)
}

// InternalError creates an internal server error response. The message must
// never leak storage or logic details to the client.
func InternalError(message string) *Response {
	if message == "" {
		message = "An internal error occurred"
	}
	return Error(message)
}
