package models

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse builds an [ErrorResponse] from one or more messages.
func NewErrorResponse(messages ...string) ErrorResponse {
	return ErrorResponse{Errors: messages}
}
