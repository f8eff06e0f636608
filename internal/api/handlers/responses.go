package handlers

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the generic success envelope
type SuccessResponse struct {
	Message string `json:"message"`
}
