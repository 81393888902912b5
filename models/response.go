package models

// Response shapes referenced by the swagger annotations. Handlers build the
// actual responses with fiber.Map; these mirror that wire format.

// ErrorResponse represents a failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to process request."`
}

// MessageResponse represents a confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Employee deleted successfully"`
}

// LoginSuccessResponse represents a successful login
type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login successful"`
	UserID  string `json:"userId" example:"507f1f77bcf86cd799439011"`
	Name    string `json:"name" example:"John Doe"`
}
