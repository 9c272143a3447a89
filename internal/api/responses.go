package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ConflictResponse carries the session the candidate booking collided
// with, so the UI can render an actionable message.
type ConflictResponse struct {
	Error       string      `json:"error" example:"booking conflicts with an existing session"`
	Conflicting interface{} `json:"conflicting_session,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
