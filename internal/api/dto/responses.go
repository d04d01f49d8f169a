// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// StatusResponse is returned by the readiness and liveness probes.
type StatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// InsertResponse represents the response for inserting a document.
type InsertResponse struct {
	InsertedID string `json:"inserted_id" example:"507f1f77bcf86cd799439011"`
}

// UpdateResponse represents the response for updating a document.
type UpdateResponse struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// DeleteResponse represents the response for deleting a document.
type DeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
