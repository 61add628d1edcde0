// Package api defines response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for simple confirmations.
// It plays the role of the success flash message in the original UI flow.
type MessageResponse struct {
	Message string `json:"message"`
}

// WarningResponse is returned for benign no-ops, such as re-applying to a job.
type WarningResponse struct {
	Warning string `json:"warning"`
}
