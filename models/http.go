package models

// ErrorResponse is the JSON body written for every non-2xx API response.
type ErrorResponse struct {
	// Error is a human readable message.
	Error string `json:"error"`

	// Field names the offending record field, when there is one.
	Field string `json:"field,omitempty"`
}

// UserLookup holds the query parameters accepted by the user search endpoint.
// Exactly one of the fields is expected to be set.
type UserLookup struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
