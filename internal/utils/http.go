package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// MaxRequestBodyBytes caps the size of JSON request bodies read by DecodeJSON.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, user.Public(), http.StatusCreated)
//	WriteJSON(w, models.ErrorResponse{Error: "user not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most MaxRequestBodyBytes of r's body into dst.
// Trailing data after the first JSON value is an error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	if decoder.More() {
		return errors.New("error decoding JSON: unexpected data after JSON value")
	}

	return nil
}
