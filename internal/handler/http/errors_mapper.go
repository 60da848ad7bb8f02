package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

const invalidJSONMessage = "Invalid JSON was passed"

// errorStatuses is matched in order; the first target found in the error
// chain decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrMissingRequiredField, http.StatusBadRequest},
	{validators.ErrInvalidEmailFormat, http.StatusBadRequest},
	{service.ErrNoLookupFilter, http.StatusBadRequest},
	{service.ErrUnknownGroup, http.StatusUnprocessableEntity},
	{service.ErrStorageUnavailable, http.StatusInternalServerError},

	{store.ErrUniquenessViolation, http.StatusConflict},
	{store.ErrGroupAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrGroupNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the API error body for err. Internal failures are
// reported by status text only.
func errorResponse(err error, status int) models.ErrorResponse {
	if status >= http.StatusInternalServerError {
		return models.ErrorResponse{Error: http.StatusText(status)}
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return models.ErrorResponse{Error: fieldErr.Error(), Field: fieldErr.Field}
	}

	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.ErrorResponse{Error: "username already exists", Field: validators.FieldUsername}
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.ErrorResponse{Error: "email already exists", Field: validators.FieldEmail}
	case errors.Is(err, service.ErrUnknownGroup):
		return models.ErrorResponse{Error: unwrapToSentinel(err, service.ErrUnknownGroup), Field: validators.FieldGroups}
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return models.ErrorResponse{Error: e.target.Error()}
		}
	}
	return models.ErrorResponse{Error: http.StatusText(status)}
}

// unwrapToSentinel returns the message of the outermost error in err's chain
// whose own message starts with sentinel's, dropping context added above it.
func unwrapToSentinel(err, sentinel error) string {
	prefix := sentinel.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := e.Error(); strings.HasPrefix(msg, prefix) {
			return msg
		}
	}
	return prefix
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, errorResponse(err, status), status)
}

func (h *Handler) writeBadJSON(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: invalidJSONMessage}, http.StatusBadRequest)
}
