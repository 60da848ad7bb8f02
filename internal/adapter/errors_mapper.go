package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-resty/resty/v2"
)

const invalidEmailSuffix = " is not a valid email!"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(resp.Body()))
	}
	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return mapBadRequest(body)
	case http.StatusNotFound:
		return store.ErrUserNotFound
	case http.StatusConflict:
		switch body.Field {
		case validators.FieldUsername:
			return store.ErrUsernameAlreadyExists
		case validators.FieldEmail:
			return store.ErrEmailAlreadyExists
		default:
			return fmt.Errorf("%w: %s", store.ErrUniquenessViolation, body.Error)
		}
	case http.StatusUnprocessableEntity:
		prefix := service.ErrUnknownGroup.Error()
		return fmt.Errorf("%w%s", service.ErrUnknownGroup, strings.TrimPrefix(body.Error, prefix))
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body.Error)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error)
	}
}

// mapBadRequest rebuilds the validation error the server reported.
func mapBadRequest(body models.ErrorResponse) error {
	switch {
	case body.Field == validators.FieldEmail && strings.HasSuffix(body.Error, invalidEmailSuffix):
		return &validators.FieldError{
			Field: body.Field,
			Value: strings.TrimSuffix(body.Error, invalidEmailSuffix),
			Err:   validators.ErrInvalidEmailFormat,
		}
	case body.Field != "" && strings.HasSuffix(body.Error, " is required"):
		return &validators.FieldError{Field: body.Field, Err: validators.ErrMissingRequiredField}
	case body.Error == service.ErrNoLookupFilter.Error():
		return service.ErrNoLookupFilter
	default:
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Error)
	}
}
