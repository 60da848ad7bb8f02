package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
	ErrEmptyBaseURL        = errors.New("empty address")
)
