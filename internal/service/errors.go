package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownGroup   = errors.New("unknown group")
	ErrNoLookupFilter = errors.New("either username or email must be provided")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)
