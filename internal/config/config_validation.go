// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// `validate` struct tags before it is used at startup.
//
// Returns nil if the configuration is valid. Otherwise every failed rule is
// reported, each wrapping the sentinel of its section.
func (cfg *StructuredConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	var out error
	for _, fe := range verrs {
		out = errors.Join(out, fmt.Errorf("%w: %s failed on %q",
			sectionError(fe.StructNamespace()), fe.StructNamespace(), fe.Tag()))
	}

	return out
}

// sectionError picks the sentinel for a namespace such as
// "StructuredConfig.Storage.DB.DSN".
func sectionError(namespace string) error {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ErrInvalidAppConfigs
	}

	switch parts[1] {
	case "Storage":
		return ErrInvalidStorageConfigs
	case "Server":
		return ErrInvalidServerConfigs
	case "Workers":
		return ErrInvalidWorkerConfigs
	default:
		return ErrInvalidAppConfigs
	}
}
