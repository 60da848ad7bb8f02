package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-accounts/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by UserValidator.Validate for scoped validation.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldGroups   = "groups"
	FieldName     = "name"
)

// whitespace covers every code point treated as whitespace by ECMAScript
// \s, which is wider than RE2's ASCII-only \s.
const whitespace = `\s\p{Z}\x{000B}\x{FEFF}`

var emailRegexp = regexp.MustCompile(
	`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`,
)

// structFields maps scoped field names to the Go struct field names the
// struct validator expects for partial validation.
var structFields = map[string]string{
	FieldUsername: "Username",
	FieldPassword: "Password",
	FieldEmail:    "Email",
	FieldName:     "Name",
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("email_pattern", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidEmail reports whether email has the local@domain.tld shape
// described by models.EmailPattern.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// UserValidator validates models.User and models.Group values.
type UserValidator struct{}

// NewUserValidator returns a Validator for account records.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks obj against the record schema. When fields are given only
// those fields are checked. All failures are joined; each one is a
// *FieldError.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return validateUser(&value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateUser(value, fields...)
	case models.Group:
		return validateStruct(&value, fields...)
	case *models.Group:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateStruct(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// ValidateUser checks every constraint on a user record.
func ValidateUser(user models.User) error {
	return validateUser(&user)
}

// ValidateGroup checks every constraint on a group record.
func ValidateGroup(group models.Group) error {
	return validateStruct(&group)
}

func validateUser(user *models.User, fields ...string) error {
	err := validateStruct(user, fields...)
	if !scoped(fields, FieldGroups) {
		return err
	}
	for i, group := range user.Groups {
		if strings.TrimSpace(group) == "" {
			err = errors.Join(err, &FieldError{
				Field: fmt.Sprintf("%s[%d]", FieldGroups, i),
				Err:   ErrMissingRequiredField,
			})
		}
	}
	return err
}

func validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = structValidator.Struct(obj)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			if f == FieldGroups {
				continue
			}
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		if len(names) == 0 {
			return nil
		}
		err = structValidator.StructPartial(obj, names...)
	}
	return convert(err)
}

func scoped(fields []string, name string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// convert turns validator.ValidationErrors into joined *FieldError values.
func convert(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var out error
	for _, fe := range verrs {
		value, _ := fe.Value().(string)
		fieldErr := &FieldError{Field: fe.Field(), Value: value}
		switch fe.Tag() {
		case "required":
			fieldErr.Err = ErrMissingRequiredField
		case "email_pattern":
			fieldErr.Err = ErrInvalidEmailFormat
		default:
			fieldErr.Err = fmt.Errorf("failed on %q", fe.Tag())
		}
		out = errors.Join(out, fieldErr)
	}
	return out
}
