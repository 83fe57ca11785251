// Package validate holds the field rules shared by the application services.
// Every rule returns nil or a domainerr Invalid failure naming the field.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
)

// Length checks that value has between min and max characters.
func Length(field, value string, min, max int) error {
	if min > 0 && strings.TrimSpace(value) == "" {
		return domainerr.Invalid("%s is required", field)
	}
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		return domainerr.Invalid("%s must be between %d and %d characters", field, min, max)
	}
	return nil
}

// OptionalLength checks an optional value against a maximum length.
func OptionalLength(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > max {
		return domainerr.Invalid("%s must be at most %d characters", field, max)
	}
	return nil
}

// Range checks that value lies in [min, max].
func Range(field string, value, min, max int) error {
	if value < min || value > max {
		return domainerr.Invalid("%s must be between %d and %d", field, min, max)
	}
	return nil
}

// ID checks that id is a usable primary key.
func ID(field string, id int64) error {
	if id <= 0 {
		return domainerr.Invalid("%s must be a positive integer", field)
	}
	return nil
}

// OneOf checks enum membership.
func OneOf[T ~string](field string, value T, allowed []T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return domainerr.Invalid("%s must be one of: %s", field, strings.Join(names, ", "))
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
