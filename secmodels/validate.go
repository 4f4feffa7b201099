/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"time"
	"unicode/utf8"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// Setter checks. Each returns the error a setter reports before touching the
// buffer; argument index is always 1 because setters take a single value.

func checkRequiredString(class, method, name, v string, max int) error {
	if v == "" {
		return errors.NewNullArgumentError(class, method, 1, name)
	}
	return checkLength(class, method, name, v, max)
}

func checkOptionalString(class, method, name string, v *string, max int) error {
	if v == nil {
		return nil
	}
	return checkLength(class, method, name, *v, max)
}

func checkLength(class, method, name, v string, max int) error {
	if n := utf8.RuneCountInString(v); n > max {
		return errors.NewArgumentOverflowError(class, method, 1, name, int64(n), int64(max))
	}
	return nil
}

func checkRequiredKey(class, method, name string, v keys.HashKey) error {
	if v.IsNull() {
		return errors.NewNullArgumentError(class, method, 1, name)
	}
	return nil
}

func checkRequiredTime(class, method, name string, v time.Time) error {
	if v.IsZero() {
		return errors.NewNullArgumentError(class, method, 1, name)
	}
	return nil
}

func checkShortRange(class, method, name string, v, min, max int16) error {
	if v < min {
		return errors.NewArgumentUnderflowError(class, method, 1, name, int64(v), int64(min))
	}
	if v > max {
		return errors.NewArgumentOverflowError(class, method, 1, name, int64(v), int64(max))
	}
	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
