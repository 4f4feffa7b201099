/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Cluster", "123")

	expected := `Cluster with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("constructor", "Tenant")

	expected := `constructor with key "Tenant" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "key",
			message:  "empty store key",
			expected: `validation failed for field "key": empty store key`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("put", "revision 3 < stored revision 4")

	expected := "condition check failed for put operation: revision 3 < stored revision 4"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestArgumentErrors(t *testing.T) {
	t.Run("NullArgument", func(t *testing.T) {
		err := NewNullArgumentError("ClusterBuff", "SetFullDomName", 1, "FullDomName")
		expected := `ClusterBuff.SetFullDomName: argument 1 "FullDomName" must not be null`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !IsNullArgument(err) || !IsValidationError(err) {
			t.Error("NullArgumentError should match ErrNullArgument and ErrInvalidInput")
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := NewArgumentOverflowError("ClusterBuff", "SetDescription", 1, "Description", 129, 128)
		var over *ArgumentOverflowError
		if !errors.As(err, &over) {
			t.Fatal("expected *ArgumentOverflowError")
		}
		if over.Value != 129 || over.Max != 128 {
			t.Errorf("unexpected bounds %d/%d", over.Value, over.Max)
		}
		if !IsArgumentOverflow(err) || IsArgumentUnderflow(err) {
			t.Error("overflow should only match ErrArgumentOverflow")
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		err := NewArgumentUnderflowError("ISOCcyBuff", "SetPrecis", 1, "Precis", -1, 0)
		expected := `ISOCcyBuff.SetPrecis: argument 1 "Precis" value -1 is below minimum 0`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !IsArgumentUnderflow(err) {
			t.Error("IsArgumentUnderflow should return true")
		}
	})

	t.Run("UnsupportedClass", func(t *testing.T) {
		err := NewUnsupportedClassError("ClusterBuff", "Compare", 1, "other", 42, "Cluster")
		var uc *UnsupportedClassError
		if !errors.As(err, &uc) {
			t.Fatal("expected *UnsupportedClassError")
		}
		if uc.Got != "int" {
			t.Errorf("expected Got to be the dynamic type, got %q", uc.Got)
		}
		if IsValidationError(err) {
			t.Error("unsupported class is a programming error, not invalid input")
		}
	})

	t.Run("MustOverride", func(t *testing.T) {
		err := NewMustOverrideError("UnimplementedBacking", "NextID")
		if !IsMustOverride(err) {
			t.Error("IsMustOverride should return true")
		}
	})
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("Tenant", "123")
	wrapped := fmt.Errorf("datastore operation failed: %w", original)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}

	nested := fmt.Errorf("navigation: %w", NewNullArgumentError("Registry", "Backing", 0, "Backing()"))
	if !IsNullArgument(nested) {
		t.Error("IsNullArgument should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrNullArgument,
		ErrArgumentOverflow,
		ErrArgumentUnderflow,
		ErrUnsupportedClass,
		ErrMustOverride,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
