/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to register something twice
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	// Null-argument, overflow and underflow errors all match it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrNullArgument is returned when a required value is missing
	ErrNullArgument = errors.New("null argument")

	// ErrArgumentOverflow is returned when a value exceeds its declared maximum
	ErrArgumentOverflow = errors.New("argument overflow")

	// ErrArgumentUnderflow is returned when a value is below its declared minimum
	ErrArgumentUnderflow = errors.New("argument underflow")

	// ErrUnsupportedClass is returned when a value is not one of the types an
	// operation recognizes
	ErrUnsupportedClass = errors.New("unsupported class")

	// ErrMustOverride is returned by default implementations that need the
	// active backing schema to supply the real behaviour
	ErrMustOverride = errors.New("must override")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// NullArgumentError reports a missing required value. ArgIndex is 1-based;
// zero means the value was not a call argument (for example a registry slot).
type NullArgumentError struct {
	Class    string
	Method   string
	ArgIndex int
	ArgName  string
}

func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("%s.%s: argument %d %q must not be null", e.Class, e.Method, e.ArgIndex, e.ArgName)
}

func (e *NullArgumentError) Is(target error) bool {
	return target == ErrNullArgument || target == ErrInvalidInput
}

// ArgumentOverflowError reports a value (or length) above its declared maximum.
type ArgumentOverflowError struct {
	Class    string
	Method   string
	ArgIndex int
	ArgName  string
	Value    int64
	Max      int64
}

func (e *ArgumentOverflowError) Error() string {
	return fmt.Sprintf("%s.%s: argument %d %q value %d exceeds maximum %d",
		e.Class, e.Method, e.ArgIndex, e.ArgName, e.Value, e.Max)
}

func (e *ArgumentOverflowError) Is(target error) bool {
	return target == ErrArgumentOverflow || target == ErrInvalidInput
}

// ArgumentUnderflowError reports a value below its declared minimum.
type ArgumentUnderflowError struct {
	Class    string
	Method   string
	ArgIndex int
	ArgName  string
	Value    int64
	Min      int64
}

func (e *ArgumentUnderflowError) Error() string {
	return fmt.Sprintf("%s.%s: argument %d %q value %d is below minimum %d",
		e.Class, e.Method, e.ArgIndex, e.ArgName, e.Value, e.Min)
}

func (e *ArgumentUnderflowError) Is(target error) bool {
	return target == ErrArgumentUnderflow || target == ErrInvalidInput
}

// UnsupportedClassError reports an argument whose dynamic type is not one the
// operation recognizes.
type UnsupportedClassError struct {
	Class    string
	Method   string
	ArgIndex int
	ArgName  string
	Got      string
	Expected string
}

func (e *UnsupportedClassError) Error() string {
	return fmt.Sprintf("%s.%s: argument %d %q has unsupported type %s, expected %s",
		e.Class, e.Method, e.ArgIndex, e.ArgName, e.Got, e.Expected)
}

func (e *UnsupportedClassError) Is(target error) bool {
	return target == ErrUnsupportedClass
}

// MustOverrideError reports an operation the active deployment does not provide.
type MustOverrideError struct {
	Class  string
	Method string
}

func (e *MustOverrideError) Error() string {
	return fmt.Sprintf("%s.%s must be overridden by the backing schema", e.Class, e.Method)
}

func (e *MustOverrideError) Is(target error) bool {
	return target == ErrMustOverride
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewNullArgumentError creates a new NullArgumentError
func NewNullArgumentError(class, method string, argIndex int, argName string) error {
	return &NullArgumentError{Class: class, Method: method, ArgIndex: argIndex, ArgName: argName}
}

// NewArgumentOverflowError creates a new ArgumentOverflowError
func NewArgumentOverflowError(class, method string, argIndex int, argName string, value, max int64) error {
	return &ArgumentOverflowError{Class: class, Method: method, ArgIndex: argIndex, ArgName: argName, Value: value, Max: max}
}

// NewArgumentUnderflowError creates a new ArgumentUnderflowError
func NewArgumentUnderflowError(class, method string, argIndex int, argName string, value, min int64) error {
	return &ArgumentUnderflowError{Class: class, Method: method, ArgIndex: argIndex, ArgName: argName, Value: value, Min: min}
}

// NewUnsupportedClassError creates a new UnsupportedClassError. The dynamic
// type of got is recorded, not its value.
func NewUnsupportedClassError(class, method string, argIndex int, argName string, got any, expected string) error {
	return &UnsupportedClassError{
		Class:    class,
		Method:   method,
		ArgIndex: argIndex,
		ArgName:  argName,
		Got:      fmt.Sprintf("%T", got),
		Expected: expected,
	}
}

// NewMustOverrideError creates a new MustOverrideError
func NewMustOverrideError(class, method string) error {
	return &MustOverrideError{Class: class, Method: method}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsNullArgument checks if an error is a null argument error
func IsNullArgument(err error) bool {
	return errors.Is(err, ErrNullArgument)
}

// IsArgumentOverflow checks if an error is an argument overflow error
func IsArgumentOverflow(err error) bool {
	return errors.Is(err, ErrArgumentOverflow)
}

// IsArgumentUnderflow checks if an error is an argument underflow error
func IsArgumentUnderflow(err error) bool {
	return errors.Is(err, ErrArgumentUnderflow)
}

// IsUnsupportedClass checks if an error is an unsupported class error
func IsUnsupportedClass(err error) bool {
	return errors.Is(err, ErrUnsupportedClass)
}

// IsMustOverride checks if an error is a must override error
func IsMustOverride(err error) bool {
	return errors.Is(err, ErrMustOverride)
}
