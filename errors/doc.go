/*
Package errors provides semantic error types for secschema.

Two families live here. The argument errors describe a caller mistake against
an entity buffer or the schema registry and carry enough structure (class,
method, argument position and name, actual value and bound) to build a
diagnostic without parsing the message:

	NullArgumentError       required value missing (matches ErrNullArgument)
	ArgumentOverflowError   value or length above its maximum (ErrArgumentOverflow)
	ArgumentUnderflowError  value below its minimum (ErrArgumentUnderflow)
	UnsupportedClassError   argument of an unrecognized type (ErrUnsupportedClass)
	MustOverrideError       operation not provided by the backing schema (ErrMustOverride)

The storage family is used by the datastores:

	NotFoundError, AlreadyExistsError, ValidationError, ConditionFailedError

Null-argument, overflow and underflow errors also match ErrInvalidInput.

Usage:

	if err := cluster.SetFullDomName(name); err != nil {
	    var over *errors.ArgumentOverflowError
	    if stderrors.As(err, &over) {
	        return fmt.Errorf("domain name is %d characters, limit %d", over.Value, over.Max)
	    }
	    return err
	}

None of these errors are retried or swallowed inside the module; they reach the
caller unchanged or wrapped with %w.
*/
package errors
