/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// Schema hands out the active backing. Navigation getters take one so the
// backing can be swapped without touching the buffers.
type Schema interface {
	Backing() (Backing, error)
}

// Backing is a storage implementation of the schema. A nil table means the
// backing does not serve that kind.
type Backing interface {
	// NextID allocates a fresh identifier for a new row of the given kind.
	NextID(ctx context.Context, code ClassCode) (keys.HashKey, error)

	ClusterTable() ClusterTable
	TenantTable() TenantTable
	SecUserTable() SecUserTable
	SecDeviceTable() SecDeviceTable
	SecSessionTable() SecSessionTable
	SecGroupTable() SecGroupTable
	SecGrpMembTable() SecGrpMembTable
	ServiceTypeTable() ServiceTypeTable
	ServiceTable() ServiceTable
	ISOCcyTable() ISOCcyTable
	ISOCtryTable() ISOCtryTable
	ISOCtryCcyTable() ISOCtryCcyTable
}

// UnimplementedBacking serves nothing. Embed it in a stub and override the
// tables a test needs.
type UnimplementedBacking struct{}

func (UnimplementedBacking) NextID(context.Context, ClassCode) (keys.HashKey, error) {
	return keys.NullHashKey, errors.NewMustOverrideError("Backing", "NextID")
}

func (UnimplementedBacking) ClusterTable() ClusterTable         { return nil }
func (UnimplementedBacking) TenantTable() TenantTable           { return nil }
func (UnimplementedBacking) SecUserTable() SecUserTable         { return nil }
func (UnimplementedBacking) SecDeviceTable() SecDeviceTable     { return nil }
func (UnimplementedBacking) SecSessionTable() SecSessionTable   { return nil }
func (UnimplementedBacking) SecGroupTable() SecGroupTable       { return nil }
func (UnimplementedBacking) SecGrpMembTable() SecGrpMembTable   { return nil }
func (UnimplementedBacking) ServiceTypeTable() ServiceTypeTable { return nil }
func (UnimplementedBacking) ServiceTable() ServiceTable         { return nil }
func (UnimplementedBacking) ISOCcyTable() ISOCcyTable           { return nil }
func (UnimplementedBacking) ISOCtryTable() ISOCtryTable         { return nil }
func (UnimplementedBacking) ISOCtryCcyTable() ISOCtryCcyTable   { return nil }

// BackingOf resolves the active backing of s.
func BackingOf(s Schema) (Backing, error) {
	if s == nil {
		return nil, errors.NewNullArgumentError("Schema", "Backing", 0, "Backing()")
	}
	b, err := s.Backing()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.NewNullArgumentError("Schema", "Backing", 0, "Backing()")
	}
	return b, nil
}

func tableOf[T any](s Schema, get func(Backing) T, accessor string) (T, error) {
	var zero T
	b, err := BackingOf(s)
	if err != nil {
		return zero, err
	}
	t := get(b)
	if any(t) == nil {
		return zero, errors.NewNullArgumentError("Backing", accessor, 0, accessor+"()")
	}
	return t, nil
}

func ClusterTableOf(s Schema) (ClusterTable, error) {
	return tableOf(s, Backing.ClusterTable, "ClusterTable")
}

func TenantTableOf(s Schema) (TenantTable, error) {
	return tableOf(s, Backing.TenantTable, "TenantTable")
}

func SecUserTableOf(s Schema) (SecUserTable, error) {
	return tableOf(s, Backing.SecUserTable, "SecUserTable")
}

func SecDeviceTableOf(s Schema) (SecDeviceTable, error) {
	return tableOf(s, Backing.SecDeviceTable, "SecDeviceTable")
}

func SecSessionTableOf(s Schema) (SecSessionTable, error) {
	return tableOf(s, Backing.SecSessionTable, "SecSessionTable")
}

func SecGroupTableOf(s Schema) (SecGroupTable, error) {
	return tableOf(s, Backing.SecGroupTable, "SecGroupTable")
}

func SecGrpMembTableOf(s Schema) (SecGrpMembTable, error) {
	return tableOf(s, Backing.SecGrpMembTable, "SecGrpMembTable")
}

func ServiceTypeTableOf(s Schema) (ServiceTypeTable, error) {
	return tableOf(s, Backing.ServiceTypeTable, "ServiceTypeTable")
}

func ServiceTableOf(s Schema) (ServiceTable, error) {
	return tableOf(s, Backing.ServiceTable, "ServiceTable")
}

func ISOCcyTableOf(s Schema) (ISOCcyTable, error) {
	return tableOf(s, Backing.ISOCcyTable, "ISOCcyTable")
}

func ISOCtryTableOf(s Schema) (ISOCtryTable, error) {
	return tableOf(s, Backing.ISOCtryTable, "ISOCtryTable")
}

func ISOCtryCcyTableOf(s Schema) (ISOCtryCcyTable, error) {
	return tableOf(s, Backing.ISOCtryCcyTable, "ISOCtryCcyTable")
}
