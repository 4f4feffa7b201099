/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secschema

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
)

// Backing implements secmodels.Backing over a set of per-kind datastores.
// Kinds without a registered datastore are not served.
type Backing struct {
	mu      sync.RWMutex
	stores  map[secmodels.ClassCode]any
	closers []io.Closer
	logger  *zap.Logger
}

var _ secmodels.Backing = (*Backing)(nil)

// NewBacking creates a backing with no datastores.
func NewBacking(logger *zap.Logger) *Backing {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backing{
		stores: make(map[secmodels.ClassCode]any),
		logger: logger,
	}
}

// Register stores ds as the datastore for code. A datastore whose records
// carry a different class code is rejected.
func Register[T datastore.Entity[T]](b *Backing, code secmodels.ClassCode, ds datastore.DataStore[T]) error {
	if ds == nil {
		return errors.NewNullArgumentError("Backing", "Register", 2, "ds")
	}
	var zero T
	if rec, ok := any(zero).(interface{ ClassCode() secmodels.ClassCode }); ok && rec.ClassCode() != code {
		return errors.NewUnsupportedClassError("Backing", "Register", 1, "code", code, rec.ClassCode().String())
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.stores[code]; exists {
		return errors.NewAlreadyExistsError("datastore", code.String())
	}
	b.stores[code] = ds
	b.logger.Debug("datastore registered", zap.Stringer("kind", code))
	return nil
}

// StoreOf returns the datastore registered for code.
func StoreOf[T datastore.Entity[T]](b *Backing, code secmodels.ClassCode) (datastore.DataStore[T], error) {
	b.mu.RLock()
	raw, exists := b.stores[code]
	b.mu.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("datastore", code.String())
	}
	ds, ok := raw.(datastore.DataStore[T])
	if !ok {
		var zero T
		return nil, errors.NewUnsupportedClassError("Backing", "StoreOf", 1, "code", raw, fmt.Sprintf("datastore.DataStore[%T]", zero))
	}
	return ds, nil
}

func lookup[T datastore.Entity[T]](b *Backing, code secmodels.ClassCode) (datastore.DataStore[T], bool) {
	ds, err := StoreOf[T](b, code)
	return ds, err == nil
}

// Remove drops the datastore registered for code.
func (b *Backing) Remove(code secmodels.ClassCode) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.stores[code]; !exists {
		return errors.NewNotFoundError("datastore", code.String())
	}
	delete(b.stores, code)
	return nil
}

// ClassCodes lists the served kinds in ascending order.
func (b *Backing) ClassCodes() []secmodels.ClassCode {
	b.mu.RLock()
	defer b.mu.RUnlock()

	codes := make([]secmodels.ClassCode, 0, len(b.stores))
	for c := range b.stores {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// NextID returns a fresh random key. Only kinds keyed by a single HashKey
// have generated identifiers.
func (b *Backing) NextID(ctx context.Context, code secmodels.ClassCode) (keys.HashKey, error) {
	if err := ctx.Err(); err != nil {
		return keys.NullHashKey, err
	}
	switch code {
	case secmodels.ClassCodeCluster,
		secmodels.ClassCodeTenant,
		secmodels.ClassCodeSecUser,
		secmodels.ClassCodeSecSession,
		secmodels.ClassCodeSecGroup,
		secmodels.ClassCodeServiceType,
		secmodels.ClassCodeService:
		return keys.NewHashKey(), nil
	}
	return keys.NullHashKey, errors.NewUnsupportedClassError("Backing", "NextID", 2, "code", code, "HashKey-identified kind")
}

// Close releases the clients opened for this backing.
func (b *Backing) Close() error {
	b.mu.Lock()
	closers := b.closers
	b.closers = nil
	b.mu.Unlock()

	var firstErr error
	for _, c := range closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (b *Backing) ClusterTable() secmodels.ClusterTable {
	if ds, ok := lookup[*secmodels.ClusterBuff](b, secmodels.ClassCodeCluster); ok {
		return clusterTable{ds}
	}
	return nil
}

func (b *Backing) TenantTable() secmodels.TenantTable {
	if ds, ok := lookup[*secmodels.TenantBuff](b, secmodels.ClassCodeTenant); ok {
		return tenantTable{ds}
	}
	return nil
}

func (b *Backing) SecUserTable() secmodels.SecUserTable {
	if ds, ok := lookup[*secmodels.SecUserBuff](b, secmodels.ClassCodeSecUser); ok {
		return secUserTable{ds}
	}
	return nil
}

func (b *Backing) SecDeviceTable() secmodels.SecDeviceTable {
	if ds, ok := lookup[*secmodels.SecDeviceBuff](b, secmodels.ClassCodeSecDevice); ok {
		return secDeviceTable{ds}
	}
	return nil
}

func (b *Backing) SecSessionTable() secmodels.SecSessionTable {
	if ds, ok := lookup[*secmodels.SecSessionBuff](b, secmodels.ClassCodeSecSession); ok {
		return secSessionTable{ds}
	}
	return nil
}

func (b *Backing) SecGroupTable() secmodels.SecGroupTable {
	if ds, ok := lookup[*secmodels.SecGroupBuff](b, secmodels.ClassCodeSecGroup); ok {
		return secGroupTable{ds}
	}
	return nil
}

func (b *Backing) SecGrpMembTable() secmodels.SecGrpMembTable {
	if ds, ok := lookup[*secmodels.SecGrpMembBuff](b, secmodels.ClassCodeSecGrpMemb); ok {
		return secGrpMembTable{ds}
	}
	return nil
}

func (b *Backing) ServiceTypeTable() secmodels.ServiceTypeTable {
	if ds, ok := lookup[*secmodels.ServiceTypeBuff](b, secmodels.ClassCodeServiceType); ok {
		return serviceTypeTable{ds}
	}
	return nil
}

func (b *Backing) ServiceTable() secmodels.ServiceTable {
	if ds, ok := lookup[*secmodels.ServiceBuff](b, secmodels.ClassCodeService); ok {
		return serviceTable{ds}
	}
	return nil
}

func (b *Backing) ISOCcyTable() secmodels.ISOCcyTable {
	if ds, ok := lookup[*secmodels.ISOCcyBuff](b, secmodels.ClassCodeISOCcy); ok {
		return isoCcyTable{ds}
	}
	return nil
}

func (b *Backing) ISOCtryTable() secmodels.ISOCtryTable {
	if ds, ok := lookup[*secmodels.ISOCtryBuff](b, secmodels.ClassCodeISOCtry); ok {
		return isoCtryTable{ds}
	}
	return nil
}

func (b *Backing) ISOCtryCcyTable() secmodels.ISOCtryCcyTable {
	if ds, ok := lookup[*secmodels.ISOCtryCcyBuff](b, secmodels.ClassCodeISOCtryCcy); ok {
		return isoCtryCcyTable{ds}
	}
	return nil
}
