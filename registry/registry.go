/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package registry wires concrete entity buffers to class codes and holds the
// active backing schema that navigation getters resolve foreign keys through.
//
// A Registry is populated with every built-in kind by New. Backings can be
// swapped at any time; readers see either the old or the new one.
//
//	reg := registry.New(registry.WithLogger(logger))
//	reg.SetBacking(backing)
//	owner, err := tenant.RequiredContainerCluster(ctx, reg)
package registry

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/secmodels"
)

// Constructor returns an empty buffer of one entity kind.
type Constructor func() secmodels.Record

// Registry maps class codes to constructors and holds the backing schema.
type Registry struct {
	mu      sync.RWMutex
	backing secmodels.Backing
	ctors   map[secmodels.ClassCode]Constructor
	logger  *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report backing swaps.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a registry with every built-in kind wired.
func New(opts ...Option) *Registry {
	r := &Registry{
		ctors:  make(map[secmodels.ClassCode]Constructor),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.WireRecConstructors()
	return r
}

// WireRecConstructors (re)installs the constructor of every built-in kind.
func (r *Registry) WireRecConstructors() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctors[secmodels.ClassCodeCluster] = func() secmodels.Record { return secmodels.ClusterFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeTenant] = func() secmodels.Record { return secmodels.TenantFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeSecUser] = func() secmodels.Record { return secmodels.SecUserFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeSecDevice] = func() secmodels.Record { return secmodels.SecDeviceFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeSecSession] = func() secmodels.Record { return secmodels.SecSessionFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeSecGroup] = func() secmodels.Record { return secmodels.SecGroupFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeSecGrpMemb] = func() secmodels.Record { return secmodels.SecGrpMembFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeServiceType] = func() secmodels.Record { return secmodels.ServiceTypeFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeService] = func() secmodels.Record { return secmodels.ServiceFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeISOCcy] = func() secmodels.Record { return secmodels.ISOCcyFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeISOCtry] = func() secmodels.Record { return secmodels.ISOCtryFactory{}.NewRec() }
	r.ctors[secmodels.ClassCodeISOCtryCcy] = func() secmodels.Record { return secmodels.ISOCtryCcyFactory{}.NewRec() }
}

// RegisterConstructor adds a constructor for a class code that has none.
func (r *Registry) RegisterConstructor(code secmodels.ClassCode, fn Constructor) error {
	if fn == nil {
		return errors.NewNullArgumentError("Registry", "RegisterConstructor", 2, "fn")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[code]; exists {
		return errors.NewAlreadyExistsError("constructor", code.String())
	}
	r.ctors[code] = fn
	return nil
}

// Constructor returns the constructor registered for code.
func (r *Registry) Constructor(code secmodels.ClassCode) (Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.ctors[code]
	if !ok {
		return nil, errors.NewNullArgumentError("Registry", "Constructor", 1, fmt.Sprintf("constructor[%s]", code))
	}
	return fn, nil
}

// NewRecord builds an empty buffer of the kind identified by code.
func (r *Registry) NewRecord(code secmodels.ClassCode) (secmodels.Record, error) {
	fn, err := r.Constructor(code)
	if err != nil {
		return nil, err
	}
	return fn(), nil
}

// ClassCodes lists the registered class codes in ascending order.
func (r *Registry) ClassCodes() []secmodels.ClassCode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]secmodels.ClassCode, 0, len(r.ctors))
	for c := range r.ctors {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// SetBacking installs b as the active backing. A nil b clears it.
func (r *Registry) SetBacking(b secmodels.Backing) {
	r.mu.Lock()
	prev := r.backing
	r.backing = b
	r.mu.Unlock()

	r.logger.Info("backing schema installed",
		zap.String("backing", fmt.Sprintf("%T", b)),
		zap.String("previous", fmt.Sprintf("%T", prev)))
}

// Backing returns the active backing.
func (r *Registry) Backing() (secmodels.Backing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.backing == nil {
		return nil, errors.NewNullArgumentError("Registry", "Backing", 0, "Backing()")
	}
	return r.backing, nil
}

var _ secmodels.Schema = (*Registry)(nil)
