/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore interface
// for tests and for the memory backing.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

// DataStore is an in-memory datastore.DataStore[T]. Records are cloned on the
// way in and out so callers never share a buffer with the store.
type DataStore[T datastore.Entity[T]] struct {
	mu             sync.RWMutex
	kind           string
	data           map[string]T
	queryIndexFunc func(ctx context.Context, index, value string) ([]T, error)
	getError       error
	putError       error
	deleteError    error
}

// New creates an empty store for records of the given kind.
func New[T datastore.Entity[T]](kind string) *DataStore[T] {
	return &DataStore[T]{
		kind: kind,
		data: make(map[string]T),
	}
}

// WithQueryIndexFunc replaces the index lookup for testing
func (m *DataStore[T]) WithQueryIndexFunc(f func(ctx context.Context, index, value string) ([]T, error)) *DataStore[T] {
	m.queryIndexFunc = f
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves a record by store key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (T, error) {
	var zero T
	if m.getError != nil {
		return zero, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if rec, exists := m.data[key]; exists {
		return rec.Clone(), nil
	}
	return zero, errors.NewNotFoundError(m.kind, key)
}

// Put stores a record, enforcing the revision rule
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key := entity.StoreKey()
	if key == "" {
		return errors.NewValidationError("key", "record has an empty store key")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, exists := m.data[key]
	var rev int32
	if exists {
		rev = stored.Revision()
	}
	if err := datastore.CheckRevision(key, rev, exists, entity.Revision()); err != nil {
		return err
	}
	m.data[key] = entity.Clone()
	return nil
}

// QueryIndex scans the records for a matching index value
func (m *DataStore[T]) QueryIndex(ctx context.Context, index, value string) ([]T, error) {
	if m.queryIndexFunc != nil {
		return m.queryIndexFunc(ctx, index, value)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]T, 0)
	for _, key := range m.sortedKeys() {
		rec := m.data[key]
		if v, ok := rec.IndexValues()[index]; ok && v == value {
			results = append(results, rec.Clone())
		}
	}
	return results, nil
}

// Stream emits a snapshot of the records in store key order
func (m *DataStore[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.ApplyStreamOptions(opts...)

	m.mu.RLock()
	snapshot := make([]T, 0, len(m.data))
	for _, key := range m.sortedKeys() {
		snapshot = append(snapshot, m.data[key].Clone())
	}
	m.mu.RUnlock()

	resultChan := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go func() {
		defer close(resultChan)

		for i, rec := range snapshot {
			select {
			case <-ctx.Done():
				return
			case resultChan <- storagemodels.StreamResult[T]{
				Item: rec,
				Meta: storagemodels.StreamMeta{
					Index:      int64(i),
					PageNumber: 1,
					Timestamp:  time.Now(),
				},
			}:
			}
		}
		if options.ProgressHandler != nil {
			options.ProgressHandler(storagemodels.StreamProgress{
				ItemsProcessed: int64(len(snapshot)),
				PagesProcessed: 1,
			})
		}
	}()

	return resultChan
}

// Delete removes a record by store key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.NewNotFoundError(m.kind, key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map, bypassing the revision rule
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v.Clone()
	}
	return result
}

// Count returns the number of stored records
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

// sortedKeys must be called with mu held.
func (m *DataStore[T]) sortedKeys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
