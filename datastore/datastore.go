/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/storagemodels"
)

// Entity is a record a DataStore can persist: addressed by its store key,
// reachable through its secondary index values and versioned by revision.
type Entity[T any] interface {
	StoreKey() string
	IndexValues() map[string]string
	Revision() int32
	Clone() T
}

type DataStore[T Entity[T]] interface {
	// GetOne returns the record stored under key, or a NotFoundError.
	GetOne(ctx context.Context, key string) (T, error)

	// Put writes entity. When a record already exists under its store key the
	// entity must carry a newer revision, otherwise a ConditionFailedError is
	// returned and nothing is written.
	Put(ctx context.Context, entity T) error

	// QueryIndex returns the records whose index value equals value, ordered
	// by store key.
	QueryIndex(ctx context.Context, index, value string) ([]T, error)

	// Stream emits every record of the store.
	Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]

	// Delete removes the record stored under key, or returns a NotFoundError.
	Delete(ctx context.Context, key string) error
}

// CheckRevision enforces the optimistic write rule shared by every store.
func CheckRevision(key string, stored int32, exists bool, incoming int32) error {
	if exists && incoming <= stored {
		return errors.NewConditionFailedError("Put",
			fmt.Sprintf("revision %d of %q is not newer than stored revision %d", incoming, key, stored))
	}
	return nil
}

// Items builds the primary item of e followed by one pointer item per
// secondary index, in index name order.
func Items[T Entity[T]](kind string, e T) ([]storagemodels.Item, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s %q: %w", kind, e.StoreKey(), err)
	}
	key := e.StoreKey()
	items := []storagemodels.Item{{
		PK:       kind,
		SK:       key,
		Kind:     kind,
		Revision: e.Revision(),
		Body:     string(body),
	}}
	idx := e.IndexValues()
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		items = append(items, storagemodels.Item{
			PK:       storagemodels.IndexPartition(kind, name, idx[name]),
			SK:       key,
			Kind:     kind,
			Revision: e.Revision(),
			Index:    name,
			Body:     string(body),
		})
	}
	return items, nil
}

// Decode unmarshals a persisted body into a fresh record from newRec.
func Decode[T Entity[T]](newRec func() T, body []byte) (T, error) {
	rec := newRec()
	if err := json.Unmarshal(body, rec); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return rec, nil
}
