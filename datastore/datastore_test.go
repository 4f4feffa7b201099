/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
)

type widget struct {
	Key  string `json:"key"`
	Code string `json:"code"`
	Kind string `json:"kind"`
	Rev  int32  `json:"rev"`
}

func (w *widget) StoreKey() string { return w.Key }
func (w *widget) IndexValues() map[string]string {
	return map[string]string{"KindIdx": w.Kind, "CodeIdx": w.Code}
}
func (w *widget) Revision() int32 { return w.Rev }
func (w *widget) Clone() *widget  { c := *w; return &c }

func TestItems(t *testing.T) {
	items, err := datastore.Items("Widget", &widget{Key: "w1", Code: "A", Kind: "round", Rev: 4})
	require.NoError(t, err)
	require.Len(t, items, 3)

	primary := items[0]
	assert.Equal(t, "Widget", primary.PK)
	assert.Equal(t, "w1", primary.SK)
	assert.EqualValues(t, 4, primary.Revision)
	assert.False(t, primary.IsPointer())

	// pointer items follow in index name order
	assert.Equal(t, "Widget#CodeIdx#A", items[1].PK)
	assert.Equal(t, "Widget#KindIdx#round", items[2].PK)
	for _, it := range items[1:] {
		assert.True(t, it.IsPointer())
		assert.Equal(t, "w1", it.SK)
		assert.Equal(t, primary.Body, it.Body)
	}

	back, err := datastore.Decode(func() *widget { return new(widget) }, []byte(primary.Body))
	require.NoError(t, err)
	assert.Equal(t, "round", back.Kind)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := datastore.Decode(func() *widget { return new(widget) }, []byte("{"))
	require.Error(t, err)
}

func TestCheckRevision(t *testing.T) {
	require.NoError(t, datastore.CheckRevision("k", 0, false, 0))
	require.NoError(t, datastore.CheckRevision("k", 3, true, 4))
	assert.True(t, errors.IsConditionFailed(datastore.CheckRevision("k", 3, true, 3)))
	assert.True(t, errors.IsConditionFailed(datastore.CheckRevision("k", 3, true, 2)))
}
