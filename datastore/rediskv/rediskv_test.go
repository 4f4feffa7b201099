/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rediskv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
	"github.com/suparena/secschema/storagemodels"
)

func newServer(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// racingClient runs beforeEval once, between the store's read and its
// script, to stand in for a concurrent writer.
type racingClient struct {
	Client
	beforeEval func()
}

func (c *racingClient) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	if c.beforeEval != nil {
		hook := c.beforeEval
		c.beforeEval = nil
		hook()
	}
	return c.Client.Eval(ctx, script, keys, args...)
}

var stamp = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func group(t *testing.T, name string, visible bool) *secmodels.SecGroupBuff {
	t.Helper()
	g := secmodels.SecGroupFactory{}.NewRec()
	require.NoError(t, g.SetID(keys.HashKeyOf([]byte("group/"+name))))
	require.NoError(t, g.SetClusterID(keys.HashKeyOf([]byte("cluster"))))
	require.NoError(t, g.SetName(name))
	g.SetIsVisible(visible)
	g.SetCreatedByUserID(keys.HashKeyOf([]byte("creator")))
	g.SetCreatedAt(stamp)
	g.SetUpdatedByUserID(keys.HashKeyOf([]byte("creator")))
	g.SetUpdatedAt(stamp)
	g.SetRevision(1)
	return g
}

func newGroupStore(c Client) *Store[*secmodels.SecGroupBuff] {
	return New[*secmodels.SecGroupBuff](c, "test", "SecGroup", secmodels.SecGroupFactory{}.NewRec)
}

func visibility(g *secmodels.SecGroupBuff, visible bool) string {
	return secmodels.SecGroupByClusterVisIdxKey{ClusterID: g.ClusterID(), IsVisible: visible}.IndexValue()
}

func TestPutGetQuery(t *testing.T) {
	ctx := context.Background()
	_, client := newServer(t)
	store := newGroupStore(client)

	admins := group(t, "admins", true)
	hidden := group(t, "hidden", false)
	require.NoError(t, store.Put(ctx, admins))
	require.NoError(t, store.Put(ctx, hidden))

	got, err := store.GetOne(ctx, admins.StoreKey())
	require.NoError(t, err)
	assert.True(t, got.Equals(admins))

	vis, err := store.QueryIndex(ctx, secmodels.SecGroupClusterVisIdx, visibility(admins, true))
	require.NoError(t, err)
	require.Len(t, vis, 1)
	assert.Equal(t, "admins", vis[0].Name())

	all, err := store.QueryIndex(ctx, secmodels.SecGroupClusterIdx,
		secmodels.SecGroupByClusterIdxKey{ClusterID: admins.ClusterID()}.IndexValue())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = store.GetOne(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestPutMovesIndexMembership(t *testing.T) {
	ctx := context.Background()
	mr, client := newServer(t)
	store := newGroupStore(client)

	g := group(t, "admins", true)
	require.NoError(t, store.Put(ctx, g))

	flipped := g.Clone()
	flipped.SetIsVisible(false)
	flipped.SetRevision(2)
	require.NoError(t, store.Put(ctx, flipped))

	vis, err := store.QueryIndex(ctx, secmodels.SecGroupClusterVisIdx, visibility(g, true))
	require.NoError(t, err)
	assert.Empty(t, vis)
	invis, err := store.QueryIndex(ctx, secmodels.SecGroupClusterVisIdx, visibility(g, false))
	require.NoError(t, err)
	require.Len(t, invis, 1)
	assert.EqualValues(t, 2, invis[0].Revision())

	// the emptied set is gone and the hash carries the new revision
	assert.False(t, mr.Exists(store.indexKey(secmodels.SecGroupClusterVisIdx, visibility(g, true))))
	assert.Equal(t, "2", mr.HGet(store.recordKey(g.StoreKey()), "rev"))
}

func TestRevisionConflicts(t *testing.T) {
	ctx := context.Background()
	mr, client := newServer(t)
	racing := &racingClient{Client: client}
	store := newGroupStore(racing)

	g := group(t, "admins", true)
	require.NoError(t, store.Put(ctx, g))
	assert.True(t, errors.IsConditionFailed(store.Put(ctx, g)))

	t.Run("UpdateLosesRace", func(t *testing.T) {
		next := g.Clone()
		next.SetRevision(2)
		racing.beforeEval = func() {
			mr.HSet(store.recordKey(g.StoreKey()), "rev", "9")
		}
		err := store.Put(ctx, next)
		assert.True(t, errors.IsConditionFailed(err), "got %v", err)
		assert.Equal(t, "9", mr.HGet(store.recordKey(g.StoreKey()), "rev"))
	})

	t.Run("CreateLosesRace", func(t *testing.T) {
		fresh := group(t, "operators", true)
		racing.beforeEval = func() {
			mr.HSet(store.recordKey(fresh.StoreKey()), "rev", "1")
		}
		err := store.Put(ctx, fresh)
		assert.True(t, errors.IsConditionFailed(err), "got %v", err)
		members, _ := mr.SMembers(store.kindKey())
		assert.NotContains(t, members, fresh.StoreKey())
	})

	t.Run("DeleteLosesRace", func(t *testing.T) {
		racing.beforeEval = func() {
			mr.HSet(store.recordKey(g.StoreKey()), "rev", "10")
		}
		err := store.Delete(ctx, g.StoreKey())
		assert.True(t, errors.IsConditionFailed(err), "got %v", err)
		assert.True(t, mr.Exists(store.recordKey(g.StoreKey())))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	mr, client := newServer(t)
	store := newGroupStore(client)

	g := group(t, "admins", true)
	require.NoError(t, store.Put(ctx, g))
	assert.NotEmpty(t, mr.Keys())
	require.NoError(t, store.Delete(ctx, g.StoreKey()))

	assert.Empty(t, mr.Keys())
	assert.True(t, errors.IsNotFound(store.Delete(ctx, g.StoreKey())))
}

func TestEvalError(t *testing.T) {
	mr, client := newServer(t)
	racing := &racingClient{Client: client}
	racing.beforeEval = func() { mr.SetError("connection reset") }
	store := newGroupStore(racing)

	err := store.Put(context.Background(), group(t, "admins", true))
	require.Error(t, err)
	assert.False(t, errors.IsConditionFailed(err))
}

func TestStream(t *testing.T) {
	ctx := context.Background()
	_, client := newServer(t)
	store := newGroupStore(client)

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, store.Put(ctx, group(t, name, true)))
	}

	var progress storagemodels.StreamProgress
	var seen []string
	for res := range store.Stream(ctx, storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) { progress = p })) {
		require.NoError(t, res.Error)
		seen = append(seen, res.Item.StoreKey())
	}
	assert.Len(t, seen, 3)
	assert.IsIncreasing(t, seen)
	assert.EqualValues(t, 3, progress.ItemsProcessed)
}
