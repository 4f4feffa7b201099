/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
	"github.com/suparena/secschema/storagemodels"
)

var stamp = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func cluster(t *testing.T, domain string) *secmodels.ClusterBuff {
	t.Helper()
	c := secmodels.ClusterFactory{}.NewRec()
	require.NoError(t, c.SetID(keys.HashKeyOf([]byte(domain))))
	require.NoError(t, c.SetFullDomName(domain))
	require.NoError(t, c.SetDescription("cluster "+domain))
	c.SetCreatedByUserID(keys.HashKeyOf([]byte("creator")))
	c.SetCreatedAt(stamp)
	c.SetUpdatedByUserID(keys.HashKeyOf([]byte("creator")))
	c.SetUpdatedAt(stamp)
	c.SetRevision(1)
	return c
}

func newClusterStore(api API) *DynamodbDataStore[*secmodels.ClusterBuff] {
	return New[*secmodels.ClusterBuff](api, "secschema", "Cluster", secmodels.ClusterFactory{}.NewRec,
		WithRetry(2, time.Millisecond))
}

func TestPutGetAndQueryIndex(t *testing.T) {
	ctx := context.Background()
	api := newFakeDynamo()
	store := newClusterStore(api)

	c := cluster(t, "example.com")
	require.NoError(t, store.Put(ctx, c))

	got, err := store.GetOne(ctx, c.StoreKey())
	require.NoError(t, err)
	assert.True(t, got.Equals(c))
	assert.EqualValues(t, 1, got.Revision())

	// one primary item plus a pointer per index
	assert.Len(t, api.partitions(), 3)

	byName, err := store.QueryIndex(ctx, secmodels.ClusterUDomNameIdx,
		secmodels.ClusterByUDomNameIdxKey{FullDomName: "example.com"}.IndexValue())
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.True(t, byName[0].Equals(c))

	_, err = store.GetOne(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestPutMovesIndexPointers(t *testing.T) {
	ctx := context.Background()
	api := newFakeDynamo()
	store := newClusterStore(api)

	c := cluster(t, "example.com")
	require.NoError(t, store.Put(ctx, c))

	renamed := c.Clone()
	require.NoError(t, renamed.SetFullDomName("example.org"))
	renamed.SetRevision(2)
	require.NoError(t, store.Put(ctx, renamed))

	assert.Len(t, api.partitions(), 3)
	old, err := store.QueryIndex(ctx, secmodels.ClusterUDomNameIdx, "example.com")
	require.NoError(t, err)
	assert.Empty(t, old)
	cur, err := store.QueryIndex(ctx, secmodels.ClusterUDomNameIdx, "example.org")
	require.NoError(t, err)
	require.Len(t, cur, 1)
	assert.EqualValues(t, 2, cur[0].Revision())
}

func TestPutRejectsStaleRevision(t *testing.T) {
	ctx := context.Background()
	store := newClusterStore(newFakeDynamo())

	c := cluster(t, "example.com")
	require.NoError(t, store.Put(ctx, c))

	err := store.Put(ctx, c)
	assert.True(t, errors.IsConditionFailed(err), "got %v", err)
}

func TestPutLosesRace(t *testing.T) {
	ctx := context.Background()
	api := newFakeDynamo()
	store := newClusterStore(api)

	c := cluster(t, "example.com")
	require.NoError(t, store.Put(ctx, c))

	next := c.Clone()
	next.SetRevision(2)
	api.beforeTransact = func(f *fakeDynamo) {
		f.setRevision("Cluster", c.StoreKey(), 7)
	}
	err := store.Put(ctx, next)
	assert.True(t, errors.IsConditionFailed(err), "got %v", err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeDynamo()
	store := newClusterStore(api)

	c := cluster(t, "example.com")
	require.NoError(t, store.Put(ctx, c))
	require.NoError(t, store.Delete(ctx, c.StoreKey()))

	assert.Empty(t, api.partitions())
	_, err := store.GetOne(ctx, c.StoreKey())
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(store.Delete(ctx, c.StoreKey())))
}

func TestQueryRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Throttled", func(t *testing.T) {
		api := newFakeDynamo()
		api.queryErrs = []error{&types.ProvisionedThroughputExceededException{}}
		store := newClusterStore(api)

		_, err := store.QueryIndex(ctx, secmodels.ClusterUDescrIdx, "x")
		require.NoError(t, err)
		assert.Equal(t, 2, api.queries)
	})

	t.Run("GivesUp", func(t *testing.T) {
		api := newFakeDynamo()
		api.queryErrs = []error{
			&types.InternalServerError{}, &types.InternalServerError{}, &types.InternalServerError{},
		}
		store := newClusterStore(api)

		_, err := store.QueryIndex(ctx, secmodels.ClusterUDescrIdx, "x")
		require.Error(t, err)
		assert.Equal(t, 3, api.queries)
	})

	t.Run("NotRetryable", func(t *testing.T) {
		api := newFakeDynamo()
		api.queryErrs = []error{goerrors.New("validation failed")}
		store := newClusterStore(api)

		_, err := store.QueryIndex(ctx, secmodels.ClusterUDescrIdx, "x")
		require.Error(t, err)
		assert.Equal(t, 1, api.queries)
	})
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"Throughput", &types.ProvisionedThroughputExceededException{}, true},
		{"RequestLimit", &types.RequestLimitExceeded{}, true},
		{"Wrapped", fmt.Errorf("op: %w", &types.InternalServerError{}), true},
		{"ConditionalCheck", &types.ConditionalCheckFailedException{}, false},
		{"Plain", goerrors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestStreamPages(t *testing.T) {
	ctx := context.Background()
	store := newClusterStore(newFakeDynamo())

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Put(ctx, cluster(t, fmt.Sprintf("n%d.example.com", i))))
	}

	var last storagemodels.StreamProgress
	var seen []string
	for res := range store.Stream(ctx,
		storagemodels.WithPageSize(2),
		storagemodels.WithProgressHandler(func(p storagemodels.StreamProgress) { last = p }),
	) {
		require.NoError(t, res.Error)
		require.NotEmpty(t, res.Raw)
		seen = append(seen, res.Item.StoreKey())
	}
	assert.Len(t, seen, 5)
	assert.IsIncreasing(t, seen)
	assert.EqualValues(t, 5, last.ItemsProcessed)
	assert.Equal(t, 3, last.PagesProcessed)
}
