/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secschema_test

import (
	"context"
	"sync"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/secschema"
	"github.com/suparena/secschema/config"
	"github.com/suparena/secschema/secmodels"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestOpenWithMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "test"
	reg := prometheus.NewRegistry()

	b, err := secschema.Open(ctx, cfg, secschema.WithRegisterer(reg))
	require.NoError(t, err)

	got, err := b.ClusterTable().ReadDerived(ctx, keyOf("absent"))
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 1.0, counterValue(t, reg, "test_datastore_operations_total",
		map[string]string{"kind": "Cluster", "op": "get", "result": "not_found"}))
}

func TestReopenWithMetrics(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "reopen"
	reg := prometheus.NewRegistry()

	first, err := secschema.Open(ctx, cfg, secschema.WithRegisterer(reg))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	var second *secschema.Backing
	require.NotPanics(t, func() {
		second, err = secschema.Open(ctx, cfg, secschema.WithRegisterer(reg))
	})
	require.NoError(t, err)

	_, err = first.ClusterTable().ReadDerived(ctx, keyOf("a"))
	require.NoError(t, err)
	_, err = second.ClusterTable().ReadDerived(ctx, keyOf("b"))
	require.NoError(t, err)

	// both backings count into the same series
	assert.Equal(t, 2.0, counterValue(t, reg, "reopen_datastore_operations_total",
		map[string]string{"kind": "Cluster", "op": "get", "result": "not_found"}))
}

type recordingDynamo struct {
	mu     sync.Mutex
	tables []string
}

func (r *recordingDynamo) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = append(r.tables, *in.TableName)
	return &sdk.GetItemOutput{}, nil
}

func (r *recordingDynamo) Query(_ context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = append(r.tables, *in.TableName)
	return &sdk.QueryOutput{}, nil
}

func (r *recordingDynamo) TransactWriteItems(context.Context, *sdk.TransactWriteItemsInput, ...func(*sdk.Options)) (*sdk.TransactWriteItemsOutput, error) {
	return &sdk.TransactWriteItemsOutput{}, nil
}

func TestOpenDynamoDB(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Backing = config.BackingDynamoDB
	cfg.DynamoDB.Region = "us-east-1"
	cfg.DynamoDB.Table = "secschema-test"
	api := &recordingDynamo{}

	b, err := secschema.Open(ctx, cfg, secschema.WithDynamoDBClient(api))
	require.NoError(t, err)
	assert.Len(t, b.ClassCodes(), len(secmodels.ClassCodes()))

	got, err := b.ISOCcyTable().ReadDerived(ctx, 840)
	require.NoError(t, err)
	assert.Nil(t, got)

	byName, err := b.ISOCcyTable().ReadDerivedByNameIdx(ctx, "US Dollar")
	require.NoError(t, err)
	assert.Nil(t, byName)

	assert.Equal(t, []string{"secschema-test", "secschema-test"}, api.tables)
}

type emptyRedis struct{}

func (emptyRedis) HGet(context.Context, string, string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (emptyRedis) SMembers(context.Context, string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, nil)
}

func (emptyRedis) Eval(context.Context, string, []string, ...interface{}) *redis.Cmd {
	return redis.NewCmdResult(int64(1), nil)
}

func TestOpenRedis(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Backing = config.BackingRedis
	cfg.Redis.Addr = "localhost:6379"

	b, err := secschema.Open(ctx, cfg, secschema.WithRedisClient(emptyRedis{}))
	require.NoError(t, err)
	// injected clients are owned by the caller
	require.NoError(t, b.Close())

	got, err := b.SecUserTable().ReadDerivedByULoginIdx(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	user, err := b.SecUserTable().ReadDerived(ctx, keyOf("alice"))
	require.NoError(t, err)
	assert.Nil(t, user)
}
