/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/registry"
	"github.com/suparena/secschema/secmodels"
)

type clusterTable struct {
	recs map[keys.HashKey]*secmodels.ClusterBuff
}

func (t clusterTable) ReadDerived(_ context.Context, id keys.HashKey) (*secmodels.ClusterBuff, error) {
	return t.recs[id], nil
}

func (t clusterTable) ReadDerivedByUDomNameIdx(context.Context, string) (*secmodels.ClusterBuff, error) {
	return nil, nil
}

func (t clusterTable) ReadDerivedByUDescrIdx(context.Context, string) (*secmodels.ClusterBuff, error) {
	return nil, nil
}

type clusterOnly struct {
	secmodels.UnimplementedBacking
	table clusterTable
}

func (b *clusterOnly) ClusterTable() secmodels.ClusterTable {
	return b.table
}

func newCluster(t *testing.T, domain string) *secmodels.ClusterBuff {
	t.Helper()
	c := secmodels.ClusterFactory{}.NewRec()
	require.NoError(t, c.SetID(keys.HashKeyOf([]byte(domain))))
	require.NoError(t, c.SetFullDomName(domain))
	require.NoError(t, c.SetDescription(domain))
	return c
}

func TestBuiltInConstructors(t *testing.T) {
	reg := registry.New()

	codes := reg.ClassCodes()
	assert.Equal(t, secmodels.ClassCodes(), codes)

	for _, code := range codes {
		rec, err := reg.NewRecord(code)
		require.NoError(t, err, code.String())
		assert.Equal(t, code, rec.ClassCode())
	}
}

func TestMissingConstructor(t *testing.T) {
	reg := registry.New()

	_, err := reg.NewRecord(secmodels.ClassCode(0x7fff))
	require.Error(t, err)
	assert.True(t, errors.IsNullArgument(err))
	assert.Contains(t, err.Error(), "ClassCode(0x7fff)")
}

func TestRegisterConstructor(t *testing.T) {
	reg := registry.New()
	custom := secmodels.ClassCode(0xb001)

	require.NoError(t, reg.RegisterConstructor(custom, func() secmodels.Record {
		return secmodels.ClusterFactory{}.NewRec()
	}))
	assert.Contains(t, reg.ClassCodes(), custom)

	err := reg.RegisterConstructor(secmodels.ClassCodeCluster, func() secmodels.Record { return nil })
	assert.True(t, errors.IsAlreadyExists(err))

	err = reg.RegisterConstructor(0xb002, nil)
	assert.True(t, errors.IsNullArgument(err))

	// rewiring restores built-ins without touching custom entries
	reg.WireRecConstructors()
	_, err = reg.Constructor(custom)
	assert.NoError(t, err)
}

func TestBackingNotInstalled(t *testing.T) {
	reg := registry.New()

	_, err := reg.Backing()
	require.Error(t, err)
	var nullArg *errors.NullArgumentError
	require.ErrorAs(t, err, &nullArg)
	assert.Equal(t, "Backing()", nullArg.ArgName)

	_, err = reg.ClusterTable()
	assert.True(t, errors.IsNullArgument(err))
}

func TestBackingSwap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg := registry.New(registry.WithLogger(zap.New(core)))
	ctx := context.Background()

	c := newCluster(t, "example.com")
	tenant := secmodels.TenantFactory{}.NewRec()
	require.NoError(t, tenant.SetID(keys.HashKeyOf([]byte("tenant"))))
	require.NoError(t, tenant.SetClusterID(c.ID()))
	require.NoError(t, tenant.SetTenantName("acme"))

	first := &clusterOnly{table: clusterTable{recs: map[keys.HashKey]*secmodels.ClusterBuff{c.ID(): c}}}
	reg.SetBacking(first)

	owner, err := tenant.RequiredOwnerCluster(ctx, reg)
	require.NoError(t, err)
	assert.True(t, owner.Equals(c))

	// unserved kind
	_, err = reg.TenantTable()
	assert.True(t, errors.IsNullArgument(err))

	empty := &clusterOnly{table: clusterTable{recs: map[keys.HashKey]*secmodels.ClusterBuff{}}}
	reg.SetBacking(empty)
	owner, err = tenant.RequiredOwnerCluster(ctx, reg)
	require.NoError(t, err)
	assert.Nil(t, owner)

	b, err := reg.Backing()
	require.NoError(t, err)
	assert.Same(t, empty, b)

	assert.Equal(t, 2, logs.FilterMessage("backing schema installed").Len())
}

func TestFactories(t *testing.T) {
	reg := registry.New()

	dev := reg.SecDeviceFactory().NewRec()
	assert.Equal(t, secmodels.ClassCodeSecDevice, dev.ClassCode())

	same, err := reg.SecDeviceFactory().EnsureRec(dev)
	require.NoError(t, err)
	assert.Same(t, dev, same)

	none, err := reg.ClusterFactory().EnsureRec(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	assert.NotNil(t, reg.ISOCtryCcyFactory().NewHRec())
}

func TestConcurrentSwapAndRead(t *testing.T) {
	reg := registry.New()
	backings := []secmodels.Backing{&clusterOnly{}, &clusterOnly{}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.SetBacking(backings[i%2])
		}(i)
		go func() {
			defer wg.Done()
			if b, err := reg.Backing(); err == nil {
				assert.NotNil(t, b)
			}
			_ = reg.ClassCodes()
		}()
	}
	wg.Wait()

	_, err := reg.Backing()
	assert.NoError(t, err)
}
