/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
)

type clusterMap map[keys.HashKey]*secmodels.ClusterBuff

func (m clusterMap) ReadDerived(_ context.Context, id keys.HashKey) (*secmodels.ClusterBuff, error) {
	return m[id], nil
}

func (m clusterMap) ReadDerivedByUDomNameIdx(_ context.Context, name string) (*secmodels.ClusterBuff, error) {
	for _, c := range m {
		if c.FullDomName() == name {
			return c, nil
		}
	}
	return nil, nil
}

func (m clusterMap) ReadDerivedByUDescrIdx(_ context.Context, descr string) (*secmodels.ClusterBuff, error) {
	for _, c := range m {
		if c.Description() == descr {
			return c, nil
		}
	}
	return nil, nil
}

type stubBacking struct {
	secmodels.UnimplementedBacking
	clusters clusterMap
}

func (b *stubBacking) ClusterTable() secmodels.ClusterTable {
	return b.clusters
}

type stubSchema struct {
	backing secmodels.Backing
}

func (s stubSchema) Backing() (secmodels.Backing, error) {
	return s.backing, nil
}

func TestNavigateToOwner(t *testing.T) {
	ctx := context.Background()
	cluster := newCluster(t, "example.com", "desc")
	tenant := newTenant(t, cluster.ID(), "acme")
	s := stubSchema{backing: &stubBacking{clusters: clusterMap{cluster.ID(): cluster}}}

	got, err := tenant.RequiredOwnerCluster(ctx, s)
	must(t, err)
	if got == nil || !got.Equals(cluster) {
		t.Fatalf("navigated to %v, want the owning cluster", got)
	}

	t.Run("missing target", func(t *testing.T) {
		orphan := newTenant(t, keyOf("gone"), "orphan")
		got, err := orphan.RequiredOwnerCluster(ctx, s)
		must(t, err)
		if got != nil {
			t.Fatal("expected nil for a dangling reference")
		}
	})
}

func TestNavigateWithoutBacking(t *testing.T) {
	ctx := context.Background()
	tenant := newTenant(t, keyOf("c"), "acme")

	_, err := tenant.RequiredOwnerCluster(ctx, stubSchema{})
	var nullArg *errors.NullArgumentError
	if !goerrors.As(err, &nullArg) {
		t.Fatalf("expected NullArgumentError, got %v", err)
	}
	if nullArg.ArgName != "Backing()" {
		t.Fatalf("ArgName = %q", nullArg.ArgName)
	}

	if _, err := tenant.RequiredOwnerCluster(ctx, nil); !errors.IsNullArgument(err) {
		t.Fatalf("nil schema: expected null argument, got %v", err)
	}
}

func TestNavigateToUnservedTable(t *testing.T) {
	memb := newSecGrpMemb(t, keyOf("g"), keyOf("u"))
	s := stubSchema{backing: &stubBacking{clusters: clusterMap{}}}

	_, err := memb.RequiredContainerGroup(context.Background(), s)
	var nullArg *errors.NullArgumentError
	if !goerrors.As(err, &nullArg) {
		t.Fatalf("expected NullArgumentError, got %v", err)
	}
	if nullArg.ArgName != "SecGroupTable()" {
		t.Fatalf("ArgName = %q", nullArg.ArgName)
	}
}

func TestOptionalNavigationUnset(t *testing.T) {
	user := newSecUser(t, "bob")
	must(t, user.SetDfltDevName(nil))

	dev, err := user.OptionalLookupDefDev(context.Background(), nil)
	if err != nil || dev != nil {
		t.Fatalf("unset optional reference: got %v, %v", dev, err)
	}
}

func TestUnimplementedBacking(t *testing.T) {
	var b secmodels.UnimplementedBacking
	if _, err := b.NextID(context.Background(), secmodels.ClassCodeCluster); !errors.IsMustOverride(err) {
		t.Fatalf("expected must-override, got %v", err)
	}
	if _, err := secmodels.ClusterTableOf(stubSchema{backing: b}); !errors.IsNullArgument(err) {
		t.Fatalf("expected null argument for an unserved table, got %v", err)
	}
}
