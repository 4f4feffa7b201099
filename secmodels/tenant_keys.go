/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// TenantStoreKey is the canonical datastore key for a tenant id.
func TenantStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	TenantClusterIdx = "ClusterIdx"
	TenantUNameIdx   = "UNameIdx"
)

// TenantByClusterIdxKey selects every tenant of a cluster.
type TenantByClusterIdxKey struct {
	ClusterID keys.HashKey
}

func tenantByClusterIdx(r Tenant) TenantByClusterIdxKey {
	return TenantByClusterIdxKey{ClusterID: r.ClusterID()}
}

func (k TenantByClusterIdxKey) compare(o TenantByClusterIdxKey) int {
	return k.ClusterID.Compare(o.ClusterID)
}

func (k TenantByClusterIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	return kb.String()
}

func (k TenantByClusterIdxKey) Equals(other any) bool {
	return indexEquals(tenantProtocol, k, other, tenantByClusterIdx, TenantByClusterIdxKey.compare)
}

func (k TenantByClusterIdxKey) Compare(other any) (int, error) {
	return indexCompare(tenantProtocol, k, other, tenantByClusterIdx, TenantByClusterIdxKey.compare)
}

func (k TenantByClusterIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	return h.code()
}

// TenantByUNameIdxKey is unique within a cluster.
type TenantByUNameIdxKey struct {
	ClusterID  keys.HashKey
	TenantName string
}

func tenantByUNameIdx(r Tenant) TenantByUNameIdxKey {
	return TenantByUNameIdxKey{
		ClusterID:  r.ClusterID(),
		TenantName: r.TenantName(),
	}
}

func (k TenantByUNameIdxKey) compare(o TenantByUNameIdxKey) int {
	if c := k.ClusterID.Compare(o.ClusterID); c != 0 {
		return c
	}
	return cmp.Compare(k.TenantName, o.TenantName)
}

func (k TenantByUNameIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	kb.str(k.TenantName)
	return kb.String()
}

func (k TenantByUNameIdxKey) Equals(other any) bool {
	return indexEquals(tenantProtocol, k, other, tenantByUNameIdx, TenantByUNameIdxKey.compare)
}

func (k TenantByUNameIdxKey) Compare(other any) (int, error) {
	return indexCompare(tenantProtocol, k, other, tenantByUNameIdx, TenantByUNameIdxKey.compare)
}

func (k TenantByUNameIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	h.str(k.TenantName)
	return h.code()
}

type tenantOperand = operand[Tenant, TenantHPKey]

var tenantProtocol = protocol[Tenant, TenantHPKey]{
	class:            "Tenant",
	classify:         classifyTenant,
	compare:          compareTenant,
	compareKey:       compareTenantKey,
	compareRecordKey: compareTenantRecordKey,
}

func classifyTenant(other any) tenantOperand {
	switch v := other.(type) {
	case nil:
		return tenantOperand{variant: variantNil}
	case *TenantHBuff:
		if v == nil {
			return tenantOperand{variant: variantNil}
		}
		return tenantOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *TenantBuff:
		if v == nil {
			return tenantOperand{variant: variantNil}
		}
		return tenantOperand{variant: variantRecord, rec: v}
	case TenantH:
		if v.ClassCode() == ClassCodeTenant {
			return tenantOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case Tenant:
		if v.ClassCode() == ClassCodeTenant {
			return tenantOperand{variant: variantRecord, rec: v}
		}
	case TenantHPKey:
		return tenantOperand{variant: variantHistoryKey, hkey: v}
	case TenantByClusterIdxKey:
		return indexOperand[Tenant, TenantHPKey](v, tenantByClusterIdx, TenantByClusterIdxKey.compare)
	case TenantByUNameIdxKey:
		return indexOperand[Tenant, TenantHPKey](v, tenantByUNameIdx, TenantByUNameIdxKey.compare)
	}
	return tenantOperand{}
}

func compareTenant(a, b Tenant) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := a.ClusterID().Compare(b.ClusterID()); c != 0 {
		return c
	}
	return cmp.Compare(a.TenantName(), b.TenantName())
}

func compareTenantKey(a, b TenantHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareTenantRecordKey(r Tenant, k TenantHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashTenant(r Tenant) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.key(r.ClusterID())
	h.str(r.TenantName())
	return h.code()
}

func fragmentTenant(f *fragment, r Tenant) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.key("RequiredClusterId", r.ClusterID())
	f.str("RequiredTenantName", r.TenantName())
}
