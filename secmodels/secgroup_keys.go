/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// SecGroupStoreKey is the canonical datastore key for a group id.
func SecGroupStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	SecGroupClusterIdx    = "ClusterIdx"
	SecGroupClusterVisIdx = "ClusterVisIdx"
	SecGroupUNameIdx      = "UNameIdx"
)

// SecGroupByClusterIdxKey selects every group of a cluster.
type SecGroupByClusterIdxKey struct {
	ClusterID keys.HashKey
}

func secGroupByClusterIdx(r SecGroup) SecGroupByClusterIdxKey {
	return SecGroupByClusterIdxKey{ClusterID: r.ClusterID()}
}

func (k SecGroupByClusterIdxKey) compare(o SecGroupByClusterIdxKey) int {
	return k.ClusterID.Compare(o.ClusterID)
}

func (k SecGroupByClusterIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	return kb.String()
}

func (k SecGroupByClusterIdxKey) Equals(other any) bool {
	return indexEquals(secGroupProtocol, k, other, secGroupByClusterIdx, SecGroupByClusterIdxKey.compare)
}

func (k SecGroupByClusterIdxKey) Compare(other any) (int, error) {
	return indexCompare(secGroupProtocol, k, other, secGroupByClusterIdx, SecGroupByClusterIdxKey.compare)
}

func (k SecGroupByClusterIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	return h.code()
}

// SecGroupByClusterVisIdxKey selects a cluster's visible or hidden groups.
type SecGroupByClusterVisIdxKey struct {
	ClusterID keys.HashKey
	IsVisible bool
}

func secGroupByClusterVisIdx(r SecGroup) SecGroupByClusterVisIdxKey {
	return SecGroupByClusterVisIdxKey{
		ClusterID: r.ClusterID(),
		IsVisible: r.IsVisible(),
	}
}

func (k SecGroupByClusterVisIdxKey) compare(o SecGroupByClusterVisIdxKey) int {
	if c := k.ClusterID.Compare(o.ClusterID); c != 0 {
		return c
	}
	return compareBool(k.IsVisible, o.IsVisible)
}

func (k SecGroupByClusterVisIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	kb.bool(k.IsVisible)
	return kb.String()
}

func (k SecGroupByClusterVisIdxKey) Equals(other any) bool {
	return indexEquals(secGroupProtocol, k, other, secGroupByClusterVisIdx, SecGroupByClusterVisIdxKey.compare)
}

func (k SecGroupByClusterVisIdxKey) Compare(other any) (int, error) {
	return indexCompare(secGroupProtocol, k, other, secGroupByClusterVisIdx, SecGroupByClusterVisIdxKey.compare)
}

func (k SecGroupByClusterVisIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	h.bool(k.IsVisible)
	return h.code()
}

// SecGroupByUNameIdxKey is unique within a cluster.
type SecGroupByUNameIdxKey struct {
	ClusterID keys.HashKey
	Name      string
}

func secGroupByUNameIdx(r SecGroup) SecGroupByUNameIdxKey {
	return SecGroupByUNameIdxKey{
		ClusterID: r.ClusterID(),
		Name:      r.Name(),
	}
}

func (k SecGroupByUNameIdxKey) compare(o SecGroupByUNameIdxKey) int {
	if c := k.ClusterID.Compare(o.ClusterID); c != 0 {
		return c
	}
	return cmp.Compare(k.Name, o.Name)
}

func (k SecGroupByUNameIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	kb.str(k.Name)
	return kb.String()
}

func (k SecGroupByUNameIdxKey) Equals(other any) bool {
	return indexEquals(secGroupProtocol, k, other, secGroupByUNameIdx, SecGroupByUNameIdxKey.compare)
}

func (k SecGroupByUNameIdxKey) Compare(other any) (int, error) {
	return indexCompare(secGroupProtocol, k, other, secGroupByUNameIdx, SecGroupByUNameIdxKey.compare)
}

func (k SecGroupByUNameIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	h.str(k.Name)
	return h.code()
}

type secGroupOperand = operand[SecGroup, SecGroupHPKey]

var secGroupProtocol = protocol[SecGroup, SecGroupHPKey]{
	class:            "SecGroup",
	classify:         classifySecGroup,
	compare:          compareSecGroup,
	compareKey:       compareSecGroupKey,
	compareRecordKey: compareSecGroupRecordKey,
}

func classifySecGroup(other any) secGroupOperand {
	switch v := other.(type) {
	case nil:
		return secGroupOperand{variant: variantNil}
	case *SecGroupHBuff:
		if v == nil {
			return secGroupOperand{variant: variantNil}
		}
		return secGroupOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *SecGroupBuff:
		if v == nil {
			return secGroupOperand{variant: variantNil}
		}
		return secGroupOperand{variant: variantRecord, rec: v}
	case SecGroupH:
		if v.ClassCode() == ClassCodeSecGroup {
			return secGroupOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case SecGroup:
		if v.ClassCode() == ClassCodeSecGroup {
			return secGroupOperand{variant: variantRecord, rec: v}
		}
	case SecGroupHPKey:
		return secGroupOperand{variant: variantHistoryKey, hkey: v}
	case SecGroupByClusterIdxKey:
		return indexOperand[SecGroup, SecGroupHPKey](v, secGroupByClusterIdx, SecGroupByClusterIdxKey.compare)
	case SecGroupByClusterVisIdxKey:
		return indexOperand[SecGroup, SecGroupHPKey](v, secGroupByClusterVisIdx, SecGroupByClusterVisIdxKey.compare)
	case SecGroupByUNameIdxKey:
		return indexOperand[SecGroup, SecGroupHPKey](v, secGroupByUNameIdx, SecGroupByUNameIdxKey.compare)
	}
	return secGroupOperand{}
}

func compareSecGroup(a, b SecGroup) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := a.ClusterID().Compare(b.ClusterID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	return compareBool(a.IsVisible(), b.IsVisible())
}

func compareSecGroupKey(a, b SecGroupHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareSecGroupRecordKey(r SecGroup, k SecGroupHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashSecGroup(r SecGroup) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.key(r.ClusterID())
	h.str(r.Name())
	h.bool(r.IsVisible())
	return h.code()
}

func fragmentSecGroup(f *fragment, r SecGroup) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.key("RequiredClusterId", r.ClusterID())
	f.str("RequiredName", r.Name())
	f.bool("RequiredIsVisible", r.IsVisible())
}
