/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// ClusterStoreKey is the canonical datastore key for a cluster id.
func ClusterStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	ClusterUDomNameIdx = "UDomNameIdx"
	ClusterUDescrIdx   = "UDescrIdx"
)

// ClusterByUDomNameIdxKey looks a cluster up by its fully qualified domain name.
type ClusterByUDomNameIdxKey struct {
	FullDomName string
}

func clusterByUDomNameIdx(r Cluster) ClusterByUDomNameIdxKey {
	return ClusterByUDomNameIdxKey{FullDomName: r.FullDomName()}
}

func (k ClusterByUDomNameIdxKey) compare(o ClusterByUDomNameIdxKey) int {
	return cmp.Compare(k.FullDomName, o.FullDomName)
}

func (k ClusterByUDomNameIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.FullDomName)
	return kb.String()
}

func (k ClusterByUDomNameIdxKey) Equals(other any) bool {
	return indexEquals(clusterProtocol, k, other, clusterByUDomNameIdx, ClusterByUDomNameIdxKey.compare)
}

func (k ClusterByUDomNameIdxKey) Compare(other any) (int, error) {
	return indexCompare(clusterProtocol, k, other, clusterByUDomNameIdx, ClusterByUDomNameIdxKey.compare)
}

func (k ClusterByUDomNameIdxKey) HashCode() int {
	var h hasher
	h.str(k.FullDomName)
	return h.code()
}

// ClusterByUDescrIdxKey looks a cluster up by description.
type ClusterByUDescrIdxKey struct {
	Description string
}

func clusterByUDescrIdx(r Cluster) ClusterByUDescrIdxKey {
	return ClusterByUDescrIdxKey{Description: r.Description()}
}

func (k ClusterByUDescrIdxKey) compare(o ClusterByUDescrIdxKey) int {
	return cmp.Compare(k.Description, o.Description)
}

func (k ClusterByUDescrIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.Description)
	return kb.String()
}

func (k ClusterByUDescrIdxKey) Equals(other any) bool {
	return indexEquals(clusterProtocol, k, other, clusterByUDescrIdx, ClusterByUDescrIdxKey.compare)
}

func (k ClusterByUDescrIdxKey) Compare(other any) (int, error) {
	return indexCompare(clusterProtocol, k, other, clusterByUDescrIdx, ClusterByUDescrIdxKey.compare)
}

func (k ClusterByUDescrIdxKey) HashCode() int {
	var h hasher
	h.str(k.Description)
	return h.code()
}

type clusterOperand = operand[Cluster, ClusterHPKey]

var clusterProtocol = protocol[Cluster, ClusterHPKey]{
	class:            "Cluster",
	classify:         classifyCluster,
	compare:          compareCluster,
	compareKey:       compareClusterKey,
	compareRecordKey: compareClusterRecordKey,
}

func classifyCluster(other any) clusterOperand {
	switch v := other.(type) {
	case nil:
		return clusterOperand{variant: variantNil}
	case *ClusterHBuff:
		if v == nil {
			return clusterOperand{variant: variantNil}
		}
		return clusterOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ClusterBuff:
		if v == nil {
			return clusterOperand{variant: variantNil}
		}
		return clusterOperand{variant: variantRecord, rec: v}
	case ClusterH:
		if v.ClassCode() == ClassCodeCluster {
			return clusterOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case Cluster:
		if v.ClassCode() == ClassCodeCluster {
			return clusterOperand{variant: variantRecord, rec: v}
		}
	case ClusterHPKey:
		return clusterOperand{variant: variantHistoryKey, hkey: v}
	case ClusterByUDomNameIdxKey:
		return indexOperand[Cluster, ClusterHPKey](v, clusterByUDomNameIdx, ClusterByUDomNameIdxKey.compare)
	case ClusterByUDescrIdxKey:
		return indexOperand[Cluster, ClusterHPKey](v, clusterByUDescrIdx, ClusterByUDescrIdxKey.compare)
	}
	return clusterOperand{}
}

func compareCluster(a, b Cluster) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.FullDomName(), b.FullDomName()); c != 0 {
		return c
	}
	return cmp.Compare(a.Description(), b.Description())
}

func compareClusterKey(a, b ClusterHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareClusterRecordKey(r Cluster, k ClusterHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashCluster(r Cluster) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.str(r.FullDomName())
	h.str(r.Description())
	return h.code()
}

func fragmentCluster(f *fragment, r Cluster) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.str("RequiredFullDomName", r.FullDomName())
	f.str("RequiredDescription", r.Description())
}
