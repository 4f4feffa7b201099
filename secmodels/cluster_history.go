/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// ClusterH is a cluster as it was at one revision.
type ClusterH interface {
	Cluster
	Historical
	HPKey() ClusterHPKey
}

// ClusterHPKey identifies one revision of a cluster.
type ClusterHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k ClusterHPKey) Equals(other any) bool {
	return clusterProtocol.keyEquals(k, other)
}

func (k ClusterHPKey) Compare(other any) (int, error) {
	return clusterProtocol.keyCompare(k, other)
}

func (k ClusterHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k ClusterHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ClusterHBuff is a history snapshot of a cluster.
type ClusterHBuff struct {
	ClusterBuff
	envelope
}

func (h *ClusterHBuff) HPKey() ClusterHPKey {
	return ClusterHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ClusterHBuff) SetHPKey(k ClusterHPKey) error {
	if err := checkRequiredKey("ClusterHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ClusterHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ClusterHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ClusterHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ClusterHBuff", "SetPKeyValue", 1, "v", v, "ClusterHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ClusterHBuff) SetHistory(src ClusterH) error {
	if src == nil {
		return errors.NewNullArgumentError("ClusterHBuff", "SetHistory", 1, "src")
	}
	var tmp ClusterHBuff
	if err := tmp.ClusterBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ClusterHBuff) Clone() *ClusterHBuff {
	c := *h
	c.ClusterBuff = *h.ClusterBuff.Clone()
	return &c
}

func (h *ClusterHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ClusterHBuff) Equals(other any) bool {
	return clusterProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ClusterHBuff) Compare(other any) (int, error) {
	return clusterProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ClusterHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentCluster(&f, h)
	return f.String()
}

type clusterHJSON struct {
	History HistoryKey   `json:"history"`
	Record  *ClusterBuff `json:"record"`
}

func (h *ClusterHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(clusterHJSON{History: h.historyKey(h.revision), Record: &h.ClusterBuff})
}

func (h *ClusterHBuff) UnmarshalJSON(data []byte) error {
	var j clusterHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ClusterHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ClusterHBuff
	tmp.ClusterBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
