/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// SecGrpMembH is a membership as it was at one revision.
type SecGrpMembH interface {
	SecGrpMemb
	Historical
	HPKey() SecGrpMembHPKey
}

// SecGrpMembHPKey identifies one revision of a group membership.
type SecGrpMembHPKey struct {
	HistoryKey
	SecGrpMembPKey
}

func (k SecGrpMembHPKey) Equals(other any) bool {
	return secGrpMembProtocol.keyEquals(k, other)
}

func (k SecGrpMembHPKey) Compare(other any) (int, error) {
	return secGrpMembProtocol.keyCompare(k, other)
}

func (k SecGrpMembHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	k.SecGrpMembPKey.hash(&h)
	return h.code()
}

func (k SecGrpMembHPKey) StoreKey() string {
	var kb keyBuilder
	k.SecGrpMembPKey.storeKey(&kb)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// SecGrpMembHBuff is a history snapshot of a membership.
type SecGrpMembHBuff struct {
	SecGrpMembBuff
	envelope
}

func (h *SecGrpMembHBuff) HPKey() SecGrpMembHPKey {
	return SecGrpMembHPKey{HistoryKey: h.historyKey(h.revision), SecGrpMembPKey: h.pkey}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *SecGrpMembHBuff) SetHPKey(k SecGrpMembHPKey) error {
	if err := k.SecGrpMembPKey.validate("SecGrpMembHBuff", "SetHPKey"); err != nil {
		return err
	}
	h.pkey = k.SecGrpMembPKey
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *SecGrpMembHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *SecGrpMembHBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecGrpMembHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecGrpMembHBuff", "SetPKeyValue", 1, "v", v, "SecGrpMembHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *SecGrpMembHBuff) SetHistory(src SecGrpMembH) error {
	if src == nil {
		return errors.NewNullArgumentError("SecGrpMembHBuff", "SetHistory", 1, "src")
	}
	var tmp SecGrpMembHBuff
	if err := tmp.SecGrpMembBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *SecGrpMembHBuff) Clone() *SecGrpMembHBuff {
	c := *h
	c.SecGrpMembBuff = *h.SecGrpMembBuff.Clone()
	return &c
}

func (h *SecGrpMembHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *SecGrpMembHBuff) Equals(other any) bool {
	return secGrpMembProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *SecGrpMembHBuff) Compare(other any) (int, error) {
	return secGrpMembProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *SecGrpMembHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentSecGrpMemb(&f, h)
	return f.String()
}

type secGrpMembHJSON struct {
	History HistoryKey      `json:"history"`
	Record  *SecGrpMembBuff `json:"record"`
}

func (h *SecGrpMembHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secGrpMembHJSON{History: h.historyKey(h.revision), Record: &h.SecGrpMembBuff})
}

func (h *SecGrpMembHBuff) UnmarshalJSON(data []byte) error {
	var j secGrpMembHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("SecGrpMembHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp SecGrpMembHBuff
	tmp.SecGrpMembBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
