/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecGroupH is a group as it was at one revision.
type SecGroupH interface {
	SecGroup
	Historical
	HPKey() SecGroupHPKey
}

// SecGroupHPKey identifies one revision of a group.
type SecGroupHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k SecGroupHPKey) Equals(other any) bool {
	return secGroupProtocol.keyEquals(k, other)
}

func (k SecGroupHPKey) Compare(other any) (int, error) {
	return secGroupProtocol.keyCompare(k, other)
}

func (k SecGroupHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k SecGroupHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// SecGroupHBuff is a history snapshot of a group.
type SecGroupHBuff struct {
	SecGroupBuff
	envelope
}

func (h *SecGroupHBuff) HPKey() SecGroupHPKey {
	return SecGroupHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *SecGroupHBuff) SetHPKey(k SecGroupHPKey) error {
	if err := checkRequiredKey("SecGroupHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *SecGroupHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *SecGroupHBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecGroupHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecGroupHBuff", "SetPKeyValue", 1, "v", v, "SecGroupHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *SecGroupHBuff) SetHistory(src SecGroupH) error {
	if src == nil {
		return errors.NewNullArgumentError("SecGroupHBuff", "SetHistory", 1, "src")
	}
	var tmp SecGroupHBuff
	if err := tmp.SecGroupBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *SecGroupHBuff) Clone() *SecGroupHBuff {
	c := *h
	c.SecGroupBuff = *h.SecGroupBuff.Clone()
	return &c
}

func (h *SecGroupHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *SecGroupHBuff) Equals(other any) bool {
	return secGroupProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *SecGroupHBuff) Compare(other any) (int, error) {
	return secGroupProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *SecGroupHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentSecGroup(&f, h)
	return f.String()
}

type secGroupHJSON struct {
	History HistoryKey    `json:"history"`
	Record  *SecGroupBuff `json:"record"`
}

func (h *SecGroupHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secGroupHJSON{History: h.historyKey(h.revision), Record: &h.SecGroupBuff})
}

func (h *SecGroupHBuff) UnmarshalJSON(data []byte) error {
	var j secGroupHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("SecGroupHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp SecGroupHBuff
	tmp.SecGroupBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
