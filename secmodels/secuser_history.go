/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecUserH is a user as it was at one revision.
type SecUserH interface {
	SecUser
	Historical
	HPKey() SecUserHPKey
}

// SecUserHPKey identifies one revision of a user.
type SecUserHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k SecUserHPKey) Equals(other any) bool {
	return secUserProtocol.keyEquals(k, other)
}

func (k SecUserHPKey) Compare(other any) (int, error) {
	return secUserProtocol.keyCompare(k, other)
}

func (k SecUserHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k SecUserHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// SecUserHBuff is a history snapshot of a user.
type SecUserHBuff struct {
	SecUserBuff
	envelope
}

func (h *SecUserHBuff) HPKey() SecUserHPKey {
	return SecUserHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *SecUserHBuff) SetHPKey(k SecUserHPKey) error {
	if err := checkRequiredKey("SecUserHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *SecUserHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *SecUserHBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecUserHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecUserHBuff", "SetPKeyValue", 1, "v", v, "SecUserHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *SecUserHBuff) SetHistory(src SecUserH) error {
	if src == nil {
		return errors.NewNullArgumentError("SecUserHBuff", "SetHistory", 1, "src")
	}
	var tmp SecUserHBuff
	if err := tmp.SecUserBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *SecUserHBuff) Clone() *SecUserHBuff {
	c := *h
	c.SecUserBuff = *h.SecUserBuff.Clone()
	return &c
}

func (h *SecUserHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *SecUserHBuff) Equals(other any) bool {
	return secUserProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *SecUserHBuff) Compare(other any) (int, error) {
	return secUserProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *SecUserHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentSecUser(&f, h)
	return f.String()
}

type secUserHJSON struct {
	History HistoryKey   `json:"history"`
	Record  *SecUserBuff `json:"record"`
}

func (h *SecUserHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secUserHJSON{History: h.historyKey(h.revision), Record: &h.SecUserBuff})
}

func (h *SecUserHBuff) UnmarshalJSON(data []byte) error {
	var j secUserHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("SecUserHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp SecUserHBuff
	tmp.SecUserBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
