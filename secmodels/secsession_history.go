/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecSessionH is a session as it was at one revision.
type SecSessionH interface {
	SecSession
	Historical
	HPKey() SecSessionHPKey
}

// SecSessionHPKey identifies one revision of a session.
type SecSessionHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k SecSessionHPKey) Equals(other any) bool {
	return secSessionProtocol.keyEquals(k, other)
}

func (k SecSessionHPKey) Compare(other any) (int, error) {
	return secSessionProtocol.keyCompare(k, other)
}

func (k SecSessionHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k SecSessionHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// SecSessionHBuff is a history snapshot of a session.
type SecSessionHBuff struct {
	SecSessionBuff
	envelope
}

func (h *SecSessionHBuff) HPKey() SecSessionHPKey {
	return SecSessionHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *SecSessionHBuff) SetHPKey(k SecSessionHPKey) error {
	if err := checkRequiredKey("SecSessionHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *SecSessionHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *SecSessionHBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecSessionHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecSessionHBuff", "SetPKeyValue", 1, "v", v, "SecSessionHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *SecSessionHBuff) SetHistory(src SecSessionH) error {
	if src == nil {
		return errors.NewNullArgumentError("SecSessionHBuff", "SetHistory", 1, "src")
	}
	var tmp SecSessionHBuff
	if err := tmp.SecSessionBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *SecSessionHBuff) Clone() *SecSessionHBuff {
	c := *h
	c.SecSessionBuff = *h.SecSessionBuff.Clone()
	return &c
}

func (h *SecSessionHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *SecSessionHBuff) Equals(other any) bool {
	return secSessionProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *SecSessionHBuff) Compare(other any) (int, error) {
	return secSessionProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *SecSessionHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentSecSession(&f, h)
	return f.String()
}

type secSessionHJSON struct {
	History HistoryKey      `json:"history"`
	Record  *SecSessionBuff `json:"record"`
}

func (h *SecSessionHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secSessionHJSON{History: h.historyKey(h.revision), Record: &h.SecSessionBuff})
}

func (h *SecSessionHBuff) UnmarshalJSON(data []byte) error {
	var j secSessionHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("SecSessionHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp SecSessionHBuff
	tmp.SecSessionBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
