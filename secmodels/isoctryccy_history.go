/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCtryCcyH is a country-currency association as it was at one revision.
type ISOCtryCcyH interface {
	ISOCtryCcy
	Historical
	HPKey() ISOCtryCcyHPKey
}

// ISOCtryCcyHPKey identifies one revision of a country currency.
type ISOCtryCcyHPKey struct {
	HistoryKey
	ISOCtryCcyPKey
}

func (k ISOCtryCcyHPKey) Equals(other any) bool {
	return isoCtryCcyProtocol.keyEquals(k, other)
}

func (k ISOCtryCcyHPKey) Compare(other any) (int, error) {
	return isoCtryCcyProtocol.keyCompare(k, other)
}

func (k ISOCtryCcyHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	k.ISOCtryCcyPKey.hash(&h)
	return h.code()
}

func (k ISOCtryCcyHPKey) StoreKey() string {
	var kb keyBuilder
	k.ISOCtryCcyPKey.storeKey(&kb)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ISOCtryCcyHBuff is a history snapshot of a country-currency association.
type ISOCtryCcyHBuff struct {
	ISOCtryCcyBuff
	envelope
}

func (h *ISOCtryCcyHBuff) HPKey() ISOCtryCcyHPKey {
	return ISOCtryCcyHPKey{HistoryKey: h.historyKey(h.revision), ISOCtryCcyPKey: h.pkey}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ISOCtryCcyHBuff) SetHPKey(k ISOCtryCcyHPKey) error {
	if err := k.ISOCtryCcyPKey.validate("ISOCtryCcyHBuff", "SetHPKey"); err != nil {
		return err
	}
	h.pkey = k.ISOCtryCcyPKey
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ISOCtryCcyHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ISOCtryCcyHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ISOCtryCcyHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCtryCcyHBuff", "SetPKeyValue", 1, "v", v, "ISOCtryCcyHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ISOCtryCcyHBuff) SetHistory(src ISOCtryCcyH) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCtryCcyHBuff", "SetHistory", 1, "src")
	}
	var tmp ISOCtryCcyHBuff
	if err := tmp.ISOCtryCcyBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ISOCtryCcyHBuff) Clone() *ISOCtryCcyHBuff {
	c := *h
	c.ISOCtryCcyBuff = *h.ISOCtryCcyBuff.Clone()
	return &c
}

func (h *ISOCtryCcyHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ISOCtryCcyHBuff) Equals(other any) bool {
	return isoCtryCcyProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ISOCtryCcyHBuff) Compare(other any) (int, error) {
	return isoCtryCcyProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ISOCtryCcyHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentISOCtryCcy(&f, h)
	return f.String()
}

type isoCtryCcyHJSON struct {
	History HistoryKey      `json:"history"`
	Record  *ISOCtryCcyBuff `json:"record"`
}

func (h *ISOCtryCcyHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCtryCcyHJSON{History: h.historyKey(h.revision), Record: &h.ISOCtryCcyBuff})
}

func (h *ISOCtryCcyHBuff) UnmarshalJSON(data []byte) error {
	var j isoCtryCcyHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ISOCtryCcyHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ISOCtryCcyHBuff
	tmp.ISOCtryCcyBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
