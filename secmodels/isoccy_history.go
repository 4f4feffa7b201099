/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCcyH is a currency as it was at one revision.
type ISOCcyH interface {
	ISOCcy
	Historical
	HPKey() ISOCcyHPKey
}

// ISOCcyHPKey identifies one revision of a currency.
type ISOCcyHPKey struct {
	HistoryKey
	ID int16 `json:"id"`
}

func (k ISOCcyHPKey) Equals(other any) bool {
	return isoCcyProtocol.keyEquals(k, other)
}

func (k ISOCcyHPKey) Compare(other any) (int, error) {
	return isoCcyProtocol.keyCompare(k, other)
}

func (k ISOCcyHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.short(k.ID)
	return h.code()
}

func (k ISOCcyHPKey) StoreKey() string {
	var kb keyBuilder
	kb.short(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ISOCcyHBuff is a history snapshot of a currency.
type ISOCcyHBuff struct {
	ISOCcyBuff
	envelope
}

func (h *ISOCcyHBuff) HPKey() ISOCcyHPKey {
	return ISOCcyHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ISOCcyHBuff) SetHPKey(k ISOCcyHPKey) error {
	if err := checkShortRange("ISOCcyHBuff", "SetHPKey", "ID", k.ID, ISOCcyIDMinValue, ISOCcyIDMaxValue); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ISOCcyHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ISOCcyHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ISOCcyHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCcyHBuff", "SetPKeyValue", 1, "v", v, "ISOCcyHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ISOCcyHBuff) SetHistory(src ISOCcyH) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCcyHBuff", "SetHistory", 1, "src")
	}
	var tmp ISOCcyHBuff
	if err := tmp.ISOCcyBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ISOCcyHBuff) Clone() *ISOCcyHBuff {
	c := *h
	c.ISOCcyBuff = *h.ISOCcyBuff.Clone()
	return &c
}

func (h *ISOCcyHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ISOCcyHBuff) Equals(other any) bool {
	return isoCcyProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ISOCcyHBuff) Compare(other any) (int, error) {
	return isoCcyProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ISOCcyHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentISOCcy(&f, h)
	return f.String()
}

type isoCcyHJSON struct {
	History HistoryKey  `json:"history"`
	Record  *ISOCcyBuff `json:"record"`
}

func (h *ISOCcyHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCcyHJSON{History: h.historyKey(h.revision), Record: &h.ISOCcyBuff})
}

func (h *ISOCcyHBuff) UnmarshalJSON(data []byte) error {
	var j isoCcyHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ISOCcyHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ISOCcyHBuff
	tmp.ISOCcyBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
