/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCtryH is a country as it was at one revision.
type ISOCtryH interface {
	ISOCtry
	Historical
	HPKey() ISOCtryHPKey
}

// ISOCtryHPKey identifies one revision of a country.
type ISOCtryHPKey struct {
	HistoryKey
	ID int16 `json:"id"`
}

func (k ISOCtryHPKey) Equals(other any) bool {
	return isoCtryProtocol.keyEquals(k, other)
}

func (k ISOCtryHPKey) Compare(other any) (int, error) {
	return isoCtryProtocol.keyCompare(k, other)
}

func (k ISOCtryHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.short(k.ID)
	return h.code()
}

func (k ISOCtryHPKey) StoreKey() string {
	var kb keyBuilder
	kb.short(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ISOCtryHBuff is a history snapshot of a country.
type ISOCtryHBuff struct {
	ISOCtryBuff
	envelope
}

func (h *ISOCtryHBuff) HPKey() ISOCtryHPKey {
	return ISOCtryHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ISOCtryHBuff) SetHPKey(k ISOCtryHPKey) error {
	if err := checkShortRange("ISOCtryHBuff", "SetHPKey", "ID", k.ID, ISOCtryIDMinValue, ISOCtryIDMaxValue); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ISOCtryHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ISOCtryHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ISOCtryHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCtryHBuff", "SetPKeyValue", 1, "v", v, "ISOCtryHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ISOCtryHBuff) SetHistory(src ISOCtryH) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCtryHBuff", "SetHistory", 1, "src")
	}
	var tmp ISOCtryHBuff
	if err := tmp.ISOCtryBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ISOCtryHBuff) Clone() *ISOCtryHBuff {
	c := *h
	c.ISOCtryBuff = *h.ISOCtryBuff.Clone()
	return &c
}

func (h *ISOCtryHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ISOCtryHBuff) Equals(other any) bool {
	return isoCtryProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ISOCtryHBuff) Compare(other any) (int, error) {
	return isoCtryProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ISOCtryHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentISOCtry(&f, h)
	return f.String()
}

type isoCtryHJSON struct {
	History HistoryKey   `json:"history"`
	Record  *ISOCtryBuff `json:"record"`
}

func (h *ISOCtryHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCtryHJSON{History: h.historyKey(h.revision), Record: &h.ISOCtryBuff})
}

func (h *ISOCtryHBuff) UnmarshalJSON(data []byte) error {
	var j isoCtryHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ISOCtryHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ISOCtryHBuff
	tmp.ISOCtryBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
