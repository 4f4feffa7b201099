/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// SecDeviceH is a device as it was at one revision.
type SecDeviceH interface {
	SecDevice
	Historical
	HPKey() SecDeviceHPKey
}

// SecDeviceHPKey identifies one revision of a device.
type SecDeviceHPKey struct {
	HistoryKey
	SecDevicePKey
}

func (k SecDeviceHPKey) Equals(other any) bool {
	return secDeviceProtocol.keyEquals(k, other)
}

func (k SecDeviceHPKey) Compare(other any) (int, error) {
	return secDeviceProtocol.keyCompare(k, other)
}

func (k SecDeviceHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	k.SecDevicePKey.hash(&h)
	return h.code()
}

func (k SecDeviceHPKey) StoreKey() string {
	var kb keyBuilder
	k.SecDevicePKey.storeKey(&kb)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// SecDeviceHBuff is a history snapshot of a device.
type SecDeviceHBuff struct {
	SecDeviceBuff
	envelope
}

func (h *SecDeviceHBuff) HPKey() SecDeviceHPKey {
	return SecDeviceHPKey{HistoryKey: h.historyKey(h.revision), SecDevicePKey: h.pkey}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *SecDeviceHBuff) SetHPKey(k SecDeviceHPKey) error {
	if err := k.SecDevicePKey.validate("SecDeviceHBuff", "SetHPKey"); err != nil {
		return err
	}
	h.pkey = k.SecDevicePKey
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *SecDeviceHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *SecDeviceHBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecDeviceHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecDeviceHBuff", "SetPKeyValue", 1, "v", v, "SecDeviceHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *SecDeviceHBuff) SetHistory(src SecDeviceH) error {
	if src == nil {
		return errors.NewNullArgumentError("SecDeviceHBuff", "SetHistory", 1, "src")
	}
	var tmp SecDeviceHBuff
	if err := tmp.SecDeviceBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *SecDeviceHBuff) Clone() *SecDeviceHBuff {
	c := *h
	c.SecDeviceBuff = *h.SecDeviceBuff.Clone()
	return &c
}

func (h *SecDeviceHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *SecDeviceHBuff) Equals(other any) bool {
	return secDeviceProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *SecDeviceHBuff) Compare(other any) (int, error) {
	return secDeviceProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *SecDeviceHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentSecDevice(&f, h)
	return f.String()
}

type secDeviceHJSON struct {
	History HistoryKey     `json:"history"`
	Record  *SecDeviceBuff `json:"record"`
}

func (h *SecDeviceHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secDeviceHJSON{History: h.historyKey(h.revision), Record: &h.SecDeviceBuff})
}

func (h *SecDeviceHBuff) UnmarshalJSON(data []byte) error {
	var j secDeviceHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("SecDeviceHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp SecDeviceHBuff
	tmp.SecDeviceBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
