/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// ServiceH is a service as it was at one revision.
type ServiceH interface {
	Service
	Historical
	HPKey() ServiceHPKey
}

// ServiceHPKey identifies one revision of a service.
type ServiceHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k ServiceHPKey) Equals(other any) bool {
	return serviceProtocol.keyEquals(k, other)
}

func (k ServiceHPKey) Compare(other any) (int, error) {
	return serviceProtocol.keyCompare(k, other)
}

func (k ServiceHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k ServiceHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ServiceHBuff is a history snapshot of a service.
type ServiceHBuff struct {
	ServiceBuff
	envelope
}

func (h *ServiceHBuff) HPKey() ServiceHPKey {
	return ServiceHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ServiceHBuff) SetHPKey(k ServiceHPKey) error {
	if err := checkRequiredKey("ServiceHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ServiceHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ServiceHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ServiceHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ServiceHBuff", "SetPKeyValue", 1, "v", v, "ServiceHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ServiceHBuff) SetHistory(src ServiceH) error {
	if src == nil {
		return errors.NewNullArgumentError("ServiceHBuff", "SetHistory", 1, "src")
	}
	var tmp ServiceHBuff
	if err := tmp.ServiceBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ServiceHBuff) Clone() *ServiceHBuff {
	c := *h
	c.ServiceBuff = *h.ServiceBuff.Clone()
	return &c
}

func (h *ServiceHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ServiceHBuff) Equals(other any) bool {
	return serviceProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ServiceHBuff) Compare(other any) (int, error) {
	return serviceProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ServiceHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentService(&f, h)
	return f.String()
}

type serviceHJSON struct {
	History HistoryKey   `json:"history"`
	Record  *ServiceBuff `json:"record"`
}

func (h *ServiceHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(serviceHJSON{History: h.historyKey(h.revision), Record: &h.ServiceBuff})
}

func (h *ServiceHBuff) UnmarshalJSON(data []byte) error {
	var j serviceHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ServiceHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ServiceHBuff
	tmp.ServiceBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
