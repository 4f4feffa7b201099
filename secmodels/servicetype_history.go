/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// ServiceTypeH is a service type as it was at one revision.
type ServiceTypeH interface {
	ServiceType
	Historical
	HPKey() ServiceTypeHPKey
}

// ServiceTypeHPKey identifies one revision of a service type.
type ServiceTypeHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k ServiceTypeHPKey) Equals(other any) bool {
	return serviceTypeProtocol.keyEquals(k, other)
}

func (k ServiceTypeHPKey) Compare(other any) (int, error) {
	return serviceTypeProtocol.keyCompare(k, other)
}

func (k ServiceTypeHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k ServiceTypeHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// ServiceTypeHBuff is a history snapshot of a service type.
type ServiceTypeHBuff struct {
	ServiceTypeBuff
	envelope
}

func (h *ServiceTypeHBuff) HPKey() ServiceTypeHPKey {
	return ServiceTypeHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *ServiceTypeHBuff) SetHPKey(k ServiceTypeHPKey) error {
	if err := checkRequiredKey("ServiceTypeHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *ServiceTypeHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *ServiceTypeHBuff) SetPKeyValue(v any) error {
	k, ok := v.(ServiceTypeHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ServiceTypeHBuff", "SetPKeyValue", 1, "v", v, "ServiceTypeHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *ServiceTypeHBuff) SetHistory(src ServiceTypeH) error {
	if src == nil {
		return errors.NewNullArgumentError("ServiceTypeHBuff", "SetHistory", 1, "src")
	}
	var tmp ServiceTypeHBuff
	if err := tmp.ServiceTypeBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *ServiceTypeHBuff) Clone() *ServiceTypeHBuff {
	c := *h
	c.ServiceTypeBuff = *h.ServiceTypeBuff.Clone()
	return &c
}

func (h *ServiceTypeHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *ServiceTypeHBuff) Equals(other any) bool {
	return serviceTypeProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *ServiceTypeHBuff) Compare(other any) (int, error) {
	return serviceTypeProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *ServiceTypeHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentServiceType(&f, h)
	return f.String()
}

type serviceTypeHJSON struct {
	History HistoryKey       `json:"history"`
	Record  *ServiceTypeBuff `json:"record"`
}

func (h *ServiceTypeHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(serviceTypeHJSON{History: h.historyKey(h.revision), Record: &h.ServiceTypeBuff})
}

func (h *ServiceTypeHBuff) UnmarshalJSON(data []byte) error {
	var j serviceTypeHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("ServiceTypeHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp ServiceTypeHBuff
	tmp.ServiceTypeBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
