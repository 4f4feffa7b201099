/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// TenantH is a tenant as it was at one revision.
type TenantH interface {
	Tenant
	Historical
	HPKey() TenantHPKey
}

// TenantHPKey identifies one revision of a tenant.
type TenantHPKey struct {
	HistoryKey
	ID keys.HashKey `json:"id"`
}

func (k TenantHPKey) Equals(other any) bool {
	return tenantProtocol.keyEquals(k, other)
}

func (k TenantHPKey) Compare(other any) (int, error) {
	return tenantProtocol.keyCompare(k, other)
}

func (k TenantHPKey) HashCode() int {
	var h hasher
	k.HistoryKey.hash(&h)
	h.key(k.ID)
	return h.code()
}

func (k TenantHPKey) StoreKey() string {
	var kb keyBuilder
	kb.key(k.ID)
	k.HistoryKey.storeKey(&kb)
	return kb.String()
}

// TenantHBuff is a history snapshot of a tenant.
type TenantHBuff struct {
	TenantBuff
	envelope
}

func (h *TenantHBuff) HPKey() TenantHPKey {
	return TenantHPKey{HistoryKey: h.historyKey(h.revision), ID: h.id}
}

// SetHPKey replaces the audit envelope, revision and primary key together.
func (h *TenantHBuff) SetHPKey(k TenantHPKey) error {
	if err := checkRequiredKey("TenantHBuff", "SetHPKey", "ID", k.ID); err != nil {
		return err
	}
	h.id = k.ID
	h.revision = k.Revision
	h.setHistoryKey(k.HistoryKey)
	return nil
}

func (h *TenantHBuff) PKeyValue() any {
	return h.HPKey()
}

func (h *TenantHBuff) SetPKeyValue(v any) error {
	k, ok := v.(TenantHPKey)
	if !ok {
		return errors.NewUnsupportedClassError("TenantHBuff", "SetPKeyValue", 1, "v", v, "TenantHPKey")
	}
	return h.SetHPKey(k)
}

// SetHistory copies a whole history record, envelope included.
func (h *TenantHBuff) SetHistory(src TenantH) error {
	if src == nil {
		return errors.NewNullArgumentError("TenantHBuff", "SetHistory", 1, "src")
	}
	var tmp TenantHBuff
	if err := tmp.TenantBuff.Set(src); err != nil {
		return err
	}
	if err := tmp.SetHPKey(src.HPKey()); err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (h *TenantHBuff) Clone() *TenantHBuff {
	c := *h
	c.TenantBuff = *h.TenantBuff.Clone()
	return &c
}

func (h *TenantHBuff) StoreKey() string {
	return h.HPKey().StoreKey()
}

func (h *TenantHBuff) Equals(other any) bool {
	return tenantProtocol.historyEquals(h, h.HPKey(), other)
}

func (h *TenantHBuff) Compare(other any) (int, error) {
	return tenantProtocol.historyCompare(h, h.HPKey(), other)
}

func (h *TenantHBuff) XMLAttrFragment() string {
	var f fragment
	h.historyKey(h.revision).fragment(&f)
	fragmentTenant(&f, h)
	return f.String()
}

type tenantHJSON struct {
	History HistoryKey  `json:"history"`
	Record  *TenantBuff `json:"record"`
}

func (h *TenantHBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(tenantHJSON{History: h.historyKey(h.revision), Record: &h.TenantBuff})
}

func (h *TenantHBuff) UnmarshalJSON(data []byte) error {
	var j tenantHJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Record == nil {
		return errors.NewNullArgumentError("TenantHBuff", "UnmarshalJSON", 1, "record")
	}
	var tmp TenantHBuff
	tmp.TenantBuff = *j.Record
	tmp.revision = j.History.Revision
	tmp.setHistoryKey(j.History)
	*h = tmp
	return nil
}
