/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// ServiceTypeStoreKey is the canonical datastore key for a service type id.
func ServiceTypeStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const ServiceTypeUDescrIdx = "UDescrIdx"

// ServiceTypeByUDescrIdxKey looks a service type up by description.
type ServiceTypeByUDescrIdxKey struct {
	Description string
}

func serviceTypeByUDescrIdx(r ServiceType) ServiceTypeByUDescrIdxKey {
	return ServiceTypeByUDescrIdxKey{Description: r.Description()}
}

func (k ServiceTypeByUDescrIdxKey) compare(o ServiceTypeByUDescrIdxKey) int {
	return cmp.Compare(k.Description, o.Description)
}

func (k ServiceTypeByUDescrIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.Description)
	return kb.String()
}

func (k ServiceTypeByUDescrIdxKey) Equals(other any) bool {
	return indexEquals(serviceTypeProtocol, k, other, serviceTypeByUDescrIdx, ServiceTypeByUDescrIdxKey.compare)
}

func (k ServiceTypeByUDescrIdxKey) Compare(other any) (int, error) {
	return indexCompare(serviceTypeProtocol, k, other, serviceTypeByUDescrIdx, ServiceTypeByUDescrIdxKey.compare)
}

func (k ServiceTypeByUDescrIdxKey) HashCode() int {
	var h hasher
	h.str(k.Description)
	return h.code()
}

type serviceTypeOperand = operand[ServiceType, ServiceTypeHPKey]

var serviceTypeProtocol = protocol[ServiceType, ServiceTypeHPKey]{
	class:            "ServiceType",
	classify:         classifyServiceType,
	compare:          compareServiceType,
	compareKey:       compareServiceTypeKey,
	compareRecordKey: compareServiceTypeRecordKey,
}

func classifyServiceType(other any) serviceTypeOperand {
	switch v := other.(type) {
	case nil:
		return serviceTypeOperand{variant: variantNil}
	case *ServiceTypeHBuff:
		if v == nil {
			return serviceTypeOperand{variant: variantNil}
		}
		return serviceTypeOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ServiceTypeBuff:
		if v == nil {
			return serviceTypeOperand{variant: variantNil}
		}
		return serviceTypeOperand{variant: variantRecord, rec: v}
	case ServiceTypeH:
		if v.ClassCode() == ClassCodeServiceType {
			return serviceTypeOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case ServiceType:
		if v.ClassCode() == ClassCodeServiceType {
			return serviceTypeOperand{variant: variantRecord, rec: v}
		}
	case ServiceTypeHPKey:
		return serviceTypeOperand{variant: variantHistoryKey, hkey: v}
	case ServiceTypeByUDescrIdxKey:
		return indexOperand[ServiceType, ServiceTypeHPKey](v, serviceTypeByUDescrIdx, ServiceTypeByUDescrIdxKey.compare)
	}
	return serviceTypeOperand{}
}

func compareServiceType(a, b ServiceType) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	return cmp.Compare(a.Description(), b.Description())
}

func compareServiceTypeKey(a, b ServiceTypeHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareServiceTypeRecordKey(r ServiceType, k ServiceTypeHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashServiceType(r ServiceType) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.str(r.Description())
	return h.code()
}

func fragmentServiceType(f *fragment, r ServiceType) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.str("RequiredDescription", r.Description())
}
