/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// ServiceStoreKey is the canonical datastore key for a service id.
func ServiceStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	ServiceClusterIdx   = "ClusterIdx"
	ServiceTypeIdx      = "TypeIdx"
	ServiceUHostTypeIdx = "UHostTypeIdx"
)

// ServiceByClusterIdxKey selects every service of a cluster.
type ServiceByClusterIdxKey struct {
	ClusterID keys.HashKey
}

func serviceByClusterIdx(r Service) ServiceByClusterIdxKey {
	return ServiceByClusterIdxKey{ClusterID: r.ClusterID()}
}

func (k ServiceByClusterIdxKey) compare(o ServiceByClusterIdxKey) int {
	return k.ClusterID.Compare(o.ClusterID)
}

func (k ServiceByClusterIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	return kb.String()
}

func (k ServiceByClusterIdxKey) Equals(other any) bool {
	return indexEquals(serviceProtocol, k, other, serviceByClusterIdx, ServiceByClusterIdxKey.compare)
}

func (k ServiceByClusterIdxKey) Compare(other any) (int, error) {
	return indexCompare(serviceProtocol, k, other, serviceByClusterIdx, ServiceByClusterIdxKey.compare)
}

func (k ServiceByClusterIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	return h.code()
}

// ServiceByTypeIdxKey selects every service of one type.
type ServiceByTypeIdxKey struct {
	ServiceTypeID keys.HashKey
}

func serviceByTypeIdx(r Service) ServiceByTypeIdxKey {
	return ServiceByTypeIdxKey{ServiceTypeID: r.ServiceTypeID()}
}

func (k ServiceByTypeIdxKey) compare(o ServiceByTypeIdxKey) int {
	return k.ServiceTypeID.Compare(o.ServiceTypeID)
}

func (k ServiceByTypeIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ServiceTypeID)
	return kb.String()
}

func (k ServiceByTypeIdxKey) Equals(other any) bool {
	return indexEquals(serviceProtocol, k, other, serviceByTypeIdx, ServiceByTypeIdxKey.compare)
}

func (k ServiceByTypeIdxKey) Compare(other any) (int, error) {
	return indexCompare(serviceProtocol, k, other, serviceByTypeIdx, ServiceByTypeIdxKey.compare)
}

func (k ServiceByTypeIdxKey) HashCode() int {
	var h hasher
	h.key(k.ServiceTypeID)
	return h.code()
}

// ServiceByUHostTypeIdxKey allows one service of each type per host.
type ServiceByUHostTypeIdxKey struct {
	ClusterID     keys.HashKey
	HostName      string
	ServiceTypeID keys.HashKey
}

func serviceByUHostTypeIdx(r Service) ServiceByUHostTypeIdxKey {
	return ServiceByUHostTypeIdxKey{
		ClusterID:     r.ClusterID(),
		HostName:      r.HostName(),
		ServiceTypeID: r.ServiceTypeID(),
	}
}

func (k ServiceByUHostTypeIdxKey) compare(o ServiceByUHostTypeIdxKey) int {
	if c := k.ClusterID.Compare(o.ClusterID); c != 0 {
		return c
	}
	if c := cmp.Compare(k.HostName, o.HostName); c != 0 {
		return c
	}
	return k.ServiceTypeID.Compare(o.ServiceTypeID)
}

func (k ServiceByUHostTypeIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.ClusterID)
	kb.str(k.HostName)
	kb.key(k.ServiceTypeID)
	return kb.String()
}

func (k ServiceByUHostTypeIdxKey) Equals(other any) bool {
	return indexEquals(serviceProtocol, k, other, serviceByUHostTypeIdx, ServiceByUHostTypeIdxKey.compare)
}

func (k ServiceByUHostTypeIdxKey) Compare(other any) (int, error) {
	return indexCompare(serviceProtocol, k, other, serviceByUHostTypeIdx, ServiceByUHostTypeIdxKey.compare)
}

func (k ServiceByUHostTypeIdxKey) HashCode() int {
	var h hasher
	h.key(k.ClusterID)
	h.str(k.HostName)
	h.key(k.ServiceTypeID)
	return h.code()
}

type serviceOperand = operand[Service, ServiceHPKey]

var serviceProtocol = protocol[Service, ServiceHPKey]{
	class:            "Service",
	classify:         classifyService,
	compare:          compareService,
	compareKey:       compareServiceKey,
	compareRecordKey: compareServiceRecordKey,
}

func classifyService(other any) serviceOperand {
	switch v := other.(type) {
	case nil:
		return serviceOperand{variant: variantNil}
	case *ServiceHBuff:
		if v == nil {
			return serviceOperand{variant: variantNil}
		}
		return serviceOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ServiceBuff:
		if v == nil {
			return serviceOperand{variant: variantNil}
		}
		return serviceOperand{variant: variantRecord, rec: v}
	case ServiceH:
		if v.ClassCode() == ClassCodeService {
			return serviceOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case Service:
		if v.ClassCode() == ClassCodeService {
			return serviceOperand{variant: variantRecord, rec: v}
		}
	case ServiceHPKey:
		return serviceOperand{variant: variantHistoryKey, hkey: v}
	case ServiceByClusterIdxKey:
		return indexOperand[Service, ServiceHPKey](v, serviceByClusterIdx, ServiceByClusterIdxKey.compare)
	case ServiceByTypeIdxKey:
		return indexOperand[Service, ServiceHPKey](v, serviceByTypeIdx, ServiceByTypeIdxKey.compare)
	case ServiceByUHostTypeIdxKey:
		return indexOperand[Service, ServiceHPKey](v, serviceByUHostTypeIdx, ServiceByUHostTypeIdxKey.compare)
	}
	return serviceOperand{}
}

func compareService(a, b Service) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := a.ClusterID().Compare(b.ClusterID()); c != 0 {
		return c
	}
	if c := a.ServiceTypeID().Compare(b.ServiceTypeID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.HostName(), b.HostName()); c != 0 {
		return c
	}
	return cmp.Compare(a.HostPort(), b.HostPort())
}

func compareServiceKey(a, b ServiceHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareServiceRecordKey(r Service, k ServiceHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashService(r Service) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.key(r.ClusterID())
	h.key(r.ServiceTypeID())
	h.str(r.HostName())
	h.short(r.HostPort())
	return h.code()
}

func fragmentService(f *fragment, r Service) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.key("RequiredClusterId", r.ClusterID())
	f.key("RequiredServiceTypeId", r.ServiceTypeID())
	f.str("RequiredHostName", r.HostName())
	f.short("RequiredHostPort", r.HostPort())
}
