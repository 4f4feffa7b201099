/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "github.com/suparena/secschema/secmodels"

func (r *Registry) ClusterFactory() secmodels.ClusterFactory {
	return secmodels.ClusterFactory{}
}

func (r *Registry) TenantFactory() secmodels.TenantFactory {
	return secmodels.TenantFactory{}
}

func (r *Registry) SecUserFactory() secmodels.SecUserFactory {
	return secmodels.SecUserFactory{}
}

func (r *Registry) SecDeviceFactory() secmodels.SecDeviceFactory {
	return secmodels.SecDeviceFactory{}
}

func (r *Registry) SecSessionFactory() secmodels.SecSessionFactory {
	return secmodels.SecSessionFactory{}
}

func (r *Registry) SecGroupFactory() secmodels.SecGroupFactory {
	return secmodels.SecGroupFactory{}
}

func (r *Registry) SecGrpMembFactory() secmodels.SecGrpMembFactory {
	return secmodels.SecGrpMembFactory{}
}

func (r *Registry) ServiceTypeFactory() secmodels.ServiceTypeFactory {
	return secmodels.ServiceTypeFactory{}
}

func (r *Registry) ServiceFactory() secmodels.ServiceFactory {
	return secmodels.ServiceFactory{}
}

func (r *Registry) ISOCcyFactory() secmodels.ISOCcyFactory {
	return secmodels.ISOCcyFactory{}
}

func (r *Registry) ISOCtryFactory() secmodels.ISOCtryFactory {
	return secmodels.ISOCtryFactory{}
}

func (r *Registry) ISOCtryCcyFactory() secmodels.ISOCtryCcyFactory {
	return secmodels.ISOCtryCcyFactory{}
}

// Table accessors resolve through the active backing and fail when it is
// missing or does not serve the kind.

func (r *Registry) ClusterTable() (secmodels.ClusterTable, error) {
	return secmodels.ClusterTableOf(r)
}

func (r *Registry) TenantTable() (secmodels.TenantTable, error) {
	return secmodels.TenantTableOf(r)
}

func (r *Registry) SecUserTable() (secmodels.SecUserTable, error) {
	return secmodels.SecUserTableOf(r)
}

func (r *Registry) SecDeviceTable() (secmodels.SecDeviceTable, error) {
	return secmodels.SecDeviceTableOf(r)
}

func (r *Registry) SecSessionTable() (secmodels.SecSessionTable, error) {
	return secmodels.SecSessionTableOf(r)
}

func (r *Registry) SecGroupTable() (secmodels.SecGroupTable, error) {
	return secmodels.SecGroupTableOf(r)
}

func (r *Registry) SecGrpMembTable() (secmodels.SecGrpMembTable, error) {
	return secmodels.SecGrpMembTableOf(r)
}

func (r *Registry) ServiceTypeTable() (secmodels.ServiceTypeTable, error) {
	return secmodels.ServiceTypeTableOf(r)
}

func (r *Registry) ServiceTable() (secmodels.ServiceTable, error) {
	return secmodels.ServiceTableOf(r)
}

func (r *Registry) ISOCcyTable() (secmodels.ISOCcyTable, error) {
	return secmodels.ISOCcyTableOf(r)
}

func (r *Registry) ISOCtryTable() (secmodels.ISOCtryTable, error) {
	return secmodels.ISOCtryTableOf(r)
}

func (r *Registry) ISOCtryCcyTable() (secmodels.ISOCtryCcyTable, error) {
	return secmodels.ISOCtryCcyTableOf(r)
}
