/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secschema

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/secschema/datastore"
	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
)

type record[T any] interface {
	datastore.Entity[T]
	Compare(other any) (int, error)
}

// readByKey returns the record stored under key, or the zero value when
// there is none.
func readByKey[T record[T]](ctx context.Context, ds datastore.DataStore[T], key string) (T, error) {
	rec, err := ds.GetOne(ctx, key)
	if err != nil {
		var zero T
		if errors.IsNotFound(err) {
			return zero, nil
		}
		return zero, err
	}
	return rec, nil
}

// readIndex returns every record whose index value matches, in record order.
func readIndex[T record[T]](ctx context.Context, ds datastore.DataStore[T], index, value string) ([]T, error) {
	recs, err := ds.QueryIndex(ctx, index, value)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		c, _ := recs[i].Compare(recs[j])
		return c < 0
	})
	return recs, nil
}

// readUnique is readIndex for unique indexes. Datastores do not enforce
// uniqueness; when duplicates exist the lowest record wins.
func readUnique[T record[T]](ctx context.Context, ds datastore.DataStore[T], index, value string) (T, error) {
	var zero T
	recs, err := readIndex(ctx, ds, index, value)
	if err != nil || len(recs) == 0 {
		return zero, err
	}
	return recs[0], nil
}

type clusterTable struct {
	ds datastore.DataStore[*secmodels.ClusterBuff]
}

func (t clusterTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.ClusterBuff, error) {
	return readByKey(ctx, t.ds, secmodels.ClusterStoreKey(id))
}

func (t clusterTable) ReadDerivedByUDomNameIdx(ctx context.Context, fullDomName string) (*secmodels.ClusterBuff, error) {
	k := secmodels.ClusterByUDomNameIdxKey{FullDomName: fullDomName}
	return readUnique(ctx, t.ds, secmodels.ClusterUDomNameIdx, k.IndexValue())
}

func (t clusterTable) ReadDerivedByUDescrIdx(ctx context.Context, description string) (*secmodels.ClusterBuff, error) {
	k := secmodels.ClusterByUDescrIdxKey{Description: description}
	return readUnique(ctx, t.ds, secmodels.ClusterUDescrIdx, k.IndexValue())
}

type tenantTable struct {
	ds datastore.DataStore[*secmodels.TenantBuff]
}

func (t tenantTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.TenantBuff, error) {
	return readByKey(ctx, t.ds, secmodels.TenantStoreKey(id))
}

func (t tenantTable) ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*secmodels.TenantBuff, error) {
	k := secmodels.TenantByClusterIdxKey{ClusterID: clusterID}
	return readIndex(ctx, t.ds, secmodels.TenantClusterIdx, k.IndexValue())
}

func (t tenantTable) ReadDerivedByUNameIdx(ctx context.Context, clusterID keys.HashKey, tenantName string) (*secmodels.TenantBuff, error) {
	k := secmodels.TenantByUNameIdxKey{ClusterID: clusterID, TenantName: tenantName}
	return readUnique(ctx, t.ds, secmodels.TenantUNameIdx, k.IndexValue())
}

type secUserTable struct {
	ds datastore.DataStore[*secmodels.SecUserBuff]
}

func (t secUserTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.SecUserBuff, error) {
	return readByKey(ctx, t.ds, secmodels.SecUserStoreKey(id))
}

func (t secUserTable) ReadDerivedByULoginIdx(ctx context.Context, loginID string) (*secmodels.SecUserBuff, error) {
	k := secmodels.SecUserByULoginIdxKey{LoginID: loginID}
	return readUnique(ctx, t.ds, secmodels.SecUserULoginIdx, k.IndexValue())
}

func (t secUserTable) ReadDerivedByEMConfIdx(ctx context.Context, emailConfirmUUID uuid.NullUUID) ([]*secmodels.SecUserBuff, error) {
	k := secmodels.SecUserByEMConfIdxKey{EMailConfirmUUID: emailConfirmUUID}
	return readIndex(ctx, t.ds, secmodels.SecUserEMConfIdx, k.IndexValue())
}

func (t secUserTable) ReadDerivedByPwdResetIdx(ctx context.Context, passwordResetUUID uuid.NullUUID) ([]*secmodels.SecUserBuff, error) {
	k := secmodels.SecUserByPwdResetIdxKey{PasswordResetUUID: passwordResetUUID}
	return readIndex(ctx, t.ds, secmodels.SecUserPwdResetIdx, k.IndexValue())
}

func (t secUserTable) ReadDerivedByDefDevIdx(ctx context.Context, dfltDevUserID keys.HashKey, dfltDevName *string) ([]*secmodels.SecUserBuff, error) {
	k := secmodels.SecUserByDefDevIdxKey{DfltDevUserID: dfltDevUserID, DfltDevName: dfltDevName}
	return readIndex(ctx, t.ds, secmodels.SecUserDefDevIdx, k.IndexValue())
}

type secDeviceTable struct {
	ds datastore.DataStore[*secmodels.SecDeviceBuff]
}

func (t secDeviceTable) ReadDerived(ctx context.Context, secUserID keys.HashKey, devName string) (*secmodels.SecDeviceBuff, error) {
	k := secmodels.SecDevicePKey{SecUserID: secUserID, DevName: devName}
	return readByKey(ctx, t.ds, k.StoreKey())
}

func (t secDeviceTable) ReadDerivedByUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*secmodels.SecDeviceBuff, error) {
	k := secmodels.SecDeviceByUserIdxKey{SecUserID: secUserID}
	return readIndex(ctx, t.ds, secmodels.SecDeviceUserIdx, k.IndexValue())
}

type secSessionTable struct {
	ds datastore.DataStore[*secmodels.SecSessionBuff]
}

func (t secSessionTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.SecSessionBuff, error) {
	return readByKey(ctx, t.ds, secmodels.SecSessionStoreKey(id))
}

func (t secSessionTable) ReadDerivedBySecUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*secmodels.SecSessionBuff, error) {
	k := secmodels.SecSessionBySecUserIdxKey{SecUserID: secUserID}
	return readIndex(ctx, t.ds, secmodels.SecSessionSecUserIdx, k.IndexValue())
}

func (t secSessionTable) ReadDerivedBySecDevIdx(ctx context.Context, secUserID keys.HashKey, secDevName *string) ([]*secmodels.SecSessionBuff, error) {
	k := secmodels.SecSessionBySecDevIdxKey{SecUserID: secUserID, SecDevName: secDevName}
	return readIndex(ctx, t.ds, secmodels.SecSessionSecDevIdx, k.IndexValue())
}

func (t secSessionTable) ReadDerivedByStartIdx(ctx context.Context, secUserID keys.HashKey, start time.Time) (*secmodels.SecSessionBuff, error) {
	k := secmodels.SecSessionByStartIdxKey{SecUserID: secUserID, Start: start}
	return readUnique(ctx, t.ds, secmodels.SecSessionStartIdx, k.IndexValue())
}

func (t secSessionTable) ReadDerivedByFinishIdx(ctx context.Context, secUserID keys.HashKey, finish *time.Time) ([]*secmodels.SecSessionBuff, error) {
	k := secmodels.SecSessionByFinishIdxKey{SecUserID: secUserID, Finish: finish}
	return readIndex(ctx, t.ds, secmodels.SecSessionFinishIdx, k.IndexValue())
}

func (t secSessionTable) ReadDerivedBySecProxyIdx(ctx context.Context, secProxyID keys.HashKey) ([]*secmodels.SecSessionBuff, error) {
	k := secmodels.SecSessionBySecProxyIdxKey{SecProxyID: secProxyID}
	return readIndex(ctx, t.ds, secmodels.SecSessionSecProxyIdx, k.IndexValue())
}

type secGroupTable struct {
	ds datastore.DataStore[*secmodels.SecGroupBuff]
}

func (t secGroupTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.SecGroupBuff, error) {
	return readByKey(ctx, t.ds, secmodels.SecGroupStoreKey(id))
}

func (t secGroupTable) ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*secmodels.SecGroupBuff, error) {
	k := secmodels.SecGroupByClusterIdxKey{ClusterID: clusterID}
	return readIndex(ctx, t.ds, secmodels.SecGroupClusterIdx, k.IndexValue())
}

func (t secGroupTable) ReadDerivedByClusterVisIdx(ctx context.Context, clusterID keys.HashKey, isVisible bool) ([]*secmodels.SecGroupBuff, error) {
	k := secmodels.SecGroupByClusterVisIdxKey{ClusterID: clusterID, IsVisible: isVisible}
	return readIndex(ctx, t.ds, secmodels.SecGroupClusterVisIdx, k.IndexValue())
}

func (t secGroupTable) ReadDerivedByUNameIdx(ctx context.Context, clusterID keys.HashKey, name string) (*secmodels.SecGroupBuff, error) {
	k := secmodels.SecGroupByUNameIdxKey{ClusterID: clusterID, Name: name}
	return readUnique(ctx, t.ds, secmodels.SecGroupUNameIdx, k.IndexValue())
}

type secGrpMembTable struct {
	ds datastore.DataStore[*secmodels.SecGrpMembBuff]
}

func (t secGrpMembTable) ReadDerived(ctx context.Context, secGroupID, secUserID keys.HashKey) (*secmodels.SecGrpMembBuff, error) {
	k := secmodels.SecGrpMembPKey{SecGroupID: secGroupID, SecUserID: secUserID}
	return readByKey(ctx, t.ds, k.StoreKey())
}

func (t secGrpMembTable) ReadDerivedByGroupIdx(ctx context.Context, secGroupID keys.HashKey) ([]*secmodels.SecGrpMembBuff, error) {
	k := secmodels.SecGrpMembByGroupIdxKey{SecGroupID: secGroupID}
	return readIndex(ctx, t.ds, secmodels.SecGrpMembGroupIdx, k.IndexValue())
}

func (t secGrpMembTable) ReadDerivedByUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*secmodels.SecGrpMembBuff, error) {
	k := secmodels.SecGrpMembByUserIdxKey{SecUserID: secUserID}
	return readIndex(ctx, t.ds, secmodels.SecGrpMembUserIdx, k.IndexValue())
}

type serviceTypeTable struct {
	ds datastore.DataStore[*secmodels.ServiceTypeBuff]
}

func (t serviceTypeTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.ServiceTypeBuff, error) {
	return readByKey(ctx, t.ds, secmodels.ServiceTypeStoreKey(id))
}

func (t serviceTypeTable) ReadDerivedByUDescrIdx(ctx context.Context, description string) (*secmodels.ServiceTypeBuff, error) {
	k := secmodels.ServiceTypeByUDescrIdxKey{Description: description}
	return readUnique(ctx, t.ds, secmodels.ServiceTypeUDescrIdx, k.IndexValue())
}

type serviceTable struct {
	ds datastore.DataStore[*secmodels.ServiceBuff]
}

func (t serviceTable) ReadDerived(ctx context.Context, id keys.HashKey) (*secmodels.ServiceBuff, error) {
	return readByKey(ctx, t.ds, secmodels.ServiceStoreKey(id))
}

func (t serviceTable) ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*secmodels.ServiceBuff, error) {
	k := secmodels.ServiceByClusterIdxKey{ClusterID: clusterID}
	return readIndex(ctx, t.ds, secmodels.ServiceClusterIdx, k.IndexValue())
}

func (t serviceTable) ReadDerivedByTypeIdx(ctx context.Context, serviceTypeID keys.HashKey) ([]*secmodels.ServiceBuff, error) {
	k := secmodels.ServiceByTypeIdxKey{ServiceTypeID: serviceTypeID}
	return readIndex(ctx, t.ds, secmodels.ServiceTypeIdx, k.IndexValue())
}

func (t serviceTable) ReadDerivedByUHostTypeIdx(ctx context.Context, clusterID keys.HashKey, hostName string, serviceTypeID keys.HashKey) (*secmodels.ServiceBuff, error) {
	k := secmodels.ServiceByUHostTypeIdxKey{ClusterID: clusterID, HostName: hostName, ServiceTypeID: serviceTypeID}
	return readUnique(ctx, t.ds, secmodels.ServiceUHostTypeIdx, k.IndexValue())
}

type isoCcyTable struct {
	ds datastore.DataStore[*secmodels.ISOCcyBuff]
}

func (t isoCcyTable) ReadDerived(ctx context.Context, id int16) (*secmodels.ISOCcyBuff, error) {
	return readByKey(ctx, t.ds, secmodels.ISOCcyStoreKey(id))
}

func (t isoCcyTable) ReadDerivedByCcyCdIdx(ctx context.Context, isoCode string) (*secmodels.ISOCcyBuff, error) {
	k := secmodels.ISOCcyByCcyCdIdxKey{ISOCode: isoCode}
	return readUnique(ctx, t.ds, secmodels.ISOCcyCcyCdIdx, k.IndexValue())
}

func (t isoCcyTable) ReadDerivedByNameIdx(ctx context.Context, name string) (*secmodels.ISOCcyBuff, error) {
	k := secmodels.ISOCcyByNameIdxKey{Name: name}
	return readUnique(ctx, t.ds, secmodels.ISOCcyNameIdx, k.IndexValue())
}

type isoCtryTable struct {
	ds datastore.DataStore[*secmodels.ISOCtryBuff]
}

func (t isoCtryTable) ReadDerived(ctx context.Context, id int16) (*secmodels.ISOCtryBuff, error) {
	return readByKey(ctx, t.ds, secmodels.ISOCtryStoreKey(id))
}

func (t isoCtryTable) ReadDerivedByISOCodeIdx(ctx context.Context, isoCode string) (*secmodels.ISOCtryBuff, error) {
	k := secmodels.ISOCtryByISOCodeIdxKey{ISOCode: isoCode}
	return readUnique(ctx, t.ds, secmodels.ISOCtryISOCodeIdx, k.IndexValue())
}

func (t isoCtryTable) ReadDerivedByNameIdx(ctx context.Context, name string) (*secmodels.ISOCtryBuff, error) {
	k := secmodels.ISOCtryByNameIdxKey{Name: name}
	return readUnique(ctx, t.ds, secmodels.ISOCtryNameIdx, k.IndexValue())
}

type isoCtryCcyTable struct {
	ds datastore.DataStore[*secmodels.ISOCtryCcyBuff]
}

func (t isoCtryCcyTable) ReadDerived(ctx context.Context, isoCtryID, isoCcyID int16) (*secmodels.ISOCtryCcyBuff, error) {
	k := secmodels.ISOCtryCcyPKey{ISOCtryID: isoCtryID, ISOCcyID: isoCcyID}
	return readByKey(ctx, t.ds, k.StoreKey())
}

func (t isoCtryCcyTable) ReadDerivedByCtryIdx(ctx context.Context, isoCtryID int16) ([]*secmodels.ISOCtryCcyBuff, error) {
	k := secmodels.ISOCtryCcyByCtryIdxKey{ISOCtryID: isoCtryID}
	return readIndex(ctx, t.ds, secmodels.ISOCtryCcyCtryIdx, k.IndexValue())
}

func (t isoCtryCcyTable) ReadDerivedByCcyIdx(ctx context.Context, isoCcyID int16) ([]*secmodels.ISOCtryCcyBuff, error) {
	k := secmodels.ISOCtryCcyByCcyIdxKey{ISOCcyID: isoCcyID}
	return readIndex(ctx, t.ds, secmodels.ISOCtryCcyCcyIdx, k.IndexValue())
}
