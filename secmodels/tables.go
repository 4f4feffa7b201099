/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
)

// Table interfaces are the read surface a backing exposes per entity kind.
// ReadDerived returns nil, nil when no row matches. Unique indexes return a
// single buffer; the rest return every match in ascending record order.

type ClusterTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*ClusterBuff, error)
	ReadDerivedByUDomNameIdx(ctx context.Context, fullDomName string) (*ClusterBuff, error)
	ReadDerivedByUDescrIdx(ctx context.Context, description string) (*ClusterBuff, error)
}

type TenantTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*TenantBuff, error)
	ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*TenantBuff, error)
	ReadDerivedByUNameIdx(ctx context.Context, clusterID keys.HashKey, tenantName string) (*TenantBuff, error)
}

type SecUserTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*SecUserBuff, error)
	ReadDerivedByULoginIdx(ctx context.Context, loginID string) (*SecUserBuff, error)
	ReadDerivedByEMConfIdx(ctx context.Context, emailConfirmUUID uuid.NullUUID) ([]*SecUserBuff, error)
	ReadDerivedByPwdResetIdx(ctx context.Context, passwordResetUUID uuid.NullUUID) ([]*SecUserBuff, error)
	ReadDerivedByDefDevIdx(ctx context.Context, dfltDevUserID keys.HashKey, dfltDevName *string) ([]*SecUserBuff, error)
}

type SecDeviceTable interface {
	ReadDerived(ctx context.Context, secUserID keys.HashKey, devName string) (*SecDeviceBuff, error)
	ReadDerivedByUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*SecDeviceBuff, error)
}

type SecSessionTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*SecSessionBuff, error)
	ReadDerivedBySecUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*SecSessionBuff, error)
	ReadDerivedBySecDevIdx(ctx context.Context, secUserID keys.HashKey, secDevName *string) ([]*SecSessionBuff, error)
	ReadDerivedByStartIdx(ctx context.Context, secUserID keys.HashKey, start time.Time) (*SecSessionBuff, error)
	ReadDerivedByFinishIdx(ctx context.Context, secUserID keys.HashKey, finish *time.Time) ([]*SecSessionBuff, error)
	ReadDerivedBySecProxyIdx(ctx context.Context, secProxyID keys.HashKey) ([]*SecSessionBuff, error)
}

type SecGroupTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*SecGroupBuff, error)
	ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*SecGroupBuff, error)
	ReadDerivedByClusterVisIdx(ctx context.Context, clusterID keys.HashKey, isVisible bool) ([]*SecGroupBuff, error)
	ReadDerivedByUNameIdx(ctx context.Context, clusterID keys.HashKey, name string) (*SecGroupBuff, error)
}

type SecGrpMembTable interface {
	ReadDerived(ctx context.Context, secGroupID, secUserID keys.HashKey) (*SecGrpMembBuff, error)
	ReadDerivedByGroupIdx(ctx context.Context, secGroupID keys.HashKey) ([]*SecGrpMembBuff, error)
	ReadDerivedByUserIdx(ctx context.Context, secUserID keys.HashKey) ([]*SecGrpMembBuff, error)
}

type ServiceTypeTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*ServiceTypeBuff, error)
	ReadDerivedByUDescrIdx(ctx context.Context, description string) (*ServiceTypeBuff, error)
}

type ServiceTable interface {
	ReadDerived(ctx context.Context, id keys.HashKey) (*ServiceBuff, error)
	ReadDerivedByClusterIdx(ctx context.Context, clusterID keys.HashKey) ([]*ServiceBuff, error)
	ReadDerivedByTypeIdx(ctx context.Context, serviceTypeID keys.HashKey) ([]*ServiceBuff, error)
	ReadDerivedByUHostTypeIdx(ctx context.Context, clusterID keys.HashKey, hostName string, serviceTypeID keys.HashKey) (*ServiceBuff, error)
}

type ISOCcyTable interface {
	ReadDerived(ctx context.Context, id int16) (*ISOCcyBuff, error)
	ReadDerivedByCcyCdIdx(ctx context.Context, isoCode string) (*ISOCcyBuff, error)
	ReadDerivedByNameIdx(ctx context.Context, name string) (*ISOCcyBuff, error)
}

type ISOCtryTable interface {
	ReadDerived(ctx context.Context, id int16) (*ISOCtryBuff, error)
	ReadDerivedByISOCodeIdx(ctx context.Context, isoCode string) (*ISOCtryBuff, error)
	ReadDerivedByNameIdx(ctx context.Context, name string) (*ISOCtryBuff, error)
}

type ISOCtryCcyTable interface {
	ReadDerived(ctx context.Context, isoCtryID, isoCcyID int16) (*ISOCtryCcyBuff, error)
	ReadDerivedByCtryIdx(ctx context.Context, isoCtryID int16) ([]*ISOCtryCcyBuff, error)
	ReadDerivedByCcyIdx(ctx context.Context, isoCcyID int16) ([]*ISOCtryCcyBuff, error)
}
