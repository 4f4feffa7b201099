/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// Tenant is the read view of a tenant.
type Tenant interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	ClusterID() keys.HashKey
	TenantName() string
}

const TenantTenantNameMaxLen = 192

// TenantBuff holds one tenant row.
type TenantBuff struct {
	audit
	id         keys.HashKey
	clusterID  keys.HashKey
	tenantName string
}

func (b *TenantBuff) ClassCode() ClassCode {
	return ClassCodeTenant
}

func (b *TenantBuff) ID() keys.HashKey {
	return b.id
}

func (b *TenantBuff) ClusterID() keys.HashKey {
	return b.clusterID
}

func (b *TenantBuff) TenantName() string {
	return b.tenantName
}

func (b *TenantBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("TenantBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *TenantBuff) SetClusterID(v keys.HashKey) error {
	if err := checkRequiredKey("TenantBuff", "SetClusterID", "ClusterID", v); err != nil {
		return err
	}
	b.clusterID = v
	return nil
}

func (b *TenantBuff) SetTenantName(v string) error {
	if err := checkRequiredString("TenantBuff", "SetTenantName", "TenantName", v, TenantTenantNameMaxLen); err != nil {
		return err
	}
	b.tenantName = v
	return nil
}

func (b *TenantBuff) PKeyValue() any {
	return b.id
}

func (b *TenantBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("TenantBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *TenantBuff) Set(src Tenant) error {
	if src == nil {
		return errors.NewNullArgumentError("TenantBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeTenant {
		return errors.NewUnsupportedClassError("TenantBuff", "Set", 1, "src", src, "Tenant")
	}
	var tmp TenantBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetClusterID(src.ClusterID()); err != nil {
		return err
	}
	if err := tmp.SetTenantName(src.TenantName()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *TenantBuff) Clone() *TenantBuff {
	c := *b
	return &c
}

func (b *TenantBuff) StoreKey() string {
	return TenantStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *TenantBuff) IndexValues() map[string]string {
	return map[string]string{
		TenantClusterIdx: tenantByClusterIdx(b).IndexValue(),
		TenantUNameIdx:   tenantByUNameIdx(b).IndexValue(),
	}
}

func (b *TenantBuff) Equals(other any) bool {
	return tenantProtocol.recordEquals(b, other)
}

func (b *TenantBuff) Compare(other any) (int, error) {
	return tenantProtocol.recordCompare(b, other)
}

func (b *TenantBuff) HashCode() int {
	return hashTenant(b)
}

func (b *TenantBuff) XMLAttrFragment() string {
	var f fragment
	fragmentTenant(&f, b)
	return f.String()
}

type tenantJSON struct {
	auditJSON
	ID         keys.HashKey `json:"id"`
	ClusterID  keys.HashKey `json:"clusterId"`
	TenantName string       `json:"tenantName"`
}

func (b *TenantBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(tenantJSON{
		auditJSON:  b.toJSON(),
		ID:         b.id,
		ClusterID:  b.clusterID,
		TenantName: b.tenantName,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *TenantBuff) UnmarshalJSON(data []byte) error {
	var j tenantJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := TenantBuff{
		id:         j.ID,
		clusterID:  j.ClusterID,
		tenantName: j.TenantName,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredOwnerCluster reads the cluster that owns this tenant.
func (b *TenantBuff) RequiredOwnerCluster(ctx context.Context, s Schema) (*ClusterBuff, error) {
	tbl, err := ClusterTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.clusterID)
}

// TenantFactory constructs tenant buffers and keys.
type TenantFactory struct{}

func (TenantFactory) NewRec() *TenantBuff {
	return new(TenantBuff)
}

func (TenantFactory) NewHRec() *TenantHBuff {
	return new(TenantHBuff)
}

func (TenantFactory) NewHPKey() TenantHPKey {
	return TenantHPKey{}
}

func (TenantFactory) NewByClusterIdxKey() TenantByClusterIdxKey {
	return TenantByClusterIdxKey{}
}

func (TenantFactory) NewByUNameIdxKey() TenantByUNameIdxKey {
	return TenantByUNameIdxKey{}
}

// EnsureRec returns r itself when it is already a *TenantBuff, otherwise a
// validated copy. A nil r yields nil.
func (TenantFactory) EnsureRec(r Tenant) (*TenantBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*TenantBuff); ok {
		return b, nil
	}
	b := new(TenantBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (TenantFactory) EnsureHRec(r TenantH) (*TenantHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*TenantHBuff); ok {
		return h, nil
	}
	h := new(TenantHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
