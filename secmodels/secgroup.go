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

// SecGroup is the read view of a security group.
type SecGroup interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	ClusterID() keys.HashKey
	Name() string
	IsVisible() bool
}

const SecGroupNameMaxLen = 64

// SecGroupBuff holds one group row.
type SecGroupBuff struct {
	audit
	id        keys.HashKey
	clusterID keys.HashKey
	name      string
	isVisible bool
}

func (b *SecGroupBuff) ClassCode() ClassCode {
	return ClassCodeSecGroup
}

func (b *SecGroupBuff) ID() keys.HashKey {
	return b.id
}

func (b *SecGroupBuff) ClusterID() keys.HashKey {
	return b.clusterID
}

func (b *SecGroupBuff) Name() string {
	return b.name
}

func (b *SecGroupBuff) IsVisible() bool {
	return b.isVisible
}

func (b *SecGroupBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("SecGroupBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *SecGroupBuff) SetClusterID(v keys.HashKey) error {
	if err := checkRequiredKey("SecGroupBuff", "SetClusterID", "ClusterID", v); err != nil {
		return err
	}
	b.clusterID = v
	return nil
}

func (b *SecGroupBuff) SetName(v string) error {
	if err := checkRequiredString("SecGroupBuff", "SetName", "Name", v, SecGroupNameMaxLen); err != nil {
		return err
	}
	b.name = v
	return nil
}

func (b *SecGroupBuff) SetIsVisible(v bool) {
	b.isVisible = v
}

func (b *SecGroupBuff) PKeyValue() any {
	return b.id
}

func (b *SecGroupBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecGroupBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *SecGroupBuff) Set(src SecGroup) error {
	if src == nil {
		return errors.NewNullArgumentError("SecGroupBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeSecGroup {
		return errors.NewUnsupportedClassError("SecGroupBuff", "Set", 1, "src", src, "SecGroup")
	}
	var tmp SecGroupBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetClusterID(src.ClusterID()); err != nil {
		return err
	}
	if err := tmp.SetName(src.Name()); err != nil {
		return err
	}
	tmp.SetIsVisible(src.IsVisible())
	*b = tmp
	return nil
}

func (b *SecGroupBuff) Clone() *SecGroupBuff {
	c := *b
	return &c
}

func (b *SecGroupBuff) StoreKey() string {
	return SecGroupStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *SecGroupBuff) IndexValues() map[string]string {
	return map[string]string{
		SecGroupClusterIdx:    secGroupByClusterIdx(b).IndexValue(),
		SecGroupClusterVisIdx: secGroupByClusterVisIdx(b).IndexValue(),
		SecGroupUNameIdx:      secGroupByUNameIdx(b).IndexValue(),
	}
}

func (b *SecGroupBuff) Equals(other any) bool {
	return secGroupProtocol.recordEquals(b, other)
}

func (b *SecGroupBuff) Compare(other any) (int, error) {
	return secGroupProtocol.recordCompare(b, other)
}

func (b *SecGroupBuff) HashCode() int {
	return hashSecGroup(b)
}

func (b *SecGroupBuff) XMLAttrFragment() string {
	var f fragment
	fragmentSecGroup(&f, b)
	return f.String()
}

type secGroupJSON struct {
	auditJSON
	ID        keys.HashKey `json:"id"`
	ClusterID keys.HashKey `json:"clusterId"`
	Name      string       `json:"name"`
	IsVisible bool         `json:"isVisible"`
}

func (b *SecGroupBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secGroupJSON{
		auditJSON: b.toJSON(),
		ID:        b.id,
		ClusterID: b.clusterID,
		Name:      b.name,
		IsVisible: b.isVisible,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *SecGroupBuff) UnmarshalJSON(data []byte) error {
	var j secGroupJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := SecGroupBuff{
		id:        j.ID,
		clusterID: j.ClusterID,
		name:      j.Name,
		isVisible: j.IsVisible,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerCluster reads the cluster this group belongs to.
func (b *SecGroupBuff) RequiredContainerCluster(ctx context.Context, s Schema) (*ClusterBuff, error) {
	tbl, err := ClusterTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.clusterID)
}

// SecGroupFactory constructs group buffers and keys.
type SecGroupFactory struct{}

func (SecGroupFactory) NewRec() *SecGroupBuff {
	return new(SecGroupBuff)
}

func (SecGroupFactory) NewHRec() *SecGroupHBuff {
	return new(SecGroupHBuff)
}

func (SecGroupFactory) NewHPKey() SecGroupHPKey {
	return SecGroupHPKey{}
}

func (SecGroupFactory) NewByClusterIdxKey() SecGroupByClusterIdxKey {
	return SecGroupByClusterIdxKey{}
}

func (SecGroupFactory) NewByClusterVisIdxKey() SecGroupByClusterVisIdxKey {
	return SecGroupByClusterVisIdxKey{}
}

func (SecGroupFactory) NewByUNameIdxKey() SecGroupByUNameIdxKey {
	return SecGroupByUNameIdxKey{}
}

// EnsureRec returns r itself when it is already a *SecGroupBuff, otherwise a
// validated copy. A nil r yields nil.
func (SecGroupFactory) EnsureRec(r SecGroup) (*SecGroupBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*SecGroupBuff); ok {
		return b, nil
	}
	b := new(SecGroupBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (SecGroupFactory) EnsureHRec(r SecGroupH) (*SecGroupHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*SecGroupHBuff); ok {
		return h, nil
	}
	h := new(SecGroupHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
