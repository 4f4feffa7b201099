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

// SecGrpMemb is the read view of a group membership. It carries no fields
// beyond its composite key.
type SecGrpMemb interface {
	Audited
	ClassCode() ClassCode
	PKey() SecGrpMembPKey
	SecGroupID() keys.HashKey
	SecUserID() keys.HashKey
}

// SecGrpMembBuff holds one membership row.
type SecGrpMembBuff struct {
	audit
	pkey SecGrpMembPKey
}

func (b *SecGrpMembBuff) ClassCode() ClassCode {
	return ClassCodeSecGrpMemb
}

func (b *SecGrpMembBuff) SecGroupID() keys.HashKey {
	return b.pkey.SecGroupID
}

func (b *SecGrpMembBuff) SecUserID() keys.HashKey {
	return b.pkey.SecUserID
}

func (b *SecGrpMembBuff) SetSecGroupID(v keys.HashKey) error {
	if err := checkRequiredKey("SecGrpMembBuff", "SetSecGroupID", "SecGroupID", v); err != nil {
		return err
	}
	b.pkey.SecGroupID = v
	return nil
}

func (b *SecGrpMembBuff) SetSecUserID(v keys.HashKey) error {
	if err := checkRequiredKey("SecGrpMembBuff", "SetSecUserID", "SecUserID", v); err != nil {
		return err
	}
	b.pkey.SecUserID = v
	return nil
}

func (b *SecGrpMembBuff) PKey() SecGrpMembPKey {
	return b.pkey
}

// SetPKey replaces the whole primary key.
func (b *SecGrpMembBuff) SetPKey(k SecGrpMembPKey) error {
	if err := k.validate("SecGrpMembBuff", "SetPKey"); err != nil {
		return err
	}
	b.pkey = k
	return nil
}

func (b *SecGrpMembBuff) PKeyValue() any {
	return b.pkey
}

func (b *SecGrpMembBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecGrpMembPKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecGrpMembBuff", "SetPKeyValue", 1, "v", v, "SecGrpMembPKey")
	}
	return b.SetPKey(k)
}

// Set copies src into b after validating it.
func (b *SecGrpMembBuff) Set(src SecGrpMemb) error {
	if src == nil {
		return errors.NewNullArgumentError("SecGrpMembBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeSecGrpMemb {
		return errors.NewUnsupportedClassError("SecGrpMembBuff", "Set", 1, "src", src, "SecGrpMemb")
	}
	var tmp SecGrpMembBuff
	tmp.copyAudit(src)
	if err := tmp.SetPKey(src.PKey()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *SecGrpMembBuff) Clone() *SecGrpMembBuff {
	c := *b
	return &c
}

func (b *SecGrpMembBuff) StoreKey() string {
	return b.pkey.StoreKey()
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *SecGrpMembBuff) IndexValues() map[string]string {
	return map[string]string{
		SecGrpMembGroupIdx: secGrpMembByGroupIdx(b).IndexValue(),
		SecGrpMembUserIdx:  secGrpMembByUserIdx(b).IndexValue(),
	}
}

func (b *SecGrpMembBuff) Equals(other any) bool {
	return secGrpMembProtocol.recordEquals(b, other)
}

func (b *SecGrpMembBuff) Compare(other any) (int, error) {
	return secGrpMembProtocol.recordCompare(b, other)
}

func (b *SecGrpMembBuff) HashCode() int {
	return hashSecGrpMemb(b)
}

func (b *SecGrpMembBuff) XMLAttrFragment() string {
	var f fragment
	fragmentSecGrpMemb(&f, b)
	return f.String()
}

type secGrpMembJSON struct {
	auditJSON
	PKey SecGrpMembPKey `json:"pkey"`
}

func (b *SecGrpMembBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secGrpMembJSON{
		auditJSON: b.toJSON(),
		PKey:      b.pkey,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *SecGrpMembBuff) UnmarshalJSON(data []byte) error {
	var j secGrpMembJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := SecGrpMembBuff{
		pkey: j.PKey,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerGroup reads the group side of the membership.
func (b *SecGrpMembBuff) RequiredContainerGroup(ctx context.Context, s Schema) (*SecGroupBuff, error) {
	tbl, err := SecGroupTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.pkey.SecGroupID)
}

// RequiredParentUser reads the member.
func (b *SecGrpMembBuff) RequiredParentUser(ctx context.Context, s Schema) (*SecUserBuff, error) {
	tbl, err := SecUserTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.pkey.SecUserID)
}

// SecGrpMembFactory constructs membership buffers and keys.
type SecGrpMembFactory struct{}

func (SecGrpMembFactory) NewRec() *SecGrpMembBuff {
	return new(SecGrpMembBuff)
}

func (SecGrpMembFactory) NewHRec() *SecGrpMembHBuff {
	return new(SecGrpMembHBuff)
}

func (SecGrpMembFactory) NewPKey() SecGrpMembPKey {
	return SecGrpMembPKey{}
}

func (SecGrpMembFactory) NewHPKey() SecGrpMembHPKey {
	return SecGrpMembHPKey{}
}

func (SecGrpMembFactory) NewByGroupIdxKey() SecGrpMembByGroupIdxKey {
	return SecGrpMembByGroupIdxKey{}
}

func (SecGrpMembFactory) NewByUserIdxKey() SecGrpMembByUserIdxKey {
	return SecGrpMembByUserIdxKey{}
}

// EnsureRec returns r itself when it is already a *SecGrpMembBuff, otherwise a
// validated copy. A nil r yields nil.
func (SecGrpMembFactory) EnsureRec(r SecGrpMemb) (*SecGrpMembBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*SecGrpMembBuff); ok {
		return b, nil
	}
	b := new(SecGrpMembBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (SecGrpMembFactory) EnsureHRec(r SecGrpMembH) (*SecGrpMembHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*SecGrpMembHBuff); ok {
		return h, nil
	}
	h := new(SecGrpMembHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
