/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCtryCcy associates a country with a currency it uses.
type ISOCtryCcy interface {
	Audited
	ClassCode() ClassCode
	PKey() ISOCtryCcyPKey
	ISOCtryID() int16
	ISOCcyID() int16
}

const (
	ISOCtryCcyISOCtryIDMinValue = 0
	ISOCtryCcyISOCtryIDMaxValue = 32767
	ISOCtryCcyISOCcyIDMinValue  = 0
	ISOCtryCcyISOCcyIDMaxValue  = 32767
)

// ISOCtryCcyBuff holds one country-currency row.
type ISOCtryCcyBuff struct {
	audit
	pkey ISOCtryCcyPKey
}

func (b *ISOCtryCcyBuff) ClassCode() ClassCode {
	return ClassCodeISOCtryCcy
}

func (b *ISOCtryCcyBuff) ISOCtryID() int16 {
	return b.pkey.ISOCtryID
}

func (b *ISOCtryCcyBuff) ISOCcyID() int16 {
	return b.pkey.ISOCcyID
}

func (b *ISOCtryCcyBuff) SetISOCtryID(v int16) error {
	if err := checkShortRange("ISOCtryCcyBuff", "SetISOCtryID", "ISOCtryID", v, ISOCtryCcyISOCtryIDMinValue, ISOCtryCcyISOCtryIDMaxValue); err != nil {
		return err
	}
	b.pkey.ISOCtryID = v
	return nil
}

func (b *ISOCtryCcyBuff) SetISOCcyID(v int16) error {
	if err := checkShortRange("ISOCtryCcyBuff", "SetISOCcyID", "ISOCcyID", v, ISOCtryCcyISOCcyIDMinValue, ISOCtryCcyISOCcyIDMaxValue); err != nil {
		return err
	}
	b.pkey.ISOCcyID = v
	return nil
}

func (b *ISOCtryCcyBuff) PKey() ISOCtryCcyPKey {
	return b.pkey
}

// SetPKey replaces the whole primary key.
func (b *ISOCtryCcyBuff) SetPKey(k ISOCtryCcyPKey) error {
	if err := k.validate("ISOCtryCcyBuff", "SetPKey"); err != nil {
		return err
	}
	b.pkey = k
	return nil
}

func (b *ISOCtryCcyBuff) PKeyValue() any {
	return b.pkey
}

func (b *ISOCtryCcyBuff) SetPKeyValue(v any) error {
	k, ok := v.(ISOCtryCcyPKey)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCtryCcyBuff", "SetPKeyValue", 1, "v", v, "ISOCtryCcyPKey")
	}
	return b.SetPKey(k)
}

// Set copies src into b after validating it.
func (b *ISOCtryCcyBuff) Set(src ISOCtryCcy) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCtryCcyBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeISOCtryCcy {
		return errors.NewUnsupportedClassError("ISOCtryCcyBuff", "Set", 1, "src", src, "ISOCtryCcy")
	}
	var tmp ISOCtryCcyBuff
	tmp.copyAudit(src)
	if err := tmp.SetPKey(src.PKey()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ISOCtryCcyBuff) Clone() *ISOCtryCcyBuff {
	c := *b
	return &c
}

func (b *ISOCtryCcyBuff) StoreKey() string {
	return b.pkey.StoreKey()
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ISOCtryCcyBuff) IndexValues() map[string]string {
	return map[string]string{
		ISOCtryCcyCtryIdx: isoCtryCcyByCtryIdx(b).IndexValue(),
		ISOCtryCcyCcyIdx:  isoCtryCcyByCcyIdx(b).IndexValue(),
	}
}

func (b *ISOCtryCcyBuff) Equals(other any) bool {
	return isoCtryCcyProtocol.recordEquals(b, other)
}

func (b *ISOCtryCcyBuff) Compare(other any) (int, error) {
	return isoCtryCcyProtocol.recordCompare(b, other)
}

func (b *ISOCtryCcyBuff) HashCode() int {
	return hashISOCtryCcy(b)
}

func (b *ISOCtryCcyBuff) XMLAttrFragment() string {
	var f fragment
	fragmentISOCtryCcy(&f, b)
	return f.String()
}

type isoCtryCcyJSON struct {
	auditJSON
	PKey ISOCtryCcyPKey `json:"pkey"`
}

func (b *ISOCtryCcyBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCtryCcyJSON{
		auditJSON: b.toJSON(),
		PKey:      b.pkey,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ISOCtryCcyBuff) UnmarshalJSON(data []byte) error {
	var j isoCtryCcyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ISOCtryCcyBuff{
		pkey: j.PKey,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerCtry reads the country side of the association.
func (b *ISOCtryCcyBuff) RequiredContainerCtry(ctx context.Context, s Schema) (*ISOCtryBuff, error) {
	tbl, err := ISOCtryTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.pkey.ISOCtryID)
}

// RequiredParentCcy reads the currency side of the association.
func (b *ISOCtryCcyBuff) RequiredParentCcy(ctx context.Context, s Schema) (*ISOCcyBuff, error) {
	tbl, err := ISOCcyTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.pkey.ISOCcyID)
}

// ISOCtryCcyFactory constructs country-currency buffers and keys.
type ISOCtryCcyFactory struct{}

func (ISOCtryCcyFactory) NewRec() *ISOCtryCcyBuff {
	return new(ISOCtryCcyBuff)
}

func (ISOCtryCcyFactory) NewHRec() *ISOCtryCcyHBuff {
	return new(ISOCtryCcyHBuff)
}

func (ISOCtryCcyFactory) NewPKey() ISOCtryCcyPKey {
	return ISOCtryCcyPKey{}
}

func (ISOCtryCcyFactory) NewHPKey() ISOCtryCcyHPKey {
	return ISOCtryCcyHPKey{}
}

func (ISOCtryCcyFactory) NewByCtryIdxKey() ISOCtryCcyByCtryIdxKey {
	return ISOCtryCcyByCtryIdxKey{}
}

func (ISOCtryCcyFactory) NewByCcyIdxKey() ISOCtryCcyByCcyIdxKey {
	return ISOCtryCcyByCcyIdxKey{}
}

// EnsureRec returns r itself when it is already a *ISOCtryCcyBuff, otherwise a
// validated copy. A nil r yields nil.
func (ISOCtryCcyFactory) EnsureRec(r ISOCtryCcy) (*ISOCtryCcyBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ISOCtryCcyBuff); ok {
		return b, nil
	}
	b := new(ISOCtryCcyBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ISOCtryCcyFactory) EnsureHRec(r ISOCtryCcyH) (*ISOCtryCcyHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ISOCtryCcyHBuff); ok {
		return h, nil
	}
	h := new(ISOCtryCcyHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
