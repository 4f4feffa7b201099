/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCtry is the read view of an ISO 3166 country.
type ISOCtry interface {
	Audited
	ClassCode() ClassCode
	ID() int16
	ISOCode() string
	Name() string
}

const (
	ISOCtryIDMinValue    = 0
	ISOCtryIDMaxValue    = 32767
	ISOCtryISOCodeMaxLen = 2
	ISOCtryNameMaxLen    = 64
)

// ISOCtryBuff holds one country row.
type ISOCtryBuff struct {
	audit
	id      int16
	isoCode string
	name    string
}

func (b *ISOCtryBuff) ClassCode() ClassCode {
	return ClassCodeISOCtry
}

func (b *ISOCtryBuff) ID() int16 {
	return b.id
}

func (b *ISOCtryBuff) ISOCode() string {
	return b.isoCode
}

func (b *ISOCtryBuff) Name() string {
	return b.name
}

func (b *ISOCtryBuff) SetID(v int16) error {
	if err := checkShortRange("ISOCtryBuff", "SetID", "ID", v, ISOCtryIDMinValue, ISOCtryIDMaxValue); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *ISOCtryBuff) SetISOCode(v string) error {
	if err := checkRequiredString("ISOCtryBuff", "SetISOCode", "ISOCode", v, ISOCtryISOCodeMaxLen); err != nil {
		return err
	}
	b.isoCode = v
	return nil
}

func (b *ISOCtryBuff) SetName(v string) error {
	if err := checkRequiredString("ISOCtryBuff", "SetName", "Name", v, ISOCtryNameMaxLen); err != nil {
		return err
	}
	b.name = v
	return nil
}

func (b *ISOCtryBuff) PKeyValue() any {
	return b.id
}

func (b *ISOCtryBuff) SetPKeyValue(v any) error {
	id, ok := v.(int16)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCtryBuff", "SetPKeyValue", 1, "v", v, "int16")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *ISOCtryBuff) Set(src ISOCtry) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCtryBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeISOCtry {
		return errors.NewUnsupportedClassError("ISOCtryBuff", "Set", 1, "src", src, "ISOCtry")
	}
	var tmp ISOCtryBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetISOCode(src.ISOCode()); err != nil {
		return err
	}
	if err := tmp.SetName(src.Name()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ISOCtryBuff) Clone() *ISOCtryBuff {
	c := *b
	return &c
}

func (b *ISOCtryBuff) StoreKey() string {
	return ISOCtryStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ISOCtryBuff) IndexValues() map[string]string {
	return map[string]string{
		ISOCtryISOCodeIdx: isoCtryByISOCodeIdx(b).IndexValue(),
		ISOCtryNameIdx:    isoCtryByNameIdx(b).IndexValue(),
	}
}

func (b *ISOCtryBuff) Equals(other any) bool {
	return isoCtryProtocol.recordEquals(b, other)
}

func (b *ISOCtryBuff) Compare(other any) (int, error) {
	return isoCtryProtocol.recordCompare(b, other)
}

func (b *ISOCtryBuff) HashCode() int {
	return hashISOCtry(b)
}

func (b *ISOCtryBuff) XMLAttrFragment() string {
	var f fragment
	fragmentISOCtry(&f, b)
	return f.String()
}

type isoCtryJSON struct {
	auditJSON
	ID      int16  `json:"id"`
	ISOCode string `json:"isoCode"`
	Name    string `json:"name"`
}

func (b *ISOCtryBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCtryJSON{
		auditJSON: b.toJSON(),
		ID:        b.id,
		ISOCode:   b.isoCode,
		Name:      b.name,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ISOCtryBuff) UnmarshalJSON(data []byte) error {
	var j isoCtryJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ISOCtryBuff{
		id:      j.ID,
		isoCode: j.ISOCode,
		name:    j.Name,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// ISOCtryFactory constructs country buffers and keys.
type ISOCtryFactory struct{}

func (ISOCtryFactory) NewRec() *ISOCtryBuff {
	return new(ISOCtryBuff)
}

func (ISOCtryFactory) NewHRec() *ISOCtryHBuff {
	return new(ISOCtryHBuff)
}

func (ISOCtryFactory) NewHPKey() ISOCtryHPKey {
	return ISOCtryHPKey{}
}

func (ISOCtryFactory) NewByISOCodeIdxKey() ISOCtryByISOCodeIdxKey {
	return ISOCtryByISOCodeIdxKey{}
}

func (ISOCtryFactory) NewByNameIdxKey() ISOCtryByNameIdxKey {
	return ISOCtryByNameIdxKey{}
}

// EnsureRec returns r itself when it is already a *ISOCtryBuff, otherwise a
// validated copy. A nil r yields nil.
func (ISOCtryFactory) EnsureRec(r ISOCtry) (*ISOCtryBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ISOCtryBuff); ok {
		return b, nil
	}
	b := new(ISOCtryBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ISOCtryFactory) EnsureHRec(r ISOCtryH) (*ISOCtryHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ISOCtryHBuff); ok {
		return h, nil
	}
	h := new(ISOCtryHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
