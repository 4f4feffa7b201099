/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
)

// ISOCcy is the read view of an ISO 4217 currency. Precis is the number of
// minor-unit digits.
type ISOCcy interface {
	Audited
	ClassCode() ClassCode
	ID() int16
	ISOCode() string
	Name() string
	UnitSymbol() *string
	Precis() int16
}

const (
	ISOCcyIDMinValue       = 0
	ISOCcyIDMaxValue       = 32767
	ISOCcyISOCodeMaxLen    = 3
	ISOCcyNameMaxLen       = 64
	ISOCcyUnitSymbolMaxLen = 1
	ISOCcyPrecisMinValue   = 0
	ISOCcyPrecisMaxValue   = 5
)

// ISOCcyBuff holds one currency row.
type ISOCcyBuff struct {
	audit
	id         int16
	isoCode    string
	name       string
	unitSymbol *string
	precis     int16
}

func (b *ISOCcyBuff) ClassCode() ClassCode {
	return ClassCodeISOCcy
}

func (b *ISOCcyBuff) ID() int16 {
	return b.id
}

func (b *ISOCcyBuff) ISOCode() string {
	return b.isoCode
}

func (b *ISOCcyBuff) Name() string {
	return b.name
}

func (b *ISOCcyBuff) UnitSymbol() *string {
	return cloneString(b.unitSymbol)
}

func (b *ISOCcyBuff) Precis() int16 {
	return b.precis
}

func (b *ISOCcyBuff) SetID(v int16) error {
	if err := checkShortRange("ISOCcyBuff", "SetID", "ID", v, ISOCcyIDMinValue, ISOCcyIDMaxValue); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *ISOCcyBuff) SetISOCode(v string) error {
	if err := checkRequiredString("ISOCcyBuff", "SetISOCode", "ISOCode", v, ISOCcyISOCodeMaxLen); err != nil {
		return err
	}
	b.isoCode = v
	return nil
}

func (b *ISOCcyBuff) SetName(v string) error {
	if err := checkRequiredString("ISOCcyBuff", "SetName", "Name", v, ISOCcyNameMaxLen); err != nil {
		return err
	}
	b.name = v
	return nil
}

func (b *ISOCcyBuff) SetUnitSymbol(v *string) error {
	if err := checkOptionalString("ISOCcyBuff", "SetUnitSymbol", "UnitSymbol", v, ISOCcyUnitSymbolMaxLen); err != nil {
		return err
	}
	b.unitSymbol = cloneString(v)
	return nil
}

func (b *ISOCcyBuff) SetPrecis(v int16) error {
	if err := checkShortRange("ISOCcyBuff", "SetPrecis", "Precis", v, ISOCcyPrecisMinValue, ISOCcyPrecisMaxValue); err != nil {
		return err
	}
	b.precis = v
	return nil
}

func (b *ISOCcyBuff) PKeyValue() any {
	return b.id
}

func (b *ISOCcyBuff) SetPKeyValue(v any) error {
	id, ok := v.(int16)
	if !ok {
		return errors.NewUnsupportedClassError("ISOCcyBuff", "SetPKeyValue", 1, "v", v, "int16")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *ISOCcyBuff) Set(src ISOCcy) error {
	if src == nil {
		return errors.NewNullArgumentError("ISOCcyBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeISOCcy {
		return errors.NewUnsupportedClassError("ISOCcyBuff", "Set", 1, "src", src, "ISOCcy")
	}
	var tmp ISOCcyBuff
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
	if err := tmp.SetUnitSymbol(src.UnitSymbol()); err != nil {
		return err
	}
	if err := tmp.SetPrecis(src.Precis()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ISOCcyBuff) Clone() *ISOCcyBuff {
	c := *b
	c.unitSymbol = cloneString(b.unitSymbol)
	return &c
}

func (b *ISOCcyBuff) StoreKey() string {
	return ISOCcyStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ISOCcyBuff) IndexValues() map[string]string {
	return map[string]string{
		ISOCcyCcyCdIdx: isoCcyByCcyCdIdx(b).IndexValue(),
		ISOCcyNameIdx:  isoCcyByNameIdx(b).IndexValue(),
	}
}

func (b *ISOCcyBuff) Equals(other any) bool {
	return isoCcyProtocol.recordEquals(b, other)
}

func (b *ISOCcyBuff) Compare(other any) (int, error) {
	return isoCcyProtocol.recordCompare(b, other)
}

func (b *ISOCcyBuff) HashCode() int {
	return hashISOCcy(b)
}

func (b *ISOCcyBuff) XMLAttrFragment() string {
	var f fragment
	fragmentISOCcy(&f, b)
	return f.String()
}

type isoCcyJSON struct {
	auditJSON
	ID         int16   `json:"id"`
	ISOCode    string  `json:"isoCode"`
	Name       string  `json:"name"`
	UnitSymbol *string `json:"unitSymbol"`
	Precis     int16   `json:"precis"`
}

func (b *ISOCcyBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(isoCcyJSON{
		auditJSON:  b.toJSON(),
		ID:         b.id,
		ISOCode:    b.isoCode,
		Name:       b.name,
		UnitSymbol: b.unitSymbol,
		Precis:     b.precis,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ISOCcyBuff) UnmarshalJSON(data []byte) error {
	var j isoCcyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ISOCcyBuff{
		id:         j.ID,
		isoCode:    j.ISOCode,
		name:       j.Name,
		unitSymbol: j.UnitSymbol,
		precis:     j.Precis,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// ISOCcyFactory constructs currency buffers and keys.
type ISOCcyFactory struct{}

func (ISOCcyFactory) NewRec() *ISOCcyBuff {
	return new(ISOCcyBuff)
}

func (ISOCcyFactory) NewHRec() *ISOCcyHBuff {
	return new(ISOCcyHBuff)
}

func (ISOCcyFactory) NewHPKey() ISOCcyHPKey {
	return ISOCcyHPKey{}
}

func (ISOCcyFactory) NewByCcyCdIdxKey() ISOCcyByCcyCdIdxKey {
	return ISOCcyByCcyCdIdxKey{}
}

func (ISOCcyFactory) NewByNameIdxKey() ISOCcyByNameIdxKey {
	return ISOCcyByNameIdxKey{}
}

// EnsureRec returns r itself when it is already a *ISOCcyBuff, otherwise a
// validated copy. A nil r yields nil.
func (ISOCcyFactory) EnsureRec(r ISOCcy) (*ISOCcyBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ISOCcyBuff); ok {
		return b, nil
	}
	b := new(ISOCcyBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ISOCcyFactory) EnsureHRec(r ISOCcyH) (*ISOCcyHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ISOCcyHBuff); ok {
		return h, nil
	}
	h := new(ISOCcyHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
