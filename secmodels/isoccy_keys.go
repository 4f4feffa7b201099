/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import "cmp"

// ISOCcyStoreKey is the canonical datastore key for a currency id.
func ISOCcyStoreKey(id int16) string {
	var kb keyBuilder
	kb.short(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	ISOCcyCcyCdIdx = "CcyCdIdx"
	ISOCcyNameIdx  = "NameIdx"
)

// ISOCcyByCcyCdIdxKey looks a currency up by its ISO 4217 code.
type ISOCcyByCcyCdIdxKey struct {
	ISOCode string
}

func isoCcyByCcyCdIdx(r ISOCcy) ISOCcyByCcyCdIdxKey {
	return ISOCcyByCcyCdIdxKey{ISOCode: r.ISOCode()}
}

func (k ISOCcyByCcyCdIdxKey) compare(o ISOCcyByCcyCdIdxKey) int {
	return cmp.Compare(k.ISOCode, o.ISOCode)
}

func (k ISOCcyByCcyCdIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.ISOCode)
	return kb.String()
}

func (k ISOCcyByCcyCdIdxKey) Equals(other any) bool {
	return indexEquals(isoCcyProtocol, k, other, isoCcyByCcyCdIdx, ISOCcyByCcyCdIdxKey.compare)
}

func (k ISOCcyByCcyCdIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCcyProtocol, k, other, isoCcyByCcyCdIdx, ISOCcyByCcyCdIdxKey.compare)
}

func (k ISOCcyByCcyCdIdxKey) HashCode() int {
	var h hasher
	h.str(k.ISOCode)
	return h.code()
}

// ISOCcyByNameIdxKey looks a currency up by name.
type ISOCcyByNameIdxKey struct {
	Name string
}

func isoCcyByNameIdx(r ISOCcy) ISOCcyByNameIdxKey {
	return ISOCcyByNameIdxKey{Name: r.Name()}
}

func (k ISOCcyByNameIdxKey) compare(o ISOCcyByNameIdxKey) int {
	return cmp.Compare(k.Name, o.Name)
}

func (k ISOCcyByNameIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.Name)
	return kb.String()
}

func (k ISOCcyByNameIdxKey) Equals(other any) bool {
	return indexEquals(isoCcyProtocol, k, other, isoCcyByNameIdx, ISOCcyByNameIdxKey.compare)
}

func (k ISOCcyByNameIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCcyProtocol, k, other, isoCcyByNameIdx, ISOCcyByNameIdxKey.compare)
}

func (k ISOCcyByNameIdxKey) HashCode() int {
	var h hasher
	h.str(k.Name)
	return h.code()
}

type isoCcyOperand = operand[ISOCcy, ISOCcyHPKey]

var isoCcyProtocol = protocol[ISOCcy, ISOCcyHPKey]{
	class:            "ISOCcy",
	classify:         classifyISOCcy,
	compare:          compareISOCcy,
	compareKey:       compareISOCcyKey,
	compareRecordKey: compareISOCcyRecordKey,
}

func classifyISOCcy(other any) isoCcyOperand {
	switch v := other.(type) {
	case nil:
		return isoCcyOperand{variant: variantNil}
	case *ISOCcyHBuff:
		if v == nil {
			return isoCcyOperand{variant: variantNil}
		}
		return isoCcyOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ISOCcyBuff:
		if v == nil {
			return isoCcyOperand{variant: variantNil}
		}
		return isoCcyOperand{variant: variantRecord, rec: v}
	case ISOCcyH:
		if v.ClassCode() == ClassCodeISOCcy {
			return isoCcyOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case ISOCcy:
		if v.ClassCode() == ClassCodeISOCcy {
			return isoCcyOperand{variant: variantRecord, rec: v}
		}
	case ISOCcyHPKey:
		return isoCcyOperand{variant: variantHistoryKey, hkey: v}
	case ISOCcyByCcyCdIdxKey:
		return indexOperand[ISOCcy, ISOCcyHPKey](v, isoCcyByCcyCdIdx, ISOCcyByCcyCdIdxKey.compare)
	case ISOCcyByNameIdxKey:
		return indexOperand[ISOCcy, ISOCcyHPKey](v, isoCcyByNameIdx, ISOCcyByNameIdxKey.compare)
	}
	return isoCcyOperand{}
}

func compareISOCcy(a, b ISOCcy) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID(), b.ID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ISOCode(), b.ISOCode()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name(), b.Name()); c != 0 {
		return c
	}
	if c := compareOptString(a.UnitSymbol(), b.UnitSymbol()); c != 0 {
		return c
	}
	return cmp.Compare(a.Precis(), b.Precis())
}

func compareISOCcyKey(a, b ISOCcyHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func compareISOCcyRecordKey(r ISOCcy, k ISOCcyHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return cmp.Compare(r.ID(), k.ID)
}

func hashISOCcy(r ISOCcy) int {
	var h hasher
	h.audit(r)
	h.short(r.ID())
	h.str(r.ISOCode())
	h.str(r.Name())
	h.optStr(r.UnitSymbol())
	h.short(r.Precis())
	return h.code()
}

func fragmentISOCcy(f *fragment, r ISOCcy) {
	f.audit(r)
	f.short("RequiredId", r.ID())
	f.revision(r.Revision())
	f.str("RequiredISOCode", r.ISOCode())
	f.str("RequiredName", r.Name())
	f.optStr("OptionalUnitSymbol", r.UnitSymbol())
	f.short("RequiredPrecis", r.Precis())
}
