/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import "cmp"

// ISOCtryStoreKey is the canonical datastore key for a country id.
func ISOCtryStoreKey(id int16) string {
	var kb keyBuilder
	kb.short(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	ISOCtryISOCodeIdx = "ISOCodeIdx"
	ISOCtryNameIdx    = "NameIdx"
)

// ISOCtryByISOCodeIdxKey looks a country up by its ISO 3166 alpha-2 code.
type ISOCtryByISOCodeIdxKey struct {
	ISOCode string
}

func isoCtryByISOCodeIdx(r ISOCtry) ISOCtryByISOCodeIdxKey {
	return ISOCtryByISOCodeIdxKey{ISOCode: r.ISOCode()}
}

func (k ISOCtryByISOCodeIdxKey) compare(o ISOCtryByISOCodeIdxKey) int {
	return cmp.Compare(k.ISOCode, o.ISOCode)
}

func (k ISOCtryByISOCodeIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.ISOCode)
	return kb.String()
}

func (k ISOCtryByISOCodeIdxKey) Equals(other any) bool {
	return indexEquals(isoCtryProtocol, k, other, isoCtryByISOCodeIdx, ISOCtryByISOCodeIdxKey.compare)
}

func (k ISOCtryByISOCodeIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCtryProtocol, k, other, isoCtryByISOCodeIdx, ISOCtryByISOCodeIdxKey.compare)
}

func (k ISOCtryByISOCodeIdxKey) HashCode() int {
	var h hasher
	h.str(k.ISOCode)
	return h.code()
}

// ISOCtryByNameIdxKey looks a country up by name.
type ISOCtryByNameIdxKey struct {
	Name string
}

func isoCtryByNameIdx(r ISOCtry) ISOCtryByNameIdxKey {
	return ISOCtryByNameIdxKey{Name: r.Name()}
}

func (k ISOCtryByNameIdxKey) compare(o ISOCtryByNameIdxKey) int {
	return cmp.Compare(k.Name, o.Name)
}

func (k ISOCtryByNameIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.Name)
	return kb.String()
}

func (k ISOCtryByNameIdxKey) Equals(other any) bool {
	return indexEquals(isoCtryProtocol, k, other, isoCtryByNameIdx, ISOCtryByNameIdxKey.compare)
}

func (k ISOCtryByNameIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCtryProtocol, k, other, isoCtryByNameIdx, ISOCtryByNameIdxKey.compare)
}

func (k ISOCtryByNameIdxKey) HashCode() int {
	var h hasher
	h.str(k.Name)
	return h.code()
}

type isoCtryOperand = operand[ISOCtry, ISOCtryHPKey]

var isoCtryProtocol = protocol[ISOCtry, ISOCtryHPKey]{
	class:            "ISOCtry",
	classify:         classifyISOCtry,
	compare:          compareISOCtry,
	compareKey:       compareISOCtryKey,
	compareRecordKey: compareISOCtryRecordKey,
}

func classifyISOCtry(other any) isoCtryOperand {
	switch v := other.(type) {
	case nil:
		return isoCtryOperand{variant: variantNil}
	case *ISOCtryHBuff:
		if v == nil {
			return isoCtryOperand{variant: variantNil}
		}
		return isoCtryOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ISOCtryBuff:
		if v == nil {
			return isoCtryOperand{variant: variantNil}
		}
		return isoCtryOperand{variant: variantRecord, rec: v}
	case ISOCtryH:
		if v.ClassCode() == ClassCodeISOCtry {
			return isoCtryOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case ISOCtry:
		if v.ClassCode() == ClassCodeISOCtry {
			return isoCtryOperand{variant: variantRecord, rec: v}
		}
	case ISOCtryHPKey:
		return isoCtryOperand{variant: variantHistoryKey, hkey: v}
	case ISOCtryByISOCodeIdxKey:
		return indexOperand[ISOCtry, ISOCtryHPKey](v, isoCtryByISOCodeIdx, ISOCtryByISOCodeIdxKey.compare)
	case ISOCtryByNameIdxKey:
		return indexOperand[ISOCtry, ISOCtryHPKey](v, isoCtryByNameIdx, ISOCtryByNameIdxKey.compare)
	}
	return isoCtryOperand{}
}

func compareISOCtry(a, b ISOCtry) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ID(), b.ID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ISOCode(), b.ISOCode()); c != 0 {
		return c
	}
	return cmp.Compare(a.Name(), b.Name())
}

func compareISOCtryKey(a, b ISOCtryHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func compareISOCtryRecordKey(r ISOCtry, k ISOCtryHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return cmp.Compare(r.ID(), k.ID)
}

func hashISOCtry(r ISOCtry) int {
	var h hasher
	h.audit(r)
	h.short(r.ID())
	h.str(r.ISOCode())
	h.str(r.Name())
	return h.code()
}

func fragmentISOCtry(f *fragment, r ISOCtry) {
	f.audit(r)
	f.short("RequiredId", r.ID())
	f.revision(r.Revision())
	f.str("RequiredISOCode", r.ISOCode())
	f.str("RequiredName", r.Name())
}
