/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import "cmp"

// ISOCtryCcyPKey is the (country, currency) key.
type ISOCtryCcyPKey struct {
	ISOCtryID int16 `json:"isoCtryId"`
	ISOCcyID  int16 `json:"isoCcyId"`
}

func isoCtryCcyPKeyOf(r ISOCtryCcy) ISOCtryCcyPKey {
	return r.PKey()
}

func (k ISOCtryCcyPKey) compare(o ISOCtryCcyPKey) int {
	if c := cmp.Compare(k.ISOCtryID, o.ISOCtryID); c != 0 {
		return c
	}
	return cmp.Compare(k.ISOCcyID, o.ISOCcyID)
}

func (k ISOCtryCcyPKey) validate(class, method string) error {
	if err := checkShortRange(class, method, "ISOCtryID", k.ISOCtryID, ISOCtryCcyISOCtryIDMinValue, ISOCtryCcyISOCtryIDMaxValue); err != nil {
		return err
	}
	if err := checkShortRange(class, method, "ISOCcyID", k.ISOCcyID, ISOCtryCcyISOCcyIDMinValue, ISOCtryCcyISOCcyIDMaxValue); err != nil {
		return err
	}
	return nil
}

func (k ISOCtryCcyPKey) hash(h *hasher) {
	h.short(k.ISOCtryID)
	h.short(k.ISOCcyID)
}

func (k ISOCtryCcyPKey) fragment(f *fragment) {
	f.short("RequiredISOCtryId", k.ISOCtryID)
	f.short("RequiredISOCcyId", k.ISOCcyID)
}

func (k ISOCtryCcyPKey) storeKey(kb *keyBuilder) {
	kb.short(k.ISOCtryID)
	kb.short(k.ISOCcyID)
}

// StoreKey is the canonical datastore key of the record this key identifies.
func (k ISOCtryCcyPKey) StoreKey() string {
	var kb keyBuilder
	k.storeKey(&kb)
	return kb.String()
}

func (k ISOCtryCcyPKey) Equals(other any) bool {
	return indexEquals(isoCtryCcyProtocol, k, other, isoCtryCcyPKeyOf, ISOCtryCcyPKey.compare)
}

func (k ISOCtryCcyPKey) Compare(other any) (int, error) {
	return indexCompare(isoCtryCcyProtocol, k, other, isoCtryCcyPKeyOf, ISOCtryCcyPKey.compare)
}

func (k ISOCtryCcyPKey) HashCode() int {
	var h hasher
	k.hash(&h)
	return h.code()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	ISOCtryCcyCtryIdx = "CtryIdx"
	ISOCtryCcyCcyIdx  = "CcyIdx"
)

// ISOCtryCcyByCtryIdxKey selects the currencies of a country.
type ISOCtryCcyByCtryIdxKey struct {
	ISOCtryID int16
}

func isoCtryCcyByCtryIdx(r ISOCtryCcy) ISOCtryCcyByCtryIdxKey {
	return ISOCtryCcyByCtryIdxKey{ISOCtryID: r.ISOCtryID()}
}

func (k ISOCtryCcyByCtryIdxKey) compare(o ISOCtryCcyByCtryIdxKey) int {
	return cmp.Compare(k.ISOCtryID, o.ISOCtryID)
}

func (k ISOCtryCcyByCtryIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.short(k.ISOCtryID)
	return kb.String()
}

func (k ISOCtryCcyByCtryIdxKey) Equals(other any) bool {
	return indexEquals(isoCtryCcyProtocol, k, other, isoCtryCcyByCtryIdx, ISOCtryCcyByCtryIdxKey.compare)
}

func (k ISOCtryCcyByCtryIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCtryCcyProtocol, k, other, isoCtryCcyByCtryIdx, ISOCtryCcyByCtryIdxKey.compare)
}

func (k ISOCtryCcyByCtryIdxKey) HashCode() int {
	var h hasher
	h.short(k.ISOCtryID)
	return h.code()
}

// ISOCtryCcyByCcyIdxKey selects the countries using a currency.
type ISOCtryCcyByCcyIdxKey struct {
	ISOCcyID int16
}

func isoCtryCcyByCcyIdx(r ISOCtryCcy) ISOCtryCcyByCcyIdxKey {
	return ISOCtryCcyByCcyIdxKey{ISOCcyID: r.ISOCcyID()}
}

func (k ISOCtryCcyByCcyIdxKey) compare(o ISOCtryCcyByCcyIdxKey) int {
	return cmp.Compare(k.ISOCcyID, o.ISOCcyID)
}

func (k ISOCtryCcyByCcyIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.short(k.ISOCcyID)
	return kb.String()
}

func (k ISOCtryCcyByCcyIdxKey) Equals(other any) bool {
	return indexEquals(isoCtryCcyProtocol, k, other, isoCtryCcyByCcyIdx, ISOCtryCcyByCcyIdxKey.compare)
}

func (k ISOCtryCcyByCcyIdxKey) Compare(other any) (int, error) {
	return indexCompare(isoCtryCcyProtocol, k, other, isoCtryCcyByCcyIdx, ISOCtryCcyByCcyIdxKey.compare)
}

func (k ISOCtryCcyByCcyIdxKey) HashCode() int {
	var h hasher
	h.short(k.ISOCcyID)
	return h.code()
}

type isoCtryCcyOperand = operand[ISOCtryCcy, ISOCtryCcyHPKey]

var isoCtryCcyProtocol = protocol[ISOCtryCcy, ISOCtryCcyHPKey]{
	class:            "ISOCtryCcy",
	classify:         classifyISOCtryCcy,
	compare:          compareISOCtryCcy,
	compareKey:       compareISOCtryCcyKey,
	compareRecordKey: compareISOCtryCcyRecordKey,
}

func classifyISOCtryCcy(other any) isoCtryCcyOperand {
	switch v := other.(type) {
	case nil:
		return isoCtryCcyOperand{variant: variantNil}
	case *ISOCtryCcyHBuff:
		if v == nil {
			return isoCtryCcyOperand{variant: variantNil}
		}
		return isoCtryCcyOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *ISOCtryCcyBuff:
		if v == nil {
			return isoCtryCcyOperand{variant: variantNil}
		}
		return isoCtryCcyOperand{variant: variantRecord, rec: v}
	case ISOCtryCcyH:
		if v.ClassCode() == ClassCodeISOCtryCcy {
			return isoCtryCcyOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case ISOCtryCcy:
		if v.ClassCode() == ClassCodeISOCtryCcy {
			return isoCtryCcyOperand{variant: variantRecord, rec: v}
		}
	case ISOCtryCcyHPKey:
		return isoCtryCcyOperand{variant: variantHistoryKey, hkey: v}
	case ISOCtryCcyPKey:
		return indexOperand[ISOCtryCcy, ISOCtryCcyHPKey](v, isoCtryCcyPKeyOf, ISOCtryCcyPKey.compare)
	case ISOCtryCcyByCtryIdxKey:
		return indexOperand[ISOCtryCcy, ISOCtryCcyHPKey](v, isoCtryCcyByCtryIdx, ISOCtryCcyByCtryIdxKey.compare)
	case ISOCtryCcyByCcyIdxKey:
		return indexOperand[ISOCtryCcy, ISOCtryCcyHPKey](v, isoCtryCcyByCcyIdx, ISOCtryCcyByCcyIdxKey.compare)
	}
	return isoCtryCcyOperand{}
}

func compareISOCtryCcy(a, b ISOCtryCcy) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	return a.PKey().compare(b.PKey())
}

func compareISOCtryCcyKey(a, b ISOCtryCcyHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ISOCtryCcyPKey.compare(b.ISOCtryCcyPKey)
}

func compareISOCtryCcyRecordKey(r ISOCtryCcy, k ISOCtryCcyHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.PKey().compare(k.ISOCtryCcyPKey)
}

func hashISOCtryCcy(r ISOCtryCcy) int {
	var h hasher
	h.audit(r)
	r.PKey().hash(&h)
	return h.code()
}

func fragmentISOCtryCcy(f *fragment, r ISOCtryCcy) {
	f.audit(r)
	r.PKey().fragment(f)
	f.revision(r.Revision())
}
