/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// SecGrpMembPKey is the (group, user) membership key.
type SecGrpMembPKey struct {
	SecGroupID keys.HashKey `json:"secGroupId"`
	SecUserID  keys.HashKey `json:"secUserId"`
}

func secGrpMembPKeyOf(r SecGrpMemb) SecGrpMembPKey {
	return r.PKey()
}

func (k SecGrpMembPKey) compare(o SecGrpMembPKey) int {
	if c := k.SecGroupID.Compare(o.SecGroupID); c != 0 {
		return c
	}
	return k.SecUserID.Compare(o.SecUserID)
}

func (k SecGrpMembPKey) validate(class, method string) error {
	if err := checkRequiredKey(class, method, "SecGroupID", k.SecGroupID); err != nil {
		return err
	}
	if err := checkRequiredKey(class, method, "SecUserID", k.SecUserID); err != nil {
		return err
	}
	return nil
}

func (k SecGrpMembPKey) hash(h *hasher) {
	h.key(k.SecGroupID)
	h.key(k.SecUserID)
}

func (k SecGrpMembPKey) fragment(f *fragment) {
	f.key("RequiredSecGroupId", k.SecGroupID)
	f.key("RequiredSecUserId", k.SecUserID)
}

func (k SecGrpMembPKey) storeKey(kb *keyBuilder) {
	kb.key(k.SecGroupID)
	kb.key(k.SecUserID)
}

// StoreKey is the canonical datastore key of the record this key identifies.
func (k SecGrpMembPKey) StoreKey() string {
	var kb keyBuilder
	k.storeKey(&kb)
	return kb.String()
}

func (k SecGrpMembPKey) Equals(other any) bool {
	return indexEquals(secGrpMembProtocol, k, other, secGrpMembPKeyOf, SecGrpMembPKey.compare)
}

func (k SecGrpMembPKey) Compare(other any) (int, error) {
	return indexCompare(secGrpMembProtocol, k, other, secGrpMembPKeyOf, SecGrpMembPKey.compare)
}

func (k SecGrpMembPKey) HashCode() int {
	var h hasher
	k.hash(&h)
	return h.code()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	SecGrpMembGroupIdx = "GroupIdx"
	SecGrpMembUserIdx  = "UserIdx"
)

// SecGrpMembByGroupIdxKey selects the members of a group.
type SecGrpMembByGroupIdxKey struct {
	SecGroupID keys.HashKey
}

func secGrpMembByGroupIdx(r SecGrpMemb) SecGrpMembByGroupIdxKey {
	return SecGrpMembByGroupIdxKey{SecGroupID: r.SecGroupID()}
}

func (k SecGrpMembByGroupIdxKey) compare(o SecGrpMembByGroupIdxKey) int {
	return k.SecGroupID.Compare(o.SecGroupID)
}

func (k SecGrpMembByGroupIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecGroupID)
	return kb.String()
}

func (k SecGrpMembByGroupIdxKey) Equals(other any) bool {
	return indexEquals(secGrpMembProtocol, k, other, secGrpMembByGroupIdx, SecGrpMembByGroupIdxKey.compare)
}

func (k SecGrpMembByGroupIdxKey) Compare(other any) (int, error) {
	return indexCompare(secGrpMembProtocol, k, other, secGrpMembByGroupIdx, SecGrpMembByGroupIdxKey.compare)
}

func (k SecGrpMembByGroupIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecGroupID)
	return h.code()
}

// SecGrpMembByUserIdxKey selects the groups a user belongs to.
type SecGrpMembByUserIdxKey struct {
	SecUserID keys.HashKey
}

func secGrpMembByUserIdx(r SecGrpMemb) SecGrpMembByUserIdxKey {
	return SecGrpMembByUserIdxKey{SecUserID: r.SecUserID()}
}

func (k SecGrpMembByUserIdxKey) compare(o SecGrpMembByUserIdxKey) int {
	return k.SecUserID.Compare(o.SecUserID)
}

func (k SecGrpMembByUserIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	return kb.String()
}

func (k SecGrpMembByUserIdxKey) Equals(other any) bool {
	return indexEquals(secGrpMembProtocol, k, other, secGrpMembByUserIdx, SecGrpMembByUserIdxKey.compare)
}

func (k SecGrpMembByUserIdxKey) Compare(other any) (int, error) {
	return indexCompare(secGrpMembProtocol, k, other, secGrpMembByUserIdx, SecGrpMembByUserIdxKey.compare)
}

func (k SecGrpMembByUserIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	return h.code()
}

type secGrpMembOperand = operand[SecGrpMemb, SecGrpMembHPKey]

var secGrpMembProtocol = protocol[SecGrpMemb, SecGrpMembHPKey]{
	class:            "SecGrpMemb",
	classify:         classifySecGrpMemb,
	compare:          compareSecGrpMemb,
	compareKey:       compareSecGrpMembKey,
	compareRecordKey: compareSecGrpMembRecordKey,
}

func classifySecGrpMemb(other any) secGrpMembOperand {
	switch v := other.(type) {
	case nil:
		return secGrpMembOperand{variant: variantNil}
	case *SecGrpMembHBuff:
		if v == nil {
			return secGrpMembOperand{variant: variantNil}
		}
		return secGrpMembOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *SecGrpMembBuff:
		if v == nil {
			return secGrpMembOperand{variant: variantNil}
		}
		return secGrpMembOperand{variant: variantRecord, rec: v}
	case SecGrpMembH:
		if v.ClassCode() == ClassCodeSecGrpMemb {
			return secGrpMembOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case SecGrpMemb:
		if v.ClassCode() == ClassCodeSecGrpMemb {
			return secGrpMembOperand{variant: variantRecord, rec: v}
		}
	case SecGrpMembHPKey:
		return secGrpMembOperand{variant: variantHistoryKey, hkey: v}
	case SecGrpMembPKey:
		return indexOperand[SecGrpMemb, SecGrpMembHPKey](v, secGrpMembPKeyOf, SecGrpMembPKey.compare)
	case SecGrpMembByGroupIdxKey:
		return indexOperand[SecGrpMemb, SecGrpMembHPKey](v, secGrpMembByGroupIdx, SecGrpMembByGroupIdxKey.compare)
	case SecGrpMembByUserIdxKey:
		return indexOperand[SecGrpMemb, SecGrpMembHPKey](v, secGrpMembByUserIdx, SecGrpMembByUserIdxKey.compare)
	}
	return secGrpMembOperand{}
}

func compareSecGrpMemb(a, b SecGrpMemb) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	return a.PKey().compare(b.PKey())
}

func compareSecGrpMembKey(a, b SecGrpMembHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.SecGrpMembPKey.compare(b.SecGrpMembPKey)
}

func compareSecGrpMembRecordKey(r SecGrpMemb, k SecGrpMembHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.PKey().compare(k.SecGrpMembPKey)
}

func hashSecGrpMemb(r SecGrpMemb) int {
	var h hasher
	h.audit(r)
	r.PKey().hash(&h)
	return h.code()
}

func fragmentSecGrpMemb(f *fragment, r SecGrpMemb) {
	f.audit(r)
	r.PKey().fragment(f)
	f.revision(r.Revision())
}
