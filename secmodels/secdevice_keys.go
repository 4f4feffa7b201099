/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/suparena/secschema/keys"
)

// SecDevicePKey is the composite device key. It compares against device
// records on the key fields alone.
type SecDevicePKey struct {
	SecUserID keys.HashKey `json:"secUserId"`
	DevName   string       `json:"devName"`
}

func secDevicePKeyOf(r SecDevice) SecDevicePKey {
	return r.PKey()
}

func (k SecDevicePKey) compare(o SecDevicePKey) int {
	if c := k.SecUserID.Compare(o.SecUserID); c != 0 {
		return c
	}
	return cmp.Compare(k.DevName, o.DevName)
}

func (k SecDevicePKey) validate(class, method string) error {
	if err := checkRequiredKey(class, method, "SecUserID", k.SecUserID); err != nil {
		return err
	}
	if err := checkRequiredString(class, method, "DevName", k.DevName, SecDeviceDevNameMaxLen); err != nil {
		return err
	}
	return nil
}

func (k SecDevicePKey) hash(h *hasher) {
	h.key(k.SecUserID)
	h.str(k.DevName)
}

func (k SecDevicePKey) fragment(f *fragment) {
	f.key("RequiredSecUserId", k.SecUserID)
	f.str("RequiredDevName", k.DevName)
}

func (k SecDevicePKey) storeKey(kb *keyBuilder) {
	kb.key(k.SecUserID)
	kb.str(k.DevName)
}

// StoreKey is the canonical datastore key of the record this key identifies.
func (k SecDevicePKey) StoreKey() string {
	var kb keyBuilder
	k.storeKey(&kb)
	return kb.String()
}

func (k SecDevicePKey) Equals(other any) bool {
	return indexEquals(secDeviceProtocol, k, other, secDevicePKeyOf, SecDevicePKey.compare)
}

func (k SecDevicePKey) Compare(other any) (int, error) {
	return indexCompare(secDeviceProtocol, k, other, secDevicePKeyOf, SecDevicePKey.compare)
}

func (k SecDevicePKey) HashCode() int {
	var h hasher
	k.hash(&h)
	return h.code()
}

// Secondary index names, as used by IndexValues and the datastores.
const SecDeviceUserIdx = "UserIdx"

// SecDeviceByUserIdxKey selects every device of a user.
type SecDeviceByUserIdxKey struct {
	SecUserID keys.HashKey
}

func secDeviceByUserIdx(r SecDevice) SecDeviceByUserIdxKey {
	return SecDeviceByUserIdxKey{SecUserID: r.SecUserID()}
}

func (k SecDeviceByUserIdxKey) compare(o SecDeviceByUserIdxKey) int {
	return k.SecUserID.Compare(o.SecUserID)
}

func (k SecDeviceByUserIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	return kb.String()
}

func (k SecDeviceByUserIdxKey) Equals(other any) bool {
	return indexEquals(secDeviceProtocol, k, other, secDeviceByUserIdx, SecDeviceByUserIdxKey.compare)
}

func (k SecDeviceByUserIdxKey) Compare(other any) (int, error) {
	return indexCompare(secDeviceProtocol, k, other, secDeviceByUserIdx, SecDeviceByUserIdxKey.compare)
}

func (k SecDeviceByUserIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	return h.code()
}

type secDeviceOperand = operand[SecDevice, SecDeviceHPKey]

var secDeviceProtocol = protocol[SecDevice, SecDeviceHPKey]{
	class:            "SecDevice",
	classify:         classifySecDevice,
	compare:          compareSecDevice,
	compareKey:       compareSecDeviceKey,
	compareRecordKey: compareSecDeviceRecordKey,
}

func classifySecDevice(other any) secDeviceOperand {
	switch v := other.(type) {
	case nil:
		return secDeviceOperand{variant: variantNil}
	case *SecDeviceHBuff:
		if v == nil {
			return secDeviceOperand{variant: variantNil}
		}
		return secDeviceOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *SecDeviceBuff:
		if v == nil {
			return secDeviceOperand{variant: variantNil}
		}
		return secDeviceOperand{variant: variantRecord, rec: v}
	case SecDeviceH:
		if v.ClassCode() == ClassCodeSecDevice {
			return secDeviceOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case SecDevice:
		if v.ClassCode() == ClassCodeSecDevice {
			return secDeviceOperand{variant: variantRecord, rec: v}
		}
	case SecDeviceHPKey:
		return secDeviceOperand{variant: variantHistoryKey, hkey: v}
	case SecDevicePKey:
		return indexOperand[SecDevice, SecDeviceHPKey](v, secDevicePKeyOf, SecDevicePKey.compare)
	case SecDeviceByUserIdxKey:
		return indexOperand[SecDevice, SecDeviceHPKey](v, secDeviceByUserIdx, SecDeviceByUserIdxKey.compare)
	}
	return secDeviceOperand{}
}

func compareSecDevice(a, b SecDevice) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.PKey().compare(b.PKey()); c != 0 {
		return c
	}
	return compareOptString(a.PubKey(), b.PubKey())
}

func compareSecDeviceKey(a, b SecDeviceHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.SecDevicePKey.compare(b.SecDevicePKey)
}

func compareSecDeviceRecordKey(r SecDevice, k SecDeviceHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.PKey().compare(k.SecDevicePKey)
}

func hashSecDevice(r SecDevice) int {
	var h hasher
	h.audit(r)
	r.PKey().hash(&h)
	h.optStr(r.PubKey())
	return h.code()
}

func fragmentSecDevice(f *fragment, r SecDevice) {
	f.audit(r)
	r.PKey().fragment(f)
	f.revision(r.Revision())
	f.optStr("OptionalPubKey", r.PubKey())
}
