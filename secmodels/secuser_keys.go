/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"

	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
)

// SecUserStoreKey is the canonical datastore key for a user id.
func SecUserStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	SecUserULoginIdx   = "ULoginIdx"
	SecUserEMConfIdx   = "EMConfIdx"
	SecUserPwdResetIdx = "PwdResetIdx"
	SecUserDefDevIdx   = "DefDevIdx"
)

// SecUserByULoginIdxKey looks a user up by login.
type SecUserByULoginIdxKey struct {
	LoginID string
}

func secUserByULoginIdx(r SecUser) SecUserByULoginIdxKey {
	return SecUserByULoginIdxKey{LoginID: r.LoginID()}
}

func (k SecUserByULoginIdxKey) compare(o SecUserByULoginIdxKey) int {
	return cmp.Compare(k.LoginID, o.LoginID)
}

func (k SecUserByULoginIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.str(k.LoginID)
	return kb.String()
}

func (k SecUserByULoginIdxKey) Equals(other any) bool {
	return indexEquals(secUserProtocol, k, other, secUserByULoginIdx, SecUserByULoginIdxKey.compare)
}

func (k SecUserByULoginIdxKey) Compare(other any) (int, error) {
	return indexCompare(secUserProtocol, k, other, secUserByULoginIdx, SecUserByULoginIdxKey.compare)
}

func (k SecUserByULoginIdxKey) HashCode() int {
	var h hasher
	h.str(k.LoginID)
	return h.code()
}

// SecUserByEMConfIdxKey matches a pending e-mail confirmation token.
type SecUserByEMConfIdxKey struct {
	EMailConfirmUUID uuid.NullUUID
}

func secUserByEMConfIdx(r SecUser) SecUserByEMConfIdxKey {
	return SecUserByEMConfIdxKey{EMailConfirmUUID: r.EMailConfirmUUID()}
}

func (k SecUserByEMConfIdxKey) compare(o SecUserByEMConfIdxKey) int {
	return compareUUID(k.EMailConfirmUUID, o.EMailConfirmUUID)
}

func (k SecUserByEMConfIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.uuid(k.EMailConfirmUUID)
	return kb.String()
}

func (k SecUserByEMConfIdxKey) Equals(other any) bool {
	return indexEquals(secUserProtocol, k, other, secUserByEMConfIdx, SecUserByEMConfIdxKey.compare)
}

func (k SecUserByEMConfIdxKey) Compare(other any) (int, error) {
	return indexCompare(secUserProtocol, k, other, secUserByEMConfIdx, SecUserByEMConfIdxKey.compare)
}

func (k SecUserByEMConfIdxKey) HashCode() int {
	var h hasher
	h.uuid(k.EMailConfirmUUID)
	return h.code()
}

// SecUserByPwdResetIdxKey matches a pending password reset token.
type SecUserByPwdResetIdxKey struct {
	PasswordResetUUID uuid.NullUUID
}

func secUserByPwdResetIdx(r SecUser) SecUserByPwdResetIdxKey {
	return SecUserByPwdResetIdxKey{PasswordResetUUID: r.PasswordResetUUID()}
}

func (k SecUserByPwdResetIdxKey) compare(o SecUserByPwdResetIdxKey) int {
	return compareUUID(k.PasswordResetUUID, o.PasswordResetUUID)
}

func (k SecUserByPwdResetIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.uuid(k.PasswordResetUUID)
	return kb.String()
}

func (k SecUserByPwdResetIdxKey) Equals(other any) bool {
	return indexEquals(secUserProtocol, k, other, secUserByPwdResetIdx, SecUserByPwdResetIdxKey.compare)
}

func (k SecUserByPwdResetIdxKey) Compare(other any) (int, error) {
	return indexCompare(secUserProtocol, k, other, secUserByPwdResetIdx, SecUserByPwdResetIdxKey.compare)
}

func (k SecUserByPwdResetIdxKey) HashCode() int {
	var h hasher
	h.uuid(k.PasswordResetUUID)
	return h.code()
}

// SecUserByDefDevIdxKey selects users by their default device.
type SecUserByDefDevIdxKey struct {
	DfltDevUserID keys.HashKey
	DfltDevName   *string
}

func secUserByDefDevIdx(r SecUser) SecUserByDefDevIdxKey {
	return SecUserByDefDevIdxKey{
		DfltDevUserID: r.DfltDevUserID(),
		DfltDevName:   r.DfltDevName(),
	}
}

func (k SecUserByDefDevIdxKey) compare(o SecUserByDefDevIdxKey) int {
	if c := k.DfltDevUserID.Compare(o.DfltDevUserID); c != 0 {
		return c
	}
	return compareOptString(k.DfltDevName, o.DfltDevName)
}

func (k SecUserByDefDevIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.DfltDevUserID)
	kb.optStr(k.DfltDevName)
	return kb.String()
}

func (k SecUserByDefDevIdxKey) Equals(other any) bool {
	return indexEquals(secUserProtocol, k, other, secUserByDefDevIdx, SecUserByDefDevIdxKey.compare)
}

func (k SecUserByDefDevIdxKey) Compare(other any) (int, error) {
	return indexCompare(secUserProtocol, k, other, secUserByDefDevIdx, SecUserByDefDevIdxKey.compare)
}

func (k SecUserByDefDevIdxKey) HashCode() int {
	var h hasher
	h.key(k.DfltDevUserID)
	h.optStr(k.DfltDevName)
	return h.code()
}

type secUserOperand = operand[SecUser, SecUserHPKey]

var secUserProtocol = protocol[SecUser, SecUserHPKey]{
	class:            "SecUser",
	classify:         classifySecUser,
	compare:          compareSecUser,
	compareKey:       compareSecUserKey,
	compareRecordKey: compareSecUserRecordKey,
}

func classifySecUser(other any) secUserOperand {
	switch v := other.(type) {
	case nil:
		return secUserOperand{variant: variantNil}
	case *SecUserHBuff:
		if v == nil {
			return secUserOperand{variant: variantNil}
		}
		return secUserOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *SecUserBuff:
		if v == nil {
			return secUserOperand{variant: variantNil}
		}
		return secUserOperand{variant: variantRecord, rec: v}
	case SecUserH:
		if v.ClassCode() == ClassCodeSecUser {
			return secUserOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case SecUser:
		if v.ClassCode() == ClassCodeSecUser {
			return secUserOperand{variant: variantRecord, rec: v}
		}
	case SecUserHPKey:
		return secUserOperand{variant: variantHistoryKey, hkey: v}
	case SecUserByULoginIdxKey:
		return indexOperand[SecUser, SecUserHPKey](v, secUserByULoginIdx, SecUserByULoginIdxKey.compare)
	case SecUserByEMConfIdxKey:
		return indexOperand[SecUser, SecUserHPKey](v, secUserByEMConfIdx, SecUserByEMConfIdxKey.compare)
	case SecUserByPwdResetIdxKey:
		return indexOperand[SecUser, SecUserHPKey](v, secUserByPwdResetIdx, SecUserByPwdResetIdxKey.compare)
	case SecUserByDefDevIdxKey:
		return indexOperand[SecUser, SecUserHPKey](v, secUserByDefDevIdx, SecUserByDefDevIdxKey.compare)
	}
	return secUserOperand{}
}

func compareSecUser(a, b SecUser) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.LoginID(), b.LoginID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.EMailAddress(), b.EMailAddress()); c != 0 {
		return c
	}
	if c := compareUUID(a.EMailConfirmUUID(), b.EMailConfirmUUID()); c != 0 {
		return c
	}
	if c := a.DfltDevUserID().Compare(b.DfltDevUserID()); c != 0 {
		return c
	}
	if c := compareOptString(a.DfltDevName(), b.DfltDevName()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.PasswordHash(), b.PasswordHash()); c != 0 {
		return c
	}
	return compareUUID(a.PasswordResetUUID(), b.PasswordResetUUID())
}

func compareSecUserKey(a, b SecUserHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareSecUserRecordKey(r SecUser, k SecUserHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashSecUser(r SecUser) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.str(r.LoginID())
	h.str(r.EMailAddress())
	h.uuid(r.EMailConfirmUUID())
	h.key(r.DfltDevUserID())
	h.optStr(r.DfltDevName())
	h.str(r.PasswordHash())
	h.uuid(r.PasswordResetUUID())
	return h.code()
}

func fragmentSecUser(f *fragment, r SecUser) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.str("RequiredLoginId", r.LoginID())
	f.str("RequiredEMailAddress", r.EMailAddress())
	f.uuid("OptionalEMailConfirmUUId", r.EMailConfirmUUID())
	f.optKey("OptionalDfltDevUserId", r.DfltDevUserID())
	f.optStr("OptionalDfltDevName", r.DfltDevName())
	f.str("RequiredPasswordHash", r.PasswordHash())
	f.uuid("OptionalPasswordResetUUId", r.PasswordResetUUID())
}
