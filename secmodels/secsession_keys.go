/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"
	"time"

	"github.com/suparena/secschema/keys"
)

// SecSessionStoreKey is the canonical datastore key for a session id.
func SecSessionStoreKey(id keys.HashKey) string {
	var kb keyBuilder
	kb.key(id)
	return kb.String()
}

// Secondary index names, as used by IndexValues and the datastores.
const (
	SecSessionSecUserIdx  = "SecUserIdx"
	SecSessionSecDevIdx   = "SecDevIdx"
	SecSessionStartIdx    = "StartIdx"
	SecSessionFinishIdx   = "FinishIdx"
	SecSessionSecProxyIdx = "SecProxyIdx"
)

// SecSessionBySecUserIdxKey selects every session of a user.
type SecSessionBySecUserIdxKey struct {
	SecUserID keys.HashKey
}

func secSessionBySecUserIdx(r SecSession) SecSessionBySecUserIdxKey {
	return SecSessionBySecUserIdxKey{SecUserID: r.SecUserID()}
}

func (k SecSessionBySecUserIdxKey) compare(o SecSessionBySecUserIdxKey) int {
	return k.SecUserID.Compare(o.SecUserID)
}

func (k SecSessionBySecUserIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	return kb.String()
}

func (k SecSessionBySecUserIdxKey) Equals(other any) bool {
	return indexEquals(secSessionProtocol, k, other, secSessionBySecUserIdx, SecSessionBySecUserIdxKey.compare)
}

func (k SecSessionBySecUserIdxKey) Compare(other any) (int, error) {
	return indexCompare(secSessionProtocol, k, other, secSessionBySecUserIdx, SecSessionBySecUserIdxKey.compare)
}

func (k SecSessionBySecUserIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	return h.code()
}

// SecSessionBySecDevIdxKey selects a user's sessions on one device.
type SecSessionBySecDevIdxKey struct {
	SecUserID  keys.HashKey
	SecDevName *string
}

func secSessionBySecDevIdx(r SecSession) SecSessionBySecDevIdxKey {
	return SecSessionBySecDevIdxKey{
		SecUserID:  r.SecUserID(),
		SecDevName: r.SecDevName(),
	}
}

func (k SecSessionBySecDevIdxKey) compare(o SecSessionBySecDevIdxKey) int {
	if c := k.SecUserID.Compare(o.SecUserID); c != 0 {
		return c
	}
	return compareOptString(k.SecDevName, o.SecDevName)
}

func (k SecSessionBySecDevIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	kb.optStr(k.SecDevName)
	return kb.String()
}

func (k SecSessionBySecDevIdxKey) Equals(other any) bool {
	return indexEquals(secSessionProtocol, k, other, secSessionBySecDevIdx, SecSessionBySecDevIdxKey.compare)
}

func (k SecSessionBySecDevIdxKey) Compare(other any) (int, error) {
	return indexCompare(secSessionProtocol, k, other, secSessionBySecDevIdx, SecSessionBySecDevIdxKey.compare)
}

func (k SecSessionBySecDevIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	h.optStr(k.SecDevName)
	return h.code()
}

// SecSessionByStartIdxKey is unique: a user cannot open two sessions at the
// same instant.
type SecSessionByStartIdxKey struct {
	SecUserID keys.HashKey
	Start     time.Time
}

func secSessionByStartIdx(r SecSession) SecSessionByStartIdxKey {
	return SecSessionByStartIdxKey{
		SecUserID: r.SecUserID(),
		Start:     r.Start(),
	}
}

func (k SecSessionByStartIdxKey) compare(o SecSessionByStartIdxKey) int {
	if c := k.SecUserID.Compare(o.SecUserID); c != 0 {
		return c
	}
	return k.Start.Compare(o.Start)
}

func (k SecSessionByStartIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	kb.time(k.Start)
	return kb.String()
}

func (k SecSessionByStartIdxKey) Equals(other any) bool {
	return indexEquals(secSessionProtocol, k, other, secSessionByStartIdx, SecSessionByStartIdxKey.compare)
}

func (k SecSessionByStartIdxKey) Compare(other any) (int, error) {
	return indexCompare(secSessionProtocol, k, other, secSessionByStartIdx, SecSessionByStartIdxKey.compare)
}

func (k SecSessionByStartIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	h.time(k.Start)
	return h.code()
}

// SecSessionByFinishIdxKey selects sessions by end time; a nil Finish
// matches open sessions.
type SecSessionByFinishIdxKey struct {
	SecUserID keys.HashKey
	Finish    *time.Time
}

func secSessionByFinishIdx(r SecSession) SecSessionByFinishIdxKey {
	return SecSessionByFinishIdxKey{
		SecUserID: r.SecUserID(),
		Finish:    r.Finish(),
	}
}

func (k SecSessionByFinishIdxKey) compare(o SecSessionByFinishIdxKey) int {
	if c := k.SecUserID.Compare(o.SecUserID); c != 0 {
		return c
	}
	return compareOptTime(k.Finish, o.Finish)
}

func (k SecSessionByFinishIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecUserID)
	kb.optTime(k.Finish)
	return kb.String()
}

func (k SecSessionByFinishIdxKey) Equals(other any) bool {
	return indexEquals(secSessionProtocol, k, other, secSessionByFinishIdx, SecSessionByFinishIdxKey.compare)
}

func (k SecSessionByFinishIdxKey) Compare(other any) (int, error) {
	return indexCompare(secSessionProtocol, k, other, secSessionByFinishIdx, SecSessionByFinishIdxKey.compare)
}

func (k SecSessionByFinishIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecUserID)
	h.optTime(k.Finish)
	return h.code()
}

// SecSessionBySecProxyIdxKey selects sessions opened on behalf of a proxy user.
type SecSessionBySecProxyIdxKey struct {
	SecProxyID keys.HashKey
}

func secSessionBySecProxyIdx(r SecSession) SecSessionBySecProxyIdxKey {
	return SecSessionBySecProxyIdxKey{SecProxyID: r.SecProxyID()}
}

func (k SecSessionBySecProxyIdxKey) compare(o SecSessionBySecProxyIdxKey) int {
	return k.SecProxyID.Compare(o.SecProxyID)
}

func (k SecSessionBySecProxyIdxKey) IndexValue() string {
	var kb keyBuilder
	kb.key(k.SecProxyID)
	return kb.String()
}

func (k SecSessionBySecProxyIdxKey) Equals(other any) bool {
	return indexEquals(secSessionProtocol, k, other, secSessionBySecProxyIdx, SecSessionBySecProxyIdxKey.compare)
}

func (k SecSessionBySecProxyIdxKey) Compare(other any) (int, error) {
	return indexCompare(secSessionProtocol, k, other, secSessionBySecProxyIdx, SecSessionBySecProxyIdxKey.compare)
}

func (k SecSessionBySecProxyIdxKey) HashCode() int {
	var h hasher
	h.key(k.SecProxyID)
	return h.code()
}

type secSessionOperand = operand[SecSession, SecSessionHPKey]

var secSessionProtocol = protocol[SecSession, SecSessionHPKey]{
	class:            "SecSession",
	classify:         classifySecSession,
	compare:          compareSecSession,
	compareKey:       compareSecSessionKey,
	compareRecordKey: compareSecSessionRecordKey,
}

func classifySecSession(other any) secSessionOperand {
	switch v := other.(type) {
	case nil:
		return secSessionOperand{variant: variantNil}
	case *SecSessionHBuff:
		if v == nil {
			return secSessionOperand{variant: variantNil}
		}
		return secSessionOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
	case *SecSessionBuff:
		if v == nil {
			return secSessionOperand{variant: variantNil}
		}
		return secSessionOperand{variant: variantRecord, rec: v}
	case SecSessionH:
		if v.ClassCode() == ClassCodeSecSession {
			return secSessionOperand{variant: variantHistory, rec: v, hkey: v.HPKey()}
		}
	case SecSession:
		if v.ClassCode() == ClassCodeSecSession {
			return secSessionOperand{variant: variantRecord, rec: v}
		}
	case SecSessionHPKey:
		return secSessionOperand{variant: variantHistoryKey, hkey: v}
	case SecSessionBySecUserIdxKey:
		return indexOperand[SecSession, SecSessionHPKey](v, secSessionBySecUserIdx, SecSessionBySecUserIdxKey.compare)
	case SecSessionBySecDevIdxKey:
		return indexOperand[SecSession, SecSessionHPKey](v, secSessionBySecDevIdx, SecSessionBySecDevIdxKey.compare)
	case SecSessionByStartIdxKey:
		return indexOperand[SecSession, SecSessionHPKey](v, secSessionByStartIdx, SecSessionByStartIdxKey.compare)
	case SecSessionByFinishIdxKey:
		return indexOperand[SecSession, SecSessionHPKey](v, secSessionByFinishIdx, SecSessionByFinishIdxKey.compare)
	case SecSessionBySecProxyIdxKey:
		return indexOperand[SecSession, SecSessionHPKey](v, secSessionBySecProxyIdx, SecSessionBySecProxyIdxKey.compare)
	}
	return secSessionOperand{}
}

func compareSecSession(a, b SecSession) int {
	if c := compareAudit(a, b); c != 0 {
		return c
	}
	if c := a.ID().Compare(b.ID()); c != 0 {
		return c
	}
	if c := a.SecUserID().Compare(b.SecUserID()); c != 0 {
		return c
	}
	if c := compareOptString(a.SecDevName(), b.SecDevName()); c != 0 {
		return c
	}
	if c := a.Start().Compare(b.Start()); c != 0 {
		return c
	}
	if c := compareOptTime(a.Finish(), b.Finish()); c != 0 {
		return c
	}
	return a.SecProxyID().Compare(b.SecProxyID())
}

func compareSecSessionKey(a, b SecSessionHPKey) int {
	if c := a.HistoryKey.compare(b.HistoryKey); c != 0 {
		return c
	}
	return a.ID.Compare(b.ID)
}

func compareSecSessionRecordKey(r SecSession, k SecSessionHPKey) int {
	if c := cmp.Compare(r.Revision(), k.Revision); c != 0 {
		return c
	}
	return r.ID().Compare(k.ID)
}

func hashSecSession(r SecSession) int {
	var h hasher
	h.audit(r)
	h.key(r.ID())
	h.key(r.SecUserID())
	h.optStr(r.SecDevName())
	h.time(r.Start())
	h.optTime(r.Finish())
	h.key(r.SecProxyID())
	return h.code()
}

func fragmentSecSession(f *fragment, r SecSession) {
	f.audit(r)
	f.key("RequiredId", r.ID())
	f.revision(r.Revision())
	f.key("RequiredSecUserId", r.SecUserID())
	f.optStr("OptionalSecDevName", r.SecDevName())
	f.time("RequiredStart", r.Start())
	f.optTime("OptionalFinish", r.Finish())
	f.optKey("OptionalSecProxyId", r.SecProxyID())
}
