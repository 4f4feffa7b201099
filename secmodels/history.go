/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"cmp"
	"fmt"
	"time"

	"github.com/suparena/secschema/keys"
)

// AuditAction records what produced a history record.
type AuditAction int16

const (
	AuditActionCreate AuditAction = iota
	AuditActionUpdate
	AuditActionDelete
)

func (a AuditAction) String() string {
	switch a {
	case AuditActionCreate:
		return "Create"
	case AuditActionUpdate:
		return "Update"
	case AuditActionDelete:
		return "Delete"
	}
	return fmt.Sprintf("AuditAction(%d)", int16(a))
}

// HistoryKey is the audit envelope shared by every history primary key.
type HistoryKey struct {
	AuditClusterID keys.HashKey `json:"auditClusterId"`
	AuditStamp     time.Time    `json:"auditStamp"`
	AuditActionID  AuditAction  `json:"auditActionId"`
	AuditSessionID keys.HashKey `json:"auditSessionId"`
	Revision       int32        `json:"revision"`
}

// compare orders by revision first, then the rest of the envelope.
func (k HistoryKey) compare(o HistoryKey) int {
	if c := cmp.Compare(k.Revision, o.Revision); c != 0 {
		return c
	}
	if c := k.AuditClusterID.Compare(o.AuditClusterID); c != 0 {
		return c
	}
	if c := k.AuditStamp.Compare(o.AuditStamp); c != 0 {
		return c
	}
	if c := cmp.Compare(k.AuditActionID, o.AuditActionID); c != 0 {
		return c
	}
	return k.AuditSessionID.Compare(o.AuditSessionID)
}

func (k HistoryKey) hash(h *hasher) {
	h.int32(k.Revision)
	h.key(k.AuditClusterID)
	h.time(k.AuditStamp)
	h.short(int16(k.AuditActionID))
	h.key(k.AuditSessionID)
}

func (k HistoryKey) fragment(f *fragment) {
	f.key("AuditClusterId", k.AuditClusterID)
	f.time("AuditStamp", k.AuditStamp)
	f.short("AuditActionId", int16(k.AuditActionID))
	f.key("AuditSessionId", k.AuditSessionID)
}

func (k HistoryKey) storeKey(b *keyBuilder) {
	b.int32(k.Revision)
	b.key(k.AuditClusterID)
	b.time(k.AuditStamp)
	b.short(int16(k.AuditActionID))
	b.key(k.AuditSessionID)
}

// Historical is the audit envelope view of a history record.
type Historical interface {
	AuditClusterID() keys.HashKey
	AuditStamp() time.Time
	AuditActionID() AuditAction
	AuditSessionID() keys.HashKey
}

// envelope holds the history-only fields of a history buffer; the revision
// stays with the embedded live buffer.
type envelope struct {
	auditClusterID keys.HashKey
	auditStamp     time.Time
	auditActionID  AuditAction
	auditSessionID keys.HashKey
}

func (e *envelope) AuditClusterID() keys.HashKey { return e.auditClusterID }
func (e *envelope) AuditStamp() time.Time        { return e.auditStamp }
func (e *envelope) AuditActionID() AuditAction   { return e.auditActionID }
func (e *envelope) AuditSessionID() keys.HashKey { return e.auditSessionID }

func (e *envelope) historyKey(revision int32) HistoryKey {
	return HistoryKey{
		AuditClusterID: e.auditClusterID,
		AuditStamp:     e.auditStamp,
		AuditActionID:  e.auditActionID,
		AuditSessionID: e.auditSessionID,
		Revision:       revision,
	}
}

func (e *envelope) setHistoryKey(k HistoryKey) {
	e.auditClusterID = k.AuditClusterID
	e.auditStamp = k.AuditStamp
	e.auditActionID = k.AuditActionID
	e.auditSessionID = k.AuditSessionID
}
