/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"time"

	"github.com/suparena/secschema/keys"
)

// Record is the kind-independent surface every buffer exposes. Code that only
// holds a class code (the registry, generic loaders) works through it.
type Record interface {
	ClassCode() ClassCode
	Revision() int32
	// PKeyValue returns the primary key in its native form: keys.HashKey,
	// int16 or the kind's composite key struct.
	PKeyValue() any
	// SetPKeyValue installs a primary key; values of any other concrete
	// type fail with an unsupported-class error.
	SetPKeyValue(v any) error
	StoreKey() string
	Equals(other any) bool
	Compare(other any) (int, error)
	HashCode() int
	XMLAttrFragment() string
}

// Audited is the audit stamp carried by every live buffer.
type Audited interface {
	CreatedByUserID() keys.HashKey
	CreatedAt() time.Time
	UpdatedByUserID() keys.HashKey
	UpdatedAt() time.Time
	Revision() int32
}

type audit struct {
	createdBy keys.HashKey
	createdAt time.Time
	updatedBy keys.HashKey
	updatedAt time.Time
	revision  int32
}

func (a *audit) CreatedByUserID() keys.HashKey { return a.createdBy }
func (a *audit) CreatedAt() time.Time          { return a.createdAt }
func (a *audit) UpdatedByUserID() keys.HashKey { return a.updatedBy }
func (a *audit) UpdatedAt() time.Time          { return a.updatedAt }
func (a *audit) Revision() int32               { return a.revision }

func (a *audit) SetCreatedByUserID(v keys.HashKey) { a.createdBy = v }
func (a *audit) SetCreatedAt(v time.Time)          { a.createdAt = v }
func (a *audit) SetUpdatedByUserID(v keys.HashKey) { a.updatedBy = v }
func (a *audit) SetUpdatedAt(v time.Time)          { a.updatedAt = v }
func (a *audit) SetRevision(v int32)               { a.revision = v }

func (a *audit) copyAudit(src Audited) {
	a.createdBy = src.CreatedByUserID()
	a.createdAt = src.CreatedAt()
	a.updatedBy = src.UpdatedByUserID()
	a.updatedAt = src.UpdatedAt()
	a.revision = src.Revision()
}

// compareAudit orders the creation and update stamps. Revision is not part of
// record identity.
func compareAudit(a, b Audited) int {
	if c := a.CreatedByUserID().Compare(b.CreatedByUserID()); c != 0 {
		return c
	}
	if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
		return c
	}
	if c := a.UpdatedByUserID().Compare(b.UpdatedByUserID()); c != 0 {
		return c
	}
	return a.UpdatedAt().Compare(b.UpdatedAt())
}

type auditJSON struct {
	CreatedBy keys.HashKey `json:"createdBy"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedBy keys.HashKey `json:"updatedBy"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Revision  int32        `json:"revision"`
}

func (a *audit) toJSON() auditJSON {
	return auditJSON{
		CreatedBy: a.createdBy,
		CreatedAt: a.createdAt,
		UpdatedBy: a.updatedBy,
		UpdatedAt: a.updatedAt,
		Revision:  a.revision,
	}
}

func (a *audit) fromJSON(j auditJSON) {
	a.createdBy = j.CreatedBy
	a.createdAt = j.CreatedAt
	a.updatedBy = j.UpdatedBy
	a.updatedAt = j.UpdatedAt
	a.revision = j.Revision
}
