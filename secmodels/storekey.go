/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
)

const (
	keySep    = '|'
	keyEscape = '\\'
	// keyNull marks an unset optional component. A literal NUL in a string
	// component is escaped so the two never collide.
	keyNull = "\\0"
)

// keyBuilder joins typed components into the canonical strings datastores use
// for primary and index keys. Components are escaped so distinct tuples never
// produce the same string.
type keyBuilder struct {
	b strings.Builder
	n int
}

func (kb *keyBuilder) raw(s string) {
	if kb.n > 0 {
		kb.b.WriteByte(keySep)
	}
	kb.n++
	kb.b.WriteString(s)
}

func (kb *keyBuilder) str(s string) {
	var e strings.Builder
	for _, r := range s {
		switch r {
		case keySep, keyEscape:
			e.WriteRune(keyEscape)
			e.WriteRune(r)
		case 0:
			e.WriteString("\\x00")
		default:
			e.WriteRune(r)
		}
	}
	kb.raw(e.String())
}

func (kb *keyBuilder) optStr(s *string) {
	if s == nil {
		kb.raw(keyNull)
		return
	}
	kb.str(*s)
}

func (kb *keyBuilder) key(k keys.HashKey) {
	kb.raw(k.String())
}

func (kb *keyBuilder) short(v int16) {
	kb.raw(strconv.FormatInt(int64(v), 10))
}

func (kb *keyBuilder) int32(v int32) {
	kb.raw(strconv.FormatInt(int64(v), 10))
}

func (kb *keyBuilder) bool(v bool) {
	kb.raw(strconv.FormatBool(v))
}

func (kb *keyBuilder) time(t time.Time) {
	kb.raw(t.UTC().Format(time.RFC3339Nano))
}

func (kb *keyBuilder) optTime(t *time.Time) {
	if t == nil {
		kb.raw(keyNull)
		return
	}
	kb.time(*t)
}

func (kb *keyBuilder) uuid(u uuid.NullUUID) {
	if !u.Valid {
		kb.raw(keyNull)
		return
	}
	kb.raw(u.UUID.String())
}

func (kb *keyBuilder) String() string {
	return kb.b.String()
}
