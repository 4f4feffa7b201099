/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
)

// hasher accumulates an int32 hash with wrapping arithmetic. Numeric key
// fields are mixed in by shifting the running sum so small values do not
// collide trivially.
type hasher struct {
	sum int32
}

func (h *hasher) audit(a Audited) {
	h.key(a.CreatedByUserID())
	h.time(a.CreatedAt())
	h.key(a.UpdatedByUserID())
	h.time(a.UpdatedAt())
}

func (h *hasher) key(k keys.HashKey) {
	h.sum += k.HashCode()
}

func (h *hasher) short(v int16) {
	h.sum = (h.sum << 16) + int32(v)
}

func (h *hasher) int32(v int32) {
	h.sum = (h.sum << 16) + v
}

func (h *hasher) bool(v bool) {
	if v {
		h.sum++
	}
}

func (h *hasher) str(s string) {
	h.sum += int32(xxhash.Sum64String(s))
}

func (h *hasher) optStr(s *string) {
	if s != nil {
		h.str(*s)
	}
}

func (h *hasher) time(t time.Time) {
	if t.IsZero() {
		return
	}
	n := t.UnixNano()
	h.sum += int32(n ^ (n >> 32))
}

func (h *hasher) optTime(t *time.Time) {
	if t != nil {
		h.time(*t)
	}
}

func (h *hasher) uuid(u uuid.NullUUID) {
	if u.Valid {
		h.sum += int32(xxhash.Sum64(u.UUID[:]))
	}
}

func (h *hasher) code() int {
	return int(h.sum & 0x7fffffff)
}
