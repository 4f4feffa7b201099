/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"bytes"
	"cmp"
	"time"

	"github.com/google/uuid"
)

// Optional values order null before set; two nulls are equal.

func compareOptString(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

func compareOptTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func compareUUID(a, b uuid.NullUUID) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}
	return bytes.Compare(a.UUID[:], b.UUID[:])
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
