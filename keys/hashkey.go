/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package keys holds the opaque identifier types shared by every entity kind.
package keys

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/suparena/secschema/errors"
)

// HashKeySize is the width of a HashKey in bytes.
const HashKeySize = sha256.Size

// HashKey is a 256-bit identifier. The zero value is the null key; there is no
// other "unset" representation.
type HashKey [HashKeySize]byte

// NullHashKey is the null sentinel.
var NullHashKey HashKey

// NewHashKey returns a fresh random key.
func NewHashKey() HashKey {
	id := uuid.New()
	return HashKeyOf(id[:])
}

// HashKeyOf returns the SHA-256 digest of data as a key.
func HashKeyOf(data []byte) HashKey {
	return HashKey(sha256.Sum256(data))
}

// ParseHashKey decodes the hex form produced by String. The empty string
// decodes to the null key.
func ParseHashKey(s string) (HashKey, error) {
	var k HashKey
	if s == "" {
		return k, nil
	}
	if len(s) != hex.EncodedLen(HashKeySize) {
		return k, errors.NewValidationError("HashKey", fmt.Sprintf("expected %d hex characters, got %d", hex.EncodedLen(HashKeySize), len(s)))
	}
	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return NullHashKey, errors.NewValidationError("HashKey", err.Error())
	}
	return k, nil
}

// MustParseHashKey is ParseHashKey for constants; it panics on bad input.
func MustParseHashKey(s string) HashKey {
	k, err := ParseHashKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// IsNull reports whether k is the null key.
func (k HashKey) IsNull() bool {
	return k == NullHashKey
}

// Compare orders keys by their bytes; the null key sorts first.
func (k HashKey) Compare(o HashKey) int {
	return bytes.Compare(k[:], o[:])
}

// String returns the lower-case hex form, or "" for the null key.
func (k HashKey) String() string {
	if k.IsNull() {
		return ""
	}
	return hex.EncodeToString(k[:])
}

// HashCode folds the key into 32 bits.
func (k HashKey) HashCode() int32 {
	var h uint32
	for i := 0; i < HashKeySize; i += 4 {
		h ^= binary.BigEndian.Uint32(k[i : i+4])
	}
	return int32(h)
}

// MarshalText implements encoding.TextMarshaler.
func (k HashKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *HashKey) UnmarshalText(text []byte) error {
	parsed, err := ParseHashKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
