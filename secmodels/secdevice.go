/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecDevice is the read view of a registered device. Its identity is the
// owning user plus a device name.
type SecDevice interface {
	Audited
	ClassCode() ClassCode
	PKey() SecDevicePKey
	SecUserID() keys.HashKey
	DevName() string
	PubKey() *string
}

const (
	SecDeviceDevNameMaxLen = 127
	SecDevicePubKeyMaxLen  = 10000
)

// SecDeviceBuff holds one device row. Key field setters write through to
// the owned primary key.
type SecDeviceBuff struct {
	audit
	pkey   SecDevicePKey
	pubKey *string
}

func (b *SecDeviceBuff) ClassCode() ClassCode {
	return ClassCodeSecDevice
}

func (b *SecDeviceBuff) SecUserID() keys.HashKey {
	return b.pkey.SecUserID
}

func (b *SecDeviceBuff) DevName() string {
	return b.pkey.DevName
}

func (b *SecDeviceBuff) PubKey() *string {
	return cloneString(b.pubKey)
}

func (b *SecDeviceBuff) SetSecUserID(v keys.HashKey) error {
	if err := checkRequiredKey("SecDeviceBuff", "SetSecUserID", "SecUserID", v); err != nil {
		return err
	}
	b.pkey.SecUserID = v
	return nil
}

func (b *SecDeviceBuff) SetDevName(v string) error {
	if err := checkRequiredString("SecDeviceBuff", "SetDevName", "DevName", v, SecDeviceDevNameMaxLen); err != nil {
		return err
	}
	b.pkey.DevName = v
	return nil
}

func (b *SecDeviceBuff) SetPubKey(v *string) error {
	if err := checkOptionalString("SecDeviceBuff", "SetPubKey", "PubKey", v, SecDevicePubKeyMaxLen); err != nil {
		return err
	}
	b.pubKey = cloneString(v)
	return nil
}

func (b *SecDeviceBuff) PKey() SecDevicePKey {
	return b.pkey
}

// SetPKey replaces the whole primary key.
func (b *SecDeviceBuff) SetPKey(k SecDevicePKey) error {
	if err := k.validate("SecDeviceBuff", "SetPKey"); err != nil {
		return err
	}
	b.pkey = k
	return nil
}

func (b *SecDeviceBuff) PKeyValue() any {
	return b.pkey
}

func (b *SecDeviceBuff) SetPKeyValue(v any) error {
	k, ok := v.(SecDevicePKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecDeviceBuff", "SetPKeyValue", 1, "v", v, "SecDevicePKey")
	}
	return b.SetPKey(k)
}

// Set copies src into b after validating it.
func (b *SecDeviceBuff) Set(src SecDevice) error {
	if src == nil {
		return errors.NewNullArgumentError("SecDeviceBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeSecDevice {
		return errors.NewUnsupportedClassError("SecDeviceBuff", "Set", 1, "src", src, "SecDevice")
	}
	var tmp SecDeviceBuff
	tmp.copyAudit(src)
	if err := tmp.SetPKey(src.PKey()); err != nil {
		return err
	}
	if err := tmp.SetPubKey(src.PubKey()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *SecDeviceBuff) Clone() *SecDeviceBuff {
	c := *b
	c.pubKey = cloneString(b.pubKey)
	return &c
}

func (b *SecDeviceBuff) StoreKey() string {
	return b.pkey.StoreKey()
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *SecDeviceBuff) IndexValues() map[string]string {
	return map[string]string{
		SecDeviceUserIdx: secDeviceByUserIdx(b).IndexValue(),
	}
}

func (b *SecDeviceBuff) Equals(other any) bool {
	return secDeviceProtocol.recordEquals(b, other)
}

func (b *SecDeviceBuff) Compare(other any) (int, error) {
	return secDeviceProtocol.recordCompare(b, other)
}

func (b *SecDeviceBuff) HashCode() int {
	return hashSecDevice(b)
}

func (b *SecDeviceBuff) XMLAttrFragment() string {
	var f fragment
	fragmentSecDevice(&f, b)
	return f.String()
}

type secDeviceJSON struct {
	auditJSON
	PKey   SecDevicePKey `json:"pkey"`
	PubKey *string       `json:"pubKey"`
}

func (b *SecDeviceBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secDeviceJSON{
		auditJSON: b.toJSON(),
		PKey:      b.pkey,
		PubKey:    b.pubKey,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *SecDeviceBuff) UnmarshalJSON(data []byte) error {
	var j secDeviceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := SecDeviceBuff{
		pkey:   j.PKey,
		pubKey: j.PubKey,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerSecUser reads the user this device belongs to.
func (b *SecDeviceBuff) RequiredContainerSecUser(ctx context.Context, s Schema) (*SecUserBuff, error) {
	tbl, err := SecUserTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.pkey.SecUserID)
}

// SecDeviceFactory constructs device buffers and keys.
type SecDeviceFactory struct{}

func (SecDeviceFactory) NewRec() *SecDeviceBuff {
	return new(SecDeviceBuff)
}

func (SecDeviceFactory) NewHRec() *SecDeviceHBuff {
	return new(SecDeviceHBuff)
}

func (SecDeviceFactory) NewPKey() SecDevicePKey {
	return SecDevicePKey{}
}

func (SecDeviceFactory) NewHPKey() SecDeviceHPKey {
	return SecDeviceHPKey{}
}

func (SecDeviceFactory) NewByUserIdxKey() SecDeviceByUserIdxKey {
	return SecDeviceByUserIdxKey{}
}

// EnsureRec returns r itself when it is already a *SecDeviceBuff, otherwise a
// validated copy. A nil r yields nil.
func (SecDeviceFactory) EnsureRec(r SecDevice) (*SecDeviceBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*SecDeviceBuff); ok {
		return b, nil
	}
	b := new(SecDeviceBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (SecDeviceFactory) EnsureHRec(r SecDeviceH) (*SecDeviceHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*SecDeviceHBuff); ok {
		return h, nil
	}
	h := new(SecDeviceHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
