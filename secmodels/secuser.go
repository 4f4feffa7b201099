/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecUser is the read view of a security principal. The optional UUID
// fields hold outstanding confirmation and reset tokens.
type SecUser interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	LoginID() string
	EMailAddress() string
	EMailConfirmUUID() uuid.NullUUID
	DfltDevUserID() keys.HashKey
	DfltDevName() *string
	PasswordHash() string
	PasswordResetUUID() uuid.NullUUID
}

const (
	SecUserLoginIDMaxLen      = 32
	SecUserEMailAddressMaxLen = 512
	SecUserDfltDevNameMaxLen  = 127
	SecUserPasswordHashMaxLen = 256
)

// SecUserBuff holds one user row.
type SecUserBuff struct {
	audit
	id                keys.HashKey
	loginID           string
	emailAddress      string
	emailConfirmUUID  uuid.NullUUID
	dfltDevUserID     keys.HashKey
	dfltDevName       *string
	passwordHash      string
	passwordResetUUID uuid.NullUUID
}

func (b *SecUserBuff) ClassCode() ClassCode {
	return ClassCodeSecUser
}

func (b *SecUserBuff) ID() keys.HashKey {
	return b.id
}

func (b *SecUserBuff) LoginID() string {
	return b.loginID
}

func (b *SecUserBuff) EMailAddress() string {
	return b.emailAddress
}

func (b *SecUserBuff) EMailConfirmUUID() uuid.NullUUID {
	return b.emailConfirmUUID
}

func (b *SecUserBuff) DfltDevUserID() keys.HashKey {
	return b.dfltDevUserID
}

func (b *SecUserBuff) DfltDevName() *string {
	return cloneString(b.dfltDevName)
}

func (b *SecUserBuff) PasswordHash() string {
	return b.passwordHash
}

func (b *SecUserBuff) PasswordResetUUID() uuid.NullUUID {
	return b.passwordResetUUID
}

func (b *SecUserBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("SecUserBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *SecUserBuff) SetLoginID(v string) error {
	if err := checkRequiredString("SecUserBuff", "SetLoginID", "LoginID", v, SecUserLoginIDMaxLen); err != nil {
		return err
	}
	b.loginID = v
	return nil
}

func (b *SecUserBuff) SetEMailAddress(v string) error {
	if err := checkRequiredString("SecUserBuff", "SetEMailAddress", "EMailAddress", v, SecUserEMailAddressMaxLen); err != nil {
		return err
	}
	b.emailAddress = v
	return nil
}

func (b *SecUserBuff) SetEMailConfirmUUID(v uuid.NullUUID) {
	b.emailConfirmUUID = v
}

func (b *SecUserBuff) SetDfltDevUserID(v keys.HashKey) {
	b.dfltDevUserID = v
}

func (b *SecUserBuff) SetDfltDevName(v *string) error {
	if err := checkOptionalString("SecUserBuff", "SetDfltDevName", "DfltDevName", v, SecUserDfltDevNameMaxLen); err != nil {
		return err
	}
	b.dfltDevName = cloneString(v)
	return nil
}

func (b *SecUserBuff) SetPasswordHash(v string) error {
	if err := checkRequiredString("SecUserBuff", "SetPasswordHash", "PasswordHash", v, SecUserPasswordHashMaxLen); err != nil {
		return err
	}
	b.passwordHash = v
	return nil
}

func (b *SecUserBuff) SetPasswordResetUUID(v uuid.NullUUID) {
	b.passwordResetUUID = v
}

func (b *SecUserBuff) PKeyValue() any {
	return b.id
}

func (b *SecUserBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecUserBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *SecUserBuff) Set(src SecUser) error {
	if src == nil {
		return errors.NewNullArgumentError("SecUserBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeSecUser {
		return errors.NewUnsupportedClassError("SecUserBuff", "Set", 1, "src", src, "SecUser")
	}
	var tmp SecUserBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetLoginID(src.LoginID()); err != nil {
		return err
	}
	if err := tmp.SetEMailAddress(src.EMailAddress()); err != nil {
		return err
	}
	tmp.SetEMailConfirmUUID(src.EMailConfirmUUID())
	tmp.SetDfltDevUserID(src.DfltDevUserID())
	if err := tmp.SetDfltDevName(src.DfltDevName()); err != nil {
		return err
	}
	if err := tmp.SetPasswordHash(src.PasswordHash()); err != nil {
		return err
	}
	tmp.SetPasswordResetUUID(src.PasswordResetUUID())
	*b = tmp
	return nil
}

func (b *SecUserBuff) Clone() *SecUserBuff {
	c := *b
	c.dfltDevName = cloneString(b.dfltDevName)
	return &c
}

func (b *SecUserBuff) StoreKey() string {
	return SecUserStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *SecUserBuff) IndexValues() map[string]string {
	return map[string]string{
		SecUserULoginIdx:   secUserByULoginIdx(b).IndexValue(),
		SecUserEMConfIdx:   secUserByEMConfIdx(b).IndexValue(),
		SecUserPwdResetIdx: secUserByPwdResetIdx(b).IndexValue(),
		SecUserDefDevIdx:   secUserByDefDevIdx(b).IndexValue(),
	}
}

func (b *SecUserBuff) Equals(other any) bool {
	return secUserProtocol.recordEquals(b, other)
}

func (b *SecUserBuff) Compare(other any) (int, error) {
	return secUserProtocol.recordCompare(b, other)
}

func (b *SecUserBuff) HashCode() int {
	return hashSecUser(b)
}

func (b *SecUserBuff) XMLAttrFragment() string {
	var f fragment
	fragmentSecUser(&f, b)
	return f.String()
}

type secUserJSON struct {
	auditJSON
	ID                keys.HashKey  `json:"id"`
	LoginID           string        `json:"loginId"`
	EMailAddress      string        `json:"emailAddress"`
	EMailConfirmUUID  uuid.NullUUID `json:"emailConfirmUUId"`
	DfltDevUserID     keys.HashKey  `json:"dfltDevUserId"`
	DfltDevName       *string       `json:"dfltDevName"`
	PasswordHash      string        `json:"passwordHash"`
	PasswordResetUUID uuid.NullUUID `json:"passwordResetUUId"`
}

func (b *SecUserBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secUserJSON{
		auditJSON:         b.toJSON(),
		ID:                b.id,
		LoginID:           b.loginID,
		EMailAddress:      b.emailAddress,
		EMailConfirmUUID:  b.emailConfirmUUID,
		DfltDevUserID:     b.dfltDevUserID,
		DfltDevName:       b.dfltDevName,
		PasswordHash:      b.passwordHash,
		PasswordResetUUID: b.passwordResetUUID,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *SecUserBuff) UnmarshalJSON(data []byte) error {
	var j secUserJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := SecUserBuff{
		id:                j.ID,
		loginID:           j.LoginID,
		emailAddress:      j.EMailAddress,
		emailConfirmUUID:  j.EMailConfirmUUID,
		dfltDevUserID:     j.DfltDevUserID,
		dfltDevName:       j.DfltDevName,
		passwordHash:      j.PasswordHash,
		passwordResetUUID: j.PasswordResetUUID,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// OptionalLookupDefDev reads the user's default device. It returns nil
// without consulting s when no default device is set.
func (b *SecUserBuff) OptionalLookupDefDev(ctx context.Context, s Schema) (*SecDeviceBuff, error) {
	if b.dfltDevUserID.IsNull() || b.dfltDevName == nil {
		return nil, nil
	}
	tbl, err := SecDeviceTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.dfltDevUserID, *b.dfltDevName)
}

// SecUserFactory constructs user buffers and keys.
type SecUserFactory struct{}

func (SecUserFactory) NewRec() *SecUserBuff {
	return new(SecUserBuff)
}

func (SecUserFactory) NewHRec() *SecUserHBuff {
	return new(SecUserHBuff)
}

func (SecUserFactory) NewHPKey() SecUserHPKey {
	return SecUserHPKey{}
}

func (SecUserFactory) NewByULoginIdxKey() SecUserByULoginIdxKey {
	return SecUserByULoginIdxKey{}
}

func (SecUserFactory) NewByEMConfIdxKey() SecUserByEMConfIdxKey {
	return SecUserByEMConfIdxKey{}
}

func (SecUserFactory) NewByPwdResetIdxKey() SecUserByPwdResetIdxKey {
	return SecUserByPwdResetIdxKey{}
}

func (SecUserFactory) NewByDefDevIdxKey() SecUserByDefDevIdxKey {
	return SecUserByDefDevIdxKey{}
}

// EnsureRec returns r itself when it is already a *SecUserBuff, otherwise a
// validated copy. A nil r yields nil.
func (SecUserFactory) EnsureRec(r SecUser) (*SecUserBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*SecUserBuff); ok {
		return b, nil
	}
	b := new(SecUserBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (SecUserFactory) EnsureHRec(r SecUserH) (*SecUserHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*SecUserHBuff); ok {
		return h, nil
	}
	h := new(SecUserHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
