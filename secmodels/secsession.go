/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"context"
	"encoding/json"
	"time"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// SecSession is the read view of a login session.
type SecSession interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	SecUserID() keys.HashKey
	SecDevName() *string
	Start() time.Time
	Finish() *time.Time
	SecProxyID() keys.HashKey
}

const SecSessionSecDevNameMaxLen = 127

// SecSessionBuff holds one session row. Finish stays nil while the
// session is open.
type SecSessionBuff struct {
	audit
	id         keys.HashKey
	secUserID  keys.HashKey
	secDevName *string
	start      time.Time
	finish     *time.Time
	secProxyID keys.HashKey
}

func (b *SecSessionBuff) ClassCode() ClassCode {
	return ClassCodeSecSession
}

func (b *SecSessionBuff) ID() keys.HashKey {
	return b.id
}

func (b *SecSessionBuff) SecUserID() keys.HashKey {
	return b.secUserID
}

func (b *SecSessionBuff) SecDevName() *string {
	return cloneString(b.secDevName)
}

func (b *SecSessionBuff) Start() time.Time {
	return b.start
}

func (b *SecSessionBuff) Finish() *time.Time {
	return cloneTime(b.finish)
}

func (b *SecSessionBuff) SecProxyID() keys.HashKey {
	return b.secProxyID
}

func (b *SecSessionBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("SecSessionBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *SecSessionBuff) SetSecUserID(v keys.HashKey) error {
	if err := checkRequiredKey("SecSessionBuff", "SetSecUserID", "SecUserID", v); err != nil {
		return err
	}
	b.secUserID = v
	return nil
}

func (b *SecSessionBuff) SetSecDevName(v *string) error {
	if err := checkOptionalString("SecSessionBuff", "SetSecDevName", "SecDevName", v, SecSessionSecDevNameMaxLen); err != nil {
		return err
	}
	b.secDevName = cloneString(v)
	return nil
}

func (b *SecSessionBuff) SetStart(v time.Time) error {
	if err := checkRequiredTime("SecSessionBuff", "SetStart", "Start", v); err != nil {
		return err
	}
	b.start = v
	return nil
}

func (b *SecSessionBuff) SetFinish(v *time.Time) {
	b.finish = cloneTime(v)
}

func (b *SecSessionBuff) SetSecProxyID(v keys.HashKey) {
	b.secProxyID = v
}

func (b *SecSessionBuff) PKeyValue() any {
	return b.id
}

func (b *SecSessionBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("SecSessionBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *SecSessionBuff) Set(src SecSession) error {
	if src == nil {
		return errors.NewNullArgumentError("SecSessionBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeSecSession {
		return errors.NewUnsupportedClassError("SecSessionBuff", "Set", 1, "src", src, "SecSession")
	}
	var tmp SecSessionBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetSecUserID(src.SecUserID()); err != nil {
		return err
	}
	if err := tmp.SetSecDevName(src.SecDevName()); err != nil {
		return err
	}
	if err := tmp.SetStart(src.Start()); err != nil {
		return err
	}
	tmp.SetFinish(src.Finish())
	tmp.SetSecProxyID(src.SecProxyID())
	*b = tmp
	return nil
}

func (b *SecSessionBuff) Clone() *SecSessionBuff {
	c := *b
	c.secDevName = cloneString(b.secDevName)
	c.finish = cloneTime(b.finish)
	return &c
}

func (b *SecSessionBuff) StoreKey() string {
	return SecSessionStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *SecSessionBuff) IndexValues() map[string]string {
	return map[string]string{
		SecSessionSecUserIdx:  secSessionBySecUserIdx(b).IndexValue(),
		SecSessionSecDevIdx:   secSessionBySecDevIdx(b).IndexValue(),
		SecSessionStartIdx:    secSessionByStartIdx(b).IndexValue(),
		SecSessionFinishIdx:   secSessionByFinishIdx(b).IndexValue(),
		SecSessionSecProxyIdx: secSessionBySecProxyIdx(b).IndexValue(),
	}
}

func (b *SecSessionBuff) Equals(other any) bool {
	return secSessionProtocol.recordEquals(b, other)
}

func (b *SecSessionBuff) Compare(other any) (int, error) {
	return secSessionProtocol.recordCompare(b, other)
}

func (b *SecSessionBuff) HashCode() int {
	return hashSecSession(b)
}

func (b *SecSessionBuff) XMLAttrFragment() string {
	var f fragment
	fragmentSecSession(&f, b)
	return f.String()
}

type secSessionJSON struct {
	auditJSON
	ID         keys.HashKey `json:"id"`
	SecUserID  keys.HashKey `json:"secUserId"`
	SecDevName *string      `json:"secDevName"`
	Start      time.Time    `json:"start"`
	Finish     *time.Time   `json:"finish"`
	SecProxyID keys.HashKey `json:"secProxyId"`
}

func (b *SecSessionBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(secSessionJSON{
		auditJSON:  b.toJSON(),
		ID:         b.id,
		SecUserID:  b.secUserID,
		SecDevName: b.secDevName,
		Start:      b.start,
		Finish:     b.finish,
		SecProxyID: b.secProxyID,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *SecSessionBuff) UnmarshalJSON(data []byte) error {
	var j secSessionJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := SecSessionBuff{
		id:         j.ID,
		secUserID:  j.SecUserID,
		secDevName: j.SecDevName,
		start:      j.Start,
		finish:     j.Finish,
		secProxyID: j.SecProxyID,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerSecUser reads the user that owns this session.
func (b *SecSessionBuff) RequiredContainerSecUser(ctx context.Context, s Schema) (*SecUserBuff, error) {
	tbl, err := SecUserTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.secUserID)
}

// OptionalParentSecProxy reads the proxy user, or nil when there is none.
func (b *SecSessionBuff) OptionalParentSecProxy(ctx context.Context, s Schema) (*SecUserBuff, error) {
	if b.secProxyID.IsNull() {
		return nil, nil
	}
	tbl, err := SecUserTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.secProxyID)
}

// OptionalLookupSecDev reads the device the session was opened from.
func (b *SecSessionBuff) OptionalLookupSecDev(ctx context.Context, s Schema) (*SecDeviceBuff, error) {
	if b.secDevName == nil {
		return nil, nil
	}
	tbl, err := SecDeviceTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.secUserID, *b.secDevName)
}

// SecSessionFactory constructs session buffers and keys.
type SecSessionFactory struct{}

func (SecSessionFactory) NewRec() *SecSessionBuff {
	return new(SecSessionBuff)
}

func (SecSessionFactory) NewHRec() *SecSessionHBuff {
	return new(SecSessionHBuff)
}

func (SecSessionFactory) NewHPKey() SecSessionHPKey {
	return SecSessionHPKey{}
}

func (SecSessionFactory) NewBySecUserIdxKey() SecSessionBySecUserIdxKey {
	return SecSessionBySecUserIdxKey{}
}

func (SecSessionFactory) NewBySecDevIdxKey() SecSessionBySecDevIdxKey {
	return SecSessionBySecDevIdxKey{}
}

func (SecSessionFactory) NewByStartIdxKey() SecSessionByStartIdxKey {
	return SecSessionByStartIdxKey{}
}

func (SecSessionFactory) NewByFinishIdxKey() SecSessionByFinishIdxKey {
	return SecSessionByFinishIdxKey{}
}

func (SecSessionFactory) NewBySecProxyIdxKey() SecSessionBySecProxyIdxKey {
	return SecSessionBySecProxyIdxKey{}
}

// EnsureRec returns r itself when it is already a *SecSessionBuff, otherwise a
// validated copy. A nil r yields nil.
func (SecSessionFactory) EnsureRec(r SecSession) (*SecSessionBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*SecSessionBuff); ok {
		return b, nil
	}
	b := new(SecSessionBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (SecSessionFactory) EnsureHRec(r SecSessionH) (*SecSessionHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*SecSessionHBuff); ok {
		return h, nil
	}
	h := new(SecSessionHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
