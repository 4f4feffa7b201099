/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// ServiceType is the read view of a service type.
type ServiceType interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	Description() string
}

const ServiceTypeDescriptionMaxLen = 50

// ServiceTypeBuff holds one service type row.
type ServiceTypeBuff struct {
	audit
	id          keys.HashKey
	description string
}

func (b *ServiceTypeBuff) ClassCode() ClassCode {
	return ClassCodeServiceType
}

func (b *ServiceTypeBuff) ID() keys.HashKey {
	return b.id
}

func (b *ServiceTypeBuff) Description() string {
	return b.description
}

func (b *ServiceTypeBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("ServiceTypeBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *ServiceTypeBuff) SetDescription(v string) error {
	if err := checkRequiredString("ServiceTypeBuff", "SetDescription", "Description", v, ServiceTypeDescriptionMaxLen); err != nil {
		return err
	}
	b.description = v
	return nil
}

func (b *ServiceTypeBuff) PKeyValue() any {
	return b.id
}

func (b *ServiceTypeBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("ServiceTypeBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *ServiceTypeBuff) Set(src ServiceType) error {
	if src == nil {
		return errors.NewNullArgumentError("ServiceTypeBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeServiceType {
		return errors.NewUnsupportedClassError("ServiceTypeBuff", "Set", 1, "src", src, "ServiceType")
	}
	var tmp ServiceTypeBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetDescription(src.Description()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ServiceTypeBuff) Clone() *ServiceTypeBuff {
	c := *b
	return &c
}

func (b *ServiceTypeBuff) StoreKey() string {
	return ServiceTypeStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ServiceTypeBuff) IndexValues() map[string]string {
	return map[string]string{
		ServiceTypeUDescrIdx: serviceTypeByUDescrIdx(b).IndexValue(),
	}
}

func (b *ServiceTypeBuff) Equals(other any) bool {
	return serviceTypeProtocol.recordEquals(b, other)
}

func (b *ServiceTypeBuff) Compare(other any) (int, error) {
	return serviceTypeProtocol.recordCompare(b, other)
}

func (b *ServiceTypeBuff) HashCode() int {
	return hashServiceType(b)
}

func (b *ServiceTypeBuff) XMLAttrFragment() string {
	var f fragment
	fragmentServiceType(&f, b)
	return f.String()
}

type serviceTypeJSON struct {
	auditJSON
	ID          keys.HashKey `json:"id"`
	Description string       `json:"description"`
}

func (b *ServiceTypeBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(serviceTypeJSON{
		auditJSON:   b.toJSON(),
		ID:          b.id,
		Description: b.description,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ServiceTypeBuff) UnmarshalJSON(data []byte) error {
	var j serviceTypeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ServiceTypeBuff{
		id:          j.ID,
		description: j.Description,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// ServiceTypeFactory constructs service type buffers and keys.
type ServiceTypeFactory struct{}

func (ServiceTypeFactory) NewRec() *ServiceTypeBuff {
	return new(ServiceTypeBuff)
}

func (ServiceTypeFactory) NewHRec() *ServiceTypeHBuff {
	return new(ServiceTypeHBuff)
}

func (ServiceTypeFactory) NewHPKey() ServiceTypeHPKey {
	return ServiceTypeHPKey{}
}

func (ServiceTypeFactory) NewByUDescrIdxKey() ServiceTypeByUDescrIdxKey {
	return ServiceTypeByUDescrIdxKey{}
}

// EnsureRec returns r itself when it is already a *ServiceTypeBuff, otherwise a
// validated copy. A nil r yields nil.
func (ServiceTypeFactory) EnsureRec(r ServiceType) (*ServiceTypeBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ServiceTypeBuff); ok {
		return b, nil
	}
	b := new(ServiceTypeBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ServiceTypeFactory) EnsureHRec(r ServiceTypeH) (*ServiceTypeHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ServiceTypeHBuff); ok {
		return h, nil
	}
	h := new(ServiceTypeHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
