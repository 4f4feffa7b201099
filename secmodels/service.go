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

// Service is the read view of a network service endpoint.
type Service interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	ClusterID() keys.HashKey
	ServiceTypeID() keys.HashKey
	HostName() string
	HostPort() int16
}

const (
	ServiceHostNameMaxLen   = 192
	ServiceHostPortMinValue = 0
	ServiceHostPortMaxValue = 32767
)

// ServiceBuff holds one service row.
type ServiceBuff struct {
	audit
	id            keys.HashKey
	clusterID     keys.HashKey
	serviceTypeID keys.HashKey
	hostName      string
	hostPort      int16
}

func (b *ServiceBuff) ClassCode() ClassCode {
	return ClassCodeService
}

func (b *ServiceBuff) ID() keys.HashKey {
	return b.id
}

func (b *ServiceBuff) ClusterID() keys.HashKey {
	return b.clusterID
}

func (b *ServiceBuff) ServiceTypeID() keys.HashKey {
	return b.serviceTypeID
}

func (b *ServiceBuff) HostName() string {
	return b.hostName
}

func (b *ServiceBuff) HostPort() int16 {
	return b.hostPort
}

func (b *ServiceBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("ServiceBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *ServiceBuff) SetClusterID(v keys.HashKey) error {
	if err := checkRequiredKey("ServiceBuff", "SetClusterID", "ClusterID", v); err != nil {
		return err
	}
	b.clusterID = v
	return nil
}

func (b *ServiceBuff) SetServiceTypeID(v keys.HashKey) error {
	if err := checkRequiredKey("ServiceBuff", "SetServiceTypeID", "ServiceTypeID", v); err != nil {
		return err
	}
	b.serviceTypeID = v
	return nil
}

func (b *ServiceBuff) SetHostName(v string) error {
	if err := checkRequiredString("ServiceBuff", "SetHostName", "HostName", v, ServiceHostNameMaxLen); err != nil {
		return err
	}
	b.hostName = v
	return nil
}

func (b *ServiceBuff) SetHostPort(v int16) error {
	if err := checkShortRange("ServiceBuff", "SetHostPort", "HostPort", v, ServiceHostPortMinValue, ServiceHostPortMaxValue); err != nil {
		return err
	}
	b.hostPort = v
	return nil
}

func (b *ServiceBuff) PKeyValue() any {
	return b.id
}

func (b *ServiceBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("ServiceBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies src into b after validating it.
func (b *ServiceBuff) Set(src Service) error {
	if src == nil {
		return errors.NewNullArgumentError("ServiceBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeService {
		return errors.NewUnsupportedClassError("ServiceBuff", "Set", 1, "src", src, "Service")
	}
	var tmp ServiceBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetClusterID(src.ClusterID()); err != nil {
		return err
	}
	if err := tmp.SetServiceTypeID(src.ServiceTypeID()); err != nil {
		return err
	}
	if err := tmp.SetHostName(src.HostName()); err != nil {
		return err
	}
	if err := tmp.SetHostPort(src.HostPort()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ServiceBuff) Clone() *ServiceBuff {
	c := *b
	return &c
}

func (b *ServiceBuff) StoreKey() string {
	return ServiceStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ServiceBuff) IndexValues() map[string]string {
	return map[string]string{
		ServiceClusterIdx:   serviceByClusterIdx(b).IndexValue(),
		ServiceTypeIdx:      serviceByTypeIdx(b).IndexValue(),
		ServiceUHostTypeIdx: serviceByUHostTypeIdx(b).IndexValue(),
	}
}

func (b *ServiceBuff) Equals(other any) bool {
	return serviceProtocol.recordEquals(b, other)
}

func (b *ServiceBuff) Compare(other any) (int, error) {
	return serviceProtocol.recordCompare(b, other)
}

func (b *ServiceBuff) HashCode() int {
	return hashService(b)
}

func (b *ServiceBuff) XMLAttrFragment() string {
	var f fragment
	fragmentService(&f, b)
	return f.String()
}

type serviceJSON struct {
	auditJSON
	ID            keys.HashKey `json:"id"`
	ClusterID     keys.HashKey `json:"clusterId"`
	ServiceTypeID keys.HashKey `json:"serviceTypeId"`
	HostName      string       `json:"hostName"`
	HostPort      int16        `json:"hostPort"`
}

func (b *ServiceBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(serviceJSON{
		auditJSON:     b.toJSON(),
		ID:            b.id,
		ClusterID:     b.clusterID,
		ServiceTypeID: b.serviceTypeID,
		HostName:      b.hostName,
		HostPort:      b.hostPort,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ServiceBuff) UnmarshalJSON(data []byte) error {
	var j serviceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ServiceBuff{
		id:            j.ID,
		clusterID:     j.ClusterID,
		serviceTypeID: j.ServiceTypeID,
		hostName:      j.HostName,
		hostPort:      j.HostPort,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// RequiredContainerCluster reads the cluster hosting this service.
func (b *ServiceBuff) RequiredContainerCluster(ctx context.Context, s Schema) (*ClusterBuff, error) {
	tbl, err := ClusterTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.clusterID)
}

// RequiredParentServiceType reads the service's type.
func (b *ServiceBuff) RequiredParentServiceType(ctx context.Context, s Schema) (*ServiceTypeBuff, error) {
	tbl, err := ServiceTypeTableOf(s)
	if err != nil {
		return nil, err
	}
	return tbl.ReadDerived(ctx, b.serviceTypeID)
}

// ServiceFactory constructs service buffers and keys.
type ServiceFactory struct{}

func (ServiceFactory) NewRec() *ServiceBuff {
	return new(ServiceBuff)
}

func (ServiceFactory) NewHRec() *ServiceHBuff {
	return new(ServiceHBuff)
}

func (ServiceFactory) NewHPKey() ServiceHPKey {
	return ServiceHPKey{}
}

func (ServiceFactory) NewByClusterIdxKey() ServiceByClusterIdxKey {
	return ServiceByClusterIdxKey{}
}

func (ServiceFactory) NewByTypeIdxKey() ServiceByTypeIdxKey {
	return ServiceByTypeIdxKey{}
}

func (ServiceFactory) NewByUHostTypeIdxKey() ServiceByUHostTypeIdxKey {
	return ServiceByUHostTypeIdxKey{}
}

// EnsureRec returns r itself when it is already a *ServiceBuff, otherwise a
// validated copy. A nil r yields nil.
func (ServiceFactory) EnsureRec(r Service) (*ServiceBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ServiceBuff); ok {
		return b, nil
	}
	b := new(ServiceBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ServiceFactory) EnsureHRec(r ServiceH) (*ServiceHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ServiceHBuff); ok {
		return h, nil
	}
	h := new(ServiceHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
