/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/json"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
)

// Cluster is the read view of a cluster, the top-level tenancy boundary.
// Every other security entity hangs off a cluster directly or through a tenant.
type Cluster interface {
	Audited
	ClassCode() ClassCode
	ID() keys.HashKey
	FullDomName() string
	Description() string
}

const (
	ClusterFullDomNameMaxLen = 192
	ClusterDescriptionMaxLen = 128
)

// ClusterBuff holds one cluster row. The zero value is a blank record with a
// null ID; setters enforce the required fields and length bounds.
type ClusterBuff struct {
	audit
	id          keys.HashKey
	fullDomName string
	description string
}

func (b *ClusterBuff) ClassCode() ClassCode {
	return ClassCodeCluster
}

func (b *ClusterBuff) ID() keys.HashKey {
	return b.id
}

func (b *ClusterBuff) FullDomName() string {
	return b.fullDomName
}

func (b *ClusterBuff) Description() string {
	return b.description
}

func (b *ClusterBuff) SetID(v keys.HashKey) error {
	if err := checkRequiredKey("ClusterBuff", "SetID", "ID", v); err != nil {
		return err
	}
	b.id = v
	return nil
}

func (b *ClusterBuff) SetFullDomName(v string) error {
	if err := checkRequiredString("ClusterBuff", "SetFullDomName", "FullDomName", v, ClusterFullDomNameMaxLen); err != nil {
		return err
	}
	b.fullDomName = v
	return nil
}

func (b *ClusterBuff) SetDescription(v string) error {
	if err := checkRequiredString("ClusterBuff", "SetDescription", "Description", v, ClusterDescriptionMaxLen); err != nil {
		return err
	}
	b.description = v
	return nil
}

func (b *ClusterBuff) PKeyValue() any {
	return b.id
}

func (b *ClusterBuff) SetPKeyValue(v any) error {
	id, ok := v.(keys.HashKey)
	if !ok {
		return errors.NewUnsupportedClassError("ClusterBuff", "SetPKeyValue", 1, "v", v, "keys.HashKey")
	}
	return b.SetID(id)
}

// Set copies every field of src, history records included. Nothing is
// written unless all fields validate.
func (b *ClusterBuff) Set(src Cluster) error {
	if src == nil {
		return errors.NewNullArgumentError("ClusterBuff", "Set", 1, "src")
	}
	if src.ClassCode() != ClassCodeCluster {
		return errors.NewUnsupportedClassError("ClusterBuff", "Set", 1, "src", src, "Cluster")
	}
	var tmp ClusterBuff
	tmp.copyAudit(src)
	if err := tmp.SetID(src.ID()); err != nil {
		return err
	}
	if err := tmp.SetFullDomName(src.FullDomName()); err != nil {
		return err
	}
	if err := tmp.SetDescription(src.Description()); err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b *ClusterBuff) Clone() *ClusterBuff {
	c := *b
	return &c
}

func (b *ClusterBuff) StoreKey() string {
	return ClusterStoreKey(b.id)
}

// IndexValues maps each secondary index name to this record's canonical value.
func (b *ClusterBuff) IndexValues() map[string]string {
	return map[string]string{
		ClusterUDomNameIdx: clusterByUDomNameIdx(b).IndexValue(),
		ClusterUDescrIdx:   clusterByUDescrIdx(b).IndexValue(),
	}
}

func (b *ClusterBuff) Equals(other any) bool {
	return clusterProtocol.recordEquals(b, other)
}

func (b *ClusterBuff) Compare(other any) (int, error) {
	return clusterProtocol.recordCompare(b, other)
}

func (b *ClusterBuff) HashCode() int {
	return hashCluster(b)
}

func (b *ClusterBuff) XMLAttrFragment() string {
	var f fragment
	fragmentCluster(&f, b)
	return f.String()
}

type clusterJSON struct {
	auditJSON
	ID          keys.HashKey `json:"id"`
	FullDomName string       `json:"fullDomName"`
	Description string       `json:"description"`
}

func (b *ClusterBuff) MarshalJSON() ([]byte, error) {
	return json.Marshal(clusterJSON{
		auditJSON:   b.toJSON(),
		ID:          b.id,
		FullDomName: b.fullDomName,
		Description: b.description,
	})
}

// UnmarshalJSON decodes and validates a record; invalid input leaves b unchanged.
func (b *ClusterBuff) UnmarshalJSON(data []byte) error {
	var j clusterJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	raw := ClusterBuff{
		id:          j.ID,
		fullDomName: j.FullDomName,
		description: j.Description,
	}
	raw.fromJSON(j.auditJSON)
	return b.Set(&raw)
}

// ClusterFactory constructs cluster buffers and keys.
type ClusterFactory struct{}

func (ClusterFactory) NewRec() *ClusterBuff {
	return new(ClusterBuff)
}

func (ClusterFactory) NewHRec() *ClusterHBuff {
	return new(ClusterHBuff)
}

func (ClusterFactory) NewHPKey() ClusterHPKey {
	return ClusterHPKey{}
}

func (ClusterFactory) NewByUDomNameIdxKey() ClusterByUDomNameIdxKey {
	return ClusterByUDomNameIdxKey{}
}

func (ClusterFactory) NewByUDescrIdxKey() ClusterByUDescrIdxKey {
	return ClusterByUDescrIdxKey{}
}

// EnsureRec returns r itself when it is already a *ClusterBuff, otherwise a
// validated copy. A nil r yields nil.
func (ClusterFactory) EnsureRec(r Cluster) (*ClusterBuff, error) {
	if r == nil {
		return nil, nil
	}
	if b, ok := r.(*ClusterBuff); ok {
		return b, nil
	}
	b := new(ClusterBuff)
	if err := b.Set(r); err != nil {
		return nil, err
	}
	return b, nil
}

// EnsureHRec is EnsureRec for history records.
func (ClusterFactory) EnsureHRec(r ClusterH) (*ClusterHBuff, error) {
	if r == nil {
		return nil, nil
	}
	if h, ok := r.(*ClusterHBuff); ok {
		return h, nil
	}
	h := new(ClusterHBuff)
	if err := h.SetHistory(r); err != nil {
		return nil, err
	}
	return h, nil
}
