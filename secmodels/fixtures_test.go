/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
)

var (
	stamp   = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	creator = keys.HashKeyOf([]byte("creator"))
	updater = keys.HashKeyOf([]byte("updater"))
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func keyOf(s string) keys.HashKey {
	return keys.HashKeyOf([]byte(s))
}

func strPtr(s string) *string {
	return &s
}

type auditSetter interface {
	SetCreatedByUserID(keys.HashKey)
	SetCreatedAt(time.Time)
	SetUpdatedByUserID(keys.HashKey)
	SetUpdatedAt(time.Time)
	SetRevision(int32)
}

// stampAudit fills the audit fields; offset shifts both timestamps.
func stampAudit(r auditSetter, offset time.Duration) {
	r.SetCreatedByUserID(creator)
	r.SetCreatedAt(stamp.Add(offset))
	r.SetUpdatedByUserID(updater)
	r.SetUpdatedAt(stamp.Add(offset + time.Minute))
	r.SetRevision(1)
}

func newCluster(t *testing.T, domain, descr string) *secmodels.ClusterBuff {
	t.Helper()
	c := secmodels.ClusterFactory{}.NewRec()
	must(t, c.SetID(keyOf(domain)))
	must(t, c.SetFullDomName(domain))
	must(t, c.SetDescription(descr))
	stampAudit(c, 0)
	return c
}

func newTenant(t *testing.T, cluster keys.HashKey, name string) *secmodels.TenantBuff {
	t.Helper()
	r := secmodels.TenantFactory{}.NewRec()
	must(t, r.SetID(keyOf("tenant/"+name)))
	must(t, r.SetClusterID(cluster))
	must(t, r.SetTenantName(name))
	stampAudit(r, 0)
	return r
}

func newSecUser(t *testing.T, login string) *secmodels.SecUserBuff {
	t.Helper()
	r := secmodels.SecUserFactory{}.NewRec()
	must(t, r.SetID(keyOf("user/"+login)))
	must(t, r.SetLoginID(login))
	must(t, r.SetEMailAddress(login+"@example.com"))
	r.SetEMailConfirmUUID(uuid.NullUUID{UUID: uuid.MustParse("6f1c1a4e-4a8e-4c4b-9d3e-2d0c5b1a7e01"), Valid: true})
	r.SetDfltDevUserID(keyOf("user/" + login))
	must(t, r.SetDfltDevName(strPtr("laptop")))
	must(t, r.SetPasswordHash("$2a$10$abcdefghijklmnopqrstuv"))
	stampAudit(r, 0)
	return r
}

func newSecDevice(t *testing.T, user keys.HashKey, name string) *secmodels.SecDeviceBuff {
	t.Helper()
	r := secmodels.SecDeviceFactory{}.NewRec()
	must(t, r.SetPKey(secmodels.SecDevicePKey{SecUserID: user, DevName: name}))
	must(t, r.SetPubKey(strPtr("ssh-ed25519 AAAA")))
	stampAudit(r, 0)
	return r
}

func newSecSession(t *testing.T, user keys.HashKey, start time.Time) *secmodels.SecSessionBuff {
	t.Helper()
	r := secmodels.SecSessionFactory{}.NewRec()
	must(t, r.SetID(keyOf("session/"+start.String())))
	must(t, r.SetSecUserID(user))
	must(t, r.SetSecDevName(strPtr("laptop")))
	must(t, r.SetStart(start))
	finish := start.Add(time.Hour)
	r.SetFinish(&finish)
	stampAudit(r, 0)
	return r
}

func newSecGroup(t *testing.T, cluster keys.HashKey, name string) *secmodels.SecGroupBuff {
	t.Helper()
	r := secmodels.SecGroupFactory{}.NewRec()
	must(t, r.SetID(keyOf("group/"+name)))
	must(t, r.SetClusterID(cluster))
	must(t, r.SetName(name))
	r.SetIsVisible(true)
	stampAudit(r, 0)
	return r
}

func newSecGrpMemb(t *testing.T, group, user keys.HashKey) *secmodels.SecGrpMembBuff {
	t.Helper()
	r := secmodels.SecGrpMembFactory{}.NewRec()
	must(t, r.SetPKey(secmodels.SecGrpMembPKey{SecGroupID: group, SecUserID: user}))
	stampAudit(r, 0)
	return r
}

func newServiceType(t *testing.T, descr string) *secmodels.ServiceTypeBuff {
	t.Helper()
	r := secmodels.ServiceTypeFactory{}.NewRec()
	must(t, r.SetID(keyOf("svctype/"+descr)))
	must(t, r.SetDescription(descr))
	stampAudit(r, 0)
	return r
}

func newService(t *testing.T, cluster, svcType keys.HashKey, host string, port int16) *secmodels.ServiceBuff {
	t.Helper()
	r := secmodels.ServiceFactory{}.NewRec()
	must(t, r.SetID(keyOf("service/"+host)))
	must(t, r.SetClusterID(cluster))
	must(t, r.SetServiceTypeID(svcType))
	must(t, r.SetHostName(host))
	must(t, r.SetHostPort(port))
	stampAudit(r, 0)
	return r
}

func newISOCcy(t *testing.T, id int16, code, name string) *secmodels.ISOCcyBuff {
	t.Helper()
	r := secmodels.ISOCcyFactory{}.NewRec()
	must(t, r.SetID(id))
	must(t, r.SetISOCode(code))
	must(t, r.SetName(name))
	must(t, r.SetUnitSymbol(strPtr("$")))
	must(t, r.SetPrecis(2))
	stampAudit(r, 0)
	return r
}

func newISOCtry(t *testing.T, id int16, code, name string) *secmodels.ISOCtryBuff {
	t.Helper()
	r := secmodels.ISOCtryFactory{}.NewRec()
	must(t, r.SetID(id))
	must(t, r.SetISOCode(code))
	must(t, r.SetName(name))
	stampAudit(r, 0)
	return r
}

func newISOCtryCcy(t *testing.T, ctry, ccy int16) *secmodels.ISOCtryCcyBuff {
	t.Helper()
	r := secmodels.ISOCtryCcyFactory{}.NewRec()
	must(t, r.SetPKey(secmodels.ISOCtryCcyPKey{ISOCtryID: ctry, ISOCcyID: ccy}))
	stampAudit(r, 0)
	return r
}
