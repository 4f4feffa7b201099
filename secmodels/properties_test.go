/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/suparena/secschema/secmodels"
)

type kindCase struct {
	name  string
	src   secmodels.Record
	fresh func() secmodels.Record
	// copyFrom bulk-copies src into a fresh buffer through Set.
	copyFrom func() (secmodels.Record, error)
}

func allKinds(t *testing.T) []kindCase {
	t.Helper()
	cluster := newCluster(t, "example.com", "desc")
	tenant := newTenant(t, cluster.ID(), "acme")
	user := newSecUser(t, "alice")
	device := newSecDevice(t, user.ID(), "laptop")
	session := newSecSession(t, user.ID(), stamp)
	group := newSecGroup(t, cluster.ID(), "admins")
	memb := newSecGrpMemb(t, group.ID(), user.ID())
	svcType := newServiceType(t, "https")
	svc := newService(t, cluster.ID(), svcType.ID(), "api.example.com", 443)
	ccy := newISOCcy(t, 840, "USD", "US Dollar")
	ctry := newISOCtry(t, 840, "US", "United States")
	ctryCcy := newISOCtryCcy(t, 840, 840)

	return []kindCase{
		{"Cluster", cluster,
			func() secmodels.Record { return new(secmodels.ClusterBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ClusterBuff); return b, b.Set(cluster) }},
		{"Tenant", tenant,
			func() secmodels.Record { return new(secmodels.TenantBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.TenantBuff); return b, b.Set(tenant) }},
		{"SecUser", user,
			func() secmodels.Record { return new(secmodels.SecUserBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.SecUserBuff); return b, b.Set(user) }},
		{"SecDevice", device,
			func() secmodels.Record { return new(secmodels.SecDeviceBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.SecDeviceBuff); return b, b.Set(device) }},
		{"SecSession", session,
			func() secmodels.Record { return new(secmodels.SecSessionBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.SecSessionBuff); return b, b.Set(session) }},
		{"SecGroup", group,
			func() secmodels.Record { return new(secmodels.SecGroupBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.SecGroupBuff); return b, b.Set(group) }},
		{"SecGrpMemb", memb,
			func() secmodels.Record { return new(secmodels.SecGrpMembBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.SecGrpMembBuff); return b, b.Set(memb) }},
		{"ServiceType", svcType,
			func() secmodels.Record { return new(secmodels.ServiceTypeBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ServiceTypeBuff); return b, b.Set(svcType) }},
		{"Service", svc,
			func() secmodels.Record { return new(secmodels.ServiceBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ServiceBuff); return b, b.Set(svc) }},
		{"ISOCcy", ccy,
			func() secmodels.Record { return new(secmodels.ISOCcyBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ISOCcyBuff); return b, b.Set(ccy) }},
		{"ISOCtry", ctry,
			func() secmodels.Record { return new(secmodels.ISOCtryBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ISOCtryBuff); return b, b.Set(ctry) }},
		{"ISOCtryCcy", ctryCcy,
			func() secmodels.Record { return new(secmodels.ISOCtryCcyBuff) },
			func() (secmodels.Record, error) { b := new(secmodels.ISOCtryCcyBuff); return b, b.Set(ctryCcy) }},
	}
}

func TestCopyThenEqual(t *testing.T) {
	for _, tc := range allKinds(t) {
		t.Run(tc.name, func(t *testing.T) {
			dst, err := tc.copyFrom()
			must(t, err)
			if !dst.Equals(tc.src) || !tc.src.Equals(dst) {
				t.Fatalf("copy does not equal source:\n%s\n%s", dst.XMLAttrFragment(), tc.src.XMLAttrFragment())
			}
			if dst.HashCode() != tc.src.HashCode() {
				t.Fatalf("equal records hash differently: %d vs %d", dst.HashCode(), tc.src.HashCode())
			}
			c, err := dst.Compare(tc.src)
			must(t, err)
			if c != 0 {
				t.Fatalf("Compare = %d for equal records", c)
			}
			if dst.StoreKey() != tc.src.StoreKey() {
				t.Fatalf("store keys differ: %q vs %q", dst.StoreKey(), tc.src.StoreKey())
			}
			if dst.XMLAttrFragment() != tc.src.XMLAttrFragment() {
				t.Fatalf("fragments differ")
			}
			if dst.ClassCode().String() != tc.name {
				t.Fatalf("class code %v, want %s", dst.ClassCode(), tc.name)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, tc := range allKinds(t) {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.src)
			must(t, err)
			dst := tc.fresh()
			must(t, json.Unmarshal(data, dst))
			if !dst.Equals(tc.src) {
				t.Fatalf("decoded record differs from source: %s", data)
			}
			if dst.Revision() != tc.src.Revision() {
				t.Fatalf("revision %d, want %d", dst.Revision(), tc.src.Revision())
			}
		})
	}
}

func TestJSONRejectsInvalidRecord(t *testing.T) {
	c := new(secmodels.ClusterBuff)
	err := json.Unmarshal([]byte(`{"id":"","fullDomName":"example.com","description":"d"}`), c)
	if err == nil {
		t.Fatal("expected error for null id")
	}
	if !c.ID().IsNull() || c.FullDomName() != "" {
		t.Fatal("failed decode mutated the buffer")
	}
}

func TestRevisionIsNotIdentity(t *testing.T) {
	for _, tc := range allKinds(t) {
		t.Run(tc.name, func(t *testing.T) {
			dst, err := tc.copyFrom()
			must(t, err)
			dst.(interface{ SetRevision(int32) }).SetRevision(tc.src.Revision() + 7)
			if !dst.Equals(tc.src) {
				t.Fatal("records differing only in revision must be equal")
			}
		})
	}
}

func TestAuditDifferenceBreaksEquality(t *testing.T) {
	for _, tc := range allKinds(t) {
		t.Run(tc.name, func(t *testing.T) {
			dst, err := tc.copyFrom()
			must(t, err)
			dst.(interface{ SetUpdatedAt(time.Time) }).SetUpdatedAt(stamp.Add(24 * time.Hour))
			if dst.Equals(tc.src) {
				t.Fatal("records with different audit stamps must differ")
			}
			c, err := dst.Compare(tc.src)
			must(t, err)
			if c <= 0 {
				t.Fatalf("later update stamp should sort after, got %d", c)
			}
		})
	}
}

func TestNilAndUnsupported(t *testing.T) {
	for _, tc := range allKinds(t) {
		t.Run(tc.name, func(t *testing.T) {
			if tc.src.Equals(nil) {
				t.Fatal("Equals(nil) must be false")
			}
			c, err := tc.src.Compare(nil)
			if err != nil || c != -1 {
				t.Fatalf("Compare(nil) = %d, %v; want -1, nil", c, err)
			}
			if tc.src.Equals("not a record") {
				t.Fatal("Equals on an unrelated type must be false")
			}
			if _, err := tc.src.Compare(42); err == nil {
				t.Fatal("Compare on an unrelated type must fail")
			}
		})
	}
}

func TestCrossKindIsUnsupported(t *testing.T) {
	cluster := newCluster(t, "example.com", "desc")
	svcType := newServiceType(t, "desc")
	ccy := newISOCcy(t, 1, "USD", "US Dollar")
	ctry := newISOCtry(t, 1, "US", "United States")

	// ClusterBuff has every method of ServiceType, and ISOCcyBuff every method
	// of ISOCtry; the class code keeps them apart.
	if svcType.Equals(cluster) {
		t.Fatal("service type equal to a cluster")
	}
	if _, err := svcType.Compare(cluster); err == nil {
		t.Fatal("expected unsupported class comparing service type to cluster")
	}
	if _, err := ctry.Compare(ccy); err == nil {
		t.Fatal("expected unsupported class comparing country to currency")
	}
	if err := new(secmodels.ServiceTypeBuff).Set(cluster); err == nil {
		t.Fatal("expected Set to reject a cluster")
	}
}

func TestTypedNilComparesAsNil(t *testing.T) {
	cluster := newCluster(t, "example.com", "desc")
	var missing *secmodels.ClusterBuff
	if cluster.Equals(missing) {
		t.Fatal("Equals(typed nil) must be false")
	}
	c, err := cluster.Compare(missing)
	if err != nil || c != -1 {
		t.Fatalf("Compare(typed nil) = %d, %v", c, err)
	}
}

func TestOrderingIsTotal(t *testing.T) {
	recs := []*secmodels.ClusterBuff{
		newCluster(t, "a.example.com", "alpha"),
		newCluster(t, "b.example.com", "beta"),
		newCluster(t, "c.example.com", "gamma"),
		newCluster(t, "a.example.com", "alpha"),
	}
	// different audit stamps on the last one
	stampAudit(recs[3], -time.Hour)

	sign := func(v int) int {
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	}
	for i, a := range recs {
		for j, b := range recs {
			ab, err := a.Compare(b)
			must(t, err)
			ba, err := b.Compare(a)
			must(t, err)
			if sign(ab) != -sign(ba) {
				t.Fatalf("not antisymmetric for %d,%d: %d vs %d", i, j, ab, ba)
			}
			if (ab == 0) != a.Equals(b) {
				t.Fatalf("Compare and Equals disagree for %d,%d", i, j)
			}
			for k, c := range recs {
				bc, _ := b.Compare(c)
				ac, _ := a.Compare(c)
				if ab < 0 && bc < 0 && ac >= 0 {
					t.Fatalf("not transitive for %d,%d,%d", i, j, k)
				}
			}
		}
	}
}

func TestOptionalNullSortsFirst(t *testing.T) {
	withKey := newSecDevice(t, keyOf("u"), "phone")
	without := withKey.Clone()
	must(t, without.SetPubKey(nil))

	c, err := without.Compare(withKey)
	must(t, err)
	if c >= 0 {
		t.Fatalf("null PubKey should sort before a set one, got %d", c)
	}
	other := without.Clone()
	if !other.Equals(without) {
		t.Fatal("two null optionals must compare equal")
	}
}
