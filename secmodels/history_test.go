/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/secmodels"
)

func newClusterHistory(t *testing.T, src *secmodels.ClusterBuff, revision int32, at time.Time) *secmodels.ClusterHBuff {
	t.Helper()
	h := secmodels.ClusterFactory{}.NewHRec()
	must(t, h.Set(src))
	must(t, h.SetHPKey(secmodels.ClusterHPKey{
		HistoryKey: secmodels.HistoryKey{
			AuditClusterID: src.ID(),
			AuditStamp:     at,
			AuditActionID:  secmodels.AuditActionUpdate,
			AuditSessionID: keyOf("session"),
			Revision:       revision,
		},
		ID: src.ID(),
	}))
	return h
}

func TestHistoryMatchesLiveRecord(t *testing.T) {
	live := newCluster(t, "example.com", "desc")
	h := newClusterHistory(t, live, 3, stamp)

	if !h.Equals(live) || !live.Equals(h) {
		t.Fatal("history and live record with the same fields should be equal")
	}
	if h.HashCode() != live.HashCode() {
		t.Fatal("equal history and live record hash differently")
	}
	if h.Revision() != 3 || h.AuditActionID() != secmodels.AuditActionUpdate {
		t.Fatalf("envelope not installed: revision %d action %v", h.Revision(), h.AuditActionID())
	}
}

func TestHistoryKeyAgainstRecord(t *testing.T) {
	live := newCluster(t, "example.com", "desc")
	h := newClusterHistory(t, live, 3, stamp)
	hk := h.HPKey()

	if !hk.Equals(h) || !h.Equals(hk) {
		t.Fatal("history key should match its own record")
	}
	// revision 1 against the key's revision 3
	if hk.Equals(live) {
		t.Fatal("history key should not match a record at another revision")
	}
	c, err := live.Compare(hk)
	must(t, err)
	if c >= 0 {
		t.Fatalf("revision 1 should sort before revision 3, got %d", c)
	}
	back, err := hk.Compare(live)
	must(t, err)
	if back <= 0 {
		t.Fatalf("reverse comparison should be positive, got %d", back)
	}

	live.SetRevision(3)
	if !hk.Equals(live) || !live.Equals(hk) {
		t.Fatal("history key should match the record at its revision")
	}
}

func TestHistoryOrdersByRevisionFirst(t *testing.T) {
	live := newCluster(t, "example.com", "desc")
	older := newClusterHistory(t, live, 3, stamp.Add(time.Hour))
	newer := newClusterHistory(t, live, 4, stamp)

	c, err := older.Compare(newer)
	must(t, err)
	if c >= 0 {
		t.Fatalf("revision 3 should sort before 4 despite the later stamp, got %d", c)
	}
	if older.Equals(newer) {
		t.Fatal("history records at different revisions are distinct")
	}
	kc, err := older.HPKey().Compare(newer.HPKey())
	must(t, err)
	if kc >= 0 {
		t.Fatalf("history keys should order by revision, got %d", kc)
	}
}

func TestHistorySetHistoryAndEnsure(t *testing.T) {
	live := newCluster(t, "example.com", "desc")
	h := newClusterHistory(t, live, 5, stamp)

	cp := new(secmodels.ClusterHBuff)
	must(t, cp.SetHistory(h))
	if !cp.Equals(h) || cp.XMLAttrFragment() != h.XMLAttrFragment() {
		t.Fatal("SetHistory did not copy the whole record")
	}

	f := secmodels.ClusterFactory{}
	same, err := f.EnsureHRec(h)
	must(t, err)
	if same != h {
		t.Fatal("EnsureHRec on a concrete history buffer must return it unchanged")
	}
	if err := cp.SetHistory(nil); !errors.IsNullArgument(err) {
		t.Fatalf("expected null argument, got %v", err)
	}
	if err := cp.SetPKeyValue(live.ID()); !errors.IsUnsupportedClass(err) {
		t.Fatalf("history buffers take history keys, got %v", err)
	}
}

func TestHistoryFragmentAndJSON(t *testing.T) {
	live := newCluster(t, "example.com", "desc")
	h := newClusterHistory(t, live, 2, stamp)

	frag := h.XMLAttrFragment()
	if !strings.HasPrefix(frag, "AuditClusterId=") || !strings.Contains(frag, `RequiredRevision="2"`) {
		t.Fatalf("unexpected history fragment %q", frag)
	}

	data, err := json.Marshal(h)
	must(t, err)
	var back secmodels.ClusterHBuff
	must(t, json.Unmarshal(data, &back))
	if !back.Equals(h) || !back.HPKey().Equals(h.HPKey()) {
		t.Fatalf("history JSON round trip lost data: %s", data)
	}
	if back.StoreKey() != h.StoreKey() || back.StoreKey() == live.StoreKey() {
		t.Fatal("history store key should be stable and distinct from the live key")
	}
}

func TestCompositeHistoryKey(t *testing.T) {
	dev := newSecDevice(t, keyOf("u"), "laptop")
	h := secmodels.SecDeviceFactory{}.NewHRec()
	must(t, h.Set(dev))
	hk := secmodels.SecDeviceHPKey{
		HistoryKey:    secmodels.HistoryKey{AuditStamp: stamp, Revision: 1},
		SecDevicePKey: dev.PKey(),
	}
	must(t, h.SetHPKey(hk))
	if !hk.Equals(dev) {
		t.Fatal("composite history key should match the live record at the same revision")
	}
	if err := h.SetHPKey(secmodels.SecDeviceHPKey{}); !errors.IsNullArgument(err) {
		t.Fatalf("expected null argument for blank key, got %v", err)
	}
	if h.DevName() != "laptop" {
		t.Fatal("failed SetHPKey mutated the buffer")
	}
}
