/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	goerrors "errors"
	"testing"
	"time"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/keys"
	"github.com/suparena/secschema/secmodels"
)

func TestISOCcyPrecisUnderflow(t *testing.T) {
	c := newISOCcy(t, 978, "EUR", "Euro")

	err := c.SetPrecis(secmodels.ISOCcyPrecisMinValue - 1)
	var under *errors.ArgumentUnderflowError
	if !goerrors.As(err, &under) {
		t.Fatalf("expected *ArgumentUnderflowError, got %v", err)
	}
	if under.Min != secmodels.ISOCcyPrecisMinValue {
		t.Fatalf("bound = %d, want %d", under.Min, secmodels.ISOCcyPrecisMinValue)
	}
	if under.Value != secmodels.ISOCcyPrecisMinValue-1 || under.ArgName != "Precis" || under.ArgIndex != 1 {
		t.Fatalf("unexpected detail: %+v", under)
	}
	if c.Precis() != 2 {
		t.Fatalf("precis changed to %d", c.Precis())
	}

	if err := c.SetPrecis(secmodels.ISOCcyPrecisMaxValue + 1); !errors.IsArgumentOverflow(err) {
		t.Fatalf("expected overflow, got %v", err)
	}
	must(t, c.SetPrecis(secmodels.ISOCcyPrecisMaxValue))
}

func TestISOCcyFieldBounds(t *testing.T) {
	c := newISOCcy(t, 978, "EUR", "Euro")

	if err := c.SetISOCode("EURO"); !errors.IsArgumentOverflow(err) {
		t.Fatalf("expected overflow for 4-letter code, got %v", err)
	}
	if err := c.SetUnitSymbol(strPtr("US$")); !errors.IsArgumentOverflow(err) {
		t.Fatalf("expected overflow for long unit symbol, got %v", err)
	}
	must(t, c.SetUnitSymbol(nil))
	if c.UnitSymbol() != nil {
		t.Fatal("optional unit symbol should accept nil")
	}
	if err := c.SetID(-1); !errors.IsArgumentUnderflow(err) {
		t.Fatalf("expected underflow for negative id, got %v", err)
	}
	if c.ISOCode() != "EUR" || c.ID() != 978 {
		t.Fatal("failed setters mutated the buffer")
	}
}

func TestISOCtryCodeBound(t *testing.T) {
	c := newISOCtry(t, 250, "FR", "France")
	var overflow *errors.ArgumentOverflowError
	if err := c.SetISOCode("FRA"); !goerrors.As(err, &overflow) || overflow.Max != secmodels.ISOCtryISOCodeMaxLen {
		t.Fatalf("expected overflow with bound 2, got %v", err)
	}
}

// ctryCcyView is a foreign implementation of the country-currency interface.
type ctryCcyView struct {
	pkey secmodels.ISOCtryCcyPKey
}

func (v ctryCcyView) ClassCode() secmodels.ClassCode    { return secmodels.ClassCodeISOCtryCcy }
func (v ctryCcyView) CreatedByUserID() keys.HashKey     { return creator }
func (v ctryCcyView) CreatedAt() time.Time              { return stamp }
func (v ctryCcyView) UpdatedByUserID() keys.HashKey     { return updater }
func (v ctryCcyView) UpdatedAt() time.Time              { return stamp.Add(time.Minute) }
func (v ctryCcyView) Revision() int32                   { return 3 }
func (v ctryCcyView) PKey() secmodels.ISOCtryCcyPKey    { return v.pkey }
func (v ctryCcyView) ISOCtryID() int16                  { return v.pkey.ISOCtryID }
func (v ctryCcyView) ISOCcyID() int16                   { return v.pkey.ISOCcyID }

func TestISOCtryCcyEnsureRec(t *testing.T) {
	f := secmodels.ISOCtryCcyFactory{}
	view := ctryCcyView{pkey: secmodels.ISOCtryCcyPKey{ISOCtryID: 124, ISOCcyID: 124}}

	rec, err := f.EnsureRec(view)
	must(t, err)
	if rec == nil {
		t.Fatal("EnsureRec returned nil for a non-nil source")
	}
	if rec.ISOCtryID() != 124 || rec.ISOCcyID() != 124 || rec.Revision() != 3 {
		t.Fatalf("fields not copied: %s", rec.XMLAttrFragment())
	}
	if !rec.Equals(view) {
		t.Fatal("ensured record should equal its source")
	}

	again, err := f.EnsureRec(rec)
	must(t, err)
	if again != rec {
		t.Fatal("EnsureRec on a concrete buffer must return the same pointer")
	}

	none, err := f.EnsureRec(nil)
	if none != nil || err != nil {
		t.Fatalf("EnsureRec(nil) = %v, %v", none, err)
	}

	bad := ctryCcyView{pkey: secmodels.ISOCtryCcyPKey{ISOCtryID: -4, ISOCcyID: 1}}
	if _, err := f.EnsureRec(bad); !errors.IsArgumentUnderflow(err) {
		t.Fatalf("expected underflow from invalid source, got %v", err)
	}
}

func TestISOCtryCcyCompositeKey(t *testing.T) {
	rec := newISOCtryCcy(t, 36, 36)

	if err := rec.SetPKeyValue(secmodels.SecGrpMembPKey{}); !errors.IsUnsupportedClass(err) {
		t.Fatalf("expected unsupported class for foreign key type, got %v", err)
	}
	if err := rec.SetPKeyValue(int16(36)); !errors.IsUnsupportedClass(err) {
		t.Fatalf("expected unsupported class for scalar key, got %v", err)
	}
	must(t, rec.SetPKeyValue(secmodels.ISOCtryCcyPKey{ISOCtryID: 554, ISOCcyID: 36}))
	if rec.ISOCtryID() != 554 {
		t.Fatal("key field getter does not read through the primary key")
	}

	must(t, rec.SetISOCcyID(554))
	want := secmodels.ISOCtryCcyPKey{ISOCtryID: 554, ISOCcyID: 554}
	if rec.PKey() != want {
		t.Fatalf("key field setter did not write through: %+v", rec.PKey())
	}
	if !want.Equals(rec) || !rec.Equals(want) {
		t.Fatal("primary key should match its record")
	}
	c, err := (secmodels.ISOCtryCcyPKey{ISOCtryID: 1, ISOCcyID: 999}).Compare(rec)
	must(t, err)
	if c >= 0 {
		t.Fatalf("country 1 should sort before 554, got %d", c)
	}
	if rec.StoreKey() != want.StoreKey() {
		t.Fatal("record and key store keys differ")
	}
}

func TestISOCtryCcyIndexKeys(t *testing.T) {
	a := newISOCtryCcy(t, 36, 36)
	b := newISOCtryCcy(t, 36, 554)

	byCtry := secmodels.ISOCtryCcyByCtryIdxKey{ISOCtryID: 36}
	if !byCtry.Equals(a) || !byCtry.Equals(b) {
		t.Fatal("country index should match both rows")
	}
	byCcy := secmodels.ISOCtryCcyByCcyIdxKey{ISOCcyID: 36}
	if !byCcy.Equals(a) || byCcy.Equals(b) {
		t.Fatal("currency index should match only the first row")
	}
}
