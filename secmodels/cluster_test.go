/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels_test

import (
	goerrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/suparena/secschema/errors"
	"github.com/suparena/secschema/secmodels"
)

func TestClusterIndexKeyIgnoresAudit(t *testing.T) {
	a := newCluster(t, "example.com", "desc")
	b := newCluster(t, "example.com", "desc")
	stampAudit(b, 48*time.Hour)
	b.SetCreatedByUserID(keyOf("someone else"))

	key := secmodels.ClusterFactory{}.NewByUDomNameIdxKey()
	key.FullDomName = "example.com"

	if !key.Equals(a) || !key.Equals(b) {
		t.Fatal("index key should match both clusters")
	}
	if !a.Equals(key) || !b.Equals(key) {
		t.Fatal("clusters should match the index key")
	}
	if a.Equals(b) {
		t.Fatal("clusters with different audit stamps must not be equal")
	}
}

func TestClusterIndexProjection(t *testing.T) {
	a := newCluster(t, "example.com", "first")
	b := newCluster(t, "example.com", "second")

	byDomain := secmodels.ClusterByUDomNameIdxKey{FullDomName: a.FullDomName()}
	if !byDomain.Equals(b) {
		t.Fatal("records differing outside the index must match its key")
	}
	byDescr := secmodels.ClusterByUDescrIdxKey{Description: a.Description()}
	if byDescr.Equals(b) {
		t.Fatal("description index must see the difference")
	}
	c, err := byDescr.Compare(b)
	must(t, err)
	if c >= 0 {
		t.Fatalf("\"first\" should sort before \"second\", got %d", c)
	}

	// keys of different indexes are not comparable with each other
	if _, err := byDomain.Compare(byDescr); !errors.IsUnsupportedClass(err) {
		t.Fatalf("expected unsupported class, got %v", err)
	}
	if byDomain.HashCode() != (secmodels.ClusterByUDomNameIdxKey{FullDomName: "example.com"}).HashCode() {
		t.Fatal("equal index keys hash differently")
	}
}

func TestClusterIndexValues(t *testing.T) {
	a := newCluster(t, "example.com", "desc")
	vals := a.IndexValues()
	if len(vals) != 2 {
		t.Fatalf("expected 2 index values, got %d", len(vals))
	}
	if vals[secmodels.ClusterUDomNameIdx] != (secmodels.ClusterByUDomNameIdxKey{FullDomName: "example.com"}).IndexValue() {
		t.Fatalf("unexpected domain index value %q", vals[secmodels.ClusterUDomNameIdx])
	}
}

func TestClusterSetterBounds(t *testing.T) {
	c := newCluster(t, "example.com", "desc")

	tests := []struct {
		name    string
		set     func() error
		check   func(error) bool
		argName string
	}{
		{
			name:    "empty domain",
			set:     func() error { return c.SetFullDomName("") },
			check:   errors.IsNullArgument,
			argName: "FullDomName",
		},
		{
			name:    "domain too long",
			set:     func() error { return c.SetFullDomName(strings.Repeat("d", secmodels.ClusterFullDomNameMaxLen+1)) },
			check:   errors.IsArgumentOverflow,
			argName: "FullDomName",
		},
		{
			name:    "description too long",
			set:     func() error { return c.SetDescription(strings.Repeat("x", secmodels.ClusterDescriptionMaxLen+1)) },
			check:   errors.IsArgumentOverflow,
			argName: "Description",
		},
		{
			name:    "null id",
			set:     func() error { return c.SetID(secmodels.ClusterFactory{}.NewHPKey().ID) },
			check:   errors.IsNullArgument,
			argName: "ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			if !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !errors.IsValidationError(err) {
				t.Fatalf("bound errors should also be validation errors: %v", err)
			}
			if c.FullDomName() != "example.com" || c.Description() != "desc" || c.ID() != keyOf("example.com") {
				t.Fatal("failed setter mutated the buffer")
			}
		})
	}

	var overflow *errors.ArgumentOverflowError
	err := c.SetFullDomName(strings.Repeat("d", 200))
	if !goerrors.As(err, &overflow) {
		t.Fatalf("expected *ArgumentOverflowError, got %T", err)
	}
	if overflow.Value != 200 || overflow.Max != secmodels.ClusterFullDomNameMaxLen || overflow.ArgName != "FullDomName" {
		t.Fatalf("unexpected overflow detail: %+v", overflow)
	}
}

func TestClusterLengthCountsCharacters(t *testing.T) {
	c := new(secmodels.ClusterBuff)
	// 128 three-byte runes fit even though the byte length is 384
	if err := c.SetDescription(strings.Repeat("€", secmodels.ClusterDescriptionMaxLen)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClusterFragment(t *testing.T) {
	c := newCluster(t, "a&b.example.com", `say "hi"`)
	frag := c.XMLAttrFragment()

	for _, want := range []string{
		`CreatedBy="` + creator.String() + `"`,
		`RequiredId="` + c.ID().String() + `"`,
		`RequiredRevision="1"`,
		`RequiredFullDomName="a&amp;b.example.com"`,
		`RequiredDescription="say &#34;hi&#34;"`,
	} {
		if !strings.Contains(frag, want) {
			t.Errorf("fragment %q missing %q", frag, want)
		}
	}
	if strings.Count(frag, "RequiredId=") != 1 {
		t.Errorf("primary key should appear once: %q", frag)
	}
	if !strings.HasPrefix(frag, "CreatedBy=") {
		t.Errorf("audit attributes come first: %q", frag)
	}
}

func TestClusterSetPKeyValue(t *testing.T) {
	c := new(secmodels.ClusterBuff)
	must(t, c.SetPKeyValue(keyOf("x")))
	if c.PKeyValue() != keyOf("x") {
		t.Fatal("primary key not installed")
	}
	if err := c.SetPKeyValue("x"); !errors.IsUnsupportedClass(err) {
		t.Fatalf("expected unsupported class, got %v", err)
	}
}

func TestClusterCloneIsIndependent(t *testing.T) {
	a := newCluster(t, "example.com", "desc")
	b := a.Clone()
	must(t, b.SetDescription("changed"))
	if a.Description() != "desc" {
		t.Fatal("clone shares state with original")
	}
}
