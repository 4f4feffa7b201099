/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package secmodels

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/secschema/keys"
)

// fragment builds a space-separated list of XML attributes. Null optional
// values are left out.
type fragment struct {
	b strings.Builder
}

func (f *fragment) attr(name, value string) {
	if f.b.Len() > 0 {
		f.b.WriteByte(' ')
	}
	f.b.WriteString(name)
	f.b.WriteString(`="`)
	_ = xml.EscapeText(&f.b, []byte(value))
	f.b.WriteByte('"')
}

func (f *fragment) audit(a Audited) {
	f.key("CreatedBy", a.CreatedByUserID())
	f.time("CreatedAt", a.CreatedAt())
	f.key("UpdatedBy", a.UpdatedByUserID())
	f.time("UpdatedAt", a.UpdatedAt())
}

func (f *fragment) revision(v int32) {
	f.attr("RequiredRevision", strconv.FormatInt(int64(v), 10))
}

func (f *fragment) str(name, v string) {
	f.attr(name, v)
}

func (f *fragment) optStr(name string, v *string) {
	if v != nil {
		f.attr(name, *v)
	}
}

func (f *fragment) key(name string, k keys.HashKey) {
	f.attr(name, k.String())
}

func (f *fragment) optKey(name string, k keys.HashKey) {
	if !k.IsNull() {
		f.attr(name, k.String())
	}
}

func (f *fragment) short(name string, v int16) {
	f.attr(name, strconv.FormatInt(int64(v), 10))
}

func (f *fragment) bool(name string, v bool) {
	f.attr(name, strconv.FormatBool(v))
}

func (f *fragment) time(name string, t time.Time) {
	f.attr(name, strfmt.DateTime(t).String())
}

func (f *fragment) optTime(name string, t *time.Time) {
	if t != nil {
		f.time(name, *t)
	}
}

func (f *fragment) uuid(name string, u uuid.NullUUID) {
	if u.Valid {
		f.attr(name, u.UUID.String())
	}
}

func (f *fragment) String() string {
	return f.b.String()
}
