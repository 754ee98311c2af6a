// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	indent  = "    "
	hexChar = "0123456789abcdef"
)

// object writes a flat JSON object with a fixed layout.  The fields are
// emitted in the order they are added; callers add them alphabetically.
//
// The layout is:
//
//	{
//	    "key": value,
//	    "key": value
//	}
//
// The verification hash is computed over these exact bytes, so the layout
// must never change.
type object struct {
	buf   strings.Builder
	count int
}

func (o *object) key(k string) {
	if o.count == 0 {
		o.buf.WriteString("{\n")
	} else {
		o.buf.WriteString(",\n")
	}
	o.count++

	o.buf.WriteString(indent)
	writeString(&o.buf, k)
	o.buf.WriteString(": ")
}

// str adds a string field.
func (o *object) str(k, v string) *object {
	o.key(k)
	writeString(&o.buf, v)
	return o
}

// num adds an integer field.
func (o *object) num(k string, v int64) *object {
	o.key(k)
	o.buf.WriteString(strconv.FormatInt(v, 10))
	return o
}

func (o *object) String() string {
	if o.count == 0 {
		return "{}"
	}
	return o.buf.String() + "\n}"
}

// writeString writes s as a quoted JSON string.  Only the characters JSON
// requires to be escaped are escaped; everything else is written as UTF-8.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			b.WriteString(s[start:i])
			switch c {
			case '"', '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			default:
				b.WriteString(`\u00`)
				b.WriteByte(hexChar[c>>4])
				b.WriteByte(hexChar[c&0xf])
			}
			i++
			start = i
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(s[start:i])
			b.WriteString("\ufffd")
			i += size
			start = i
			continue
		}
		i += size
	}
	b.WriteString(s[start:])
	b.WriteByte('"')
}
