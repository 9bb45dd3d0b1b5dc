package goofx

import (
	"bytes"
	"unicode/utf8"
)

var (
	// XML Escape sequences.
	// from https://golang.org/src/encoding/xml/xml.go:1840
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escApos = []byte("&#39;") // shorter than "&apos;"
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escTab  = []byte("&#x9;")
	escNl   = []byte("&#xA;")
	escCr   = []byte("&#xD;")
	escFffd = []byte("\uFFFD") // Unicode replacement character
)

// Decide whether the given rune is in the XML Character Range, per
// the Char production of http://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
// Lifted from https://golang.org/src/encoding/xml/xml.go:1102
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// escapeString writes the escaped XML equivalent of the plain text s to buff.
// based on https://golang.org/src/encoding/xml/xml.go:1907
func escapeString(s string, buff *bytes.Buffer) {
	var (
		esc  []byte
		last = 0
	)
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '\t':
			esc = escTab
		case '\n':
			esc = escNl
		case '\r':
			esc = escCr
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFffd
				break
			}
			continue
		}
		buff.WriteString(s[last : i-width])
		buff.Write(esc)
		last = i
	}
	buff.WriteString(s[last:])
}

func writeStartTag(name string, buff *bytes.Buffer) {
	buff.WriteByte('<')
	buff.WriteString(name)
	buff.WriteByte('>')
}

func writeEndTag(name string, buff *bytes.Buffer) {
	buff.WriteString("</")
	buff.WriteString(name)
	buff.WriteByte('>')
}

// writeElement writes e and everything beneath it to buff with every tag closed.
func writeElement(e *Element, buff *bytes.Buffer) {
	writeStartTag(e.Name, buff)
	if e.leaf {
		escapeString(e.Value, buff)
	}
	for _, c := range e.Children {
		writeElement(c, buff)
	}
	writeEndTag(e.Name, buff)
}

// String renders e as well formed XML without whitespace between tags.
func (e *Element) String() string {
	if e == nil {
		return ""
	}
	var buff bytes.Buffer
	writeElement(e, &buff)
	return buff.String()
}
