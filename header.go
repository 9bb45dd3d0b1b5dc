package goofx

import (
	"strings"

	"github.com/golang/glog"
)

// Dialect is the surface syntax of an OFX document.
type Dialect int

const (
	// Conformant documents are well formed XML.
	Conformant Dialect = iota
	// Legacy documents carry a colon delimited header and omit closing tags for leaf values.
	Legacy
)

func (d Dialect) String() string {
	if d == Legacy {
		return "legacy"
	}
	return "conformant"
}

// legacyMarker identifies a legacy header when it appears before the first tag.
const legacyMarker = "OFXHEADER:100"

// HeaderField is a single KEY:VALUE line of a legacy header.
type HeaderField struct {
	Key   string
	Value string
}

func (f HeaderField) String() string {
	return f.Key + ":" + f.Value
}

// requiredHeader is the only legacy header profile supported, in file order.
var requiredHeader = []HeaderField{
	{"OFXHEADER", "100"},
	{"DATA", "OFXSGML"},
	{"VERSION", "102"},
	{"SECURITY", "NONE"},
	{"ENCODING", "USASCII"},
	{"CHARSET", "1252"},
	{"COMPRESSION", "NONE"},
	{"OLDFILEUID", "NONE"},
}

// optionalHeaderKey may follow the required fields.
const optionalHeaderKey = "NEWFILEUID"

// Header is the result of inspecting a raw document.
type Header struct {
	Dialect Dialect
	Fields  []HeaderField // Legacy header fields, nil for conformant documents.
	Body    string        // Markup starting at the first '<'.
}

// Field returns the value of the named header field and whether it was present.
func (h Header) Field(key string) (string, bool) {
	for _, f := range h.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// InspectHeader classifies text as legacy or conformant, validates a legacy header and
// returns the markup that follows it.
func InspectHeader(text string) (Header, error) {
	text = preprocessOFXData(text)
	start := strings.IndexByte(text, '<')
	if start == -1 {
		return Header{}, newError(ErrHeader, "", "no markup found")
	}
	preamble := text[:start]
	if !strings.Contains(preamble, legacyMarker) {
		glog.V(2).Infof("header: conformant dialect")
		return Header{Dialect: Conformant, Body: text[start:]}, nil
	}

	lines := splitHeaderLines(preamble)
	fields, err := checkHeader(lines)
	if err != nil {
		return Header{}, err
	}
	glog.V(2).Infof("header: legacy dialect, %d fields", len(fields))
	return Header{Dialect: Legacy, Fields: fields, Body: text[start:]}, nil
}

// splitHeaderLines splits the preamble on line breaks and drops empty lines. Only the
// ends of a line are trimmed; "KEY:VALUE" is compared as written.
func splitHeaderLines(preamble string) []string {
	raw := strings.FieldsFunc(preamble, func(r rune) bool { return r == '\n' || r == '\r' })
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// checkHeader validates header lines against requiredHeader.
func checkHeader(lines []string) ([]HeaderField, error) {
	// Some exporters write the whole header on a single line without separators.
	if len(lines) == 1 && isConcatenatedHeader(lines[0]) {
		glog.V(2).Infof("header: accepting single line header %q", lines[0])
		fields := make([]HeaderField, len(requiredHeader))
		copy(fields, requiredHeader)
		return fields, nil
	}

	fields := make([]HeaderField, 0, len(lines))
	for i, want := range requiredHeader {
		if i >= len(lines) {
			return nil, newError(ErrHeader, want.Key, "missing, expected %s", want)
		}
		got := parseHeaderLine(lines[i])
		if got.Key != want.Key {
			return nil, newError(ErrHeader, want.Key, "expected %s, found %q", want, lines[i])
		}
		if got.Value != want.Value {
			return nil, newError(ErrHeader, want.Key, "unsupported value %q, %s required", got.Value, want.Value)
		}
		fields = append(fields, got)
	}
	for _, l := range lines[len(requiredHeader):] {
		got := parseHeaderLine(l)
		if got.Key != optionalHeaderKey || len(fields) > len(requiredHeader) {
			return nil, newError(ErrHeader, got.Key, "unexpected header line %q", l)
		}
		fields = append(fields, got)
	}
	return fields, nil
}

func parseHeaderLine(line string) HeaderField {
	key, value, _ := strings.Cut(line, ":")
	return HeaderField{Key: key, Value: value}
}

func isConcatenatedHeader(line string) bool {
	var b strings.Builder
	for _, f := range requiredHeader {
		b.WriteString(f.String())
	}
	joined := b.String()
	return line == joined || strings.HasPrefix(line, joined+optionalHeaderKey+":")
}
