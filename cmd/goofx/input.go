package main

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	charsetAuto        = "auto"
	charsetUTF8        = "utf-8"
	charsetWindows1252 = "windows-1252"
)

// legacyCharset is the header line legacy files use to declare windows-1252 content.
var legacyCharset = []byte("CHARSET:1252")

// readDocument reads the file at path and returns its content as UTF-8 text.
func readDocument(path, charset string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decodeDocument(data, charset)
}

// decodeDocument converts data to UTF-8 text. In auto mode windows-1252 is assumed only
// for legacy files declaring it whose bytes are not already valid UTF-8.
func decodeDocument(data []byte, charset string) (string, error) {
	switch charset {
	case charsetUTF8:
		return string(data), nil
	case charsetWindows1252:
	default:
		preamble := data
		if i := bytes.IndexByte(data, '<'); i != -1 {
			preamble = data[:i]
		}
		if !bytes.Contains(preamble, legacyCharset) || utf8.Valid(data) {
			return string(data), nil
		}
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode windows-1252 content: %w", err)
	}
	return string(decoded), nil
}
