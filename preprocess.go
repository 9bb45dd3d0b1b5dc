package goofx

import "strings"

const byteOrderMark = "\ufeff"

// preprocessOFXData strips a leading byte order mark which some exporters prepend to
// otherwise valid headers.
func preprocessOFXData(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}
