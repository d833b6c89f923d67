package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps body so that it yields UTF-8 regardless of the source encoding.
//
// The encoding is taken from contentType when it declares a charset, otherwise it is
// detected from a BOM, a <meta> tag, or by heuristics. UTF-8 input passes through unchanged.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
