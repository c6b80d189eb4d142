package plaintext

import (
	"errors"
	"unicode/utf8"
)

var errNotUTF8 = errors.New("contents are not valid UTF-8")

// Extractor decodes file bytes as UTF-8 text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errNotUTF8
	}
	return string(data), nil
}
