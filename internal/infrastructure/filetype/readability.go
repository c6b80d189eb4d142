package filetype

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

// Above this fraction of printable bytes a file counts as human readable.
const readableThreshold = 0.70

// ReadabilityStrategy maps the file and counts bytes that are ASCII graphic
// or ASCII whitespace. Files that are mostly printable classify as plain
// text; everything else passes through. A single pass over the bytes.
type ReadabilityStrategy struct{}

func NewReadabilityStrategy() *ReadabilityStrategy {
	return &ReadabilityStrategy{}
}

func (s *ReadabilityStrategy) Determine(path string) (domain.MimeType, bool) {
	file, err := os.Open(path)
	if err != nil {
		return domain.MimeUnknown, false
	}
	defer file.Close()

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return domain.MimeUnknown, false
	}
	defer mapped.Unmap()

	if len(mapped) == 0 {
		return domain.MimeUnknown, false
	}

	readable := 0
	for _, b := range mapped {
		if isASCIIGraphic(b) || isASCIIWhitespace(b) {
			readable++
		}
	}

	if float64(readable)/float64(len(mapped)) > readableThreshold {
		return domain.TextPlain, true
	}
	return domain.MimeUnknown, false
}

func isASCIIGraphic(b byte) bool {
	return b >= '!' && b <= '~'
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
