package extractor

import (
	"github.com/dscvr-app/indexer/internal/core/domain"
	"github.com/dscvr-app/indexer/internal/core/ports"
	"github.com/dscvr-app/indexer/internal/infrastructure/extractor/noop"
	"github.com/dscvr-app/indexer/internal/infrastructure/extractor/pdf"
	"github.com/dscvr-app/indexer/internal/infrastructure/extractor/plaintext"
)

// Registry maps each recognized MimeType to its extraction strategy. Types
// without an entry are per-file ingestion failures.
type Registry struct {
	byMimeType map[domain.MimeType]ports.TextExtractor
}

func NewRegistry(byMimeType map[domain.MimeType]ports.TextExtractor) *Registry {
	return &Registry{byMimeType: byMimeType}
}

// NewDefaultRegistry wires plain-text and PDF extraction plus no-op entries
// for the binary formats, which are indexed for duplicate detection only.
func NewDefaultRegistry() *Registry {
	byMimeType := map[domain.MimeType]ports.TextExtractor{
		domain.TextPlain:      plaintext.NewExtractor(),
		domain.ApplicationPdf: pdf.NewExtractor(),
	}

	noOp := noop.NewExtractor()
	for _, mimeType := range domain.BinaryMimeTypes() {
		byMimeType[mimeType] = noOp
	}

	return NewRegistry(byMimeType)
}

func (r *Registry) Lookup(mimeType domain.MimeType) (ports.TextExtractor, bool) {
	e, ok := r.byMimeType[mimeType]
	return e, ok
}
