package extractor

import (
	"testing"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

func TestDefaultRegistryCoversRecognizedTypes(t *testing.T) {
	r := NewDefaultRegistry()

	if _, ok := r.Lookup(domain.TextPlain); !ok {
		t.Fatal("expected a plain-text extractor")
	}
	if _, ok := r.Lookup(domain.ApplicationPdf); !ok {
		t.Fatal("expected a pdf extractor")
	}
	for _, mimeType := range domain.BinaryMimeTypes() {
		if _, ok := r.Lookup(mimeType); !ok {
			t.Fatalf("expected a no-op extractor for %s", mimeType)
		}
	}
}

func TestDefaultRegistryBinaryTypesYieldNoText(t *testing.T) {
	r := NewDefaultRegistry()

	e, ok := r.Lookup(domain.ImagePng)
	if !ok {
		t.Fatal("expected an extractor for png")
	}
	text, err := e.Extract([]byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text for a binary format, got %q", text)
	}
}

func TestLookupUnknownTypeFails(t *testing.T) {
	r := NewDefaultRegistry()

	if _, ok := r.Lookup(domain.MimeUnknown); ok {
		t.Fatal("expected no extractor for an unknown type")
	}
}
