package pdf

import "testing"

func TestExtractRejectsGarbageBytes(t *testing.T) {
	if _, err := NewExtractor().Extract([]byte("definitely not a pdf")); err == nil {
		t.Fatal("expected an error for non-pdf bytes")
	}
}

func TestExtractSurvivesTruncatedDocument(t *testing.T) {
	// A header with no xref table. Whether the library errors or panics, the
	// extractor must return an error instead of crashing the batch.
	data := []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	if _, err := NewExtractor().Extract(data); err == nil {
		t.Fatal("expected an error for a truncated pdf")
	}
}
