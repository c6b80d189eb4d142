package ports

import (
	"context"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

// ByteLoader produces the full contents of a regular file. The returned
// release func must be called once the bytes are no longer needed; it unmaps
// memory-mapped views and is a no-op for in-memory reads.
type ByteLoader interface {
	Load(path string) (data []byte, release func(), err error)
}

// ContentHasher computes a stable content digest rendered as lowercase hex.
type ContentHasher interface {
	Sum(data []byte) string
}

// FileTypeResolver determines the content category of a file. The second
// return value is false when no strategy could classify the file.
type FileTypeResolver interface {
	Resolve(path string) (domain.MimeType, bool)
}

// TextExtractor turns file bytes into indexable UTF-8 text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// ExtractorRegistry maps a content category to its extraction strategy.
type ExtractorRegistry interface {
	Lookup(mimeType domain.MimeType) (TextExtractor, bool)
}

// IndexWriter is the single-writer handle on the inverted index. AddDocument
// and DeleteByPath stage pending operations; Commit makes them durable and
// atomically visible to subsequent readers.
type IndexWriter interface {
	AddDocument(doc domain.IndexDocument) error
	DeleteByPath(path string)
	Commit() error
}

// IndexSearcher runs full-text queries against the committed index state.
type IndexSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// MetadataStore persists per-path file metadata and answers the duplicate
// grouping query.
type MetadataStore interface {
	Upsert(ctx context.Context, meta domain.FileMetadata) error
	GroupDuplicates(ctx context.Context, page int) ([]domain.DuplicatedFile, error)
}
