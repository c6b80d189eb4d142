package ports

import (
	"context"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

// FileIndexer is the inbound contract for batch ingestion. It returns the
// subset of the batch that failed; a non-nil error rejects the whole batch.
type FileIndexer interface {
	IndexFiles(ctx context.Context, files []domain.ScannedFile) ([]domain.ScannedFile, error)
}

// FileSearcher is the inbound contract for full-text search. Errors collapse
// to an empty result set; the front-end never sees a transport failure.
type FileSearcher interface {
	SearchByContents(ctx context.Context, query string) []string
}

// DuplicateFinder is the inbound contract for duplicate grouping.
// startingAtPath is accepted but reserved for a future revision.
type DuplicateFinder interface {
	FindDuplicates(ctx context.Context, startingAtPath string) []domain.DuplicatedFile
}
