package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dscvr-app/indexer/internal/core/domain"
	"github.com/dscvr-app/indexer/internal/core/ports"
)

// IndexFilesUseCase runs the per-file ingestion pipeline. It owns the index
// writer: the mutex is held for the whole batch so that a commit never
// interleaves with another batch's pending operations.
type IndexFilesUseCase struct {
	mu sync.Mutex

	loader     ports.ByteLoader
	hasher     ports.ContentHasher
	resolver   ports.FileTypeResolver
	extractors ports.ExtractorRegistry
	index      ports.IndexWriter
	store      ports.MetadataStore
	log        *slog.Logger
}

func NewIndexFilesUseCase(
	loader ports.ByteLoader,
	hasher ports.ContentHasher,
	resolver ports.FileTypeResolver,
	extractors ports.ExtractorRegistry,
	index ports.IndexWriter,
	store ports.MetadataStore,
	log *slog.Logger,
) *IndexFilesUseCase {
	return &IndexFilesUseCase{
		loader:     loader,
		hasher:     hasher,
		resolver:   resolver,
		extractors: extractors,
		index:      index,
		store:      store,
		log:        log,
	}
}

// IndexFiles ingests the batch in submission order and returns the failed
// subset. Per-file errors are isolated; a commit failure rejects the batch.
func (uc *IndexFilesUseCase) IndexFiles(ctx context.Context, files []domain.ScannedFile) ([]domain.ScannedFile, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	failed := make([]domain.ScannedFile, 0)
	for _, file := range files {
		if err := uc.indexOne(ctx, file); err != nil {
			uc.log.Warn("file skipped", "path", file.Path, "error", err)
			failed = append(failed, file)
		}
	}

	if err := uc.index.Commit(); err != nil {
		return nil, domain.WrapError(domain.ErrCommit, "commit index batch", err)
	}
	return failed, nil
}

func (uc *IndexFilesUseCase) indexOne(ctx context.Context, file domain.ScannedFile) error {
	data, release, err := uc.loader.Load(file.Path)
	if err != nil {
		return domain.WrapError(domain.ErrLoad, "load file bytes", err)
	}
	defer release()

	hash := uc.hasher.Sum(data)

	meta, err := uc.snapshotMetadata(file.Path, hash)
	if err != nil {
		return domain.WrapError(domain.ErrLoad, "snapshot file metadata", err)
	}

	contents, err := uc.extractContents(file.Path, data)
	if err != nil {
		return err
	}

	doc := domain.IndexDocument{
		Contents: contents,
		Path:     file.Path,
		Hash:     hash,
	}
	if err := uc.index.AddDocument(doc); err != nil {
		return domain.WrapError(domain.ErrIndexWrite, "add document to index", err)
	}

	if err := uc.store.Upsert(ctx, meta); err != nil {
		// Compensating delete: the pending document must not survive the
		// commit without its metadata row.
		uc.index.DeleteByPath(file.Path)
		return domain.WrapError(domain.ErrMetadataWrite, "persist file metadata", err)
	}
	return nil
}

func (uc *IndexFilesUseCase) extractContents(path string, data []byte) (string, error) {
	mimeType, ok := uc.resolver.Resolve(path)
	if !ok {
		return "", domain.WrapError(domain.ErrUnknownFileType, "determine file type", fmt.Errorf("no strategy classified %s", path))
	}

	extractor, ok := uc.extractors.Lookup(mimeType)
	if !ok {
		return "", domain.WrapError(domain.ErrNoExtractor, "look up extractor", fmt.Errorf("no extractor registered for %s", mimeType))
	}

	contents, err := extractor.Extract(data)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtraction, "extract text", err)
	}
	return contents, nil
}

func (uc *IndexFilesUseCase) snapshotMetadata(path, hash string) (domain.FileMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileMetadata{}, err
	}
	return domain.FileMetadata{
		Path:      path,
		Hash:      hash,
		Size:      uint64(info.Size()),
		IndexedAt: time.Now(),
	}, nil
}
