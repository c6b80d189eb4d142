package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

func newRepoOnDisk(t *testing.T) *MetadataRepository {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "metadata.sqlite"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewMetadataRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return repo
}

func TestGroupDuplicatesAgainstRealDatabase(t *testing.T) {
	repo := newRepoOnDisk(t)
	ctx := context.Background()
	now := time.Now()

	for _, meta := range []domain.FileMetadata{
		{Path: "/a/big.iso", Hash: "dup-big", Size: 5000, IndexedAt: now},
		{Path: "/b/big.iso", Hash: "dup-big", Size: 5000, IndexedAt: now},
		{Path: "/a/note.txt", Hash: "dup-small", Size: 10, IndexedAt: now},
		{Path: "/b/note.txt", Hash: "dup-small", Size: 10, IndexedAt: now},
		{Path: "/c/note.txt", Hash: "dup-small", Size: 10, IndexedAt: now},
		{Path: "/unique.bin", Hash: "solo", Size: 999999, IndexedAt: now},
	} {
		if err := repo.Upsert(ctx, meta); err != nil {
			t.Fatalf("upsert %s: %v", meta.Path, err)
		}
	}

	groups, err := repo.GroupDuplicates(ctx, 0)
	if err != nil {
		t.Fatalf("group duplicates: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected two duplicate groups, got %+v", groups)
	}
	// Largest aggregated size first; the unique hash never shows up.
	if groups[0].Hash != "dup-big" || groups[0].AggregatedSize != 10000 || groups[0].Duplicates != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Hash != "dup-small" || groups[1].Duplicates != 3 || len(groups[1].Paths) != 3 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestUpsertReplacesExistingRow(t *testing.T) {
	repo := newRepoOnDisk(t)
	ctx := context.Background()

	first := domain.FileMetadata{Path: "/a.txt", Hash: "old", Size: 1, IndexedAt: time.Now()}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second := domain.FileMetadata{Path: "/a.txt", Hash: "new", Size: 2, IndexedAt: time.Now()}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	// A second row with the same hash would otherwise form a false duplicate
	// group with the stale one.
	if err := repo.Upsert(ctx, domain.FileMetadata{Path: "/b.txt", Hash: "new", Size: 2, IndexedAt: time.Now()}); err != nil {
		t.Fatalf("third upsert: %v", err)
	}

	groups, err := repo.GroupDuplicates(ctx, 0)
	if err != nil {
		t.Fatalf("group duplicates: %v", err)
	}
	if len(groups) != 1 || groups[0].Hash != "new" || groups[0].Duplicates != 2 {
		t.Fatalf("expected one fresh duplicate group, got %+v", groups)
	}
}
