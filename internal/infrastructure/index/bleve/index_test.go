package bleveindex

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func stage(t *testing.T, idx *Index, doc domain.IndexDocument) {
	t.Helper()
	if err := idx.AddDocument(doc); err != nil {
		t.Fatalf("add document %s: %v", doc.Path, err)
	}
}

func TestSearchMatchesCommittedContents(t *testing.T) {
	idx := openTestIndex(t)

	stage(t, idx, domain.IndexDocument{Contents: "quarterly invoice for office supplies", Path: "/docs/invoice.txt", Hash: "h1"})
	stage(t, idx, domain.IndexDocument{Contents: "holiday photos from the trip", Path: "/docs/photos.txt", Hash: "h2"})
	if err := idx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	paths, err := idx.Search(context.Background(), "invoice", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 1 || paths[0] != "/docs/invoice.txt" {
		t.Fatalf("unexpected result: %v", paths)
	}
}

func TestSearchIgnoresStagedUncommittedDocuments(t *testing.T) {
	idx := openTestIndex(t)

	stage(t, idx, domain.IndexDocument{Contents: "pending document", Path: "/docs/pending.txt", Hash: "h1"})

	paths, err := idx.Search(context.Background(), "pending", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected staged document to be invisible, got %v", paths)
	}
}

func TestReaddingPathReplacesDocument(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()

	stage(t, idx, domain.IndexDocument{Contents: "old draft text", Path: "/docs/a.txt", Hash: "h1"})
	if err := idx.Commit(); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	stage(t, idx, domain.IndexDocument{Contents: "final revision text", Path: "/docs/a.txt", Hash: "h2"})
	if err := idx.Commit(); err != nil {
		t.Fatalf("second commit: %v", err)
	}

	paths, err := idx.Search(ctx, "draft", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected the old document to be gone, got %v", paths)
	}
	paths, err = idx.Search(ctx, "revision", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected the new document, got %v", paths)
	}
}

func TestDeleteCancelsStagedAdd(t *testing.T) {
	idx := openTestIndex(t)

	stage(t, idx, domain.IndexDocument{Contents: "orphaned contents", Path: "/docs/orphan.txt", Hash: "h1"})
	idx.DeleteByPath("/docs/orphan.txt")
	if err := idx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	paths, err := idx.Search(context.Background(), "orphaned", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected the cancelled document to be absent, got %v", paths)
	}
}

func TestSearchDoesNotMatchPathOrHashTerms(t *testing.T) {
	idx := openTestIndex(t)

	stage(t, idx, domain.IndexDocument{Contents: "plain words only", Path: "/docs/secret-project.txt", Hash: "deadbeef"})
	if err := idx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	for _, q := range []string{"secret-project.txt", "deadbeef"} {
		paths, err := idx.Search(context.Background(), q, 10)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(paths) != 0 {
			t.Fatalf("query %q matched non-content fields: %v", q, paths)
		}
	}
}

func TestOpenReopensExistingIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "index")

	idx, err := Open(dir)
	if err != nil {
		t.Fatalf("create index: %v", err)
	}
	stage(t, idx, domain.IndexDocument{Contents: "persisted across restarts", Path: "/docs/a.txt", Hash: "h1"})
	if err := idx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen index: %v", err)
	}
	defer reopened.Close()

	paths, err := reopened.Search(context.Background(), "persisted", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected the document to survive a reopen, got %v", paths)
	}
}
