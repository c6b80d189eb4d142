package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

type fakeDuplicateStore struct {
	groups   []domain.DuplicatedFile
	err      error
	lastPage int
}

func (f *fakeDuplicateStore) Upsert(context.Context, domain.FileMetadata) error {
	return nil
}

func (f *fakeDuplicateStore) GroupDuplicates(_ context.Context, page int) ([]domain.DuplicatedFile, error) {
	f.lastPage = page
	return f.groups, f.err
}

func TestFindDuplicatesReturnsFirstPage(t *testing.T) {
	store := &fakeDuplicateStore{groups: []domain.DuplicatedFile{
		{Paths: []string{"/a", "/b"}, Duplicates: 2, AggregatedSize: 10, Hash: "h1"},
	}}
	uc := NewDuplicatesUseCase(store, testLogger())

	groups := uc.FindDuplicates(context.Background(), "")
	if len(groups) != 1 || groups[0].Hash != "h1" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if store.lastPage != 0 {
		t.Fatalf("expected first page, got %d", store.lastPage)
	}
}

func TestFindDuplicatesIgnoresStartingAtPath(t *testing.T) {
	store := &fakeDuplicateStore{groups: []domain.DuplicatedFile{
		{Paths: []string{"/a", "/b"}, Duplicates: 2, AggregatedSize: 10, Hash: "h1"},
	}}
	uc := NewDuplicatesUseCase(store, testLogger())

	groups := uc.FindDuplicates(context.Background(), "/home/user")
	if len(groups) != 1 {
		t.Fatalf("expected the filter to be ignored, got %+v", groups)
	}
}

func TestFindDuplicatesCollapsesErrorsToEmpty(t *testing.T) {
	store := &fakeDuplicateStore{err: fmt.Errorf("db locked")}
	uc := NewDuplicatesUseCase(store, testLogger())

	groups := uc.FindDuplicates(context.Background(), "")
	if groups == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
