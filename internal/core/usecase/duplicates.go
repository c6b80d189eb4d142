package usecase

import (
	"context"
	"log/slog"

	"github.com/dscvr-app/indexer/internal/core/domain"
	"github.com/dscvr-app/indexer/internal/core/ports"
)

type DuplicatesUseCase struct {
	store ports.MetadataStore
	log   *slog.Logger
}

func NewDuplicatesUseCase(store ports.MetadataStore, log *slog.Logger) *DuplicatesUseCase {
	return &DuplicatesUseCase{store: store, log: log}
}

// FindDuplicates returns the first page of hash groups with at least two
// members, largest aggregated size first. startingAtPath is reserved and
// currently ignored.
func (uc *DuplicatesUseCase) FindDuplicates(ctx context.Context, startingAtPath string) []domain.DuplicatedFile {
	if startingAtPath != "" {
		uc.log.Debug("startingAtPath filter is not implemented yet", "starting_at_path", startingAtPath)
	}

	groups, err := uc.store.GroupDuplicates(ctx, 0)
	if err != nil {
		uc.log.Error("duplicate grouping failed", "error", err)
		return []domain.DuplicatedFile{}
	}
	if groups == nil {
		return []domain.DuplicatedFile{}
	}
	return groups
}
