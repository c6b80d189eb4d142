package usecase

import (
	"context"
	"log/slog"

	"github.com/dscvr-app/indexer/internal/core/ports"
)

// Retrieval depth matches the front-end's unpaginated result list.
const searchLimit = 1000

type SearchUseCase struct {
	searcher ports.IndexSearcher
	log      *slog.Logger
}

func NewSearchUseCase(searcher ports.IndexSearcher, log *slog.Logger) *SearchUseCase {
	return &SearchUseCase{searcher: searcher, log: log}
}

// SearchByContents parses the query against the contents field and returns
// the stored paths of the top matches in score order. Unparseable queries and
// internal errors yield an empty list; the UI treats both as "no results".
func (uc *SearchUseCase) SearchByContents(ctx context.Context, query string) []string {
	paths, err := uc.searcher.Search(ctx, query, searchLimit)
	if err != nil {
		uc.log.Error("search failed", "query", query, "error", err)
		return []string{}
	}
	if paths == nil {
		return []string{}
	}
	return paths
}
