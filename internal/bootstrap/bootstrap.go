package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dscvr-app/indexer/internal/config"
	"github.com/dscvr-app/indexer/internal/core/ports"
	"github.com/dscvr-app/indexer/internal/core/usecase"
	"github.com/dscvr-app/indexer/internal/infrastructure/extractor"
	"github.com/dscvr-app/indexer/internal/infrastructure/filetype"
	"github.com/dscvr-app/indexer/internal/infrastructure/hash"
	bleveindex "github.com/dscvr-app/indexer/internal/infrastructure/index/bleve"
	"github.com/dscvr-app/indexer/internal/infrastructure/loader"
	"github.com/dscvr-app/indexer/internal/infrastructure/repository/sqlite"
	"github.com/dscvr-app/indexer/internal/observability/metrics"
)

type App struct {
	Config *config.Config

	IndexUC      ports.FileIndexer
	SearchUC     ports.FileSearcher
	DuplicatesUC ports.DuplicateFinder
	Metrics      *metrics.IndexerMetrics

	closeFn func()
}

// New wires the ingestion pipeline and the query paths on top of the on-disk
// index and the metadata database, both rooted under cfg.Common.BaseDir.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	indexPath := filepath.Join(cfg.Common.BaseDir, cfg.Indexer.IndexDirectoryName)
	if err := os.MkdirAll(cfg.Common.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	idx, err := bleveindex.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	dbPath := filepath.Join(cfg.Common.BaseDir, cfg.Indexer.DBFileName)
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		idx.Close()
		return nil, fmt.Errorf("open metadata db: %w", err)
	}
	repo := sqlite.NewMetadataRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		idx.Close()
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	indexUC := usecase.NewIndexFilesUseCase(
		loader.New(),
		hash.NewBlake3Hasher(),
		filetype.NewDefaultResolver(),
		extractor.NewDefaultRegistry(),
		idx,
		repo,
		log,
	)
	searchUC := usecase.NewSearchUseCase(idx, log)
	duplicatesUC := usecase.NewDuplicatesUseCase(repo, log)

	return &App{
		Config: cfg,

		IndexUC:      indexUC,
		SearchUC:     searchUC,
		DuplicatesUC: duplicatesUC,
		Metrics:      metrics.NewIndexerMetrics(),

		closeFn: func() {
			if err := idx.Close(); err != nil {
				log.Error("close index", "error", err)
			}
			if err := db.Close(); err != nil {
				log.Error("close metadata db", "error", err)
			}
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
