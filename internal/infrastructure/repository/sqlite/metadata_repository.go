package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

const duplicatePageSize = 500

// MetadataRepository is the single-table store of per-path file metadata.
// The connection pool is capped at one connection, which serializes the
// ingestion writer and the duplicate-grouping reader.
type MetadataRepository struct {
	db *sql.DB
}

func NewMetadataRepository(db *sql.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// OpenDB opens the metadata database file, creating it when missing.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *MetadataRepository) EnsureSchema(ctx context.Context) error {
	const query = `
CREATE TABLE IF NOT EXISTS indexed_files (
	path TEXT PRIMARY KEY,
	hash TEXT NOT NULL,
	size INTEGER NOT NULL,
	indexed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_indexed_files_hash ON indexed_files(hash);
`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}
	return nil
}

// Upsert inserts the metadata row for meta.Path; on conflict the later write
// wins, keeping the row in step with the replaced index document.
func (r *MetadataRepository) Upsert(ctx context.Context, meta domain.FileMetadata) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO indexed_files (path, hash, size, indexed_at) VALUES (?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, size = excluded.size, indexed_at = excluded.indexed_at
`, meta.Path, meta.Hash, meta.Size, meta.IndexedAt)
	if err != nil {
		return fmt.Errorf("upsert metadata for %s: %w", meta.Path, err)
	}
	return nil
}

// GroupDuplicates returns one page of hash groups with at least two members,
// ordered by aggregated size descending with the hash as tie-breaker so that
// pagination stays stable.
func (r *MetadataRepository) GroupDuplicates(ctx context.Context, page int) ([]domain.DuplicatedFile, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT
	GROUP_CONCAT(path, ', ') AS paths,
	COUNT(hash) AS duplicates,
	SUM(size) AS aggregated_size,
	hash
FROM indexed_files
GROUP BY hash
HAVING COUNT(hash) > 1
ORDER BY SUM(size) DESC, hash ASC
LIMIT ?
OFFSET ?
`, duplicatePageSize, page*duplicatePageSize)
	if err != nil {
		return nil, fmt.Errorf("query duplicate groups: %w", err)
	}
	defer rows.Close()

	groups := make([]domain.DuplicatedFile, 0)
	for rows.Next() {
		var (
			paths          string
			duplicates     uint64
			aggregatedSize uint64
			hash           string
		)
		if err := rows.Scan(&paths, &duplicates, &aggregatedSize, &hash); err != nil {
			return nil, fmt.Errorf("scan duplicate group: %w", err)
		}
		groups = append(groups, domain.DuplicatedFile{
			Paths:          strings.Split(paths, ", "),
			Duplicates:     duplicates,
			AggregatedSize: aggregatedSize,
			Hash:           hash,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate duplicate groups: %w", err)
	}
	return groups, nil
}
