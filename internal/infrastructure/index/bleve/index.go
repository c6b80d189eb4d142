package bleveindex

import (
	"context"
	"fmt"

	bleve "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

// Index wraps a bleve index with the three-field file schema. Documents are
// keyed by path, so re-adding a path replaces its previous document and a
// staged delete cancels a staged add within the same batch.
//
// Adds and deletes stage into a batch; Commit applies the batch atomically.
// Searches always observe the last committed state.
type Index struct {
	idx   bleve.Index
	batch *bleve.Batch
}

// Open opens the index at path, creating it with the file schema when it
// does not exist yet.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.NewUsing(path, buildFileMapping(), "scorch", "scorch", nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open index at %s: %w", path, err)
	}
	return &Index{idx: idx, batch: idx.NewBatch()}, nil
}

func buildFileMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	contentsField := bleve.NewTextFieldMapping()
	contentsField.Store = true
	docMapping.AddFieldMappingsAt("contents", contentsField)

	pathField := bleve.NewTextFieldMapping()
	pathField.Analyzer = keyword.Name
	pathField.Store = true
	pathField.IncludeInAll = false
	docMapping.AddFieldMappingsAt("path", pathField)

	hashField := bleve.NewTextFieldMapping()
	hashField.Analyzer = keyword.Name
	hashField.Store = true
	hashField.IncludeInAll = false
	docMapping.AddFieldMappingsAt("hash", hashField)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = docMapping
	return m
}

// AddDocument stages a document keyed by its path.
func (i *Index) AddDocument(doc domain.IndexDocument) error {
	if err := i.batch.Index(doc.Path, doc); err != nil {
		return fmt.Errorf("stage document %s: %w", doc.Path, err)
	}
	return nil
}

// DeleteByPath stages the removal of the document keyed by path. Staging a
// delete over a staged add drops the add, which is exactly what the
// compensating delete in the ingestion pipeline needs.
func (i *Index) DeleteByPath(path string) {
	i.batch.Delete(path)
}

// Commit applies all staged operations atomically and starts a fresh batch.
func (i *Index) Commit() error {
	if err := i.idx.Batch(i.batch); err != nil {
		return fmt.Errorf("apply index batch: %w", err)
	}
	i.batch = i.idx.NewBatch()
	return nil
}

// Search parses query against the contents field (the only field included in
// the default composite) and returns the stored path values of the top
// matches in score order. A document may carry several stored paths; all of
// them are yielded.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]string, error) {
	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"path"}

	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	paths := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		switch v := hit.Fields["path"].(type) {
		case string:
			paths = append(paths, v)
		case []interface{}:
			for _, item := range v {
				if s, ok := item.(string); ok {
					paths = append(paths, s)
				}
			}
		}
	}
	return paths, nil
}

func (i *Index) Close() error {
	return i.idx.Close()
}
