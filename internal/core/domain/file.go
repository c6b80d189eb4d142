package domain

import "time"

// ScannedFile identifies a candidate file by absolute path. The preprocessor
// also sends readability and hash attributes on the wire; the server ignores
// them and computes its own hash from the bytes it reads.
type ScannedFile struct {
	Path string `json:"path"`
}

// FileMetadata is the relational record persisted for every indexed file.
// Hash and Size are taken from the same byte snapshot.
type FileMetadata struct {
	Path      string    `json:"path"`
	Hash      string    `json:"hash"`
	Size      uint64    `json:"size"`
	IndexedAt time.Time `json:"indexed_at"`
}

// IndexDocument is the full-text index entry for a file.
type IndexDocument struct {
	Contents string `json:"contents"`
	Path     string `json:"path"`
	Hash     string `json:"hash"`
}

// DuplicatedFile is a derived view grouping files that share a content hash.
// Duplicates always equals len(Paths) and is at least 2.
type DuplicatedFile struct {
	Paths          []string `json:"paths"`
	Duplicates     uint64   `json:"duplicates"`
	AggregatedSize uint64   `json:"aggregated_size"`
	Hash           string   `json:"hash"`
}
