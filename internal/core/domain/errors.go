package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLoad            = errors.New("load failure")
	ErrUnknownFileType = errors.New("unknown file type")
	ErrNoExtractor     = errors.New("no extractor for file type")
	ErrExtraction      = errors.New("extraction failure")
	ErrIndexWrite      = errors.New("index write failure")
	ErrMetadataWrite   = errors.New("metadata write failure")
	ErrCommit          = errors.New("commit failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
