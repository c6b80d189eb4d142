package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Files up to this size are read into memory in one shot; anything larger is
// memory-mapped instead.
const DefaultMemoryLimit = 1 << 30

// Loader opens regular files and hands out their contents as a contiguous
// byte slice.
type Loader struct {
	memoryLimit int64
}

func New() *Loader {
	return &Loader{memoryLimit: DefaultMemoryLimit}
}

// NewWithLimit exists for tests that exercise the mmap path without
// gigabyte-sized fixtures.
func NewWithLimit(limit int64) *Loader {
	return &Loader{memoryLimit: limit}
}

// Load returns the file's bytes and a release func. For memory-mapped files
// the bytes are only valid until release is called.
func (l *Loader) Load(path string) ([]byte, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("stat file: %w", err)
	}

	if info.Size() <= l.memoryLimit {
		defer file.Close()
		data := make([]byte, info.Size())
		if _, err := io.ReadFull(file, data); err != nil {
			return nil, nil, fmt.Errorf("read file: %w", err)
		}
		return data, func() {}, nil
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("mmap file: %w", err)
	}
	release := func() {
		_ = mapped.Unmap()
		_ = file.Close()
	}
	return mapped, release, nil
}
