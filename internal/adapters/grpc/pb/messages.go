// Package fileindexerpb holds the wire types for the file_indexer gRPC
// service. The messages are hand-written over protowire instead of generated:
// the schema is four small messages and the repo carries no protoc toolchain.
// api/proto/file_indexer.proto is the source of truth; the encoding here is
// byte-compatible with the clients generated from it.
package fileindexerpb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

type ScannedFile struct {
	Path string
	// Readable and Hash arrive from the preprocessor but carry no authority:
	// the indexer hashes the bytes it reads itself.
	Readable bool
	Hash     string
}

func (m *ScannedFile) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.Path != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Path)
	}
	if m.Readable {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if m.Hash != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, m.Hash)
	}
	return b, nil
}

func (m *ScannedFile) UnmarshalBinary(data []byte) error {
	*m = ScannedFile{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Path = v
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Readable = v != 0
			return n, nil
		case num == 3 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Hash = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type IndexFileQuery struct {
	ScannedFiles []*ScannedFile
}

func (m *IndexFileQuery) MarshalBinary() ([]byte, error) {
	var b []byte
	for _, f := range m.ScannedFiles {
		sub, err := f.MarshalBinary()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (m *IndexFileQuery) UnmarshalBinary(data []byte) error {
	*m = IndexFileQuery{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			sub, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			f := new(ScannedFile)
			if err := f.UnmarshalBinary(sub); err != nil {
				return 0, err
			}
			m.ScannedFiles = append(m.ScannedFiles, f)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type Empty struct{}

func (m *Empty) MarshalBinary() ([]byte, error) { return nil, nil }

func (m *Empty) UnmarshalBinary(data []byte) error {
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type SearchFileByContentsQuery struct {
	Query string
}

func (m *SearchFileByContentsQuery) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.Query != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, m.Query)
	}
	return b, nil
}

func (m *SearchFileByContentsQuery) UnmarshalBinary(data []byte) error {
	*m = SearchFileByContentsQuery{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Query = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type SearchFileResponse struct {
	Path []string
}

func (m *SearchFileResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	for _, p := range m.Path {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, p)
	}
	return b, nil
}

func (m *SearchFileResponse) UnmarshalBinary(data []byte) error {
	*m = SearchFileResponse{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.Path = append(m.Path, v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type FindDuplicatedFilesQuery struct {
	// StartingAtPath is optional on the wire and reserved server-side.
	StartingAtPath *string
}

func (m *FindDuplicatedFilesQuery) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.StartingAtPath != nil {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, *m.StartingAtPath)
	}
	return b, nil
}

func (m *FindDuplicatedFilesQuery) UnmarshalBinary(data []byte) error {
	*m = FindDuplicatedFilesQuery{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			m.StartingAtPath = &v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type DuplicatedFile struct {
	Paths          []string
	AggregatedSize uint64
	Duplicates     uint64
	Hash           string
}

func (m *DuplicatedFile) MarshalBinary() ([]byte, error) {
	var b []byte
	for _, p := range m.Paths {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, p)
	}
	if m.AggregatedSize != 0 {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, m.AggregatedSize)
	}
	if m.Duplicates != 0 {
		b = protowire.AppendTag(b, 3, protowire.VarintType)
		b = protowire.AppendVarint(b, m.Duplicates)
	}
	if m.Hash != "" {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, m.Hash)
	}
	return b, nil
}

func (m *DuplicatedFile) UnmarshalBinary(data []byte) error {
	*m = DuplicatedFile{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Paths = append(m.Paths, v)
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.AggregatedSize = v
			return n, nil
		case num == 3 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			m.Duplicates = v
			return n, nil
		case num == 4 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			m.Hash = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type FindDuplicatedFilesResponse struct {
	Files []*DuplicatedFile
}

func (m *FindDuplicatedFilesResponse) MarshalBinary() ([]byte, error) {
	var b []byte
	for _, f := range m.Files {
		sub, err := f.MarshalBinary()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (m *FindDuplicatedFilesResponse) UnmarshalBinary(data []byte) error {
	*m = FindDuplicatedFilesResponse{}
	return walkFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			sub, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			f := new(DuplicatedFile)
			if err := f.UnmarshalBinary(sub); err != nil {
				return 0, err
			}
			m.Files = append(m.Files, f)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// walkFields drives a field-by-field decode loop. The callback returns the
// number of value bytes consumed; negative values are protowire parse errors.
func walkFields(data []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("consume tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		n, err := field(num, typ, data)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("consume field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return nil
}
