package fileindexerpb

import (
	stdencoding "encoding"
	"fmt"
)

// Codec serializes the wire types in this package. It registers under the
// "proto" name so stock protobuf clients interoperate without extra
// content-subtype negotiation.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(stdencoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("codec: cannot marshal %T", v)
	}
	return m.MarshalBinary()
}

func (Codec) Unmarshal(data []byte, v any) error {
	u, ok := v.(stdencoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("codec: cannot unmarshal into %T", v)
	}
	return u.UnmarshalBinary(data)
}
