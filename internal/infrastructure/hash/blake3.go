package hash

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Blake3Hasher renders a BLAKE3-256 digest as 64 lowercase hex characters.
// Identical bytes hash identically across runs and platforms.
type Blake3Hasher struct{}

func NewBlake3Hasher() *Blake3Hasher {
	return &Blake3Hasher{}
}

func (h *Blake3Hasher) Sum(data []byte) string {
	digest := blake3.Sum256(data)
	return hex.EncodeToString(digest[:])
}
