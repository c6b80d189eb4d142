package filetype

import (
	"github.com/dscvr-app/indexer/internal/core/domain"
)

// MagicStrategy is the reserved magic-byte signature slot in the cascade.
// It currently classifies nothing.
type MagicStrategy struct{}

func NewMagicStrategy() *MagicStrategy {
	return &MagicStrategy{}
}

func (s *MagicStrategy) Determine(string) (domain.MimeType, bool) {
	return domain.MimeUnknown, false
}
