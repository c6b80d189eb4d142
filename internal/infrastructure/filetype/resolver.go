package filetype

import (
	"github.com/dscvr-app/indexer/internal/core/domain"
)

// Strategy is one classifier in the resolver cascade. Returning false passes
// the file on to the next strategy.
type Strategy interface {
	Determine(path string) (domain.MimeType, bool)
}

// Resolver walks an ordered list of strategies; the first one that classifies
// the file wins. It reports unknown only when every strategy passes.
type Resolver struct {
	strategies []Strategy
}

func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// NewDefaultResolver builds the production cascade: extension lookup first,
// then the readability heuristic, then the reserved magic-byte slot.
func NewDefaultResolver() *Resolver {
	return NewResolver(
		NewExtensionStrategy(),
		NewReadabilityStrategy(),
		NewMagicStrategy(),
	)
}

func (r *Resolver) Resolve(path string) (domain.MimeType, bool) {
	for _, strategy := range r.strategies {
		if mimeType, ok := strategy.Determine(path); ok {
			return mimeType, true
		}
	}
	return domain.MimeUnknown, false
}
