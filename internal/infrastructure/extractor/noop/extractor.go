package noop

// Extractor returns no text. Binary formats go through it so their hash and
// metadata still land in the index for duplicate detection.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract([]byte) (string, error) {
	return "", nil
}
