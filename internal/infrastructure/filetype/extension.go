package filetype

import (
	"path/filepath"
	"strings"

	"github.com/dscvr-app/indexer/internal/core/domain"
)

// ExtensionStrategy classifies by the lowercased final path suffix. Files
// without an extension pass through to the next strategy.
type ExtensionStrategy struct {
	byExtension map[string]domain.MimeType
}

func NewExtensionStrategy() *ExtensionStrategy {
	return &ExtensionStrategy{byExtension: extensionMimeTypes()}
}

func (s *ExtensionStrategy) Determine(path string) (domain.MimeType, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return domain.MimeUnknown, false
	}
	mimeType, ok := s.byExtension[strings.ToLower(ext)]
	return mimeType, ok
}

func extensionMimeTypes() map[string]domain.MimeType {
	m := make(map[string]domain.MimeType)

	for _, ext := range []string{
		"txt", "xml", "json", "md", "ascii", "env", "gitignore", "taurignore",
		"lock", "toml", "yaml", "rs", "js", "ts", "c", "cpp", "cs", "php",
		"html", "css", "csv", "iml", "cmd", "ps1", "sh", "bash", "fish",
		"java", "bat", "py", "tsx", "jsx", "gradle", "properties", "groovy",
	} {
		m[ext] = domain.TextPlain
	}

	m["avif"] = domain.ImageAvif
	m["bmp"] = domain.ImageBmp
	m["doc"] = domain.ApplicationMsWord
	m["docx"] = domain.ApplicationVndOpenxmlformatsOfficedocumentWordprocessingmlDocument
	m["gif"] = domain.ImageGif
	m["ico"] = domain.ImageIcon
	m["jpg"] = domain.ImageJpeg
	m["jpeg"] = domain.ImageJpeg
	m["odp"] = domain.ApplicationVndOasisOpendocumentPresentation
	m["ods"] = domain.ApplicationVndOasisOpendocumentSpreadsheet
	m["odt"] = domain.ApplicationVndOasisOpendocumentText
	m["png"] = domain.ImagePng
	m["pdf"] = domain.ApplicationPdf
	m["ppt"] = domain.ApplicationVndMsPowerpoint
	m["pptx"] = domain.ApplicationVndOpenxmlformatsOfficedocumentPresentationmlPresentation
	m["rtf"] = domain.ApplicationRtf
	m["svg"] = domain.ImageSvgXml
	m["tif"] = domain.ImageTiff
	m["tiff"] = domain.ImageTiff
	m["xls"] = domain.ApplicationVndMsExcel
	m["xlsx"] = domain.ApplicationVndOpenxmlformatsOfficedocumentSpreadsheetmlSheet

	return m
}
