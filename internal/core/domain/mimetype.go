package domain

// MimeType is the closed set of content categories the indexer recognizes.
// Values compare with ==; Unknown is the zero value.
type MimeType string

const (
	MimeUnknown MimeType = ""

	TextPlain      MimeType = "text/plain"
	ApplicationPdf MimeType = "application/pdf"

	ApplicationMsWord                                                   MimeType = "application/msword"
	ApplicationVndOpenxmlformatsOfficedocumentWordprocessingmlDocument  MimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ApplicationVndOasisOpendocumentPresentation                         MimeType = "application/vnd.oasis.opendocument.presentation"
	ApplicationVndOasisOpendocumentSpreadsheet                          MimeType = "application/vnd.oasis.opendocument.spreadsheet"
	ApplicationVndOasisOpendocumentText                                 MimeType = "application/vnd.oasis.opendocument.text"
	ApplicationVndMsPowerpoint                                          MimeType = "application/vnd.ms-powerpoint"
	ApplicationVndOpenxmlformatsOfficedocumentPresentationmlPresentation MimeType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	ApplicationRtf                                                      MimeType = "application/rtf"
	ApplicationVndMsExcel                                               MimeType = "application/vnd.ms-excel"
	ApplicationVndOpenxmlformatsOfficedocumentSpreadsheetmlSheet        MimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ImageAvif   MimeType = "image/avif"
	ImageBmp    MimeType = "image/bmp"
	ImageGif    MimeType = "image/gif"
	ImageIcon   MimeType = "image/vnd.microsoft.icon"
	ImageJpeg   MimeType = "image/jpeg"
	ImagePng    MimeType = "image/png"
	ImageSvgXml MimeType = "image/svg+xml"
	ImageTiff   MimeType = "image/tiff"
	ImageWebp   MimeType = "image/webp"
)

// BinaryMimeTypes lists the recognized types whose contents are not text
// searchable. They are still hashed and indexed for duplicate detection.
func BinaryMimeTypes() []MimeType {
	return []MimeType{
		ApplicationMsWord,
		ApplicationVndOpenxmlformatsOfficedocumentWordprocessingmlDocument,
		ApplicationVndOasisOpendocumentPresentation,
		ApplicationVndOasisOpendocumentSpreadsheet,
		ApplicationVndOasisOpendocumentText,
		ApplicationVndMsPowerpoint,
		ApplicationVndOpenxmlformatsOfficedocumentPresentationmlPresentation,
		ApplicationRtf,
		ApplicationVndMsExcel,
		ApplicationVndOpenxmlformatsOfficedocumentSpreadsheetmlSheet,
		ImageAvif,
		ImageBmp,
		ImageGif,
		ImageIcon,
		ImageJpeg,
		ImagePng,
		ImageSvgXml,
		ImageTiff,
		ImageWebp,
	}
}
