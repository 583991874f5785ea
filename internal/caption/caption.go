package caption

// Caption is one fully extracted, structurally valid caption block. All
// structural fields are non-empty and were parsed from contiguous source
// lines; blocks that fail structural validation never become Captions.
type Caption struct {
	// StartOffset is the flat byte offset of the block's first line.
	StartOffset int
	// FullText is the block's source lines joined with "\n".
	FullText string
	// ImagePath is the full path captured inside the image tag; Directory
	// is its path prefix, "" when absent.
	ImagePath string
	Directory string
	// Filename is the VIRIN stem of the image file.
	Filename string
	Keywords []string
	// Title is the raw title line; VIRIN is the title with the trailing
	// backslash stripped.
	Title string
	VIRIN string
	// Description is the raw description line, stored verbatim.
	Description string

	// document-flat byte spans used to anchor cross-field diagnostics
	filenameStart, filenameEnd int
	titleStart, titleEnd       int
	descStart, descEnd         int
}
