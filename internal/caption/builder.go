package caption

import (
	"strings"

	"github.com/mediadesk/caplint/internal/diag"
	"github.com/mediadesk/caplint/internal/pattern"
)

// maxKeywords caps the combined count of base keywords and a caption's own
// keywords.
const maxKeywords = 6

// Field is the extraction state of a block: which structural field the next
// line is expected to supply. Fields are populated strictly in this order.
type Field int

const (
	AwaitingImageTag Field = iota
	AwaitingKeywords
	AwaitingTitle
	AwaitingDescription
	Complete
)

func (f Field) String() string {
	switch f {
	case AwaitingImageTag:
		return "image tag"
	case AwaitingKeywords:
		return "keywords"
	case AwaitingTitle:
		return "image title"
	case AwaitingDescription:
		return "description"
	default:
		return "complete"
	}
}

// Builder accumulates one caption block line by line. A line that does not
// match the shape of the awaited field produces an Error and leaves the
// field unset, so subsequent lines keep being tried against the same field;
// the block then never completes and is dropped at end of document.
type Builder struct {
	state       Field
	startOffset int
	lines       []string

	imagePath string
	imageDir  string
	imageBase string
	// document-flat byte span of the file name inside the image tag
	filenameStart, filenameEnd int

	keywords                   []string
	keywordsStart, keywordsEnd int

	title          string
	virin          string
	titleBackslash bool
	titleStart     int
	titleEnd       int

	description        string
	descStart, descEnd int

	leadingBlankSeen bool
}

func NewBuilder() *Builder {
	return &Builder{state: AwaitingImageTag}
}

// State returns the next field the builder expects.
func (b *Builder) State() Field { return b.state }

// IsEmpty reports whether the block has received any non-blank line yet.
func (b *Builder) IsEmpty() bool { return len(b.lines) == 0 }

// StartOffset is the flat offset of the block's first recorded line. Only
// meaningful when the builder is not empty.
func (b *Builder) StartOffset() int { return b.startOffset }

// FirstMissingField names the first absent field in fixed priority order,
// for the trailing-incomplete-block diagnostic.
func (b *Builder) FirstMissingField() string { return b.state.String() }

// Consume advances the block by one source line. Blank lines before the
// first contribution are the expected separator between captions; a
// non-blank line arriving without one draws a single warning and the flag
// self-heals so each block warns at most once.
func (b *Builder) Consume(line string, offset int, sink *diag.Sink, pos diag.PositionFunc) {
	if b.IsEmpty() {
		if strings.TrimSpace(line) == "" {
			b.leadingBlankSeen = true
			return
		}
		if !b.leadingBlankSeen {
			sink.Warnf(lineRange(pos, offset, line), "There should be at least one blank line between captions.")
			b.leadingBlankSeen = true
		}
		b.startOffset = offset
	}
	b.lines = append(b.lines, line)

	// Blank lines inside a block are recorded (the block's text must stay
	// contiguous) but are never dispatched to field extraction, so the same
	// field is retried on the next line.
	if strings.TrimSpace(line) == "" {
		return
	}

	switch b.state {
	case AwaitingImageTag:
		b.consumeImageTag(line, offset, sink, pos)
	case AwaitingKeywords:
		b.consumeKeywords(line, offset, sink, pos)
	case AwaitingTitle:
		b.consumeTitle(line, offset, sink, pos)
	case AwaitingDescription:
		b.consumeDescription(line, offset)
	}
}

func (b *Builder) consumeImageTag(line string, offset int, sink *diag.Sink, pos diag.PositionFunc) {
	path, ok := pattern.MatchImageTag(line)
	if !ok {
		sink.Errorf(lineRange(pos, offset, line), "Expected an image tag like ![](<folder/250101-A-AB123-0001.jpg>).")
		return
	}
	b.imagePath = path
	b.imageDir, b.imageBase = pattern.SplitImagePath(path)
	// the tag opens with the five bytes "![](<", then the directory prefix
	b.filenameStart = offset + 5 + (len(path) - len(b.imageBase))
	b.filenameEnd = b.filenameStart + len(b.imageBase)
	b.state = AwaitingKeywords
}

func (b *Builder) consumeKeywords(line string, offset int, sink *diag.Sink, pos diag.PositionFunc) {
	if kws, ok := pattern.MatchKeywords(line); ok {
		b.keywords = kws
		b.keywordsStart, b.keywordsEnd = offset, offset+len(line)
		b.state = AwaitingTitle
		return
	}
	sink.Errorf(lineRange(pos, offset, line), "Expected a keywords line like Keywords: first; second;.")
	if tail, s, e, found := pattern.UnfinishedKeyword(line); found {
		sink.Errorf(diag.Range{Start: pos(offset + s), End: pos(offset + e)},
			"Unfinished keyword %q: each keyword must end with a semicolon.", tail)
	}
}

func (b *Builder) consumeTitle(line string, offset int, sink *diag.Sink, pos diag.PositionFunc) {
	virin, backslash, ok := pattern.MatchTitle(line)
	if !ok {
		sink.Errorf(lineRange(pos, offset, line), `Expected an image title like 250101-A-AB123-0001\.`)
		return
	}
	b.title = line
	b.virin = virin
	b.titleBackslash = backslash
	b.titleStart, b.titleEnd = offset, offset+len(line)
	b.state = AwaitingDescription
}

func (b *Builder) consumeDescription(line string, offset int) {
	// Descriptions are free text and stored verbatim.
	b.description = line
	b.descStart, b.descEnd = offset, offset+len(line)
	b.state = Complete
}

// Build converts a complete block into a Caption. It runs the block's own
// structural checks first: strict image file name, combined keyword budget,
// and title backslash. A block failing any of them returns nil so the
// cross-field checks, which assume a well-formed caption, never see it.
// The missing title backslash alone is a warning and does not fail the
// build; the VIRIN is still recoverable.
func (b *Builder) Build(baseKeywordCount int, sink *diag.Sink, pos diag.PositionFunc) *Caption {
	if b.state != Complete {
		return nil
	}
	ok := true

	filename := ""
	fnRange := diag.Range{Start: pos(b.filenameStart), End: pos(b.filenameEnd)}
	ext := pattern.FileExt(b.imageBase)
	switch {
	case ext == "":
		sink.Warnf(fnRange, "Image file %q has no extension; expected .jpg or .mp4.", b.imageBase)
		ok = false
	case !pattern.IsAllowedExt(ext):
		sink.Warnf(fnRange, "Image file extension %q is not allowed; expected .jpg or .mp4.", "."+ext)
		ok = false
	default:
		stem := strings.TrimSuffix(b.imageBase, "."+ext)
		if !pattern.IsVIRIN(stem) {
			sink.Warnf(fnRange, "Image file name %q is not a valid VIRIN.", stem)
			ok = false
		} else {
			filename = stem
		}
	}

	if n := baseKeywordCount + len(b.keywords); n > maxKeywords {
		sink.Errorf(diag.Range{Start: pos(b.keywordsStart), End: pos(b.keywordsEnd)},
			"%d base keywords and %d image-specific keywords exceed the maximum of %d keywords per caption.",
			baseKeywordCount, len(b.keywords), maxKeywords)
		ok = false
	}

	if !b.titleBackslash {
		sink.Warnf(diag.Range{Start: pos(b.titleStart), End: pos(b.titleEnd)},
			"Image title should end with a backslash.")
	}

	if !ok {
		return nil
	}
	return &Caption{
		StartOffset:   b.startOffset,
		FullText:      strings.Join(b.lines, "\n"),
		ImagePath:     b.imagePath,
		Directory:     b.imageDir,
		Filename:      filename,
		Keywords:      b.keywords,
		Title:         b.title,
		VIRIN:         b.virin,
		Description:   b.description,
		filenameStart: b.filenameStart,
		filenameEnd:   b.filenameEnd,
		titleStart:    b.titleStart,
		titleEnd:      b.titleEnd,
		descStart:     b.descStart,
		descEnd:       b.descEnd,
	}
}

func lineRange(pos diag.PositionFunc, offset int, line string) diag.Range {
	return diag.Range{Start: pos(offset), End: pos(offset + len(line))}
}
