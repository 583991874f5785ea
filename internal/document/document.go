package document

import (
	"sort"
	"strings"

	"github.com/mediadesk/caplint/internal/diag"
)

// Document is an immutable snapshot of one caption document: its lines and
// the offset table mapping flat byte offsets back to line/character
// positions. It is rebuilt from scratch on every validation; no state is
// carried between edits.
type Document struct {
	text    string
	lines   []string
	offsets []int // flat byte offset of the start of each line
}

// New splits text on "\n" and builds the line-offset table.
func New(text string) *Document {
	lines := strings.Split(text, "\n")
	offsets := make([]int, len(lines))
	off := 0
	for i, line := range lines {
		offsets[i] = off
		off += len(line) + 1
	}
	return &Document{text: text, lines: lines, offsets: offsets}
}

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// Lines returns the document's lines in order.
func (d *Document) Lines() []string { return d.lines }

// OffsetOfLine returns the flat byte offset where line i starts.
func (d *Document) OffsetOfLine(i int) int { return d.offsets[i] }

// PositionAt maps a flat byte offset to a zero-based line/character pair.
// Offsets past the end of the text clamp to the last position.
func (d *Document) PositionAt(offset int) diag.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	// first line starting after offset, minus one
	i := sort.Search(len(d.offsets), func(i int) bool { return d.offsets[i] > offset }) - 1
	return diag.Position{Line: i, Character: offset - d.offsets[i]}
}
