package document

import (
	"strings"

	"github.com/mediadesk/caplint/internal/caption"
	"github.com/mediadesk/caplint/internal/diag"
	"github.com/mediadesk/caplint/internal/pattern"
)

// DefaultMaxProblems is the diagnostic cap applied when the caller does not
// configure one.
const DefaultMaxProblems = 1000

// Preamble holds the fixed document header extracted once per document.
// Fields may hold sentinel empty values when their line was malformed; the
// corresponding diagnostics are already in the sink by then.
type Preamble struct {
	Headline     string
	Byline       string
	BaseKeywords []string
}

// Result is the output of one validation run.
type Result struct {
	Preamble    Preamble
	Captions    []*caption.Caption
	Diagnostics []diag.Diagnostic
}

// driver states; each preamble state consumes exactly one non-blank line.
type state int

const (
	awaitingHeadline state = iota
	awaitingByline
	awaitingBaseKeywords
	extractingCaptions
)

// Validate lints one document and returns its diagnostics in emission
// order. It is a thin wrapper around Run for callers that only want the
// findings.
func Validate(text string, maxProblems int) []diag.Diagnostic {
	return Run(text, maxProblems).Diagnostics
}

// Run lints one document: it parses the preamble, drives the block
// extractor across the remaining lines, reports a trailing incomplete
// block, and cross-validates every built caption in document order. Each
// run is independent; the same text always yields the same result.
func Run(text string, maxProblems int) Result {
	d := New(text)
	sink := diag.NewSink(maxProblems)
	pos := diag.PositionFunc(d.PositionAt)

	var pre Preamble
	var captions []*caption.Caption
	builder := caption.NewBuilder()
	st := awaitingHeadline

	for i, line := range d.Lines() {
		offset := d.OffsetOfLine(i)
		if st != extractingCaptions && strings.TrimSpace(line) == "" {
			// blank lines do not count as "set"; the state is retried
			continue
		}
		switch st {
		case awaitingHeadline:
			pre.Headline = line
			st = awaitingByline
		case awaitingByline:
			name, ok := pattern.MatchByline(line)
			if !ok {
				sink.Errorf(lineRange(pos, offset, line), "Expected a byline like By Firstname Lastname.")
			}
			pre.Byline = name
			st = awaitingBaseKeywords
		case awaitingBaseKeywords:
			kws, ok := pattern.MatchKeywords(line)
			if !ok {
				sink.Errorf(lineRange(pos, offset, line), "Expected a keywords line like Keywords: first; second;.")
				if tail, s, e, found := pattern.UnfinishedKeyword(line); found {
					sink.Errorf(diag.Range{Start: pos(offset + s), End: pos(offset + e)},
						"Unfinished keyword %q: each keyword must end with a semicolon.", tail)
				}
				kws = []string{}
			}
			pre.BaseKeywords = kws
			st = extractingCaptions
		case extractingCaptions:
			builder.Consume(line, offset, sink, pos)
			if builder.State() == caption.Complete {
				if c := builder.Build(len(pre.BaseKeywords), sink, pos); c != nil {
					captions = append(captions, c)
				}
				builder = caption.NewBuilder()
			}
		}
	}

	if !builder.IsEmpty() {
		r := diag.Range{Start: pos(builder.StartOffset()), End: pos(len(text))}
		sink.Errorf(r, "Caption at the end of the document is missing its %s.", builder.FirstMissingField())
	}

	for _, c := range captions {
		caption.Validate(c, sink, pos)
	}

	return Result{Preamble: pre, Captions: captions, Diagnostics: sink.Items()}
}

func lineRange(pos diag.PositionFunc, offset int, line string) diag.Range {
	return diag.Range{Start: pos(offset), End: pos(offset + len(line))}
}
