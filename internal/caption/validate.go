package caption

import (
	"strings"

	"github.com/mediadesk/caplint/internal/diag"
	"github.com/mediadesk/caplint/internal/pattern"
)

// Validate runs the cross-field consistency checks on a built caption.
//
// The file-name and date checks form one chain: when the file name does not
// match the title VIRIN the date comparison has no trustworthy source, so
// it is skipped. The style checks on the description always run.
func Validate(c *Caption, sink *diag.Sink, pos diag.PositionFunc) {
	fnRange := diag.Range{Start: pos(c.filenameStart), End: pos(c.filenameEnd)}
	titleRange := diag.Range{Start: pos(c.titleStart), End: pos(c.titleEnd)}
	descRange := diag.Range{Start: pos(c.descStart), End: pos(c.descEnd)}

	if c.Filename != c.VIRIN {
		sink.Warnf(fnRange, "File name %q does not match the caption title %q.", c.Filename, c.VIRIN)
		sink.Warnf(titleRange, "Caption title %q does not match the file name %q.", c.VIRIN, c.Filename)
	} else if want, ok := pattern.FormatVirinDate(c.VIRIN); !ok {
		// Structurally impossible after Build, but the date comparison must
		// never run against a garbage month index.
		sink.Errorf(titleRange, "Caption title %q does not contain a valid date.", c.VIRIN)
	} else if phrase, s, e, found := pattern.FindDatePhrase(c.Description); !found {
		sink.Warnf(descRange, "Description does not contain a date like %q.", want)
	} else if phrase != want {
		sink.Warnf(diag.Range{Start: pos(c.descStart + s), End: pos(c.descStart + e)},
			"Expected the date %q but found %q.", want, phrase)
	}

	if !strings.HasSuffix(c.Description, `\`) {
		sink.Warnf(diag.Range{Start: pos(c.descEnd), End: pos(c.descEnd + 1)},
			"Description should end with a backslash.")
	}

	for _, span := range pattern.FindDoubledPunct(c.Description) {
		sink.Warnf(diag.Range{Start: pos(c.descStart + span[0]), End: pos(c.descStart + span[1])},
			"Doubled punctuation %q.", c.Description[span[0]:span[1]])
	}

	for _, r := range pattern.Ranks() {
		for _, m := range r.FindAll(c.Description) {
			sink.Warnf(diag.Range{Start: pos(c.descStart + m.Start), End: pos(c.descStart + m.End)},
				"%q should be written as %q.", m.Text, r.Canonical)
		}
	}

	for _, p := range pattern.Parentheticals(c.Description) {
		if pattern.IsCreditConvention(p.Content) {
			continue
		}
		if strings.Count(c.Description, p.Content) < 2 {
			sink.Warnf(diag.Range{Start: pos(c.descStart + p.Start), End: pos(c.descStart + p.End)},
				"%q is never used a second time.", p.Content)
		}
	}
}
