package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mediadesk/caplint/internal/diag"
)

// FileResult pairs a linted file with its findings.
type FileResult struct {
	Path        string `json:"path"`
	Diagnostics []Item `json:"diagnostics"`
}

// Item is one finding rendered for output. Lines and columns are one-based
// here; the validator itself works with zero-based positions.
type Item struct {
	Severity  string `json:"severity"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Message   string `json:"message"`
	Source    string `json:"source"`
}

// FromDiagnostics converts validator output into renderable items.
func FromDiagnostics(path string, diags []diag.Diagnostic) FileResult {
	items := make([]Item, 0, len(diags))
	for _, d := range diags {
		items = append(items, Item{
			Severity:  d.Severity.String(),
			Line:      d.Range.Start.Line + 1,
			Column:    d.Range.Start.Character + 1,
			EndLine:   d.Range.End.Line + 1,
			EndColumn: d.Range.End.Character + 1,
			Message:   d.Message,
			Source:    d.Source,
		})
	}
	return FileResult{Path: path, Diagnostics: items}
}

// Text writes findings in the familiar path:line:col compiler format.
func Text(w io.Writer, results []FileResult) error {
	for _, r := range results {
		for _, it := range r.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", r.Path, it.Line, it.Column, it.Severity, it.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSON writes findings as a JSON array with one element per file.
func JSON(w io.Writer, results []FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
