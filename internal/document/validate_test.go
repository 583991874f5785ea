package document

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mediadesk/caplint/internal/diag"
)

const goldenDoc = `Marines conduct a training exercise
By Jane Smith
Keywords:

![](<photos/250101-A-AB123-0001.jpg>)
Keywords: alpha; beta;
250101-A-AB123-0001\
A person does a thing Jan. 1, 2025.\
`

func TestValidate_GoldenDocumentIsClean(t *testing.T) {
	ds := Validate(goldenDoc, DefaultMaxProblems)
	if len(ds) != 0 {
		t.Fatalf("expected zero diagnostics, got %+v", ds)
	}

	res := Run(goldenDoc, DefaultMaxProblems)
	if res.Preamble.Headline != "Marines conduct a training exercise" {
		t.Fatalf("headline: %q", res.Preamble.Headline)
	}
	if res.Preamble.Byline != "Jane Smith" {
		t.Fatalf("byline: %q", res.Preamble.Byline)
	}
	if len(res.Preamble.BaseKeywords) != 0 {
		t.Fatalf("base keywords: %v", res.Preamble.BaseKeywords)
	}
	if len(res.Captions) != 1 {
		t.Fatalf("captions: %d", len(res.Captions))
	}
}

func TestValidate_Idempotent(t *testing.T) {
	doc := strings.Replace(goldenDoc, "Jan. 1, 2025", "January 1, 2025", 1)
	first := Validate(doc, DefaultMaxProblems)
	second := Validate(doc, DefaultMaxProblems)
	if len(first) == 0 {
		t.Fatalf("fixture should produce findings")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestValidate_MaxProblemsCapsOutput(t *testing.T) {
	var b strings.Builder
	b.WriteString("Headline\nBy Jane Smith\nKeywords:\n")
	for i := 0; i < 50; i++ {
		b.WriteString("\nnot a caption line\n")
	}
	doc := b.String()

	if n := len(Validate(doc, 3)); n > 3 {
		t.Fatalf("cap exceeded: %d", n)
	}
	if n := len(Validate(doc, 0)); n != 0 {
		t.Fatalf("cap zero should silence reporting, got %d", n)
	}
	if n := len(Validate(doc, DefaultMaxProblems)); n <= 3 {
		t.Fatalf("fixture should produce many findings, got %d", n)
	}
}

func TestValidate_TitleMissingBackslash(t *testing.T) {
	doc := strings.Replace(goldenDoc, "250101-A-AB123-0001\\\n", "250101-A-AB123-0001\n", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("want exactly one warning, got %+v", ds)
	}
	if ds[0].Severity != diag.Warning || !strings.Contains(ds[0].Message, "backslash") {
		t.Fatalf("got %+v", ds[0])
	}
	// the date cross-check still ran and passed, so the caption was built
	if res := Run(doc, DefaultMaxProblems); len(res.Captions) != 1 {
		t.Fatalf("caption should still build")
	}
}

func TestValidate_BadExtensionSuppressesCrossChecks(t *testing.T) {
	doc := strings.Replace(goldenDoc, ".jpg", ".png", 1)
	// also break the date so a suppressed cross-check would be visible
	doc = strings.Replace(doc, "Jan. 1, 2025", "March 9, 2019", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("want exactly one warning, got %+v", ds)
	}
	if ds[0].Severity != diag.Warning || !strings.Contains(ds[0].Message, `".png"`) {
		t.Fatalf("got %+v", ds[0])
	}
}

func TestValidate_KeywordBudget(t *testing.T) {
	doc := strings.Replace(goldenDoc, "Keywords:\n", "Keywords: a; b; c; d; e; f;\n", 1)
	doc = strings.Replace(doc, "Keywords: alpha; beta;", "Keywords: golf;", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("want exactly one error, got %+v", ds)
	}
	d := ds[0]
	if d.Severity != diag.Error {
		t.Fatalf("got %+v", d)
	}
	if !strings.Contains(d.Message, "6 base keywords and 1 image-specific") {
		t.Fatalf("got %q", d.Message)
	}
}

func TestValidate_SecondUse(t *testing.T) {
	doc := strings.Replace(goldenDoc,
		"A person does a thing Jan. 1, 2025.\\",
		"The Department of Defense (DoD) acts Jan. 1, 2025.\\", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 || !strings.Contains(ds[0].Message, "never used a second time") {
		t.Fatalf("got %+v", ds)
	}

	doc = strings.Replace(goldenDoc,
		"A person does a thing Jan. 1, 2025.\\",
		"The Department of Defense (DoD) says DoD acts Jan. 1, 2025.\\", 1)
	if ds := Validate(doc, DefaultMaxProblems); len(ds) != 0 {
		t.Fatalf("reused abbreviation should not warn: %+v", ds)
	}
}

func TestValidate_MissingBlankLineBetweenCaptions(t *testing.T) {
	doc := goldenDoc +
		"![](<photos/250102-A-AB123-0002.jpg>)\n" +
		"Keywords: alpha;\n" +
		"250102-A-AB123-0002\\\n" +
		"Another person does a thing Jan. 2, 2025.\\\n"
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("want exactly one warning, got %+v", ds)
	}
	d := ds[0]
	if d.Severity != diag.Warning || !strings.Contains(d.Message, "blank line between captions") {
		t.Fatalf("got %+v", d)
	}
	// anchored at the first line of the second caption
	if d.Range.Start.Line != 8 {
		t.Fatalf("got %+v", d.Range)
	}

	// with the separator present, no warning
	doc = goldenDoc + "\n" +
		"![](<photos/250102-A-AB123-0002.jpg>)\n" +
		"Keywords: alpha;\n" +
		"250102-A-AB123-0002\\\n" +
		"Another person does a thing Jan. 2, 2025.\\\n"
	if ds := Validate(doc, DefaultMaxProblems); len(ds) != 0 {
		t.Fatalf("got %+v", ds)
	}
}

func TestValidate_TrailingIncompleteBlock(t *testing.T) {
	doc := goldenDoc + "\n" +
		"![](<photos/250102-A-AB123-0002.jpg>)\n" +
		"Keywords: alpha;\n"
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("got %+v", ds)
	}
	d := ds[0]
	if d.Severity != diag.Error || !strings.Contains(d.Message, "missing its image title") {
		t.Fatalf("got %+v", d)
	}
	if d.Range.Start.Line != 9 {
		t.Fatalf("should cover the trailing block, got %+v", d.Range)
	}
}

func TestValidate_MalformedByline(t *testing.T) {
	doc := strings.Replace(goldenDoc, "By Jane Smith", "Jane Smith", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("got %+v", ds)
	}
	if ds[0].Severity != diag.Error || !strings.Contains(ds[0].Message, "byline") {
		t.Fatalf("got %+v", ds[0])
	}
	// the state machine still advances past the byline
	if res := Run(doc, DefaultMaxProblems); len(res.Captions) != 1 {
		t.Fatalf("caption should still be extracted")
	}
}

func TestValidate_DateMismatchNamesBothStrings(t *testing.T) {
	doc := strings.Replace(goldenDoc, "Jan. 1, 2025", "January 1, 2025", 1)
	ds := Validate(doc, DefaultMaxProblems)
	if len(ds) != 1 {
		t.Fatalf("got %+v", ds)
	}
	d := ds[0]
	if !strings.Contains(d.Message, `"Jan. 1, 2025"`) || !strings.Contains(d.Message, `"January 1, 2025"`) {
		t.Fatalf("got %q", d.Message)
	}
	// anchored at the found phrase inside the description line
	if d.Range.Start.Line != 7 {
		t.Fatalf("got %+v", d.Range)
	}
	if d.Range.Start.Character != strings.Index("A person does a thing January 1, 2025.\\", "January") {
		t.Fatalf("got %+v", d.Range)
	}
}
