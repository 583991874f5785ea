package pattern

import (
	"regexp"
	"strings"
)

// Matchers for the structural fields of a caption document. Each function is
// a pure mapping from a line or substring to a capture; positional
// bookkeeping stays with the callers.
var (
	imageTagRe  = regexp.MustCompile(`^!\[\]\(<([^<>]+)>\)$`)
	virinStemRe = regexp.MustCompile(`^\d{6}-[AFGMNX]-[A-Z0-9]{5}-\d{4}$`)
	fileExtRe   = regexp.MustCompile(`\.([A-Za-z0-9]*)$`)

	keywordsLineRe = regexp.MustCompile(`^Keywords:((?: *[^;]+;)*) *$`)

	titleLineRe = regexp.MustCompile(`^(\d{6}-[AFGMNX]-[A-Z0-9]{5}-\d{4})(\\?)$`)

	bylineRe = regexp.MustCompile(`^By (\S.*)$`)

	datePhraseRe = regexp.MustCompile(`(?:Jan(?:\.|uary)|Feb(?:\.|ruary)|Mar(?:\.|ch)|Apr(?:\.|il)|May|Jun(?:\.|e)|Jul(?:\.|y)|Aug(?:\.|ust)|Sep(?:\.|t\.|tember)|Oct(?:\.|ober)|Nov(?:\.|ember)|Dec(?:\.|ember)) \d{1,2}, (?:\d{4}|\d{2})\b`)

	parentheticalRe = regexp.MustCompile(`\(([^()]+)\)`)
)

// doubledPunctClass lists the punctuation and space characters that must
// not repeat. "." and "," are deliberately absent (they end sentences); the
// two-character sequences ".," and ",." are flagged separately.
const doubledPunctClass = " ;:+-=!@#$%^&*()<>{}[]\\'\"?/`~"

var doubledPunctRe = regexp.MustCompile(buildDoubledPunct())

func buildDoubledPunct() string {
	alts := make([]string, 0, len(doubledPunctClass)+2)
	for _, r := range doubledPunctClass {
		alts = append(alts, regexp.QuoteMeta(string(r))+"{2,}")
	}
	alts = append(alts, `\.,`, `,\.`)
	return strings.Join(alts, "|")
}

// keywordsPrefix marks a line as attempting to be a keywords line even when
// its entries are malformed.
const keywordsPrefix = "Keywords:"

// MatchImageTag returns the path captured from an image tag line of the
// form ![](<dir/file.ext>). The path itself is not validated here; Build
// applies the strict file-name checks so a bad extension still lets the
// block complete.
func MatchImageTag(line string) (path string, ok bool) {
	m := imageTagRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SplitImagePath splits an image-tag path into its directory and file name.
// The directory is empty when the path has no slash.
func SplitImagePath(path string) (dir, base string) {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

// FileExt returns the extension of base without the dot, or "" when base
// has none.
func FileExt(base string) string {
	m := fileExtRe.FindStringSubmatch(base)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsAllowedExt reports whether ext is one of the media types captions may
// reference.
func IsAllowedExt(ext string) bool {
	return ext == "jpg" || ext == "mp4"
}

// IsVIRIN reports whether s has the canonical YYMMDD-L-XXXXX-NNNN shape.
func IsVIRIN(s string) bool { return virinStemRe.MatchString(s) }

// MatchKeywords parses a strict keywords line ("Keywords: first; second;").
// Every entry must be semicolon-terminated. A bare "Keywords:" is valid and
// yields an empty, non-nil slice.
func MatchKeywords(line string) ([]string, bool) {
	m := keywordsLineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	kws := []string{}
	for _, part := range strings.Split(m[1], ";") {
		if part = strings.TrimSpace(part); part != "" {
			kws = append(kws, part)
		}
	}
	return kws, true
}

// HasKeywordsPrefix reports whether a line is attempting to be a keywords
// line at all; used to decide whether the unfinished-keyword check applies.
func HasKeywordsPrefix(line string) bool { return strings.HasPrefix(line, keywordsPrefix) }

// UnfinishedKeyword returns the trailing text after the last semicolon of a
// keywords line along with its byte span in the line. ok is false when the
// line is fully terminated or is not a keywords line.
func UnfinishedKeyword(line string) (tail string, start, end int, ok bool) {
	if !HasKeywordsPrefix(line) {
		return "", 0, 0, false
	}
	from := strings.LastIndexByte(line, ';') + 1
	if from == 0 {
		from = len(keywordsPrefix)
	}
	rest := line[from:]
	lead := len(rest) - len(strings.TrimLeft(rest, " "))
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", 0, 0, false
	}
	start = from + lead
	return rest, start, start + len(rest), true
}

// MatchTitle parses a title line. The trailing backslash is required by the
// format but a title missing only the backslash still yields its VIRIN so
// downstream checks can run.
func MatchTitle(line string) (virin string, backslash bool, ok bool) {
	m := titleLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", false, false
	}
	return m[1], m[2] == `\`, true
}

// MatchByline parses a document byline of the form "By Firstname Lastname".
func MatchByline(line string) (name string, ok bool) {
	m := bylineRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FindDatePhrase returns the first date phrase in text ("Jan. 1, 2025",
// "March 3, 25", ...) with its byte span.
func FindDatePhrase(text string) (phrase string, start, end int, ok bool) {
	loc := datePhraseRe.FindStringIndex(text)
	if loc == nil {
		return "", 0, 0, false
	}
	return text[loc[0]:loc[1]], loc[0], loc[1], true
}

// FindDoubledPunct returns the byte spans of every run of a repeated
// punctuation or space character, plus the ".," and ",." sequences.
func FindDoubledPunct(text string) [][]int {
	return doubledPunctRe.FindAllStringIndex(text, -1)
}

// Parenthetical is one "(XYZ)" aside captured from a description.
type Parenthetical struct {
	Content string
	Start   int // byte span of the full "(XYZ)" in the source text
	End     int
}

// Parentheticals returns every parenthesized aside in text in order.
func Parentheticals(text string) []Parenthetical {
	var out []Parenthetical
	for _, m := range parentheticalRe.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, Parenthetical{
			Content: text[m[2]:m[3]],
			Start:   m[0],
			End:     m[1],
		})
	}
	return out
}

// IsCreditConvention reports whether a parenthetical is a photo or video
// credit line, e.g. "(U.S. Army photo by Spc. Jane Doe)", which is exempt
// from the abbreviation second-use rule.
func IsCreditConvention(content string) bool {
	c := strings.ToLower(content)
	return strings.Contains(c, "photo") || strings.Contains(c, "video")
}
