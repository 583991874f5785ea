package pattern

import (
	_ "embed"
	"fmt"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

//go:embed ranks.yaml
var ranksYAML []byte

// Rank maps a canonical rank abbreviation to a pattern matching its known
// non-canonical spellings. The patterns use lookaround, which the standard
// regexp package cannot express, so they compile with regexp2.
type Rank struct {
	Canonical string   `yaml:"canonical"`
	Pattern   string   `yaml:"pattern"`
	Spellings []string `yaml:"spellings"`

	re *regexp2.Regexp
}

// RankMatch is one non-canonical rank occurrence with its byte span.
type RankMatch struct {
	Text  string
	Start int
	End   int
}

var ranks []Rank

func init() {
	if err := yaml.Unmarshal(ranksYAML, &ranks); err != nil {
		panic(fmt.Sprintf("pattern: ranks.yaml: %v", err))
	}
	for i := range ranks {
		ranks[i].re = regexp2.MustCompile(ranks[i].Pattern, regexp2.None)
	}
}

// Ranks returns the abbreviation dictionary in declaration order.
func Ranks() []Rank { return ranks }

// FindAll returns every non-canonical occurrence of the rank in text.
// regexp2 reports rune indices, so spans are converted back to byte
// offsets before returning.
func (r Rank) FindAll(text string) []RankMatch {
	runes := []rune(text)
	var out []RankMatch
	m, err := r.re.FindRunesMatch(runes)
	for err == nil && m != nil {
		start := len(string(runes[:m.Index]))
		found := m.String()
		out = append(out, RankMatch{Text: found, Start: start, End: start + len(found)})
		m, err = r.re.FindNextMatch(m)
	}
	return out
}
