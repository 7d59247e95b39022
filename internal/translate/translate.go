// Package translate renders Polish card copy in English and German using a
// fixed phrase table with a word-by-word fallback.
package translate

import (
	"regexp"       // Phrase matching and token splitting
	"strings"      // Case folding
	"unicode"      // Capitalisation
	"unicode/utf8" // Rune decoding

	"web3_portal/internal/domain"
)

// Quality is a rough indicator of how much of a text the tables covered.
type Quality string

const (
	QualityHigh   Quality = "high"   // A known phrase or most words were covered
	QualityMedium Quality = "medium" // Roughly half of the words were covered
	QualityLow    Quality = "low"    // Little or nothing was translated
)

type compiledPhrase struct {
	phrase                // Source and renderings
	re     *regexp.Regexp // Case-insensitive matcher for the source
}

// compiled holds the phrases in table order; the first contained phrase wins.
var compiled []compiledPhrase

var (
	separator   = regexp.MustCompile(`\s+|[.,!?;:]`)                                        // Token boundaries kept in the output
	whitespace  = regexp.MustCompile(`\s+`)                                                 // Word boundaries for grading
	punctuation = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", ";", "", ":", "") // Stripped before dictionary lookups
)

func init() {
	compiled = make([]compiledPhrase, 0, len(phrases))
	for _, p := range phrases {
		compiled = append(compiled, compiledPhrase{
			phrase: p,                                                   // Table entry
			re:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p.pl)), // Match regardless of case
		})
	}
}

// Translate renders text in lang. Polish and unknown languages return text
// unchanged.
func Translate(text, lang string) string {
	if text == "" || (lang != domain.LangEN && lang != domain.LangDE) {
		return text
	}

	lower := strings.ToLower(strings.TrimSpace(text)) // Table keys are lowercase
	for _, p := range phrases {
		if lower == p.pl {
			return p.in(lang) // Whole text is a known phrase
		}
	}

	for _, p := range compiled {
		if !strings.Contains(lower, p.pl) {
			continue
		}
		if out := p.re.ReplaceAllLiteralString(text, p.in(lang)); out != text {
			return out // First contained phrase, rest of the text untouched
		}
	}

	return translateWords(text, lang) // Fall back to single words
}

// translateWords substitutes dictionary words one by one, keeping whitespace
// and punctuation where they were.
func translateWords(text, lang string) string {
	var b strings.Builder
	last := 0 // End of the previous separator
	for _, loc := range separator.FindAllStringIndex(text, -1) {
		b.WriteString(translateWord(text[last:loc[0]], lang)) // Word before the separator
		b.WriteString(text[loc[0]:loc[1]])                    // Separator as written
		last = loc[1]
	}
	b.WriteString(translateWord(text[last:], lang)) // Trailing word
	return b.String()
}

func translateWord(word, lang string) string {
	if word == "" {
		return word
	}
	e, ok := words[strings.ToLower(word)]
	if !ok {
		return word // Unknown words pass through
	}
	out := e.in(lang)
	if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
		return capitalize(out) // Keep sentence case
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s // Empty or invalid text
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Assess grades translated against original.
func Assess(original, translated string) Quality {
	if original == "" || translated == "" || original == translated {
		return QualityLow
	}

	lower := strings.ToLower(original)
	for _, p := range phrases {
		if strings.Contains(lower, p.pl) {
			return QualityHigh // Phrases are curated translations
		}
	}

	// Leading or trailing whitespace yields empty tokens, which count as unknown
	tokens := whitespace.Split(lower, -1)
	known := 0
	for _, tok := range tokens {
		if _, ok := words[punctuation.Replace(tok)]; ok {
			known++
		}
	}

	coverage := float64(known) / float64(len(tokens)) // Share of dictionary words
	switch {
	case coverage > 0.7:
		return QualityHigh
	case coverage > 0.4:
		return QualityMedium
	default:
		return QualityLow
	}
}
