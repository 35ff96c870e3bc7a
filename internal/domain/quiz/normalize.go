// Package quiz implements answer judgement for the building quiz: text
// normalization, edit distance, answer-set enrichment, fuzzy matching,
// explanation sentences and multiple-choice option selection.
//
// Everything in this package is pure. The enriched catalog is never mutated
// after construction, so it can be shared between goroutines without locking.
package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation maps every ignored punctuation mark to a single space so that
// removing it never fuses two tokens.
var punctuation = strings.NewReplacer(
	".", " ", "-", " ", "_", " ", ",", " ", ";", " ", ":", " ",
	"!", " ", "?", " ", "(", " ", ")", " ", "[", " ", "]", " ",
	"{", " ", "}", " ", "'", " ", "\"", " ", "`", " ", "´", " ",
	"^", " ", "~", " ", "’", " ", "‘", " ", "“", " ", "”", " ",
	"„", " ", "«", " ", "»", " ", "–", " ", "—", " ",
)

// Normalize maps text to its canonical comparison form. It never fails;
// empty input yields an empty string.
//
// Steps, in order: trim and fold case (German rules), expand ß to ss, strip
// diacritics, replace punctuation with spaces, spell out "&" as "und",
// abbreviate the word "sankt" to "st", collapse whitespace.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}

	// Casers and transformers carry state, so they are built per call.
	s = cases.Lower(language.German).String(s)
	s = strings.ReplaceAll(s, "ß", "ss")

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	s = punctuation.Replace(s)
	s = strings.ReplaceAll(s, "&", " und ")

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if tok == "sankt" {
			tokens[i] = "st"
		}
	}
	return strings.Join(tokens, " ")
}
