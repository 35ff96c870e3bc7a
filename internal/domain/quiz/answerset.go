package quiz

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// Display separators for multi-valued fields.
const (
	AuthorSeparator         = "; "
	ClassificationSeparator = " / "
)

var (
	// ErrMissingName is returned when a building has no name.
	ErrMissingName = errors.New("missing required field: name")
	// ErrDuplicateID is returned when two buildings share an identifier.
	ErrDuplicateID = errors.New("duplicate building id")
)

var (
	// reListSeparator matches the delimiters of multi-valued fields, including
	// the German "und" and "sowie".
	reListSeparator = regexp.MustCompile(`(?i)\s*(?:/|;|,|&|\+|\bund\b|\bsowie\b)\s*`)
	// reParenthesized matches a parenthesized clause and the space before it.
	reParenthesized = regexp.MustCompile(`\s*\([^)]*\)`)
	// reTrailingQualifier matches a dash-introduced clause up to the end.
	// A plain hyphen needs surrounding spaces so compound names survive.
	reTrailingQualifier = regexp.MustCompile(`\s*[–—]\s*.*$|\s+-\s+.*$`)
)

// SplitList splits a multi-valued field into trimmed, non-empty pieces.
func SplitList(raw string) []string {
	var out []string
	for _, part := range reListSeparator.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StripQualifiers removes parenthesized clauses and a trailing dash-introduced
// qualifier, e.g. "St. Peter's – Rome" becomes "St. Peter's".
func StripQualifiers(s string) string {
	out := reParenthesized.ReplaceAllString(s, "")
	out = reTrailingQualifier.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// EnrichCatalog enriches every record. The first defective record aborts the
// whole catalog.
func EnrichCatalog(records []entities.Building) ([]entities.EnrichedBuilding, error) {
	out := make([]entities.EnrichedBuilding, 0, len(records))
	ids := make(map[string]struct{}, len(records))

	for i := range records {
		if _, dup := ids[records[i].ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %q", i+1, ErrDuplicateID, records[i].ID)
		}
		ids[records[i].ID] = struct{}{}

		enriched, err := Enrich(records[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, enriched)
	}

	return out, nil
}

// Enrich derives the answer keys and the explanation sentence of b.
// It is deterministic: the same record always yields the same result.
func Enrich(b entities.Building) (entities.EnrichedBuilding, error) {
	if strings.TrimSpace(b.Name) == "" {
		return entities.EnrichedBuilding{}, fmt.Errorf("enriching building %q: %w", b.ID, ErrMissingName)
	}

	authors := canonicalValues(b.Architects, b.Architect)
	labels := canonicalValues(b.Eras, b.Era)

	name := strings.TrimSpace(b.Name)
	authorDisplay := joinDisplay(authors, b.Architect, AuthorSeparator)
	labelDisplay := joinDisplay(labels, b.Era, ClassificationSeparator)

	explanation := strings.TrimSpace(b.Explanation)
	if explanation == "" {
		explanation = ComposeExplanation(name, labels)
	}

	return entities.EnrichedBuilding{
		Building: b,
		Name: entities.AnswerKey{
			Answers: answerSet(name, b.Name, nil, b.NameAliases),
			Display: b.Name,
		},
		Author: entities.AnswerKey{
			Answers: answerSet(authorDisplay, b.Architect, authors, b.ArchitectAliases),
			Display: authorDisplay,
		},
		Classification: entities.AnswerKey{
			Answers: answerSet(labelDisplay, b.Era, labels, b.EraAliases),
			Display: labelDisplay,
		},
		Labels:      labels,
		Explanation: explanation,
	}, nil
}

// canonicalValues prefers an explicit list and falls back to splitting raw.
func canonicalValues(explicit []string, raw string) []string {
	set := NewOrderedSet()
	for _, v := range explicit {
		if v = strings.TrimSpace(v); v != "" {
			set.Add(v)
		}
	}
	if set.Len() == 0 {
		for _, v := range SplitList(raw) {
			set.Add(v)
		}
	}
	return set.Values()
}

func joinDisplay(values []string, raw, sep string) string {
	if len(values) > 1 {
		return strings.Join(values, sep)
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		return raw
	}
	if len(values) == 1 {
		return values[0]
	}
	return ""
}

// answerSet collects the display string, the raw field, every canonical value,
// every alias and the qualifier-stripped variant of each of them. Duplicates are decided
// by exact string equality, so case or accent variants are all kept.
func answerSet(display, raw string, values, aliases []string) []string {
	set := NewOrderedSet()
	add := func(v string) {
		if v = strings.TrimSpace(v); v != "" {
			set.Add(v)
		}
	}

	add(display)
	add(raw)
	for _, v := range values {
		add(v)
	}
	for _, v := range aliases {
		add(v)
	}

	for _, v := range set.Values() {
		if stripped := StripQualifiers(v); stripped != v {
			add(stripped)
		}
	}

	return set.Values()
}
