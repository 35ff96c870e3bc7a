package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

// BuildOptions returns up to count multiple-choice options for the given
// building and kind, in random order. The correct display string is always
// included; distractors are the same-kind display strings of other buildings,
// drawn in random order and skipped when blank or equal after normalization
// to an option already chosen. A small catalog yields fewer options.
func BuildOptions(catalog []entities.EnrichedBuilding, correct *entities.EnrichedBuilding, kind entities.QuestionKind, count int, rng *rand.Rand) ([]string, error) {
	key, ok := correct.Key(kind)
	if !ok {
		return nil, fmt.Errorf("building options: %w: %q", ErrUnknownQuestionKind, kind)
	}

	options := newOrderedSetBy(Normalize, key.Display)

	pool := make([]string, 0, len(catalog))
	for i := range catalog {
		if catalog[i].ID() == correct.ID() {
			continue
		}
		other, _ := catalog[i].Key(kind)
		pool = append(pool, other.Display)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	for _, candidate := range pool {
		if options.Len() >= count {
			break
		}
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		options.Add(candidate)
	}

	out := options.Values()
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}
