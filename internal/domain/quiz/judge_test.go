package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/archiquiz/internal/domain/entities"
)

func TestJudgeFreeText(t *testing.T) {
	catalog := sampleCatalog(t)

	tests := []struct {
		name    string
		id      string
		kind    entities.QuestionKind
		input   string
		correct bool
		message string
	}{
		{
			name:    "token of joined authors",
			id:      "guggenheim-bilbao",
			kind:    entities.KindAuthor,
			input:   "Gehry",
			correct: true,
			message: "Correct!",
		},
		{
			name:    "wrong author",
			id:      "guggenheim-bilbao",
			kind:    entities.KindAuthor,
			input:   "Zaha Hadid",
			correct: false,
			message: "Wrong. Correct answer: Frank Gehry; Partner Studio.",
		},
		{
			name:    "empty input",
			id:      "zwinger",
			kind:    entities.KindName,
			input:   "   ",
			correct: false,
			message: "Wrong. Correct answer: Zwinger.",
		},
		{
			name:    "classification appends explanation",
			id:      "zwinger",
			kind:    entities.KindClassification,
			input:   "barok",
			correct: true,
			message: "Correct! It is Zwinger, from the Barock era.",
		},
		{
			name:    "wrong classification appends explanation",
			id:      "zwinger",
			kind:    entities.KindClassification,
			input:   "Gotik",
			correct: false,
			message: "Wrong. Correct answer: Barock. It is Zwinger, from the Barock era.",
		},
		{
			name:    "one of two eras",
			id:      "petersdom",
			kind:    entities.KindClassification,
			input:   "Renaissance",
			correct: true,
			message: "Correct! It is St. Peter's – Rome, from both the Renaissance and the Barock era.",
		},
		{
			name:    "parenthesized qualifier omitted",
			id:      "bauhaus-dessau",
			kind:    entities.KindName,
			input:   "Bauhausgebaude",
			correct: true,
			message: "Correct!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd, err := JudgeFreeText(findBuilding(t, catalog, tt.id), tt.kind, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, jd.Correct)
			assert.Equal(t, tt.message, jd.Message)
		})
	}
}

func TestJudgeFreeText_Reflexive(t *testing.T) {
	catalog := sampleCatalog(t)

	for i := range catalog {
		for _, kind := range entities.QuestionKinds {
			key, _ := catalog[i].Key(kind)
			jd, err := JudgeFreeText(&catalog[i], kind, key.Display)
			require.NoError(t, err)
			assert.True(t, jd.Correct, "%s/%s", catalog[i].ID(), kind)
			assert.Equal(t, "exact", jd.Rule)
		}
	}
}

func TestJudgeFreeText_QualifierForms(t *testing.T) {
	catalog := sampleCatalog(t)
	peter := findBuilding(t, catalog, "petersdom")

	for _, input := range []string{"St. Peter's – Rome", "St. Peter's", "Sankt Peter", "Petersdom"} {
		jd, err := JudgeFreeText(peter, entities.KindName, input)
		require.NoError(t, err)
		assert.True(t, jd.Correct, input)
	}
}

func TestJudgeFreeText_UnknownKind(t *testing.T) {
	catalog := sampleCatalog(t)

	_, err := JudgeFreeText(&catalog[0], entities.QuestionKind("year"), "1719")
	assert.ErrorIs(t, err, ErrUnknownQuestionKind)
}

func TestJudgeChoice(t *testing.T) {
	catalog := sampleCatalog(t)
	zwinger := findBuilding(t, catalog, "zwinger")

	jd, err := JudgeChoice(zwinger, entities.KindAuthor, "Matthäus Daniel Pöppelmann")
	require.NoError(t, err)
	assert.True(t, jd.Correct)
	assert.Equal(t, "Correct!", jd.Message)

	jd, err = JudgeChoice(zwinger, entities.KindAuthor, "MATTHAUS DANIEL POPPELMANN")
	require.NoError(t, err)
	assert.True(t, jd.Correct)

	jd, err = JudgeChoice(zwinger, entities.KindAuthor, "Walter Gropius")
	require.NoError(t, err)
	assert.False(t, jd.Correct)
	assert.Equal(t, "Wrong. Correct answer: Matthäus Daniel Pöppelmann.", jd.Message)
	assert.Equal(t, "Matthäus Daniel Pöppelmann", jd.Expected)

	jd, err = JudgeChoice(zwinger, entities.KindAuthor, "")
	require.NoError(t, err)
	assert.False(t, jd.Correct)

	_, err = JudgeChoice(zwinger, entities.QuestionKind(""), "Zwinger")
	assert.ErrorIs(t, err, ErrUnknownQuestionKind)
}

func TestReveal(t *testing.T) {
	catalog := sampleCatalog(t)
	zwinger := findBuilding(t, catalog, "zwinger")

	msg, err := Reveal(zwinger, entities.KindName)
	require.NoError(t, err)
	assert.Equal(t, "Solution: Zwinger.", msg)

	msg, err = Reveal(zwinger, entities.KindClassification)
	require.NoError(t, err)
	assert.Equal(t, "Solution: Barock. It is Zwinger, from the Barock era.", msg)
}

func TestJudge_CustomTolerance(t *testing.T) {
	catalog := sampleCatalog(t)
	zwinger := findBuilding(t, catalog, "zwinger")

	lenient := NewJudge(MatchOptions{ToleranceRatio: 0.5, MinTolerance: 3, MaxTolerance: 5, PrefixMinLength: 4, ContainsMinLength: 6})
	jd, err := lenient.FreeText(zwinger, entities.KindName, "Zwnigr")
	require.NoError(t, err)
	assert.True(t, jd.Correct)

	jd, err = JudgeFreeText(zwinger, entities.KindName, "Zwnigr")
	require.NoError(t, err)
	assert.False(t, jd.Correct)
}
