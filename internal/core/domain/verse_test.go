package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerse(id string, mandala, sukta, verse int) Verse {
	return Verse{
		ID:      id,
		Mandala: mandala,
		Sukta:   sukta,
		Verse:   verse,
	}
}

func TestRef_String(t *testing.T) {
	r := Ref{Mandala: 1, Sukta: 32, Verse: 7}
	assert.Equal(t, "1.32.7", r.String())
}

func TestRef_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Ref
		want int
	}{
		{"equal", Ref{1, 1, 1}, Ref{1, 1, 1}, 0},
		{"mandala dominates", Ref{2, 1, 1}, Ref{1, 99, 99}, 1},
		{"sukta breaks mandala tie", Ref{3, 4, 9}, Ref{3, 5, 1}, -1},
		{"verse breaks sukta tie", Ref{3, 4, 9}, Ref{3, 4, 8}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestParseRef(t *testing.T) {
	r, err := ParseRef("10.129.1")
	require.NoError(t, err)
	assert.Equal(t, Ref{Mandala: 10, Sukta: 129, Verse: 1}, r)
}

func TestParseRef_Invalid(t *testing.T) {
	for _, input := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.0.1", "-1.2.3"} {
		_, err := ParseRef(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestSortVerses_NaturalOrder(t *testing.T) {
	verses := []Verse{
		testVerse("c", 2, 1, 1),
		testVerse("a", 1, 1, 2),
		testVerse("b", 1, 1, 1),
		testVerse("d", 1, 12, 1),
	}

	SortVerses(verses)

	ids := make([]string, len(verses))
	for i, v := range verses {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"b", "a", "d", "c"}, ids)
}

func TestDedupeVerses_KeepsFirstOccurrence(t *testing.T) {
	verses := []Verse{
		testVerse("x", 1, 1, 1),
		testVerse("y", 1, 1, 2),
		testVerse("x", 9, 9, 9),
	}

	out := DedupeVerses(verses)

	require.Len(t, out, 2)
	assert.Equal(t, "x", out[0].ID)
	assert.Equal(t, 1, out[0].Mandala, "first occurrence wins")
	assert.Equal(t, "y", out[1].ID)
}

func TestVerse_Enriched(t *testing.T) {
	v := testVerse("v", 1, 1, 1)
	assert.False(t, v.Enriched(), "bare verse is not enriched")

	v.Metadata.Deity.Primary = "Agni"
	assert.False(t, v.Enriched(), "still missing translations")

	v.Text.Translations = []Translation{{Translator: "Griffith", Text: "I laud Agni"}}
	assert.True(t, v.Enriched())
}

func TestVerse_TranslationBy(t *testing.T) {
	v := testVerse("v", 1, 1, 1)
	v.Text.Translations = []Translation{
		{Translator: "Griffith", Text: "first"},
		{Translator: "Wilson", Text: "second"},
	}

	tr, ok := v.TranslationBy("Wilson")
	require.True(t, ok)
	assert.Equal(t, "second", tr.Text)

	// Unknown translator falls back to the first translation.
	tr, ok = v.TranslationBy("Jamison-Brereton")
	require.True(t, ok)
	assert.Equal(t, "first", tr.Text)
}

func TestVerse_TranslationBy_Empty(t *testing.T) {
	v := testVerse("v", 1, 1, 1)
	_, ok := v.TranslationBy("Griffith")
	assert.False(t, ok)
}

func TestVerse_HasTheme(t *testing.T) {
	v := testVerse("v", 1, 1, 1)
	v.Themes = []string{"fire", "dawn"}

	assert.True(t, v.HasTheme("dawn"))
	assert.False(t, v.HasTheme("cattle"))
}
