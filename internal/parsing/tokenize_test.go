package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Lowercases and splits",
			input:    "Python SQL Docker",
			expected: []string{"python", "sql", "docker"},
		},
		{
			name:     "Drops French stop words",
			input:    "le développeur travaille avec les données pour une banque",
			expected: []string{"développeur", "travaille", "données", "banque"},
		},
		{
			name:     "Drops short tokens",
			input:    "un as du js et du sql",
			expected: []string{"sql"},
		},
		{
			name:     "Strips punctuation to spaces",
			input:    "Développeur (Python/SQL), motivé!",
			expected: []string{"développeur", "python", "sql", "motivé"},
		},
		{
			name:     "Preserves plus hash and hyphen",
			input:    "Expert C++ et C# avec Power-BI",
			expected: []string{"expert", "c++", "power-bi"},
		},
		{
			name:     "Preserves accented letters",
			input:    "compétences éprouvées en contrôle",
			expected: []string{"compétences", "éprouvées", "contrôle"},
		},
		{
			name:     "Keeps duplicates in source order",
			input:    "python sql python",
			expected: []string{"python", "sql", "python"},
		},
		{
			name:     "Empty input yields empty sequence",
			input:    "",
			expected: []string{},
		},
		{
			name:     "Symbols only yields empty sequence",
			input:    "!!! ??? ***",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_NeverYieldsStopWordsOrShortTokens(t *testing.T) {
	texts := []string{
		"Je suis un développeur avec une expérience en analyse de données et je peut tout faire",
		"SQL, Python & co. — l'ETL, la BI, le cloud : tout y est !",
		"a b c d e f g h",
	}

	for _, text := range texts {
		for _, token := range Tokenize(text) {
			assert.False(t, IsStopWord(token), "token %q is a stop word", token)
			assert.Greater(t, len([]rune(token)), 2, "token %q too short", token)
		}
	}
}

func TestSet(t *testing.T) {
	set := Set([]string{"python", "sql", "python"})
	assert.Len(t, set, 2)
	assert.True(t, set["python"])
	assert.True(t, set["sql"])
	assert.False(t, set["docker"])

	assert.Empty(t, Set(nil))
}
