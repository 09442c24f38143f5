package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathieu/cv-analyzer/internal/types"
)

func sampleResult() *types.MatchResult {
	return &types.MatchResult{
		Score: 14.29,
		Interpretation: &types.Interpretation{
			Status:   "acceptable",
			Title:    "PROFIL JUNIOR ACCEPTABLE",
			Message:  "Score NORMAL pour un junior. Adaptez 2-3 éléments et POSTULEZ !",
			Severity: types.SeveritySuccess,
		},
		Skills: types.SkillBreakdown{
			Common:  []string{"python", "sql"},
			Missing: []string{"powerbi", "tableau"},
		},
		TopKeywords: []types.RankedKeyword{
			{Word: "python", Count: 3, InCV: true},
			{Word: "tableau", Count: 2, InCV: false},
		},
		Suggestions: types.Suggestions{
			Skills: []types.SkillSuggestion{
				{Skill: "powerbi", Priority: "IMPORTANT"},
			},
			Keywords: []types.KeywordSuggestion{
				{Keyword: "reporting", Frequency: 3},
			},
		},
		Improvement: types.Improvement{Current: 14.29, Estimated: 17.3, Gain: 3},
	}
}

func TestHTML_ContainsAllSections(t *testing.T) {
	html, err := HTML("", "cv.pdf", sampleResult())
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, DefaultTitle)
	assert.Contains(t, page, "cv.pdf")
	assert.Contains(t, page, "14.29%")
	assert.Contains(t, page, "PROFIL JUNIOR ACCEPTABLE")
	assert.Contains(t, page, "python, sql")
	assert.Contains(t, page, "powerbi, tableau")
	assert.Contains(t, page, "reporting")
	assert.Contains(t, page, "17.3%")
}

func TestHTML_EmptySkillLists(t *testing.T) {
	result := sampleResult()
	result.Skills.Common = nil
	result.Skills.Missing = nil

	html, err := HTML("", "cv.pdf", result)
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, "Aucune compétence technique majeure en commun.")
	assert.Contains(t, page, "Toutes les compétences techniques requises sont présentes.")
}

func TestHTML_NilInterpretation(t *testing.T) {
	result := sampleResult()
	result.Interpretation = nil

	html, err := HTML("", "cv.pdf", result)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "Statut :")
}

func TestHTML_SeverityColorsScore(t *testing.T) {
	result := sampleResult()
	result.Interpretation.Severity = types.SeverityDanger

	html, err := HTML("", "cv.pdf", result)
	require.NoError(t, err)
	assert.Contains(t, string(html), severityColors[types.SeverityDanger])
}

func TestHTML_CustomTitle(t *testing.T) {
	html, err := HTML("Bilan de compatibilité", "cv.docx", sampleResult())
	require.NoError(t, err)
	assert.Contains(t, string(html), "Bilan de compatibilité")
}

func TestPrinter_PrintResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResult("cv.pdf", sampleResult())

	out := buf.String()
	assert.Contains(t, out, "cv.pdf")
	assert.Contains(t, out, "14.29%")
	assert.Contains(t, out, "PROFIL JUNIOR ACCEPTABLE")
	assert.Contains(t, out, "powerbi, tableau")
	assert.Contains(t, out, "[IMPORTANT] compétence : powerbi")
	assert.Contains(t, out, "[MOT-CLÉ] reporting (fréquence 3)")
}

func TestPrinter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult("cv.pdf", nil)
	assert.Zero(t, buf.Len())
}

func TestPrinter_BoxesAreBounded(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult("un_nom_de_fichier_de_cv_particulierement_long_qui_depasse.pdf", sampleResult())

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line overflows the box: %q", line)
	}
}
