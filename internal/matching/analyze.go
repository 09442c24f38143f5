package matching

import (
	"github.com/mathieu/cv-analyzer/internal/parsing"
	"github.com/mathieu/cv-analyzer/internal/skills"
	"github.com/mathieu/cv-analyzer/internal/types"
)

// Analyze runs the full matching pipeline over two plain-text documents
// and assembles the result record. It is pure and total: any pair of
// strings yields a result, with empty or degenerate input degrading to
// zero score and empty lists. Safe for concurrent use; the only shared
// state is the read-only stop-word set, skill vocabulary and tier table.
func Analyze(cvText, jobText string, junior bool) *types.MatchResult {
	cvKeywords := parsing.Tokenize(cvText)
	jobKeywords := parsing.Tokenize(jobText)

	cvSkills := skills.Extract(cvText)
	jobSkills := skills.Extract(jobText)

	score := Score(cvKeywords, jobKeywords)
	interpretation := Interpret(score, junior)

	cvSet := parsing.Set(cvKeywords)
	jobSet := parsing.Set(jobKeywords)
	common := commonSkills(cvSkills, jobSkills)
	missing := missingSkills(cvSkills, jobSkills)

	jobRanking := parsing.Frequencies(jobKeywords)

	suggestions := types.Suggestions{
		Skills:   suggestSkills(missing),
		Keywords: suggestKeywords(jobRanking, cvSet),
	}

	return &types.MatchResult{
		Score:          score,
		Interpretation: interpretation,
		Stats: types.Stats{
			CVKeywords:     len(cvSet),
			JobKeywords:    len(jobSet),
			CommonKeywords: countCommon(cvSet, jobSet),
			CVSkills:       len(cvSkills),
			JobSkills:      len(jobSkills),
			CommonSkills:   len(common),
		},
		Skills: types.SkillBreakdown{
			Common:  common,
			Missing: missing,
		},
		TopKeywords: topKeywords(jobRanking, cvSet),
		Suggestions: suggestions,
		Improvement: estimateImprovement(score, suggestions),
	}
}

func countCommon(cvSet, jobSet map[string]bool) int {
	count := 0
	for kw := range jobSet {
		if cvSet[kw] {
			count++
		}
	}
	return count
}
