package matching

import (
	"sort"

	"github.com/mathieu/cv-analyzer/internal/parsing"
	"github.com/mathieu/cv-analyzer/internal/skills"
	"github.com/mathieu/cv-analyzer/internal/types"
)

const (
	maxSkillSuggestions   = 7
	maxKeywordSuggestions = 7
	maxTopKeywords        = 15

	// keywordWindow is the hard pre-filter window: only the 20 most
	// frequent job keywords are ever considered for suggestions,
	// regardless of how well lower-ranked ones satisfy the filters.
	keywordWindow = 20

	// Keyword suggestion filters.
	minSuggestionFrequency = 2
	minSuggestionLength    = 4

	// Each suggested skill is assumed to be worth two score points,
	// each suggested keyword one. The estimate is capped at
	// estimateCeiling.
	skillPotential   = 2
	keywordPotential = 1
	estimateCeiling  = 30
)

// missingSkills returns the job-side skills absent from the CV, sorted.
// Both inputs are sorted slices from skills.Extract.
func missingSkills(cvSkills, jobSkills []string) []string {
	cvSet := parsing.Set(cvSkills)
	var missing []string
	for _, skill := range jobSkills {
		if !cvSet[skill] {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}

// commonSkills returns the skills present on both sides, sorted.
func commonSkills(cvSkills, jobSkills []string) []string {
	cvSet := parsing.Set(cvSkills)
	common := []string{}
	for _, skill := range jobSkills {
		if cvSet[skill] {
			common = append(common, skill)
		}
	}
	sort.Strings(common)
	return common
}

// suggestSkills converts the missing-skill list into prioritized
// suggestions, capped at maxSkillSuggestions. The list is already
// sorted, so truncation is deterministic.
func suggestSkills(missing []string) []types.SkillSuggestion {
	suggestions := make([]types.SkillSuggestion, 0, maxSkillSuggestions)
	for _, skill := range missing {
		if len(suggestions) == maxSkillSuggestions {
			break
		}
		suggestions = append(suggestions, types.SkillSuggestion{
			Skill:    skill,
			Priority: skills.Priority(skill),
		})
	}
	return suggestions
}

// suggestKeywords picks job keywords worth adding to the CV: within the
// top-20 frequency window, absent from the CV keyword sequence,
// occurring at least twice and longer than four runes. Capped at
// maxKeywordSuggestions.
func suggestKeywords(jobRanking []parsing.KeywordCount, cvSet map[string]bool) []types.KeywordSuggestion {
	suggestions := make([]types.KeywordSuggestion, 0, maxKeywordSuggestions)
	for _, kc := range parsing.TopN(jobRanking, keywordWindow) {
		if len(suggestions) == maxKeywordSuggestions {
			break
		}
		if cvSet[kc.Word] {
			continue
		}
		if kc.Count < minSuggestionFrequency || len([]rune(kc.Word)) <= minSuggestionLength {
			continue
		}
		suggestions = append(suggestions, types.KeywordSuggestion{
			Keyword:   kc.Word,
			Frequency: kc.Count,
		})
	}
	return suggestions
}

// topKeywords annotates the most frequent job keywords with CV presence.
func topKeywords(jobRanking []parsing.KeywordCount, cvSet map[string]bool) []types.RankedKeyword {
	top := parsing.TopN(jobRanking, maxTopKeywords)
	ranked := make([]types.RankedKeyword, 0, len(top))
	for _, kc := range top {
		ranked = append(ranked, types.RankedKeyword{
			Word:  kc.Word,
			Count: kc.Count,
			InCV:  cvSet[kc.Word],
		})
	}
	return ranked
}

// estimateImprovement computes the bounded score-improvement estimate.
// The gain is not clamped: it is zero or negative once the current
// score already exceeds the ceiling.
func estimateImprovement(score float64, suggestions types.Suggestions) types.Improvement {
	potential := float64(skillPotential*len(suggestions.Skills) + keywordPotential*len(suggestions.Keywords))
	estimated := round1(score + potential)
	if estimated > estimateCeiling {
		estimated = estimateCeiling
	}
	return types.Improvement{
		Current:   score,
		Estimated: estimated,
		Gain:      round1(estimated - score),
	}
}
