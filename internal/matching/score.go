// Package matching implements the CV / job-posting compatibility engine:
// coverage scoring, tiered interpretation and improvement suggestions.
package matching

import (
	"math"

	"github.com/mathieu/cv-analyzer/internal/parsing"
)

// Score computes the coverage of the job keywords by the CV keywords:
// 100 x |intersection| / |job set|, rounded to 2 decimals. The measure
// is asymmetric and cannot exceed 100. An empty job set scores exactly
// 0; that is a defined edge case, not an error.
func Score(cvKeywords, jobKeywords []string) float64 {
	jobSet := parsing.Set(jobKeywords)
	if len(jobSet) == 0 {
		return 0
	}

	cvSet := parsing.Set(cvKeywords)
	common := 0
	for kw := range jobSet {
		if cvSet[kw] {
			common++
		}
	}

	score := float64(common) / float64(len(jobSet)) * 100
	return round2(score)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
