// Package skills provides technical skill extraction against a fixed vocabulary.
package skills

import (
	"sort"
	"strings"
)

// vocabulary is the canonical set of technical skill labels. Entries
// are lowercase; multi-word entries are matched as contiguous
// substrings of the lowercased document, independently of token
// boundaries.
var vocabulary = []string{
	"python", "java", "javascript", "sql", "aws", "azure", "gcp",
	"docker", "kubernetes", "react", "angular", "vue", "node",
	"mongodb", "postgresql", "mysql", "pandas", "numpy", "scikit",
	"tensorflow", "pytorch", "spark", "hadoop", "kafka", "git",
	"jenkins", "ci/cd", "agile", "scrum", "excel", "powerbi",
	"tableau", "sagemaker", "lambda", "ec2", "s3", "api", "rest",
	"graphql", "machine learning", "deep learning", "nlp", "data",
	"analytics", "etl", "cloud", "linux", "windows", "bash",
	"power bi", "power query", "dax", "vba", "r", "sas", "spss",
	"fabric", "lakehouse", "dataverse", "statistiques", "statistics",
	"flutter", "dart", "flask",
}

// criticalSkills are the skills tagged with the highest suggestion
// priority when missing from a CV.
var criticalSkills = map[string]bool{
	"sql":      true,
	"python":   true,
	"excel":    true,
	"power bi": true,
}

// Suggestion priority tags.
const (
	PriorityCritical  = "CRITIQUE"
	PriorityImportant = "IMPORTANT"
)

// Extract scans raw text against the vocabulary and returns every skill
// found as a substring of the lowercased text, sorted alphabetically.
// A shorter entry may match inside the text matched by a longer one;
// both are reported independently.
func Extract(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, skill := range vocabulary {
		if strings.Contains(lowered, skill) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// IsCritical reports whether a missing skill carries the CRITIQUE
// priority.
func IsCritical(skill string) bool {
	return criticalSkills[skill]
}

// Priority returns the suggestion priority tag for a missing skill.
func Priority(skill string) string {
	if IsCritical(skill) {
		return PriorityCritical
	}
	return PriorityImportant
}
