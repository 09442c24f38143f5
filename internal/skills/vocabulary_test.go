package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_SingleWordSkills(t *testing.T) {
	found := Extract("Stack: Python, Docker et Kubernetes sur AWS")

	assert.Contains(t, found, "python")
	assert.Contains(t, found, "docker")
	assert.Contains(t, found, "kubernetes")
	assert.Contains(t, found, "aws")
	assert.NotContains(t, found, "tableau")
}

func TestExtract_MultiWordSkillsMatchAsSubstrings(t *testing.T) {
	found := Extract("Expérience en machine learning et Power BI")

	assert.Contains(t, found, "machine learning")
	assert.Contains(t, found, "power bi")
}

func TestExtract_OverlappingSkillsBothMatch(t *testing.T) {
	// "power bi" and "power query" can both be found when both substrings occur.
	found := Extract("maîtrise de power bi et power query")

	assert.Contains(t, found, "power bi")
	assert.Contains(t, found, "power query")
}

func TestExtract_CaseInsensitive(t *testing.T) {
	assert.Contains(t, Extract("PYTHON"), "python")
	assert.Contains(t, Extract("PoStGrEsQL"), "postgresql")
}

func TestExtract_NoDuplicatesAndSorted(t *testing.T) {
	found := Extract("python python sql sql excel")

	seen := map[string]int{}
	for _, skill := range found {
		seen[skill]++
	}
	for skill, count := range seen {
		assert.Equal(t, 1, count, "skill %q reported more than once", skill)
	}
	assert.True(t, sort.StringsAreSorted(found))
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract(""))
}

func TestIsCritical(t *testing.T) {
	tests := []struct {
		skill    string
		critical bool
	}{
		{"sql", true},
		{"python", true},
		{"excel", true},
		{"power bi", true},
		{"powerbi", false},
		{"tableau", false},
		{"docker", false},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.critical, IsCritical(tt.skill))
		})
	}
}

func TestPriority(t *testing.T) {
	assert.Equal(t, PriorityCritical, Priority("sql"))
	assert.Equal(t, PriorityImportant, Priority("tableau"))
}
