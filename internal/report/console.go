package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mathieu/cv-analyzer/internal/types"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted terminal output of analysis results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(line string) string {
	runes := []rune(line)
	if len(runes) <= boxWidth-4 {
		return line
	}
	return string(runes[:boxWidth-7]) + "..."
}

// PrintResult outputs a human-readable summary of an analysis.
func (p *Printer) PrintResult(cvFilename string, result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score :    %.2f%%\n", result.Score))
	if result.Interpretation != nil {
		sb.WriteString(fmt.Sprintf("Statut :   %s %s\n", result.Interpretation.Emoji, result.Interpretation.Title))
		sb.WriteString(fmt.Sprintf("Conseil :  %s\n", result.Interpretation.Message))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Mots-clés CV / offre / communs : %d / %d / %d\n",
		result.Stats.CVKeywords, result.Stats.JobKeywords, result.Stats.CommonKeywords))
	sb.WriteString(fmt.Sprintf("Compétences CV / offre / communes : %d / %d / %d",
		result.Stats.CVSkills, result.Stats.JobSkills, result.Stats.CommonSkills))
	p.printBox("Analyse : "+cvFilename, sb.String())

	if len(result.Skills.Missing) > 0 {
		p.printBox("Compétences manquantes", strings.Join(result.Skills.Missing, ", "))
	}

	if len(result.Suggestions.Skills) > 0 || len(result.Suggestions.Keywords) > 0 {
		var sg strings.Builder
		for _, s := range result.Suggestions.Skills {
			sg.WriteString(fmt.Sprintf("[%s] compétence : %s\n", s.Priority, s.Skill))
		}
		for _, k := range result.Suggestions.Keywords {
			sg.WriteString(fmt.Sprintf("[MOT-CLÉ] %s (fréquence %d)\n", k.Keyword, k.Frequency))
		}
		sg.WriteString(fmt.Sprintf("\nScore estimé après correction : %.1f%% (gain %.1f)",
			result.Improvement.Estimated, result.Improvement.Gain))
		p.printBox("Suggestions", strings.TrimRight(sg.String(), "\n"))
	}
}
