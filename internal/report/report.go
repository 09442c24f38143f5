// Package report renders a MatchResult as a human-readable analysis
// report, either as HTML or exported to PDF.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/mathieu/cv-analyzer/internal/types"
)

// DefaultTitle is the report title when none is configured.
const DefaultTitle = "Rapport d'Analyse CV"

var severityColors = map[types.Severity]string{
	types.SeverityDanger:  "#c0392b",
	types.SeverityWarning: "#d68910",
	types.SeveritySuccess: "#1e8449",
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #202020; }
h1 { font-size: 22px; }
h2 { font-size: 16px; margin-top: 28px; }
.score { font-size: 28px; font-weight: bold; color: {{.TierColor}}; }
.status { font-weight: bold; }
.message { font-style: italic; }
.match { color: #1e8449; }
.missing { color: #c0392b; }
table { border-collapse: collapse; margin-top: 8px; }
td, th { border: 1px solid #ccc; padding: 4px 10px; font-size: 13px; }
</style>
</head>
<body>
<h1>{{.Title}} : {{.DocumentName}}</h1>
<p>Analyse effectuée par CV Analyzer.</p>

<h2>Score de compatibilité</h2>
<p class="score">{{printf "%.2f" .Result.Score}}%</p>
{{if .Result.Interpretation}}
<p class="status">Statut : {{.Result.Interpretation.Title}}</p>
<p class="message">{{.Result.Interpretation.Message}}</p>
{{end}}

<h2>Compétences techniques communes ({{len .Result.Skills.Common}})</h2>
<p class="match">{{if .Result.Skills.Common}}{{join .Result.Skills.Common ", "}}{{else}}Aucune compétence technique majeure en commun.{{end}}</p>

<h2>Compétences techniques manquantes ({{len .Result.Skills.Missing}})</h2>
<p>{{if .Result.Skills.Missing}}{{join .Result.Skills.Missing ", "}}{{else}}Toutes les compétences techniques requises sont présentes.{{end}}</p>

<h2>Mots-clés de l'offre</h2>
<table>
<tr><th>Mot-clé</th><th>Fréquence</th><th>Présent dans le CV</th></tr>
{{range .Result.TopKeywords}}
<tr><td>{{.Word}}</td><td>{{.Count}}</td><td>{{if .InCV}}oui{{else}}non{{end}}</td></tr>
{{end}}
</table>

<h2>Suggestions pour améliorer le score</h2>
{{range .Result.Suggestions.Skills}}
<p class="missing">Ajouter la compétence : <b>{{.Skill}}</b> ({{.Priority}})</p>
{{end}}
{{range .Result.Suggestions.Keywords}}
<p class="missing">Ajouter le mot-clé : <b>{{.Keyword}}</b> (fréquence dans l'offre : {{.Frequency}})</p>
{{end}}

<h2>Estimation d'amélioration</h2>
<p>Score actuel : {{printf "%.2f" .Result.Improvement.Current}}% |
Score estimé après correction : {{printf "%.1f" .Result.Improvement.Estimated}}% |
Gain potentiel : {{printf "%.1f" .Result.Improvement.Gain}}%</p>
</body>
</html>
`))

// data is the template context for a rendered report.
type data struct {
	Title        string
	DocumentName string
	TierColor    string
	Result       *types.MatchResult
}

// HTML renders the analysis report for a document (usually the CV
// filename) as a standalone HTML page.
func HTML(title, documentName string, result *types.MatchResult) ([]byte, error) {
	if title == "" {
		title = DefaultTitle
	}

	color := severityColors[types.SeverityDanger]
	if result.Interpretation != nil {
		if c, ok := severityColors[result.Interpretation.Severity]; ok {
			color = c
		}
	}

	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, data{
		Title:        title,
		DocumentName: documentName,
		TierColor:    color,
		Result:       result,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.Bytes(), nil
}
