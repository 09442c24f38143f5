package matching

import (
	"github.com/mathieu/cv-analyzer/internal/types"
)

// Score band lower bounds for the junior profile. Bands are half-open
// on the lower neighbor, so the five tiers partition [0, +inf) with no
// gaps and no overlaps.
const (
	distantThreshold    = 8
	acceptableThreshold = 12
	goodThreshold       = 18
	excellentThreshold  = 25
)

// Tier display text is static configuration, not computed.
var (
	tierIncompatible = types.Interpretation{
		Status:   "incompatible",
		Emoji:    "❌",
		Title:    "PROFIL INCOMPATIBLE",
		Message:  "Ce poste ne correspond pas à votre profil.",
		Severity: types.SeverityDanger,
	}
	tierDistant = types.Interpretation{
		Status:   "distant",
		Emoji:    "⚠️",
		Title:    "PROFIL ÉLOIGNÉ",
		Message:  "Adaptez fortement votre CV.",
		Severity: types.SeverityWarning,
	}
	tierAcceptable = types.Interpretation{
		Status:   "acceptable",
		Emoji:    "✅",
		Title:    "PROFIL JUNIOR ACCEPTABLE",
		Message:  "Score NORMAL pour un junior. Adaptez 2-3 éléments et POSTULEZ !",
		Severity: types.SeveritySuccess,
	}
	tierGood = types.Interpretation{
		Status:   "good",
		Emoji:    "✅✅",
		Title:    "BON MATCH",
		Message:  "Très bon score ! Postulez avec confiance.",
		Severity: types.SeveritySuccess,
	}
	tierExcellent = types.Interpretation{
		Status:   "excellent",
		Emoji:    "\U0001f3af",
		Title:    "EXCELLENT MATCH",
		Message:  "Match exceptionnel ! Postulez en priorité !",
		Severity: types.SeveritySuccess,
	}
)

// Interpret maps a score to its tier for the junior profile. The
// non-junior profile is a defined extension point with no bands yet;
// it yields nil rather than an error. The returned value is a copy, so
// callers cannot mutate the tier table.
func Interpret(score float64, junior bool) *types.Interpretation {
	if !junior {
		return nil
	}

	var tier types.Interpretation
	switch {
	case score < distantThreshold:
		tier = tierIncompatible
	case score < acceptableThreshold:
		tier = tierDistant
	case score < goodThreshold:
		tier = tierAcceptable
	case score < excellentThreshold:
		tier = tierGood
	default:
		tier = tierExcellent
	}
	return &tier
}
