// Package parsing provides text normalization, tokenization and keyword
// frequency ranking for CV and job-posting documents.
package parsing

import (
	"regexp"
	"strings"
)

// stopWords contains common French function words excluded from keyword
// matching.
var stopWords = map[string]bool{
	"le": true, "la": true, "les": true, "un": true, "une": true,
	"des": true, "de": true, "du": true, "et": true, "à": true,
	"dans": true, "pour": true, "par": true, "avec": true, "sur": true,
	"ce": true, "qui": true, "il": true, "elle": true, "au": true,
	"aux": true, "ou": true, "mais": true, "donc": true, "or": true,
	"ni": true, "car": true, "en": true, "je": true, "tu": true,
	"nous": true, "vous": true, "ils": true, "elles": true, "son": true,
	"sa": true, "ses": true, "leur": true, "leurs": true, "mon": true,
	"ma": true, "mes": true, "ton": true, "ta": true, "tes": true,
	"notre": true, "votre": true, "est": true, "sont": true, "être": true,
	"avoir": true, "fait": true, "faire": true, "peut": true, "tout": true,
}

// nonToken matches every rune that does not belong in a keyword:
// anything outside ASCII letters, the accented letters used in French,
// digits, whitespace and the symbols appearing in skill names such as
// c++, c# and power-bi.
var nonToken = regexp.MustCompile(`[^a-zàâäçéèêëîïôùûüÿ0-9\s+#-]`)

// minTokenLength is the exclusive lower bound on kept token length.
const minTokenLength = 2

// Tokenize normalizes text into a filtered keyword sequence: lowercase,
// punctuation stripped, split on whitespace, stop words and short
// tokens dropped. Duplicates are preserved in source order. Empty or
// malformed input yields an empty sequence.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := nonToken.ReplaceAllString(lowered, " ")

	words := strings.Fields(cleaned)
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if stopWords[word] || len([]rune(word)) <= minTokenLength {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// IsStopWord reports whether the word belongs to the stop-word set.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// Set returns the unique-value view of a keyword sequence.
func Set(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[kw] = true
	}
	return set
}
