package qa

import (
	"regexp"
	"strings"
)

// stopWords are common English words that add noise to overlap scoring.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"not": true, "no": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "should": true, "may": true, "might": true, "can": true,
	"could": true, "this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "we": true, "they": true, "you": true,
	"if": true, "then": true, "when": true, "where": true, "how": true,
	"what": true, "which": true, "who": true, "so": true, "as": true,
	"about": true, "into": true, "over": true, "very": true, "just": true,
	"also": true, "more": true, "most": true, "some": true, "any": true,
	"all": true, "each": true, "every": true,
}

// splitRe splits on non-alphanumeric characters.
var splitRe = regexp.MustCompile(`[^a-z0-9]+`)

// tokenize converts text to scoring tokens: lowercase, split on
// non-alphanumeric, drop stop words and single characters.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	parts := splitRe.Split(strings.ToLower(text), -1)

	var tokens []string
	for _, t := range parts {
		if len(t) >= 2 && !stopWords[t] {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
