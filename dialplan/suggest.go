package dialplan

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// directiveKeywords are the directive keywords a misspelled token is
// matched against.
//
//nolint:gochecknoglobals
var directiveKeywords = []string{
	"exten",
	"same",
	"include",
	"switch",
	"eswitch",
	"lswitch",
}

// minSuggestLength is the shortest token worth suggesting for; below this,
// fuzzy matches are mostly noise.
const minSuggestLength = 3

// suggestKeyword fuzzy-matches a directive token against the known keywords
// and returns the best candidate. The token is first truncated at its first
// non-letter character, so "exten:" and "exten=>..." resolve to "exten"
// directly.
//
// Fuzzy matching is subsequence-based, so it recovers omission typos
// ("exen", "swich", "inlude") but not substitutions; a miss simply yields
// no suggestion. The match must cover at least half the keyword to avoid
// far-fetched suggestions.
func suggestKeyword(token string) (string, bool) {
	end := 0
	for end < len(token) && isASCIILetter(token[end]) {
		end++
	}

	token = strings.ToLower(token[:end])
	if len(token) < minSuggestLength {
		return "", false
	}

	for _, keyword := range directiveKeywords {
		if token == keyword {
			return keyword, true
		}
	}

	matches := fuzzy.Find(token, directiveKeywords)
	if len(matches) == 0 {
		return "", false
	}

	best := matches[0]
	if 2*len(best.MatchedIndexes) < len(best.Str) {
		return "", false
	}

	return best.Str, true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
