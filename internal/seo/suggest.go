package seo

import (
	"strings"
	"unicode"
)

const (
	maxHashtagSuggestions = 5
	maxTagSuggestions     = 12
	minKeywordLength      = 4
)

// keywords extracts the words longer than 3 characters from the lowercased
// title, stripped of surrounding punctuation. These drive the generated
// hashtag and tag suggestions.
func keywords(title string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(w)) >= minKeywordLength {
			out = append(out, w)
		}
	}
	return out
}

// SuggestHashtags builds up to 5 hashtag suggestions from the title keywords.
// Deterministic: same title, same output.
func SuggestHashtags(title string) []string {
	words := keywords(title)

	var out []string
	if len(words) >= 2 {
		out = append(out, "#"+words[0]+words[1])
	}
	out = append(out, "#Tutorial", "#HowTo", "#2026")
	if len(words) >= 1 {
		out = append(out, "#"+words[0])
	}
	if len(out) > maxHashtagSuggestions {
		out = out[:maxHashtagSuggestions]
	}
	return out
}

// SuggestTags builds up to 12 deduplicated tag suggestions: the title itself,
// its first five keywords, and evergreen boilerplate terms.
func SuggestTags(title string) []string {
	words := keywords(title)
	if len(words) > 5 {
		words = words[:5]
	}

	candidates := []string{title}
	candidates = append(candidates, words...)
	candidates = append(candidates, "tutorial", "how to", "guide", "2026")
	if len(words) > 0 {
		candidates = append(candidates, words[0]+" tutorial", words[0]+" guide")
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, maxTagSuggestions)
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == maxTagSuggestions {
			break
		}
	}
	return out
}

// ToTitleCase capitalizes the first letter of each whitespace-delimited token
// and lowercases the remainder. Applying it twice yields the same result.
func ToTitleCase(s string) string {
	tokens := strings.Split(s, " ")
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		runes := []rune(tok)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}
