// Package keyword derives weighted keyword sets from goal text.
package keyword

import (
	"strings"
)

// Tier is the weight class of a keyword.
type Tier int

// Tiers ordered by strength. Zero means the token is not a keyword.
const (
	TierWeak     Tier = 1
	TierModerate Tier = 2
	TierStrong   Tier = 3
)

// Set maps a lower-cased token to its weight tier.
type Set map[string]Tier

// minTokenLen drops particles and abbreviations too short to carry signal.
const minTokenLen = 3

// stopwords are discarded regardless of where they appear.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "into": {}, "our": {}, "their": {}, "will": {}, "have": {},
	"has": {}, "are": {}, "was": {}, "were": {}, "been": {}, "being": {},
	"all": {}, "any": {}, "each": {}, "per": {}, "via": {}, "more": {},
	"most": {}, "other": {}, "some": {}, "such": {}, "than": {}, "then": {},
	"them": {}, "these": {}, "those": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "how": {}, "why": {}, "not": {},
	"can": {}, "could": {}, "should": {}, "would": {}, "may": {}, "might": {},
	"must": {}, "shall": {}, "about": {}, "above": {}, "after": {}, "before": {},
	"between": {}, "during": {}, "under": {}, "over": {}, "out": {}, "off": {},
	"own": {}, "same": {}, "too": {}, "very": {}, "just": {}, "also": {},
	"its": {}, "but": {}, "nor": {}, "only": {}, "both": {},
	"goal": {}, "goals": {}, "ensure": {}, "improve": {}, "make": {},
	"work": {}, "team": {}, "year": {}, "quarter": {}, "half": {},
}

// domainNouns carry strong weight wherever they appear; they name the
// technical subject matter goals are usually written around.
var domainNouns = map[string]struct{}{
	"architecture": {}, "security": {}, "reliability": {}, "latency": {},
	"performance": {}, "migration": {}, "api": {}, "database": {},
	"pipeline": {}, "infrastructure": {}, "observability": {}, "deployment": {},
	"testing": {}, "documentation": {}, "authentication": {}, "scalability": {},
	"monitoring": {}, "incident": {}, "availability": {}, "throughput": {},
	"kubernetes": {}, "caching": {}, "schema": {}, "encryption": {},
	"onboarding": {}, "mentorship": {}, "rollout": {}, "refactor": {},
}

// Extract builds a weighted keyword set from a goal's title and
// description. Title tokens and domain nouns default to strong, body
// tokens to moderate; stop-words are discarded. The result depends only
// on the input text.
func Extract(title, description string) Set {
	set := make(Set)
	add(set, title, TierStrong)
	add(set, description, TierModerate)
	return set
}

// add merges tokens at the given default tier, never downgrading a
// token already present at a higher tier.
func add(set Set, text string, tier Tier) {
	for _, tok := range Tokenize(text) {
		t := tier
		if _, ok := domainNouns[tok]; ok {
			t = TierStrong
		}
		if t > set[tok] {
			set[tok] = t
		}
	}
}

// Tokenize lower-cases text and splits it into candidate keyword
// tokens, dropping stop-words and tokens shorter than three runes.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLen {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
