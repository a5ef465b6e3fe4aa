package reelsense

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/bbalet/stopwords"
)

// DefaultMatchThreshold is the lowest similarity accepted as a suggestion.
const DefaultMatchThreshold = 70

// Similarity scores how alike two strings are, from 0 to 100.
type Similarity interface {
	Similarity(a, b string) int
}

// SimilarityFunc adapts an ordinary function to a Similarity.
type SimilarityFunc func(a, b string) int

// Similarity calls f(a, b).
func (f SimilarityFunc) Similarity(a, b string) int {
	return f(a, b)
}

// LevenshteinSimilarity compares strings by normalized edit distance. Both
// sides are lowercased and stripped of punctuation first, and the score is
// the better of a plain comparison and one with words sorted, so "Dark
// Knight, The" still matches "The Dark Knight".
type LevenshteinSimilarity struct{}

// Similarity implements Similarity.
func (LevenshteinSimilarity) Similarity(a, b string) int {
	a, b = fullProcess(a), fullProcess(b)
	if a == "" || b == "" {
		return 0
	}
	return max(ratio(a, b), ratio(sortTokens(a), sortTokens(b)))
}

func ratio(a, b string) int {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

// fullProcess lowercases s and turns every non-alphanumeric rune into a
// space, then collapses whitespace.
func fullProcess(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// NameMatch is the outcome of resolving a free-text movie name.
type NameMatch struct {
	Query         string `json:"query"`
	BestCandidate string `json:"best_candidate,omitempty"` // Empty below the threshold.
	Similarity    int    `json:"similarity"`
}

// Matched reports whether a candidate cleared the threshold.
func (m NameMatch) Matched() bool {
	return m.BestCandidate != ""
}

// NameResolver suggests the canonical movie title closest to user input.
type NameResolver struct {
	similarity Similarity
	threshold  int
	normalize  func(string) string
}

type ResolverOpt func(*NameResolver)

// WithSimilarity replaces the similarity metric.
func WithSimilarity(s Similarity) ResolverOpt {
	return func(r *NameResolver) {
		r.similarity = s
	}
}

// WithThreshold sets the minimum similarity for a suggestion.
func WithThreshold(n int) ResolverOpt {
	return func(r *NameResolver) {
		r.threshold = n
	}
}

// WithStopWords drops stop words of the given ISO 639-1 language from both
// sides before scoring. A title made only of stop words is kept as is.
func WithStopWords(langCode string) ResolverOpt {
	return func(r *NameResolver) {
		r.normalize = func(s string) string {
			cleaned := strings.TrimSpace(stopwords.CleanString(s, langCode, false))
			if cleaned == "" {
				return s
			}
			return cleaned
		}
	}
}

// NewNameResolver creates a resolver with the default metric and threshold.
func NewNameResolver(opts ...ResolverOpt) *NameResolver {
	r := &NameResolver{
		similarity: LevenshteinSimilarity{},
		threshold:  DefaultMatchThreshold,
		normalize:  func(s string) string { return s },
	}
	for _, applyOpt := range opts {
		applyOpt(r)
	}
	return r
}

// Suggest returns the canonical name most similar to query. The first of
// equally good candidates wins. BestCandidate is left empty when the best
// score is under the threshold or there are no candidates.
func (r *NameResolver) Suggest(query string, candidates []string) NameMatch {
	m := NameMatch{Query: query}
	if len(candidates) == 0 {
		return m
	}

	q := r.normalize(query)
	best, bestScore := "", -1
	for _, c := range candidates {
		score := r.similarity.Similarity(q, r.normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	m.Similarity = bestScore
	if bestScore >= r.threshold {
		m.BestCandidate = best
	}
	return m
}
