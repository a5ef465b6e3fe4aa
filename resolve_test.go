package reelsense

import (
	"testing"
)

func TestSuggest(t *testing.T) {
	canonical := []string{"Interstellar", "Inception"}

	tests := []struct {
		query    string
		expected string
		desc     string
	}{
		{"Interstelar", "Interstellar", "Dropped letter"},
		{"inception", "Inception", "Case difference"},
		{"Incepton", "Inception", "Typo"},
		{"CompletelyDifferent", "", "Unrelated input"},
		{"", "", "Empty query"},
	}

	resolver := NewNameResolver()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			m := resolver.Suggest(tt.query, canonical)
			if m.BestCandidate != tt.expected {
				t.Errorf("Suggest(%q) = %q (similarity %d), expected %q", tt.query, m.BestCandidate, m.Similarity, tt.expected)
			}
			if m.Matched() != (tt.expected != "") {
				t.Errorf("Matched() = %v for %q", m.Matched(), tt.query)
			}
			if m.Matched() && m.Similarity < DefaultMatchThreshold {
				t.Errorf("Matched below threshold: %d", m.Similarity)
			}
		})
	}
}

func TestSuggestEmptyCandidates(t *testing.T) {
	called := false
	resolver := NewNameResolver(WithSimilarity(SimilarityFunc(func(a, b string) int {
		called = true
		return 100
	})))

	m := resolver.Suggest("Interstellar", nil)
	if m.Matched() || m.Similarity != 0 {
		t.Errorf("Expected no match, got %+v", m)
	}
	if called {
		t.Error("Similarity must not be computed without candidates")
	}
}

func TestSuggestThreshold(t *testing.T) {
	fixed := func(score int) Similarity {
		return SimilarityFunc(func(a, b string) int { return score })
	}

	tests := []struct {
		score   int
		matched bool
	}{
		{69, false},
		{70, true},
		{100, true},
	}
	for _, tt := range tests {
		m := NewNameResolver(WithSimilarity(fixed(tt.score))).Suggest("q", []string{"only"})
		if m.Matched() != tt.matched {
			t.Errorf("score %d: matched = %v, expected %v", tt.score, m.Matched(), tt.matched)
		}
	}

	m := NewNameResolver(WithSimilarity(fixed(80)), WithThreshold(90)).Suggest("q", []string{"only"})
	if m.Matched() {
		t.Error("Custom threshold was ignored")
	}
}

func TestSuggestFirstBestWins(t *testing.T) {
	resolver := NewNameResolver(WithSimilarity(SimilarityFunc(func(a, b string) int { return 90 })))
	m := resolver.Suggest("anything", []string{"First", "Second"})
	if m.BestCandidate != "First" {
		t.Errorf("Expected first candidate on tie, got %q", m.BestCandidate)
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	sim := LevenshteinSimilarity{}

	tests := []struct {
		a, b string
		min  int
		max  int
	}{
		{"Inception", "Inception", 100, 100},
		{"The Dark Knight", "the dark knight!", 100, 100},
		{"Knight, The Dark", "The Dark Knight", 100, 100},
		{"Interstelar", "Interstellar", 90, 95},
		{"abc", "", 0, 0},
		{"CompletelyDifferent", "Interstellar", 0, 40},
	}
	for _, tt := range tests {
		got := sim.Similarity(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Similarity(%q, %q) = %d, expected within [%d, %d]", tt.a, tt.b, got, tt.min, tt.max)
		}
		if rev := sim.Similarity(tt.b, tt.a); rev != got {
			t.Errorf("Similarity not symmetric for %q/%q: %d vs %d", tt.a, tt.b, got, rev)
		}
	}
}

func TestSuggestWithStopWords(t *testing.T) {
	canonical := []string{"The Dark Knight", "Dark Water"}

	plain := NewNameResolver().Suggest("dark knight", canonical)
	cleaned := NewNameResolver(WithStopWords("en")).Suggest("dark knight", canonical)

	if cleaned.BestCandidate != "The Dark Knight" {
		t.Errorf("Expected The Dark Knight, got %+v", cleaned)
	}
	if cleaned.Similarity <= plain.Similarity {
		t.Errorf("Expected stop word removal to raise similarity: %d vs %d", cleaned.Similarity, plain.Similarity)
	}
}
