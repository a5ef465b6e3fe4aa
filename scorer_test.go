package reelsense

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

var testWords = map[string]int{
	"good":      3,
	"bad":       -2,
	"amazing":   4,
	"terrible":  -3,
	"love":      3,
	"hate":      -3,
	"fantastic": 4,
	"boring":    -3,
}

// periodSplitter splits on full stops, which keeps tests independent of
// the punkt model.
var periodSplitter = SplitterFunc(func(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
})

func newTestScorer() *Scorer {
	return NewScorer(NewLexicon(testWords), periodSplitter)
}

func TestScoreSentence(t *testing.T) {
	tests := []struct {
		text     string
		expected int
		desc     string
	}{
		{"This is good and amazing", 7, "Positive words sum"},
		{"This is bad and terrible", -5, "Negative words sum"},
		{"I love it but hate the ending", 0, "Mixed words cancel"},
		{"The movie was released in 2020", 0, "No lexicon words"},
		{"", 0, "Empty text"},
		{"GOOD, Good... good!", 9, "Case folding and punctuation"},
		{"goodness badly", 0, "Whole words only"},
		{"good_bad good-bad", 1, "Underscore joins a word, hyphen splits"},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := scorer.ScoreSentence(tt.text); got != tt.expected {
				t.Errorf("ScoreSentence(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestScoreReview(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		desc     string
	}{
		{"Good. Bad.", 0.5, "Mean of sentence scores"},
		{"Amazing and good. Terrible. Nothing here.", 4.0 / 3.0, "Neutral sentence counts"},
		{"", 0.0, "No sentences"},
		{"  .  . ", 0.0, "Only separators"},
	}

	scorer := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := scorer.ScoreReview(tt.text)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ScoreReview(%q) = %.4f, expected %.4f", tt.text, got, tt.expected)
			}
		})
	}
}

func TestScoreReviewOrderInvariant(t *testing.T) {
	scorer := newTestScorer()
	sentences := []string{"good amazing", "bad", "terrible boring", "love it", "plain"}

	base := scorer.ScoreReview(strings.Join(sentences, ". "))
	reversed := make([]string, len(sentences))
	for i, s := range sentences {
		reversed[len(sentences)-1-i] = s
	}
	rotated := append(append([]string{}, sentences[2:]...), sentences[:2]...)

	for _, perm := range [][]string{reversed, rotated} {
		got := scorer.ScoreReview(strings.Join(perm, ". "))
		if math.Abs(got-base) > 1e-9 {
			t.Errorf("Score changed under permutation %v: %.4f vs %.4f", perm, got, base)
		}
	}
}

func TestScorerCustomTokenizer(t *testing.T) {
	tok := NewWordTokenizer(
		UsingWordPattern(regexp.MustCompile(`[a-z]+`)),
		UsingCaseFolding(func(s string) string { return s }),
	)
	scorer := NewScorer(NewLexicon(testWords), periodSplitter, UsingScorerTokenizer(tok))

	if got := scorer.ScoreSentence("Good good"); got != 3 {
		t.Errorf("Expected case-sensitive tokenizer to score 3, got %d", got)
	}
}

func TestWordTokenizerUnicode(t *testing.T) {
	words := NewWordTokenizer().Words("Très BON film, n'est-ce pas?")
	expected := []string{"très", "bon", "film", "n", "est", "ce", "pas"}
	if strings.Join(words, "|") != strings.Join(expected, "|") {
		t.Errorf("Words = %v, expected %v", words, expected)
	}
}
