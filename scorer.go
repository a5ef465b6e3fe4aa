package reelsense

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scorer computes lexicon sentiment for sentences and whole reviews.
//
// A sentence scores the sum of the polarities of its words; a review scores
// the mean of its sentence scores.
type Scorer struct {
	lexicon   *Lexicon
	splitter  SentenceSplitter
	tokenizer Tokenizer
}

type ScorerOpt func(*Scorer)

// UsingScorerTokenizer specifies the Tokenizer to use.
func UsingScorerTokenizer(t Tokenizer) ScorerOpt {
	return func(s *Scorer) {
		s.tokenizer = t
	}
}

// NewScorer creates a Scorer over lex that segments reviews with splitter.
func NewScorer(lex *Lexicon, splitter SentenceSplitter, opts ...ScorerOpt) *Scorer {
	s := &Scorer{
		lexicon:   lex,
		splitter:  splitter,
		tokenizer: NewWordTokenizer(),
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// ScoreSentence returns the summed polarity of the words in text. Words
// missing from the lexicon contribute nothing, so the empty string scores 0.
func (s *Scorer) ScoreSentence(text string) int {
	score := 0
	for _, w := range s.tokenizer.Words(text) {
		if p, ok := s.lexicon.Polarity(w); ok {
			score += p
		}
	}
	return score
}

// ScoreReview splits text into sentences and returns the mean sentence
// score, or 0 when text has no sentences.
func (s *Scorer) ScoreReview(text string) float64 {
	return meanScore(s.ScoreSentences(s.Split(text)))
}

// Split segments text with the scorer's SentenceSplitter.
func (s *Scorer) Split(text string) []string {
	return s.splitter.Split(text)
}

// ScoreSentences scores each sentence, preserving order.
func (s *Scorer) ScoreSentences(sentences []string) []int {
	scores := make([]int, len(sentences))
	for i, sent := range sentences {
		scores[i] = s.ScoreSentence(sent)
	}
	return scores
}

func meanScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	return stat.Mean(toFloats(scores), nil)
}

// extremeIndices returns the first index of the maximum and of the minimum.
func extremeIndices(scores []int) (maxIdx, minIdx int) {
	fs := toFloats(scores)
	return floats.MaxIdx(fs), floats.MinIdx(fs)
}

func toFloats(xs []int) []float64 {
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	return fs
}
