package reelsense

import "strings"

// A Review is a raw review record: the movie it belongs to and its text.
type Review struct {
	MovieID string `json:"movie_title" yaml:"movie_title"`
	Text    string `json:"review_content" yaml:"review_content"`
}

// valid reports whether r carries both a title and some text.
func (r Review) valid() bool {
	return strings.TrimSpace(r.MovieID) != "" && strings.TrimSpace(r.Text) != ""
}

// An ExtremeSentence is the most positive or most negative sentence of a
// review, together with its fixed-width display form.
type ExtremeSentence struct {
	Text    string `json:"text"`
	Display string `json:"display"`
	Score   int    `json:"score"`
}

// A ScoredReview is a Review after cleaning, segmentation and scoring.
type ScoredReview struct {
	Review

	CleanedText    string   `json:"cleaned_text"`
	Sentences      []string `json:"sentences"`
	SentenceScores []int    `json:"sentence_scores"` // Parallel to Sentences.

	// AggregateScore is the mean of SentenceScores, 0 when there are none.
	AggregateScore float64 `json:"average_score"`

	MostPositive ExtremeSentence `json:"most_positive_sentence"`
	MostNegative ExtremeSentence `json:"most_negative_sentence"`
}

// A RankedSentence is a single sentence pulled out of a corpus of reviews.
type RankedSentence struct {
	MovieID string `json:"movie_title"`
	Text    string `json:"sentence"`
	Score   int    `json:"score"`
}
