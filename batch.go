package reelsense

import (
	"io"
	"log/slog"
)

// A ProcessOpt represents a setting that changes how a batch is processed.
//
// For example, it might cap the number of reviews scored:
//
//	result := processor.Process(reviews, reelsense.WithLimit(1000))
type ProcessOpt func(opts *ProcessOpts)

// ProcessOpts controls batch processing.
type ProcessOpts struct {
	Limit  int          // Score at most Limit valid reviews; 0 means no limit.
	Width  int          // Display width of extreme sentences.
	Logger *slog.Logger // Receives one debug record per skipped row.
}

// WithLimit caps the number of reviews scored. Only rows that are actually
// processed count towards n.
func WithLimit(n int) ProcessOpt {
	return func(opts *ProcessOpts) {
		opts.Limit = n
	}
}

// WithDisplayWidth sets the width used to format extreme sentences.
func WithDisplayWidth(width int) ProcessOpt {
	return func(opts *ProcessOpts) {
		opts.Width = width
	}
}

// WithLogger sets the logger for skipped rows.
func WithLogger(logger *slog.Logger) ProcessOpt {
	return func(opts *ProcessOpts) {
		opts.Logger = logger
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// BatchResult holds the scored reviews of a batch, in input order.
type BatchResult struct {
	Reviews []ScoredReview
	Skipped int // Rows without a title or text.
}

// Processor applies a Scorer across collections of reviews.
type Processor struct {
	scorer *Scorer
}

// NewProcessor creates a Processor backed by scorer.
func NewProcessor(scorer *Scorer) *Processor {
	return &Processor{scorer: scorer}
}

// Scorer returns the scorer used by p.
func (p *Processor) Scorer() *Scorer {
	return p.scorer
}

// Process scores every valid review. Rows missing a title or text are
// skipped and counted; they never abort the batch.
func (p *Processor) Process(reviews []Review, opts ...ProcessOpt) BatchResult {
	base := ProcessOpts{Width: DisplayWidth, Logger: discardLogger}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	result := BatchResult{Reviews: make([]ScoredReview, 0, len(reviews))}
	for i, r := range reviews {
		if base.Limit > 0 && len(result.Reviews) >= base.Limit {
			break
		}
		if !r.valid() {
			result.Skipped++
			base.Logger.Debug("skipping review", "row", i, "movie", r.MovieID, "error", ErrInvalidRow)
			continue
		}
		result.Reviews = append(result.Reviews, p.score(r, base.Width))
	}
	return result
}

// ScoreOne cleans, segments and scores a single review.
func (p *Processor) ScoreOne(r Review) ScoredReview {
	return p.score(r, DisplayWidth)
}

func (p *Processor) score(r Review, width int) ScoredReview {
	cleaned := CleanText(r.Text)
	sents := p.scorer.Split(cleaned)
	scores := p.scorer.ScoreSentences(sents)

	sr := ScoredReview{
		Review:         r,
		CleanedText:    cleaned,
		Sentences:      sents,
		SentenceScores: scores,
		AggregateScore: meanScore(scores),
	}
	if sr.Sentences == nil {
		sr.Sentences = []string{}
	}

	var pos, neg ExtremeSentence
	if len(scores) > 0 {
		maxIdx, minIdx := extremeIndices(scores)
		pos = ExtremeSentence{Text: sents[maxIdx], Score: scores[maxIdx]}
		neg = ExtremeSentence{Text: sents[minIdx], Score: scores[minIdx]}
	}
	pos.Display = FormatSentence(pos.Text, width)
	neg.Display = FormatSentence(neg.Text, width)
	sr.MostPositive, sr.MostNegative = pos, neg

	return sr
}
