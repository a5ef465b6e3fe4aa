package reelsense

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowAnalysis is the result of sliding a fixed-size window over an
// ordered sequence of review scores.
//
// The three collections are parallel: entry i describes the window that
// starts at offset i. MaxIndex and MinIndex are nil when no window exists,
// which happens for empty input, a non-positive size, or a size larger than
// the sequence.
type WindowAnalysis struct {
	MaxIndex      *int       `json:"max_index"`
	MinIndex      *int       `json:"min_index"`
	WindowReviews [][]string `json:"window_reviews"`
	WindowScores  []float64  `json:"window_scores"`
	WindowLabels  [][]string `json:"window_labels"`
}

// A Window is one contiguous run of reviews picked out of an analysis.
type Window struct {
	Index   int      `json:"index"`
	Score   float64  `json:"average_score"`
	Reviews []string `json:"reviews"`
	Labels  []string `json:"labels"`
}

func emptyAnalysis() WindowAnalysis {
	return WindowAnalysis{
		WindowReviews: [][]string{},
		WindowScores:  []float64{},
		WindowLabels:  [][]string{},
	}
}

// AnalyzeWindows builds every window of k consecutive elements and locates
// the windows with the highest and lowest mean score. Ties go to the window
// that starts first.
//
// scores, texts and labels must have the same length.
func AnalyzeWindows(scores []float64, texts, labels []string, k int) (WindowAnalysis, error) {
	if len(texts) != len(scores) || len(labels) != len(scores) {
		return emptyAnalysis(), ErrLengthMismatch
	}
	if len(scores) == 0 || k <= 0 || k > len(scores) {
		return emptyAnalysis(), nil
	}

	n := len(scores) - k + 1
	a := WindowAnalysis{
		WindowReviews: make([][]string, 0, n),
		WindowScores:  make([]float64, 0, n),
		WindowLabels:  make([][]string, 0, n),
	}
	for x := 0; x < n; x++ {
		a.WindowScores = append(a.WindowScores, stat.Mean(scores[x:x+k], nil))
		a.WindowReviews = append(a.WindowReviews, texts[x:x+k:x+k])
		a.WindowLabels = append(a.WindowLabels, labels[x:x+k:x+k])
	}

	maxIdx, minIdx := floats.MaxIdx(a.WindowScores), floats.MinIdx(a.WindowScores)
	a.MaxIndex, a.MinIndex = &maxIdx, &minIdx
	return a, nil
}

// AnalyzeReviewWindows runs AnalyzeWindows over scored reviews in their
// given order, using review text as window content and movie titles as
// labels.
func AnalyzeReviewWindows(scored []ScoredReview, k int) WindowAnalysis {
	scores := make([]float64, len(scored))
	texts := make([]string, len(scored))
	labels := make([]string, len(scored))
	for i, r := range scored {
		scores[i] = r.AggregateScore
		texts[i] = r.Text
		labels[i] = r.MovieID
	}
	// The inputs are parallel by construction.
	a, _ := AnalyzeWindows(scores, texts, labels, k)
	return a
}

// Len returns the number of windows.
func (a WindowAnalysis) Len() int {
	return len(a.WindowScores)
}

// Best returns the most positive window.
func (a WindowAnalysis) Best() (Window, bool) {
	return a.window(a.MaxIndex)
}

// Worst returns the most negative window.
func (a WindowAnalysis) Worst() (Window, bool) {
	return a.window(a.MinIndex)
}

func (a WindowAnalysis) window(idx *int) (Window, bool) {
	if idx == nil {
		return Window{}, false
	}
	i := *idx
	return Window{
		Index:   i,
		Score:   a.WindowScores[i],
		Reviews: a.WindowReviews[i],
		Labels:  a.WindowLabels[i],
	}, true
}
