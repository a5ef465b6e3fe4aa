package reelsense

import "sort"

// ExtremeSentences ranks every sentence of every scored review and returns
// the topN most positive and topN most negative. Sentences with equal scores
// keep review order, then sentence order.
func ExtremeSentences(scored []ScoredReview, topN int) (positive, negative []RankedSentence) {
	var all []RankedSentence
	for _, r := range scored {
		for i, s := range r.Sentences {
			all = append(all, RankedSentence{MovieID: r.MovieID, Text: s, Score: r.SentenceScores[i]})
		}
	}
	if topN < 0 {
		topN = 0
	}
	n := min(topN, len(all))

	positive = append([]RankedSentence(nil), all...)
	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Score > positive[j].Score
	})

	negative = append([]RankedSentence(nil), all...)
	sort.SliceStable(negative, func(i, j int) bool {
		return negative[i].Score < negative[j].Score
	})

	return positive[:n], negative[:n]
}
