package reelsense

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// titleSampleSize bounds the titles listed when nothing matches.
const titleSampleSize = 50

// MovieComparison is the outcome for one requested movie: either its
// statistics or, when it has no reviews, an error message.
type MovieComparison struct {
	Name             string        `json:"-"`
	Error            string        `json:"error,omitempty"`
	AverageSentiment *float64      `json:"average_sentiment"`
	ReviewCount      int           `json:"review_count"`
	MostPositive     *ScoredReview `json:"most_positive"`
	MostNegative     *ScoredReview `json:"most_negative"`
}

// MarshalJSON emits only the error field for an unmatched movie.
func (m MovieComparison) MarshalJSON() ([]byte, error) {
	if m.Error != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{m.Error})
	}
	type plain MovieComparison
	return json.Marshal(plain(m))
}

// ComparisonDebug helps callers see why nothing matched.
type ComparisonDebug struct {
	Movie1                string   `json:"m1"`
	Movie2                string   `json:"m2"`
	AvailableTitlesSample []string `json:"available_titles_sample"`
	TotalReviews          int      `json:"total_reviews_in_file"`
}

// Comparison is the result of comparing two movies. When no review matches
// either movie, Error and Debug are set and Movies is empty.
type Comparison struct {
	Error  string
	Debug  *ComparisonDebug
	Movies []MovieComparison // In request order.
}

// Err returns a non-nil error wrapping ErrNoReviews when the comparison
// failed as a whole.
func (c Comparison) Err() error {
	if c.Error == "" {
		return nil
	}
	return fmt.Errorf("%s: %w", c.Error, ErrNoReviews)
}

// Movie returns the entry for a requested name.
func (c Comparison) Movie(name string) (MovieComparison, bool) {
	for _, m := range c.Movies {
		if m.Name == name {
			return m, true
		}
	}
	return MovieComparison{}, false
}

// MarshalJSON encodes a failed comparison as {"error", "debug"} and a
// successful one as an object keyed by requested movie name.
func (c Comparison) MarshalJSON() ([]byte, error) {
	if c.Error != "" {
		return json.Marshal(struct {
			Error string           `json:"error"`
			Debug *ComparisonDebug `json:"debug,omitempty"`
		}{c.Error, c.Debug})
	}
	out := make(map[string]MovieComparison, len(c.Movies))
	for _, m := range c.Movies {
		out[m.Name] = m
	}
	return json.Marshal(out)
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Compare scores the reviews of movieA and movieB and reports statistics for
// each. Titles match case-insensitively after trimming; there is no fuzzy
// matching here. A movie without reviews gets its own error entry and does
// not prevent reporting the other.
func (p *Processor) Compare(reviews []Review, movieA, movieB string) Comparison {
	m1, m2 := normalizeTitle(movieA), normalizeTitle(movieB)

	var filtered []Review
	seen := make(map[string]bool)
	for _, r := range reviews {
		norm := normalizeTitle(r.MovieID)
		seen[norm] = true
		if norm == m1 || norm == m2 {
			filtered = append(filtered, r)
		}
	}

	if len(filtered) == 0 {
		msg := "no reviews found for the given movies"
		if len(reviews) == 0 {
			msg = "no reviews loaded"
		}
		return Comparison{
			Error: msg,
			Debug: &ComparisonDebug{
				Movie1:                m1,
				Movie2:                m2,
				AvailableTitlesSample: titleSample(seen, titleSampleSize),
				TotalReviews:          len(reviews),
			},
		}
	}

	scored := p.Process(filtered).Reviews

	var c Comparison
	for _, name := range []string{movieA, movieB} {
		if _, dup := c.Movie(name); dup {
			continue
		}
		c.Movies = append(c.Movies, movieStats(name, scored))
	}
	return c
}

func movieStats(name string, scored []ScoredReview) MovieComparison {
	norm := normalizeTitle(name)

	var matches []ScoredReview
	for _, r := range scored {
		if normalizeTitle(r.MovieID) == norm {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return MovieComparison{Name: name, Error: "no reviews for this movie after sentiment processing"}
	}

	scores := make([]float64, len(matches))
	for i, r := range matches {
		scores[i] = r.AggregateScore
	}
	avg := stat.Mean(scores, nil)
	best := matches[floats.MaxIdx(scores)]
	worst := matches[floats.MinIdx(scores)]

	return MovieComparison{
		Name:             name,
		AverageSentiment: &avg,
		ReviewCount:      len(matches),
		MostPositive:     &best,
		MostNegative:     &worst,
	}
}

func titleSample(seen map[string]bool, n int) []string {
	titles := make([]string, 0, len(seen))
	for t := range seen {
		if t != "" {
			titles = append(titles, t)
		}
	}
	sort.Strings(titles)
	if len(titles) > n {
		titles = titles[:n]
	}
	return titles
}
