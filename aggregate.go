package reelsense

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// MovieSummary is the mean sentiment of one movie's reviews.
type MovieSummary struct {
	MovieID     string  `json:"movie_title" yaml:"movie_title"`
	ReviewCount int     `json:"review_count" yaml:"review_count"`
	MeanScore   float64 `json:"average_score" yaml:"average_score"` // Rounded to 2 decimals.
}

// Summary holds the highest and lowest scoring movies.
type Summary struct {
	Top    []MovieSummary `json:"top"`
	Bottom []MovieSummary `json:"bottom"`
}

// SummaryExport is the plain form of a Summary handed to presentation code.
type SummaryExport struct {
	TopMovies   []string `json:"top_movies" yaml:"top_movies"`
	WorstMovies []string `json:"worst_movies" yaml:"worst_movies"`
}

// ExportFormat selects the encoding of a SummaryExport.
type ExportFormat string

const (
	JSONFormat ExportFormat = "json"
	YAMLFormat ExportFormat = "yaml"
)

// FormatForPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatForPath(path string) ExportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return JSONFormat
	}
}

// SummarizeMovies groups scored reviews by movie and returns one summary
// per movie, ordered by movie title.
func SummarizeMovies(scored []ScoredReview) []MovieSummary {
	groups := make(map[string][]float64)
	for _, r := range scored {
		groups[r.MovieID] = append(groups[r.MovieID], r.AggregateScore)
	}

	movies := make([]MovieSummary, 0, len(groups))
	for id, scores := range groups {
		movies = append(movies, MovieSummary{
			MovieID:     id,
			ReviewCount: len(scores),
			MeanScore:   round2(stat.Mean(scores, nil)),
		})
	}
	sort.Slice(movies, func(i, j int) bool {
		return movies[i].MovieID < movies[j].MovieID
	})
	return movies
}

// Summarize returns the topN highest scoring movies, best first, and the
// topN lowest scoring movies, worst first. Equal means keep title order.
func Summarize(scored []ScoredReview, topN int) Summary {
	movies := SummarizeMovies(scored)
	if topN < 0 {
		topN = 0
	}

	top := append([]MovieSummary(nil), movies...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].MeanScore > top[j].MeanScore
	})

	bottom := append([]MovieSummary(nil), movies...)
	sort.SliceStable(bottom, func(i, j int) bool {
		return bottom[i].MeanScore < bottom[j].MeanScore
	})

	return Summary{
		Top:    top[:min(topN, len(top))],
		Bottom: bottom[:min(topN, len(bottom))],
	}
}

// Summarize is shorthand for the package-level Summarize.
func (p *Processor) Summarize(scored []ScoredReview, topN int) Summary {
	return Summarize(scored, topN)
}

// Export returns the movie titles of s.
func (s Summary) Export() SummaryExport {
	e := SummaryExport{
		TopMovies:   make([]string, len(s.Top)),
		WorstMovies: make([]string, len(s.Bottom)),
	}
	for i, m := range s.Top {
		e.TopMovies[i] = m.MovieID
	}
	for i, m := range s.Bottom {
		e.WorstMovies[i] = m.MovieID
	}
	return e
}

// Report writes the top and bottom tables as aligned text.
func (s Summary) Report(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sections := []struct {
		title  string
		movies []MovieSummary
	}{
		{"Top Movies by Sentiment:", s.Top},
		{"Worst Movies by Sentiment:", s.Bottom},
	}
	for _, sec := range sections {
		fmt.Fprintf(tw, "\n%s\n", sec.title)
		fmt.Fprintln(tw, "Movie Title\tReviews\tAverage Score")
		for _, m := range sec.movies {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\n", m.MovieID, m.ReviewCount, m.MeanScore)
		}
	}
	return tw.Flush()
}

// WriteExport encodes e to w.
func WriteExport(w io.Writer, e SummaryExport, format ExportFormat) error {
	switch format {
	case YAMLFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("error encoding summary yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("error encoding summary json: %w", err)
		}
		return nil
	}
}

// ReadExport decodes a SummaryExport from r.
func ReadExport(r io.Reader, format ExportFormat) (SummaryExport, error) {
	var e SummaryExport
	var err error
	switch format {
	case YAMLFormat:
		err = yaml.NewDecoder(r).Decode(&e)
	default:
		err = json.NewDecoder(r).Decode(&e)
	}
	if err != nil {
		return SummaryExport{}, fmt.Errorf("error decoding summary %s: %w", format, err)
	}
	return e, nil
}

// SaveExport writes e to path, creating parent directories as needed. The
// format follows the file extension.
func SaveExport(path string, e SummaryExport) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}
	if err := WriteExport(f, e, FormatForPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadExport reads a file written by SaveExport.
func LoadExport(path string) (SummaryExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return SummaryExport{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return ReadExport(f, FormatForPath(path))
}

// round2 rounds half to even at two decimals.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
