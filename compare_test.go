package reelsense

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

var comparisonReviews = []Review{
	{MovieID: "Movie A", Text: "good amazing"},
	{MovieID: "Movie A", Text: "bad terrible"},
	{MovieID: "Movie B", Text: "terrible bad story"},
	{MovieID: "Movie C", Text: "plain"},
}

func TestCompare(t *testing.T) {
	c := newTestProcessor().Compare(comparisonReviews, "Movie A", "Movie B")
	if err := c.Err(); err != nil {
		t.Fatalf("Unexpected comparison error: %v", err)
	}
	if len(c.Movies) != 2 || c.Movies[0].Name != "Movie A" || c.Movies[1].Name != "Movie B" {
		t.Fatalf("Expected entries in request order, got %+v", c.Movies)
	}

	a, _ := c.Movie("Movie A")
	b, _ := c.Movie("Movie B")
	if a.AverageSentiment == nil || b.AverageSentiment == nil {
		t.Fatal("Expected average sentiment for both movies")
	}
	if *a.AverageSentiment <= *b.AverageSentiment {
		t.Errorf("Expected A (%v) > B (%v)", *a.AverageSentiment, *b.AverageSentiment)
	}
	if *a.AverageSentiment != 1 || *b.AverageSentiment != -5 {
		t.Errorf("Unexpected averages %v and %v", *a.AverageSentiment, *b.AverageSentiment)
	}
	if a.ReviewCount != 2 || b.ReviewCount != 1 {
		t.Errorf("Unexpected counts %d and %d", a.ReviewCount, b.ReviewCount)
	}
	if a.MostPositive.Text != "good amazing" || a.MostNegative.Text != "bad terrible" {
		t.Errorf("Unexpected extremes %q / %q", a.MostPositive.Text, a.MostNegative.Text)
	}
	if b.MostPositive.Text != b.MostNegative.Text {
		t.Error("Single review should be both most positive and most negative")
	}
}

func TestCompareNormalizesTitles(t *testing.T) {
	c := newTestProcessor().Compare(comparisonReviews, "  movie a ", "MOVIE b")
	if c.Err() != nil {
		t.Fatalf("Unexpected error: %v", c.Err())
	}
	a, ok := c.Movie("  movie a ")
	if !ok || a.ReviewCount != 2 {
		t.Errorf("Expected requested name as key with 2 reviews, got %+v", a)
	}
}

func TestComparePartialMatch(t *testing.T) {
	c := newTestProcessor().Compare(comparisonReviews, "Movie A", "Unknown 2")
	if c.Err() != nil {
		t.Fatalf("Unexpected top-level error: %v", c.Err())
	}
	a, _ := c.Movie("Movie A")
	u, ok := c.Movie("Unknown 2")
	if a.Error != "" || a.ReviewCount != 2 {
		t.Errorf("Expected stats for Movie A, got %+v", a)
	}
	if !ok || u.Error == "" {
		t.Errorf("Expected error entry for Unknown 2, got %+v", u)
	}

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["Unknown 2"]["error"]; !ok || len(decoded["Unknown 2"]) != 1 {
		t.Errorf("Expected only an error field for Unknown 2, got %v", decoded["Unknown 2"])
	}
	for _, key := range []string{"average_sentiment", "review_count", "most_positive", "most_negative"} {
		if _, ok := decoded["Movie A"][key]; !ok {
			t.Errorf("Movie A missing %q in %s", key, raw)
		}
	}
}

func TestCompareNoMatches(t *testing.T) {
	c := newTestProcessor().Compare(comparisonReviews, "Unknown 1", "Unknown 2")
	if !errors.Is(c.Err(), ErrNoReviews) {
		t.Fatalf("Expected ErrNoReviews, got %v", c.Err())
	}
	if len(c.Movies) != 0 {
		t.Errorf("Expected no per-movie entries, got %+v", c.Movies)
	}
	if c.Debug == nil || c.Debug.TotalReviews != 4 {
		t.Fatalf("Expected debug info, got %+v", c.Debug)
	}
	if strings.Join(c.Debug.AvailableTitlesSample, ",") != "movie a,movie b,movie c" {
		t.Errorf("Unexpected sample %v", c.Debug.AvailableTitlesSample)
	}

	raw, _ := json.Marshal(c)
	if !strings.Contains(string(raw), `"error":`) || !strings.Contains(string(raw), `"debug":`) {
		t.Errorf("Unexpected JSON %s", raw)
	}
}

func TestCompareSampleIsBounded(t *testing.T) {
	var reviews []Review
	for _, r := range seq("title", 120) {
		reviews = append(reviews, Review{MovieID: r, Text: "good"})
	}
	c := newTestProcessor().Compare(reviews, "x", "y")
	if len(c.Debug.AvailableTitlesSample) != titleSampleSize {
		t.Errorf("Expected %d sample titles, got %d", titleSampleSize, len(c.Debug.AvailableTitlesSample))
	}
}

func TestCompareSameMovieTwice(t *testing.T) {
	c := newTestProcessor().Compare(comparisonReviews, "Movie B", "Movie B")
	if len(c.Movies) != 1 {
		t.Errorf("Expected a single entry, got %d", len(c.Movies))
	}
}
