// Package dataset loads the review CSV that feeds the sentiment core.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/tsawler/reelsense"
)

// Column names expected in the header row.
const (
	TitleColumn  = "movie_title"
	TextColumn   = "review_content"
	GenresColumn = "genres"
)

// A Record is one review row plus the genres of its movie.
type Record struct {
	reelsense.Review
	Genres []string `json:"genres,omitempty"`
}

// A MovieEntry is a distinct movie with the raw genre string of its first row.
type MovieEntry struct {
	Title  string `json:"movie_title"`
	Genres string `json:"genres"`
}

// Dataset is an ordered, de-duplicated set of review records. It is safe for
// concurrent use; Add is the only mutation.
type Dataset struct {
	mu      sync.RWMutex
	path    string
	header  map[string]int
	width   int
	records []Record
	seen    map[string]int
}

// Load reads the CSV at path. When n > 0 only the first n cleaned rows are kept.
func Load(path string, n int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &reelsense.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := Parse(f, n)
	if err != nil {
		return nil, &reelsense.LoadError{Path: path, Err: err}
	}
	ds.path = path
	return ds, nil
}

// Parse reads CSV records from r. Values are trimmed, rows missing a title or review are dropped
// and duplicate (title, review) pairs keep their last occurrence.
func Parse(r io.Reader, n int) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	titleIdx, ok := cols[TitleColumn]
	if !ok {
		return nil, fmt.Errorf("missing %q column", TitleColumn)
	}
	textIdx, ok := cols[TextColumn]
	if !ok {
		return nil, fmt.Errorf("missing %q column", TextColumn)
	}
	genreIdx, hasGenres := cols[GenresColumn]

	var rows []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		rec := Record{Review: reelsense.Review{
			MovieID: strings.TrimSpace(field(fields, titleIdx)),
			Text:    strings.TrimSpace(field(fields, textIdx)),
		}}
		if rec.MovieID == "" || rec.Text == "" {
			continue
		}
		if hasGenres {
			rec.Genres = splitGenres(field(fields, genreIdx))
		}
		rows = append(rows, rec)
	}

	rows = dedupeKeepLast(rows)
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	ds := &Dataset{header: cols, width: len(header), records: rows, seen: make(map[string]int, len(rows))}
	for i, rec := range rows {
		ds.seen[key(rec.MovieID, rec.Text)] = i
	}
	return ds, nil
}

// New builds an in-memory dataset from records, applying the same cleaning as Parse.
func New(records []Record) *Dataset {
	var rows []Record
	for _, rec := range records {
		rec.MovieID = strings.TrimSpace(rec.MovieID)
		rec.Text = strings.TrimSpace(rec.Text)
		if rec.MovieID != "" && rec.Text != "" {
			rows = append(rows, rec)
		}
	}
	rows = dedupeKeepLast(rows)

	ds := &Dataset{records: rows, seen: make(map[string]int, len(rows))}
	for i, rec := range rows {
		ds.seen[key(rec.MovieID, rec.Text)] = i
	}
	return ds
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func splitGenres(s string) []string {
	var out []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func key(title, text string) string {
	return title + "\x00" + text
}

// dedupeKeepLast drops every row that has a later duplicate.
func dedupeKeepLast(rows []Record) []Record {
	last := make(map[string]int, len(rows))
	for i, rec := range rows {
		last[key(rec.MovieID, rec.Text)] = i
	}
	out := rows[:0:0]
	for i, rec := range rows {
		if last[key(rec.MovieID, rec.Text)] == i {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

// Records returns a copy of the records in file order.
func (d *Dataset) Records() []Record {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Record(nil), d.records...)
}

// Reviews returns the records as core review values.
func (d *Dataset) Reviews() []reelsense.Review {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]reelsense.Review, len(d.records))
	for i, rec := range d.records {
		out[i] = rec.Review
	}
	return out
}

// Titles returns the distinct movie titles in first-seen order.
func (d *Dataset) Titles() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var titles []string
	seen := make(map[string]bool)
	for _, rec := range d.records {
		if !seen[rec.MovieID] {
			seen[rec.MovieID] = true
			titles = append(titles, rec.MovieID)
		}
	}
	return titles
}

// Movies returns one entry per distinct title, in first-seen order.
func (d *Dataset) Movies() []MovieEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var movies []MovieEntry
	seen := make(map[string]bool)
	for _, rec := range d.records {
		if seen[rec.MovieID] {
			continue
		}
		seen[rec.MovieID] = true
		movies = append(movies, MovieEntry{Title: rec.MovieID, Genres: strings.Join(rec.Genres, ", ")})
	}
	return movies
}

// Search returns the records whose title or review contains keyword,
// ignoring case. At most limit records are returned when limit > 0.
func (d *Dataset) Search(keyword string, limit int) []Record {
	d.mu.RLock()
	defer d.mu.RUnlock()
	kw := strings.ToLower(keyword)
	var out []Record
	for _, rec := range d.records {
		if strings.Contains(strings.ToLower(rec.MovieID), kw) || strings.Contains(strings.ToLower(rec.Text), kw) {
			out = append(out, rec)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// ByGenre maps each genre to its distinct titles in first-seen order.
func (d *Dataset) ByGenre() map[string][]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	grouped := make(map[string][]string)
	seen := make(map[string]bool)
	for _, rec := range d.records {
		for _, g := range rec.Genres {
			k := g + "\x00" + rec.MovieID
			if seen[k] {
				continue
			}
			seen[k] = true
			grouped[g] = append(grouped[g], rec.MovieID)
		}
	}
	return grouped
}

// HasReview reports whether the exact review already exists for movie.
func (d *Dataset) HasReview(movie, text string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.seen[key(strings.TrimSpace(movie), strings.TrimSpace(text))]
	return ok
}

// ErrDuplicateReview is returned by Add for a review that already exists.
var ErrDuplicateReview = errors.New("review already exists")

// Add appends a review to the dataset and, when the dataset was loaded from a
// file, to that file.
func (d *Dataset) Add(rec Record) error {
	rec.MovieID = strings.TrimSpace(rec.MovieID)
	rec.Text = strings.TrimSpace(rec.Text)
	if rec.MovieID == "" || rec.Text == "" {
		return reelsense.ErrInvalidRow
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	k := key(rec.MovieID, rec.Text)
	if _, ok := d.seen[k]; ok {
		return ErrDuplicateReview
	}

	if d.path != "" {
		if err := d.appendRow(rec); err != nil {
			return err
		}
	}

	d.seen[k] = len(d.records)
	d.records = append(d.records, rec)
	return nil
}

// appendRow writes rec to the backing file using the loaded column layout.
func (d *Dataset) appendRow(rec Record) error {
	row := make([]string, d.width)
	row[d.header[TitleColumn]] = rec.MovieID
	row[d.header[TextColumn]] = rec.Text
	if i, ok := d.header[GenresColumn]; ok {
		row[i] = strings.Join(rec.Genres, ", ")
	}

	f, err := os.OpenFile(d.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
