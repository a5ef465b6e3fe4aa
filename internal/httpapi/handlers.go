package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/tsawler/reelsense"
	"github.com/tsawler/reelsense/internal/dataset"
)

const searchLimit = 20

type handler struct {
	processor  *reelsense.Processor
	resolver   *reelsense.NameResolver
	data       *dataset.Dataset
	windowSize int
	topN       int
	logger     *slog.Logger

	mu     sync.Mutex
	scored []reelsense.ScoredReview // Lazily built, reset by addReview.
}

func newHandler(opts Options, processor *reelsense.Processor, resolver *reelsense.NameResolver, data *dataset.Dataset) *handler {
	return &handler{
		processor:  processor,
		resolver:   resolver,
		data:       data,
		windowSize: opts.WindowSize,
		topN:       opts.TopN,
		logger:     opts.Logger,
	}
}

// scoredReviews returns the scored dataset, computing it on first use.
func (h *handler) scoredReviews() []reelsense.ScoredReview {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.scored == nil {
		result := h.processor.Process(h.data.Reviews(), reelsense.WithLogger(h.logger))
		h.logger.Info("scored dataset", "reviews", len(result.Reviews), "skipped", result.Skipped)
		h.scored = result.Reviews
	}
	return h.scored
}

func (h *handler) invalidate() {
	h.mu.Lock()
	h.scored = nil
	h.mu.Unlock()
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type windowReview struct {
	Title  string  `json:"title"`
	Review string  `json:"review"`
	Score  float64 `json:"score"`
}

type windowView struct {
	Index        int            `json:"index"`
	AverageScore float64        `json:"average_score"`
	Reviews      []windowReview `json:"reviews"`
}

type sentimentResponse struct {
	WindowSize     int         `json:"window_size"`
	Windows        int         `json:"windows"`
	TopSentiment   *windowView `json:"top_sentiment"`
	WorstSentiment *windowView `json:"worst_sentiment"`
}

func newWindowView(win reelsense.Window, ok bool) *windowView {
	if !ok {
		return nil
	}
	v := &windowView{Index: win.Index, AverageScore: win.Score, Reviews: make([]windowReview, len(win.Reviews))}
	for i, text := range win.Reviews {
		v.Reviews[i] = windowReview{Title: win.Labels[i], Review: text, Score: win.Score}
	}
	return v
}

func (h *handler) sentimentAnalysis(w http.ResponseWriter, r *http.Request) {
	k, err := positiveParam(r, "window", h.windowSize)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	analysis := reelsense.AnalyzeReviewWindows(h.scoredReviews(), k)
	resp := sentimentResponse{
		WindowSize:     k,
		Windows:        analysis.Len(),
		TopSentiment:   newWindowView(analysis.Best()),
		WorstSentiment: newWindowView(analysis.Worst()),
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *handler) compareMovies(w http.ResponseWriter, r *http.Request) {
	movie1 := strings.TrimSpace(r.URL.Query().Get("movie1"))
	movie2 := strings.TrimSpace(r.URL.Query().Get("movie2"))
	if movie1 == "" || movie2 == "" {
		respondWithError(w, http.StatusBadRequest, "Please provide both movie names.", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, h.processor.Compare(h.data.Reviews(), movie1, movie2))
}

func (h *handler) suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondWithError(w, http.StatusBadRequest, "No query provided", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, h.resolver.Suggest(q, h.data.Titles()))
}

type summaryResponse struct {
	reelsense.Summary
	Export reelsense.SummaryExport `json:"export"`
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	n, err := positiveParam(r, "top", h.topN)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s := reelsense.Summarize(h.scoredReviews(), n)
	respondWithJSON(w, http.StatusOK, summaryResponse{Summary: s, Export: s.Export()})
}

func (h *handler) extremes(w http.ResponseWriter, r *http.Request) {
	n, err := positiveParam(r, "top", h.topN)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	pos, neg := reelsense.ExtremeSentences(h.scoredReviews(), n)
	respondWithJSON(w, http.StatusOK, map[string][]reelsense.RankedSentence{
		"most_positive": pos,
		"most_negative": neg,
	})
}

func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondWithError(w, http.StatusBadRequest, "No query provided", nil)
		return
	}

	hits := h.data.Search(q, searchLimit)
	out := make([]reelsense.Review, len(hits))
	for i, rec := range hits {
		out[i] = rec.Review
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *handler) allMovies(w http.ResponseWriter, r *http.Request) {
	movies := h.data.Movies()
	if movies == nil {
		movies = []dataset.MovieEntry{}
	}
	respondWithJSON(w, http.StatusOK, map[string][]dataset.MovieEntry{"movies": movies})
}

func (h *handler) moviesByGenre(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.data.ByGenre())
}

type addReviewRequest struct {
	MovieName string `json:"movie_name"`
	Review    string `json:"review"`
	Confirm   string `json:"confirm"`
}

func (h *handler) addReview(w http.ResponseWriter, r *http.Request) {
	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	movie := strings.TrimSpace(req.MovieName)
	review := strings.TrimSpace(req.Review)
	if movie == "" || review == "" {
		respondWithError(w, http.StatusBadRequest, "Missing movie_name or review", nil)
		return
	}

	titles := h.data.Titles()
	canonical, known := findTitle(titles, movie)
	if !known {
		m := h.resolver.Suggest(movie, titles)
		if m.Matched() {
			if req.Confirm != "yes" {
				respondWithJSON(w, http.StatusPartialContent, map[string]string{
					"message":    fmt.Sprintf("Did You Mean %s?", m.BestCandidate),
					"suggestion": m.BestCandidate,
				})
				return
			}
			canonical, known = m.BestCandidate, true
		}
	}
	if !known {
		respondWithError(w, http.StatusBadRequest, "Movie name not recognized. Please correct it.", nil)
		return
	}

	err := h.data.Add(dataset.Record{Review: reelsense.Review{MovieID: canonical, Text: review}})
	switch {
	case errors.Is(err, dataset.ErrDuplicateReview):
		respondWithJSON(w, http.StatusConflict, map[string]string{"message": "Review already exists"})
		return
	case err != nil:
		h.logger.Error("failed to save review", "movie", canonical, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save review", err)
		return
	}

	h.invalidate()
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Review added successfully"})
}

// findTitle looks up movie among titles ignoring case.
func findTitle(titles []string, movie string) (string, bool) {
	for _, t := range titles {
		if strings.EqualFold(t, movie) {
			return t, true
		}
	}
	return "", false
}

// positiveParam reads an optional positive integer query parameter.
func positiveParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil && code >= 500 {
		slog.Error("HTTP error", "code", code, "message", message, "error", err)
	}
	respondWithJSON(w, code, map[string]string{"error": message})
}
