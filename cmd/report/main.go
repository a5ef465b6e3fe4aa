// Command report scores the review dataset and prints the best and worst
// movies, the most extreme sentences and the strongest review windows. The
// movie summary is also written to REELSENSE_EXPORT_PATH.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/tsawler/reelsense"
	"github.com/tsawler/reelsense/internal/config"
	"github.com/tsawler/reelsense/internal/dataset"
	"github.com/tsawler/reelsense/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger, os.Stdout); err != nil {
		slog.Error("Report failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	lex, err := reelsense.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		return err
	}
	splitter, err := reelsense.NewPunktSplitter()
	if err != nil {
		return err
	}
	data, err := dataset.Load(cfg.ReviewsPath, 0)
	if err != nil {
		return err
	}

	processor := reelsense.NewProcessor(reelsense.NewScorer(lex, splitter))
	result := processor.Process(data.Reviews(),
		reelsense.WithLimit(cfg.ReviewLimit),
		reelsense.WithLogger(logger),
	)
	logger.Info("Reviews scored", "reviews", len(result.Reviews), "skipped", result.Skipped)

	summary := processor.Summarize(result.Reviews, cfg.TopN)
	if err := summary.Report(out); err != nil {
		return err
	}

	pos, neg := reelsense.ExtremeSentences(result.Reviews, cfg.TopN)
	printSentences(out, "Most Positive Sentences:", pos)
	printSentences(out, "Most Negative Sentences:", neg)

	analysis := reelsense.AnalyzeReviewWindows(result.Reviews, cfg.WindowSize)
	printWindow(out, "Most Positive Window:", analysis.Best)
	printWindow(out, "Most Negative Window:", analysis.Worst)

	if err := reelsense.SaveExport(cfg.ExportPath, summary.Export()); err != nil {
		return err
	}
	logger.Info("Summary exported", "path", cfg.ExportPath)
	return nil
}

func printSentences(w io.Writer, title string, sentences []reelsense.RankedSentence) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, s := range sentences {
		fmt.Fprintf(w, "%+4d  %s  (%s)\n", s.Score, reelsense.FormatSentence(s.Text, reelsense.DisplayWidth), s.MovieID)
	}
}

func printWindow(w io.Writer, title string, pick func() (reelsense.Window, bool)) {
	fmt.Fprintf(w, "\n%s\n", title)
	win, ok := pick()
	if !ok {
		fmt.Fprintln(w, "  not enough reviews")
		return
	}
	fmt.Fprintf(w, "  reviews %d-%d, average %.2f\n", win.Index+1, win.Index+len(win.Reviews), win.Score)
	for i, text := range win.Reviews {
		fmt.Fprintf(w, "  %s: %s\n", win.Labels[i], reelsense.FormatSentence(text, reelsense.DisplayWidth))
	}
}
