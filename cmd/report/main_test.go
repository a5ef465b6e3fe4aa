package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reelsense"
	"github.com/tsawler/reelsense/internal/config"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "lexicon.txt")
	csvPath := filepath.Join(dir, "reviews.csv")
	exportPath := filepath.Join(dir, "out", "summary.yaml")

	require.NoError(t, os.WriteFile(lexPath, []byte("good\t3\namazing\t4\nbad\t-2\nterrible\t-3\n"), 0o644))
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"movie_title,review_content\n"+
			"Alpha,This was good. Really amazing.\n"+
			"Beta,A bad film. Simply terrible.\n"+
			"Gamma,Nothing to say.\n"), 0o644))

	cfg := &config.Config{
		LexiconPath: lexPath,
		ReviewsPath: csvPath,
		WindowSize:  2,
		TopN:        2,
		ExportPath:  exportPath,
	}

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(cfg, logger, &out))

	report := out.String()
	assert.Contains(t, report, "Top Movies by Sentiment:")
	assert.Contains(t, report, "Most Negative Sentences:")
	assert.Contains(t, report, "Most Positive Window:")

	export, err := reelsense.LoadExport(exportPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Gamma"}, export.TopMovies)
	assert.Equal(t, []string{"Beta", "Gamma"}, export.WorstMovies)
}

func TestRunMissingLexicon(t *testing.T) {
	cfg := &config.Config{LexiconPath: filepath.Join(t.TempDir(), "nope.txt")}
	err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), io.Discard)

	var le *reelsense.LoadError
	assert.ErrorAs(t, err, &le)
}
