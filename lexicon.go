package reelsense

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Lexicon maps lowercase words to signed polarity weights, in the style of
// AFINN. A Lexicon is never modified after it is built, so it may be shared
// freely between goroutines.
type Lexicon struct {
	words map[string]int
}

// NewLexicon builds a Lexicon from a copy of words.
func NewLexicon(words map[string]int) *Lexicon {
	lex := &Lexicon{words: make(map[string]int, len(words))}
	for w, p := range words {
		lex.words[w] = p
	}
	return lex
}

// LoadLexicon reads a lexicon file with one "word<TAB>integer" entry per line.
// Blank lines are ignored; any other malformed line fails the whole load.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	lex, err := parseLexicon(f, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return lex, nil
}

// ParseLexicon reads lexicon entries from r. See LoadLexicon for the format.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	return parseLexicon(r, "")
}

func parseLexicon(r io.Reader, path string) (*Lexicon, error) {
	lex := &Lexicon{words: make(map[string]int, 4096)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, &FormatError{Path: path, Line: lineNo, Text: line, Reason: "expected word<TAB>score"}
		}

		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, &FormatError{Path: path, Line: lineNo, Text: line, Reason: "score is not an integer"}
		}
		lex.words[parts[0]] = score
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lexicon: %w", err)
	}

	return lex, nil
}

// Polarity returns the weight of word and whether it is in the lexicon.
// Lookups are exact; callers lowercase tokens first.
func (l *Lexicon) Polarity(word string) (int, bool) {
	p, ok := l.words[word]
	return p, ok
}

// Contains reports whether word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.words)
}
