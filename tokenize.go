package reelsense

import (
	"regexp"
	"strings"
)

// Tokenizer splits a sentence into the words that are looked up in a Lexicon.
type Tokenizer interface {
	Words(string) []string
}

// wordTokenizer extracts maximal runs of word characters.
type wordTokenizer struct {
	wordRE *regexp.Regexp
	fold   func(string) string
}

type TokenizerOptFunc func(*wordTokenizer)

// UsingWordPattern replaces the pattern that defines a word.
func UsingWordPattern(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.wordRE = x
	}
}

// UsingCaseFolding replaces the function applied to text before matching.
func UsingCaseFolding(x func(string) string) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.fold = x
	}
}

// NewWordTokenizer creates the default Tokenizer: lowercase the text, then
// take every run of letters, digits and underscores.
func NewWordTokenizer(opts ...TokenizerOptFunc) *wordTokenizer {
	tok := &wordTokenizer{
		wordRE: wordRE,
		fold:   strings.ToLower,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Words returns the tokens of text in order.
func (t *wordTokenizer) Words(text string) []string {
	if text == "" {
		return nil
	}
	return t.wordRE.FindAllString(t.fold(text), -1)
}

// Unicode-aware equivalent of \w.
var wordRE = regexp.MustCompile(`[\p{L}\p{N}\p{Mn}_]+`)
