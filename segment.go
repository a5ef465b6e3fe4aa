package reelsense

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentenceSplitter breaks cleaned text into an ordered list of sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// SplitterFunc adapts an ordinary function to a SentenceSplitter.
type SplitterFunc func(string) []string

// Split calls f(text).
func (f SplitterFunc) Split(text string) []string {
	return f(text)
}

// PunktSplitter segments English text with the pre-trained punkt model.
//
// The model is decoded once by Initialize; after that Split is a pure
// function and safe for concurrent use.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter returns an initialized PunktSplitter.
func NewPunktSplitter() (*PunktSplitter, error) {
	var p PunktSplitter
	if err := p.Initialize(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Initialize loads the English punkt training data. Calling it again is a
// no-op.
func (p *PunktSplitter) Initialize() error {
	if p.tokenizer != nil {
		return nil
	}
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return fmt.Errorf("failed to load punkt model: %w", err)
	}
	p.tokenizer = tokenizer
	return nil
}

// Split returns the non-empty sentences of text in order.
func (p *PunktSplitter) Split(text string) []string {
	if p.tokenizer == nil {
		panic("reelsense: PunktSplitter.Split called before Initialize")
	}

	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			sents = append(sents, t)
		}
	}
	return sents
}
