package reelsense

import (
	"testing"
)

func TestPunktSplitter(t *testing.T) {
	splitter, err := NewPunktSplitter()
	if err != nil {
		t.Fatalf("Failed to initialize splitter: %v", err)
	}

	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"I love movies. They are amazing!", []string{"I love movies.", "They are amazing!"}, "Two sentences"},
		{"Just one sentence here", []string{"Just one sentence here"}, "No terminal punctuation"},
		{"", nil, "Empty text"},
		{"   ", nil, "Whitespace only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := splitter.Split(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("Split(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Sentence %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestPunktSplitterInitializeIdempotent(t *testing.T) {
	var p PunktSplitter
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	first := p.tokenizer
	if err := p.Initialize(); err != nil {
		t.Fatalf("Second Initialize failed: %v", err)
	}
	if p.tokenizer != first {
		t.Error("Initialize reloaded the model")
	}
}

func TestPunktSplitterRequiresInitialize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected Split on an uninitialized splitter to panic")
		}
	}()
	var p PunktSplitter
	p.Split("Hello there.")
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{" <p>Hello   world!</p> ", "Hello world!"},
		{"Line one.<br/>Line\ttwo.\n\nEnd", "Line one. Line two. End"},
		{"no tags", "no tags"},
		{"<b></b>", ""},
		{"a < b and c > d", "a d"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.out {
			t.Errorf("CleanText(%q) = %q, expected %q", tt.in, got, tt.out)
		}
	}
}
