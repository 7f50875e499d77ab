package utils

import (
	"strings"
	"testing"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		wantChunks int
	}{
		{
			name:       "empty text",
			text:       "",
			chunkSize:  500,
			wantChunks: 0,
		},
		{
			name:       "whitespace only",
			text:       "   \n\t  ",
			chunkSize:  500,
			wantChunks: 0,
		},
		{
			name:       "short text fits in one chunk",
			text:       "Hello world",
			chunkSize:  500,
			wantChunks: 1,
		},
		{
			name:       "exact boundary stays single",
			text:       "abcde fghij",
			chunkSize:  11,
			wantChunks: 1,
		},
		{
			name:       "splits on word boundaries",
			text:       "one two three four five six",
			chunkSize:  10,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.text, tt.chunkSize)
			if len(got) != tt.wantChunks {
				t.Errorf("SplitWords() returned %d chunks, want %d: %v", len(got), tt.wantChunks, got)
			}
		})
	}
}

func TestSplitWordsPreservesWords(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 50)
	chunks := SplitWords(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(chunk))
		}
		if strings.HasPrefix(chunk, " ") || strings.HasSuffix(chunk, " ") {
			t.Errorf("chunk %d has leading/trailing whitespace: %q", i, chunk)
		}
	}

	// No word may be truncated across chunks.
	joined := strings.Fields(strings.Join(chunks, " "))
	original := strings.Fields(text)
	if len(joined) != len(original) {
		t.Fatalf("word count changed after split: got %d, want %d", len(joined), len(original))
	}
	for i := range original {
		if joined[i] != original[i] {
			t.Errorf("word %d changed: got %q, want %q", i, joined[i], original[i])
		}
	}
}

func TestSplitWordsLongWord(t *testing.T) {
	// A single word longer than the chunk size becomes its own chunk.
	long := strings.Repeat("x", 40)
	chunks := SplitWords("short "+long+" tail", 10)

	found := false
	for _, chunk := range chunks {
		if chunk == long {
			found = true
		}
	}
	if !found {
		t.Errorf("oversized word was not kept intact: %v", chunks)
	}
}
