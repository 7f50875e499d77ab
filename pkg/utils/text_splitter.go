package utils

import "strings"

// SplitWords packs whole words into chunks of at most chunkSize characters.
// Words longer than chunkSize become their own chunk rather than being cut.
func SplitWords(text string, chunkSize int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if chunkSize <= 0 || len(trimmed) <= chunkSize {
		return []string{trimmed}
	}

	words := strings.Fields(trimmed)
	var chunks []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
