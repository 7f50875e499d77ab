package service

import (
	"testing"

	"chatdesk-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildTranscript(t *testing.T) {
	messages := []*entity.ChatHistory{
		{Payload: entity.MessagePayload{Type: entity.MessageTypeHuman, Content: "Hi, I need a visa quote"}},
		{Payload: entity.MessagePayload{Type: entity.MessageTypeAI, Content: "Sure, which free zone?"}},
		{Payload: entity.MessagePayload{Type: entity.MessageTypeHuman, Content: "IFZA please"}},
	}

	got := BuildTranscript(messages)

	want := "user: Hi, I need a visa quote\n" +
		"assistant: Sure, which free zone?\n" +
		"user: IFZA please\n"
	assert.Equal(t, want, got)
}

func TestBuildTranscriptUnknownRole(t *testing.T) {
	// Anything that is not a human turn reads as assistant.
	messages := []*entity.ChatHistory{
		{Payload: entity.MessagePayload{Type: "tool", Content: "lookup result"}},
	}

	assert.Equal(t, "assistant: lookup result\n", BuildTranscript(messages))
}

func TestBuildTranscriptEmpty(t *testing.T) {
	assert.Equal(t, "", BuildTranscript(nil))
}
