package entity

import (
	"encoding/json"
	"time"
)

// Workflow message type tags. Anything that is not "human" is treated as an
// assistant turn when building transcripts.
const (
	MessageTypeHuman = "human"
	MessageTypeAI    = "ai"
)

// MessagePayload is the structured body the workflow engine writes per
// message. Tool call fields are kept opaque.
type MessagePayload struct {
	Type             string          `json:"type"`
	Content          string          `json:"content"`
	ToolCalls        json.RawMessage `json:"tool_calls,omitempty"`
	AdditionalKwargs json.RawMessage `json:"additional_kwargs,omitempty"`
	ResponseMetadata json.RawMessage `json:"response_metadata,omitempty"`
	InvalidToolCalls json.RawMessage `json:"invalid_tool_calls,omitempty"`
}

type ChatHistory struct {
	Id        int64
	SessionId string
	Payload   MessagePayload
	CreatedAt time.Time
}
