package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"chatdesk-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Provider talks to the OpenAI chat-completion API.
type Provider struct {
	client       *openai.Client
	defaultModel string
}

func NewProvider(apiKey, defaultModel string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &Provider{
		client:       openai.NewClient(apiKey),
		defaultModel: defaultModel,
	}, nil
}

var summarySchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"customerName": {Type: jsonschema.String},
		"phoneNumber":  {Type: jsonschema.String},
		"summary":      {Type: jsonschema.String},
		"nextAction":   {Type: jsonschema.String},
	},
	Required:             []string{"customerName", "phoneNumber", "summary", "nextAction"},
	AdditionalProperties: false,
}

// Summarize asks the model for a schema-constrained JSON summary of the
// transcript. Unknown fields come back as empty strings, which we map to nil.
func (p *Provider) Summarize(ctx context.Context, systemPrompt, transcript string, options ...llm.Option) (*llm.SummaryResult, error) {
	opts := llm.Options{Model: p.defaultModel}
	for _, opt := range options {
		opt(&opts)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       opts.Model,
		Temperature: float32(opts.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "conversation_summary",
				Schema: summarySchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}

	var raw struct {
		CustomerName string `json:"customerName"`
		PhoneNumber  string `json:"phoneNumber"`
		Summary      string `json:"summary"`
		NextAction   string `json:"nextAction"`
	}
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("malformed summary payload: %w", err)
	}

	result := &llm.SummaryResult{
		CustomerName: raw.CustomerName,
		Summary:      raw.Summary,
		NextAction:   raw.NextAction,
	}
	if phone := strings.TrimSpace(raw.PhoneNumber); phone != "" {
		result.PhoneNumber = &phone
	}
	return result, nil
}
