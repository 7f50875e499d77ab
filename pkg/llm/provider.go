package llm

import "context"

// SummaryResult is the structured output of conversation summarization.
type SummaryResult struct {
	CustomerName string  `json:"customerName"`
	PhoneNumber  *string `json:"phoneNumber"`
	Summary      string  `json:"summary"`
	NextAction   string  `json:"nextAction"`
}

// Option allows for optional parameters like Temperature or Model.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend.
type Provider interface {
	// Summarize sends a transcript and returns a schema-constrained summary.
	Summarize(ctx context.Context, systemPrompt, transcript string, options ...Option) (*SummaryResult, error)
}
