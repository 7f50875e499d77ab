package service

import (
	"testing"

	"chatdesk-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestFormatSummaryHTML(t *testing.T) {
	phone := "+971501234567"
	summary := &dto.SummaryResponse{
		SessionId:    "abc",
		CustomerName: "Jane <Doe>",
		PhoneNumber:  &phone,
		Summary:      "Asked about company setup & visas.",
		NextAction:   "Send pricing PDF",
	}

	got := FormatSummaryHTML(summary)

	assert.Contains(t, got, "<b>Conversation Summary</b>")
	assert.Contains(t, got, "Jane &lt;Doe&gt;")
	assert.Contains(t, got, "+971501234567")
	assert.Contains(t, got, "Asked about company setup &amp; visas.")
	assert.Contains(t, got, "<b>Next action:</b> Send pricing PDF")
	assert.NotContains(t, got, "cached")
}

func TestFormatSummaryHTMLCached(t *testing.T) {
	summary := &dto.SummaryResponse{
		CustomerName: "Unknown",
		Summary:      "Short chat.",
		NextAction:   "None",
		Cached:       true,
	}

	got := FormatSummaryHTML(summary)

	assert.Contains(t, got, "<i>(cached summary)</i>")
	// No phone line when the number is missing.
	assert.NotContains(t, got, "Phone")
}
