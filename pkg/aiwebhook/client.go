package aiwebhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Envelope is the payload the workflow engine expects for a chat turn.
type Envelope struct {
	SystemPrompt string `json:"systemPrompt,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	UserRole     string `json:"user_role,omitempty"`
	ChatID       string `json:"chat_id"`
	MessageID    string `json:"message_id,omitempty"`
	ChatInput    string `json:"chatInput"`
}

// Client forwards chat turns to the external workflow webhook.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Send posts the envelope to the webhook URL and unwraps the reply text.
func (c *Client) Send(ctx context.Context, webhookURL string, env Envelope) (string, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBuffer(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webhook error, code %d, body %s", res.StatusCode, string(resByte))
	}

	return unwrap(resByte), nil
}

// unwrap digs the reply text out of whatever shape the workflow returned.
// Known shapes, tried in order:
//
//	{"response": {"body": {"output": "..."}}}
//	{"response": "..."}
//	{"message": "..."}
//	{"output": "..."}
//
// Anything else falls back to the raw body string.
func unwrap(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}

	if resp, ok := payload["response"]; ok {
		switch v := resp.(type) {
		case string:
			return v
		case map[string]interface{}:
			if inner, ok := v["body"].(map[string]interface{}); ok {
				if out, ok := inner["output"].(string); ok {
					return out
				}
			}
		}
	}
	if msg, ok := payload["message"].(string); ok {
		return msg
	}
	if out, ok := payload["output"].(string); ok {
		return out
	}
	return string(body)
}
