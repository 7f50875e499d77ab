package aiwebhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "nested response body output",
			body: `{"response": {"body": {"output": "Hello from workflow"}}}`,
			want: "Hello from workflow",
		},
		{
			name: "response string",
			body: `{"response": "Direct reply"}`,
			want: "Direct reply",
		},
		{
			name: "message field",
			body: `{"message": "Message reply"}`,
			want: "Message reply",
		},
		{
			name: "output field",
			body: `{"output": "Output reply"}`,
			want: "Output reply",
		},
		{
			name: "unknown shape falls back to raw",
			body: `{"data": [1, 2, 3]}`,
			want: `{"data": [1, 2, 3]}`,
		},
		{
			name: "plain text falls back to raw",
			body: `just plain text`,
			want: `just plain text`,
		},
		{
			name: "response object without output falls through to message",
			body: `{"response": {"status": "ok"}, "message": "fallback"}`,
			want: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unwrap([]byte(tt.body))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientSend(t *testing.T) {
	var received Envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": {"body": {"output": "Sure, I can help with that."}}}`))
	}))
	defer srv.Close()

	client := NewClient()
	reply, err := client.Send(context.Background(), srv.URL, Envelope{
		ChatID:    "session-1",
		ChatInput: "hello",
		UserRole:  "customer",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sure, I can help with that.", reply)
	assert.Equal(t, "session-1", received.ChatID)
	assert.Equal(t, "hello", received.ChatInput)
	assert.Equal(t, "customer", received.UserRole)
}

func TestClientSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("workflow down"))
	}))
	defer srv.Close()

	client := NewClient()
	_, err := client.Send(context.Background(), srv.URL, Envelope{ChatID: "s", ChatInput: "hi"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
