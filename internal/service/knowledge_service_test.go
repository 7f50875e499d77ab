package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatdesk-be/internal/config"
	"chatdesk-be/pkg/vectorstore"

	"github.com/stretchr/testify/assert"
)

type capturedPoint struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

func TestUploadDocumentMergesMetadata(t *testing.T) {
	var upserted []capturedPoint
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"result": {"config": {"params": {"vectors": {"size": 8}}}}}`))
		case r.Method == http.MethodPut:
			var body struct {
				Points []capturedPoint `json:"points"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			upserted = body.Points
			w.Write([]byte(`{"result": {"status": "completed"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := vectorstore.NewClient(srv.URL, "", "knowledge")
	cfg := &config.Config{Vector: config.VectorConfig{ChunkSize: 500}}
	svc := NewKnowledgeService(store, cfg, noopPublisher{})

	res, err := svc.UploadDocument(context.Background(), "Hello world", "greeting.txt", map[string]interface{}{
		"source":   "crm-import",
		"language": "en",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.ChunksUploaded)
	assert.Len(t, upserted, 1)

	payload := upserted[0].Payload
	assert.Equal(t, "Hello world", payload["text"])
	assert.Equal(t, "greeting.txt", payload["fileName"])
	assert.Equal(t, float64(0), payload["chunkIndex"])
	assert.Equal(t, float64(1), payload["totalChunks"])
	assert.Equal(t, "crm-import", payload["source"])
	assert.Equal(t, "en", payload["language"])
	assert.NotEmpty(t, payload["uploadedAt"])
	assert.Len(t, upserted[0].Vector, 8)
}

func TestUploadDocumentMetadataCannotShadowText(t *testing.T) {
	var upserted []capturedPoint
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			var body struct {
				Points []capturedPoint `json:"points"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			upserted = body.Points
		}
		w.Write([]byte(`{"result": {}}`))
	}))
	defer srv.Close()

	store := vectorstore.NewClient(srv.URL, "", "knowledge")
	cfg := &config.Config{Vector: config.VectorConfig{ChunkSize: 500}}
	svc := NewKnowledgeService(store, cfg, noopPublisher{})

	_, err := svc.UploadDocument(context.Background(), "real text", "doc.txt", map[string]interface{}{
		"text": "spoofed",
	})

	assert.NoError(t, err)
	assert.Len(t, upserted, 1)
	assert.Equal(t, "real text", upserted[0].Payload["text"])
}

func TestUploadDocumentEmptyText(t *testing.T) {
	store := vectorstore.NewClient("http://localhost:1", "", "knowledge")
	cfg := &config.Config{Vector: config.VectorConfig{ChunkSize: 500}}
	svc := NewKnowledgeService(store, cfg, noopPublisher{})

	_, err := svc.UploadDocument(context.Background(), "   ", "empty.txt", nil)

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestUploadDocumentStoreUnconfigured(t *testing.T) {
	svc := NewKnowledgeService(nil, &config.Config{}, noopPublisher{})

	_, err := svc.UploadDocument(context.Background(), "text", "doc.txt", nil)

	assert.ErrorIs(t, err, ErrVectorStoreNotConfigured)
}
