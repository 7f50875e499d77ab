package vectorstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionDim(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/collections/knowledge", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		w.Write([]byte(`{"result": {"config": {"params": {"vectors": {"size": 768}}}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "knowledge")
	ctx := context.Background()

	assert.Equal(t, 768, client.CollectionDim(ctx))

	// Second call hits the cache, not the server.
	assert.Equal(t, 768, client.CollectionDim(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCollectionDimFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": {"error": "collection not found"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "missing")
	assert.Equal(t, DefaultDim, client.CollectionDim(context.Background()))
}

func TestScroll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/collections/knowledge/points/scroll", r.URL.Path)
		w.Write([]byte(`{"result": {"points": [
			{"id": "a1b2", "payload": {"text": "chunk one", "fileName": "doc.txt"}},
			{"id": 42, "payload": {"text": "chunk two"}}
		], "next_page_offset": "c3d4"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "knowledge")
	points, next, err := client.Scroll(context.Background(), 100, "")

	assert.NoError(t, err)
	assert.Len(t, points, 2)
	assert.Equal(t, "a1b2", points[0].ID)
	assert.Equal(t, "chunk one", points[0].Payload["text"])
	// Numeric ids are stringified.
	assert.Equal(t, "42", points[1].ID)
	assert.Equal(t, "c3d4", next)
}

func TestScrollLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"points": [], "next_page_offset": null}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "knowledge")
	points, next, err := client.Scroll(context.Background(), 100, "c3d4")

	assert.NoError(t, err)
	assert.Empty(t, points)
	assert.Equal(t, "", next)
}

func TestScrollError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "knowledge")
	_, _, err := client.Scroll(context.Background(), 10, "")
	assert.Error(t, err)
}

func TestRandomVector(t *testing.T) {
	vec := RandomVector(384)
	assert.Len(t, vec, 384)
	for _, v := range vec {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}
