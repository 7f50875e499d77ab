package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultDim is used when the collection does not report a vector size.
const DefaultDim = 384

const dimCacheKey = "collection_dim"

// Point is one stored vector with its payload.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Client is a minimal REST client for a Qdrant-compatible vector store.
type Client struct {
	baseURL    string
	apiKey     string
	collection string
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(baseURL, apiKey, collection string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		collection: collection,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("vector store error, code %d, body %s", res.StatusCode, string(resByte))
	}

	if out != nil {
		return json.Unmarshal(resByte, out)
	}
	return nil
}

// CollectionDim returns the vector size of the collection, cached for a few
// minutes. Falls back to DefaultDim when the store does not report one.
func (c *Client) CollectionDim(ctx context.Context) int {
	if dim, found := c.cache.Get(dimCacheKey); found {
		return dim.(int)
	}

	var info struct {
		Result struct {
			Config struct {
				Params struct {
					Vectors struct {
						Size int `json:"size"`
					} `json:"vectors"`
				} `json:"params"`
			} `json:"config"`
		} `json:"result"`
	}
	dim := DefaultDim
	err := c.do(ctx, http.MethodGet, "/collections/"+c.collection, nil, &info)
	if err == nil && info.Result.Config.Params.Vectors.Size > 0 {
		dim = info.Result.Config.Params.Vectors.Size
	}

	c.cache.Set(dimCacheKey, dim, gocache.DefaultExpiration)
	return dim
}

// Scroll lists stored points with payloads, without vectors. The returned
// offset is the cursor for the next page, empty when the listing is done.
func (c *Client) Scroll(ctx context.Context, limit int, offset string) ([]Point, string, error) {
	body := map[string]interface{}{
		"limit":        limit,
		"with_payload": true,
		"with_vector":  false,
	}
	if offset != "" {
		body["offset"] = offset
	}

	var resp struct {
		Result struct {
			Points []struct {
				ID      interface{}            `json:"id"`
				Payload map[string]interface{} `json:"payload"`
			} `json:"points"`
			NextPageOffset interface{} `json:"next_page_offset"`
		} `json:"result"`
	}
	err := c.do(ctx, http.MethodPost, "/collections/"+c.collection+"/points/scroll", body, &resp)
	if err != nil {
		return nil, "", err
	}

	points := make([]Point, 0, len(resp.Result.Points))
	for _, p := range resp.Result.Points {
		points = append(points, Point{
			ID:      fmt.Sprintf("%v", p.ID),
			Payload: p.Payload,
		})
	}

	next := ""
	if resp.Result.NextPageOffset != nil {
		next = fmt.Sprintf("%v", resp.Result.NextPageOffset)
	}
	return points, next, nil
}

// Upsert writes points into the collection, waiting for the operation.
func (c *Client) Upsert(ctx context.Context, points []Point) error {
	body := map[string]interface{}{
		"points": points,
	}
	return c.do(ctx, http.MethodPut, "/collections/"+c.collection+"/points?wait=true", body, nil)
}

// DeletePoints removes the given point ids.
func (c *Client) DeletePoints(ctx context.Context, ids []string) error {
	body := map[string]interface{}{
		"points": ids,
	}
	return c.do(ctx, http.MethodPost, "/collections/"+c.collection+"/points/delete?wait=true", body, nil)
}

// RandomVector produces a placeholder embedding of the given dimension.
// Real embeddings are produced by the external workflow; the dashboard only
// needs well-formed vectors so the points index cleanly.
func RandomVector(dim int) []float32 {
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = rand.Float32()
	}
	return vec
}
