// ABOUTME: OpenAI client for text embeddings
// ABOUTME: Uses text-embedding-3-small with retry and per-call timeouts
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/liyoubang97-hub/deepread-app/internal/config"
	"github.com/liyoubang97-hub/deepread-app/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultEmbeddingModel is the default model for embeddings
const DefaultEmbeddingModel = string(openai.SmallEmbedding3)

// Client wraps the OpenAI embeddings API with retry logic.
// It is constructed once per process and shared; the underlying HTTP
// client is safe for concurrent use.
type Client struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimension  int
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates an embedding client from configuration
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	model := cfg.EmbeddingModel
	if model == "" {
		model = DefaultEmbeddingModel
	}

	return &Client{
		client:     openai.NewClient(cfg.OpenAIKey),
		model:      openai.EmbeddingModel(model),
		dimension:  cfg.VectorDimension,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Dimension returns the vector dimensionality produced by the model
func (c *Client) Dimension() int {
	return c.dimension
}

// Embed generates an embedding vector for the given text.
// Retries transient failures with exponential backoff; gives up once the
// context is done. A response with the wrong dimensionality is an error,
// never silently padded or truncated.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			case <-ctx.Done():
				return nil, fmt.Errorf("embedding canceled: %w", ctx.Err())
			}
		}

		resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.model,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("embedding canceled: %w", ctx.Err())
			}
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Data) == 0 {
			lastErr = fmt.Errorf("attempt %d: no embeddings returned", attempt+1)
			continue
		}

		embedding32 := resp.Data[0].Embedding
		if len(embedding32) != c.dimension {
			return nil, fmt.Errorf("invalid embedding dimension: expected %d, got %d", c.dimension, len(embedding32))
		}

		embedding := make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding[i] = float64(v)
		}
		return embedding, nil
	}

	return nil, fmt.Errorf("failed to generate embedding after %d attempts: %w", c.maxRetries+1, lastErr)
}
