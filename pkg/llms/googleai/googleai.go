// Package googleai implements chat and embedding clients for Google AI
// models. See https://ai.google.dev/ for more details.
package googleai

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/docportal/docportal/pkg/llms"
)

// ErrNoContentInResponse is returned when the API reports no candidates.
var ErrNoContentInResponse = errors.New("no content in generation response")

// embeddingBatchSize is the Gemini embedding API limit of documents per
// request.
const embeddingBatchSize = 100

// GoogleAI is a Google AI API client.
type GoogleAI struct {
	client *genai.Client
	opts   Options
}

var (
	_ llms.Model    = (*GoogleAI)(nil)
	_ llms.Embedder = (*GoogleAI)(nil)
)

// New creates a new GoogleAI client.
func New(ctx context.Context, opts ...Option) (*GoogleAI, error) {
	clientOptions := DefaultOptions()
	for _, opt := range opts {
		opt(&clientOptions)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     clientOptions.APIKey,
		HTTPClient: clientOptions.HTTPClient,
		Backend:    genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GoogleAI{
		client: client,
		opts:   clientOptions,
	}, nil
}

// GetProviderType implements the llms.Model interface.
func (g *GoogleAI) GetProviderType() llms.ProviderType {
	return llms.ProviderGoogle
}

// GenerateContent implements the llms.Model interface.
func (g *GoogleAI) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{
		Model:       g.opts.DefaultModel,
		MaxTokens:   g.opts.DefaultMaxTokens,
		Temperature: g.opts.DefaultTemperature,
	}
	for _, opt := range options {
		opt(&opts)
	}

	callCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(opts.MaxTokens),
		Temperature:     genai.Ptr(float32(opts.Temperature)),
	}

	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case llms.RoleSystem:
			callCfg.SystemInstruction = genai.NewContentFromText(msg.Text, genai.RoleUser)
		case llms.RoleAI:
			contents = append(contents, genai.NewContentFromText(msg.Text, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Text, genai.RoleUser))
		}
	}

	response, err := g.client.Models.GenerateContent(ctx, opts.Model, contents, callCfg)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to generate content")
	}
	if len(response.Candidates) == 0 {
		return nil, ErrNoContentInResponse
	}

	return convertCandidates(response.Candidates)
}

// convertCandidates converts a sequence of genai.Candidate to a response.
func convertCandidates(candidates []*genai.Candidate) (*llms.ContentResponse, error) {
	var contentResponse llms.ContentResponse

	for _, candidate := range candidates {
		buf := strings.Builder{}
		if candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				buf.WriteString(part.Text)
			}
		}
		contentResponse.Choices = append(contentResponse.Choices, &llms.ContentChoice{
			Content:    buf.String(),
			StopReason: string(candidate.FinishReason),
		})
	}
	return &contentResponse, nil
}

// CreateEmbedding implements the llms.Embedder interface. The Gemini
// embedding API allows up to 100 documents per request, so inputs are sent
// in batches of that size.
func (g *GoogleAI) CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error) {
	results := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += embeddingBatchSize {
		end := min(start+embeddingBatchSize, len(texts))
		batch := make([]*genai.Content, 0, end-start)
		for _, t := range texts[start:end] {
			batch = append(batch, genai.NewContentFromText(t, genai.RoleUser))
		}

		resp, err := g.client.Models.EmbedContent(ctx, g.opts.DefaultEmbeddingModel, batch, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create embeddings")
		}
		for _, e := range resp.Embeddings {
			results = append(results, e.Values)
		}
	}

	return results, nil
}
