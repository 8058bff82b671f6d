// Package openai implements a chat client for OpenAI and OpenAI-compatible
// APIs, including Groq.
package openai

import (
	"context"

	"github.com/cockroachdb/errors"
	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/docportal/docportal/pkg/llms"
)

var (
	// ErrEmptyResponse is returned when the API reports no choices.
	ErrEmptyResponse = errors.New("no content in generation response")
	// ErrMissingToken is returned when the client is constructed without an
	// API token.
	ErrMissingToken = errors.New("missing API token")
)

// LLM is a chat-completion client for OpenAI-compatible APIs.
type LLM struct {
	client openaisdk.Client
	opts   Options
}

var _ llms.Model = (*LLM)(nil)

// New creates a new OpenAI-compatible chat client.
func New(opts ...Option) (*LLM, error) {
	clientOptions := DefaultOptions()
	for _, opt := range opts {
		opt(&clientOptions)
	}
	if clientOptions.Token == "" {
		return nil, ErrMissingToken
	}
	if clientOptions.APIType == APITypeGroq && clientOptions.BaseURL == "" {
		clientOptions.BaseURL = GroqBaseURL
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(clientOptions.Token),
	}
	if clientOptions.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(clientOptions.BaseURL))
	}

	return &LLM{
		client: openaisdk.NewClient(reqOpts...),
		opts:   clientOptions,
	}, nil
}

// GetProviderType implements the llms.Model interface.
func (o *LLM) GetProviderType() llms.ProviderType {
	if o.opts.APIType == APITypeGroq {
		return llms.ProviderGroq
	}
	return llms.ProviderOpenAI
}

// GenerateContent implements the llms.Model interface.
func (o *LLM) GenerateContent(ctx context.Context, messages []llms.Message, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{
		Model:       o.opts.DefaultModel,
		MaxTokens:   o.opts.DefaultMaxTokens,
		Temperature: o.opts.DefaultTemperature,
	}
	for _, opt := range options {
		opt(&opts)
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(opts.Model),
		Temperature: openaisdk.Float(opts.Temperature),
	}
	// Groq's endpoint does not take the Chat Completions token budget.
	if o.opts.APIType != APITypeGroq && opts.MaxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(int64(opts.MaxTokens))
	}

	for _, msg := range messages {
		switch msg.Role {
		case llms.RoleSystem:
			params.Messages = append(params.Messages, openaisdk.SystemMessage(msg.Text))
		case llms.RoleAI:
			params.Messages = append(params.Messages, openaisdk.AssistantMessage(msg.Text))
		default:
			params.Messages = append(params.Messages, openaisdk.UserMessage(msg.Text))
		}
	}

	response, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to generate content")
	}
	if len(response.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	var contentResponse llms.ContentResponse
	for _, choice := range response.Choices {
		contentResponse.Choices = append(contentResponse.Choices, &llms.ContentChoice{
			Content:    choice.Message.Content,
			StopReason: string(choice.FinishReason),
		})
	}
	return &contentResponse, nil
}
