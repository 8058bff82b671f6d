// Package llms defines the interfaces implemented by the provider clients.
package llms

import (
	"context"
)

// ProviderType is the type of provider.
type ProviderType string

const (
	// ProviderGoogle is the type of provider.
	ProviderGoogle ProviderType = "GOOGLE"
	// ProviderGroq is the type of provider.
	ProviderGroq ProviderType = "GROQ"
	// ProviderOpenAI is the type of provider.
	ProviderOpenAI ProviderType = "OPENAI"
)

// Role is the type of chat message.
type Role string

const (
	// RoleAI is a message sent by the model.
	RoleAI Role = "ai"
	// RoleHuman is a message sent by a human.
	RoleHuman Role = "human"
	// RoleSystem is a message sent by the system.
	RoleSystem Role = "system"
)

// Message is a single message sent to a model.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// TextMessage creates a Message with the given role and text.
func TextMessage(role Role, text string) Message {
	return Message{Role: role, Text: text}
}

// ContentChoice is one generation candidate returned by a model.
type ContentChoice struct {
	// Content is the generated text.
	Content string
	// StopReason is the provider-reported reason generation stopped.
	StopReason string
}

// ContentResponse is the response returned by a chat model.
type ContentResponse struct {
	Choices []*ContentChoice
}

// Model is the interface chat-completion clients implement.
type Model interface {
	// GetProviderType returns the type of provider.
	GetProviderType() ProviderType
	// GenerateContent asks the model to generate content from a sequence
	// of messages.
	GenerateContent(ctx context.Context, messages []Message, options ...CallOption) (*ContentResponse, error)
}

// Embedder is the interface embedding clients implement.
type Embedder interface {
	// CreateEmbedding returns one vector per input text.
	CreateEmbedding(ctx context.Context, texts []string) ([][]float32, error)
}
