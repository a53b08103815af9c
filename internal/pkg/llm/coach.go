package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
	openai "github.com/sashabaranov/go-openai"
)

// CoachClient talks to an OpenAI-compatible endpoint to expand the static
// explanation of a quiz question into a fuller study note. Callers fall
// back to the static explanation when the client is unconfigured or the
// call fails.
type CoachClient struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *openai.Client
}

func NewCoachClient(apiKey string, model string, baseURL string) *CoachClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &CoachClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// Enabled reports whether the coach has credentials to call out with.
func (c *CoachClient) Enabled() bool {
	return c != nil && c.APIKey != ""
}

// ExplainQuestion generates an expanded explanation for a question the
// user just answered.
func (c *CoachClient) ExplainQuestion(ctx context.Context, q catalog.Question) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("coach client not initialized")
	}

	correct := ""
	if i := q.CorrectIndex(); i >= 0 {
		correct = q.Options[i].Text
	}

	prompt := fmt.Sprintf(`You are a legal-awareness tutor for ordinary Indian citizens.

Question: %s
Correct answer: %s
Short explanation on record: %s

Expand the explanation into 3-4 plain-language sentences a person with no
legal background can follow. Mention the relevant act or article by name,
and one practical step the reader can take. Do not use legal jargon
without explaining it. Return plain text only, no markdown.`,
		q.QuestionText, correct, q.Explanation)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.4,
			TopP:        0.95,
			MaxTokens:   512,
		},
	)
	if err != nil {
		return "", fmt.Errorf("coach generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("coach returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("coach returned empty response")
	}

	return text, nil
}
