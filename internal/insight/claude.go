package insight

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"fouraana/internal/domain"
)

// Claude generates insights through the Anthropic Messages API.
type Claude struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewClaude(apiKey, model string) *Claude {
	return &Claude{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

func (c *Claude) Insights(ctx context.Context, p domain.Property) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: c.model,
		// Three sentences of prose; 300 tokens leaves headroom.
		MaxTokens: 300,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(Prompt(p)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create messages: %w", err)
	}
	return resp.GetFirstContentText(), nil
}
