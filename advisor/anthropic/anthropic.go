// Package anthropic provides an advisor backed by the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/simweave/simweave/advisor"
)

// Options configures the Anthropic advisor (model id, temperature, max
// tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Advisor wraps the Anthropic Messages API behind the advisor.Advisor
// interface.
type Advisor struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic advisor using the official client.
func New(optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   1024,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Advisor{
		client: &client,
		opts:   opts,
	}
}

// NewFromClient creates a new Anthropic advisor from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   1024,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Advisor{
		client: client,
		opts:   opts,
	}
}

// Rank implements advisor.Advisor.
func (a *Advisor) Rank(ctx context.Context, req advisor.Request) (advisor.Ranking, error) {
	if len(req.Options) == 0 {
		return advisor.Ranking{}, fmt.Errorf("no options to rank")
	}

	params := anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(advisor.BuildPrompt(req))),
		},
	}
	if req.Instructions != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.Instructions},
		}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return advisor.Ranking{}, fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}

	return advisor.ParseRanking(text, len(req.Options))
}

// Info implements advisor.Advisor.
func (a *Advisor) Info() advisor.Info {
	return advisor.Info{Provider: "anthropic", Model: string(a.opts.Model)}
}

var _ advisor.Advisor = (*Advisor)(nil)
