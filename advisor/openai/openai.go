// Package openai provides an advisor backed by the OpenAI Chat Completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/simweave/simweave/advisor"
)

// Options configures the OpenAI advisor.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	APIKey              string
}

// Advisor wraps the OpenAI Chat Completions API behind the advisor.Advisor
// interface.
type Advisor struct {
	client openai.Client
	opts   Options
}

// New creates a new OpenAI advisor using the official client.
func New(optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:               openai.ChatModelGPT4o,
		Temperature:         0.2,
		MaxCompletionTokens: 1024,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	return &Advisor{
		client: openai.NewClient(clientOpts...),
		opts:   opts,
	}
}

// Rank implements advisor.Advisor.
func (a *Advisor) Rank(ctx context.Context, req advisor.Request) (advisor.Ranking, error) {
	if len(req.Options) == 0 {
		return advisor.Ranking{}, fmt.Errorf("no options to rank")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	messages = append(messages, openai.UserMessage(advisor.BuildPrompt(req)))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               a.opts.Model,
		Temperature:         openai.Float(a.opts.Temperature),
		MaxCompletionTokens: openai.Int(a.opts.MaxCompletionTokens),
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return advisor.Ranking{}, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return advisor.Ranking{}, fmt.Errorf("openai returned no choices")
	}

	return advisor.ParseRanking(resp.Choices[0].Message.Content, len(req.Options))
}

// Info implements advisor.Advisor.
func (a *Advisor) Info() advisor.Info {
	return advisor.Info{Provider: "openai", Model: a.opts.Model}
}

var _ advisor.Advisor = (*Advisor)(nil)
