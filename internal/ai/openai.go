package ai

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultOpenAIModel = "gpt-4o-mini"
	openAIName         = "openai"
)

type OpenAIParams struct {
	APIKey     string
	Model      string
	BaseURL    string // any OpenAI compatible endpoint
	HTTPClient *http.Client
}

type OpenAI struct {
	name   string
	client openai.Client
	model  string
}

func NewOpenAI(params OpenAIParams) *OpenAI {
	if params.Model == "" {
		params.Model = DefaultOpenAIModel
	}
	return newChatClient(openAIName, params)
}

// newChatClient builds a chat completions client for any OpenAI compatible
// provider. Retries are off: one attempt per suggestion request.
func newChatClient(name string, params OpenAIParams) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
		option.WithMaxRetries(0),
	}
	if params.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(params.BaseURL))
	}
	if params.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(params.HTTPClient))
	}

	return &OpenAI{
		name:   name,
		client: openai.NewClient(opts...),
		model:  params.Model,
	}
}

func (o *OpenAI) Name() string {
	return o.name
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", upstreamErr(o.name, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", upstreamErr(o.name, errors.New("empty response"))
	}

	return completion.Choices[0].Message.Content, nil
}
