// Package bedrock answers prompts with an Anthropic model hosted on Amazon
// Bedrock.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"
)

const (
	DefaultModelID = "anthropic.claude-3-haiku-20240307"

	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 300
	temperature      = 0.1
	contentTypeJSON  = "application/json"
)

var ErrEmptyResponse = errors.New("model returned no content")

// ModelInvoker is the subset of *bedrockruntime.Client used here.
type ModelInvoker interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

var _ ports.TextGenerator = (*TextGenerator)(nil)

type TextGenerator struct {
	client  ModelInvoker
	modelID string
	logger  *zap.Logger
}

func NewTextGenerator(client ModelInvoker, modelID string, logger *zap.Logger) (*TextGenerator, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &TextGenerator{
		client:  client,
		modelID: modelID,
		logger:  logger.With(zap.String("component", "bedrock"), zap.String("model", modelID)),
	}, nil
}

// NewFromEnvironment resolves region and credentials through the default AWS
// configuration chain.
func NewFromEnvironment(ctx context.Context, modelID string, logger *zap.Logger) (*TextGenerator, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewTextGenerator(bedrockruntime.NewFromConfig(cfg), modelID, logger)
}

func (g *TextGenerator) Model() string {
	return g.modelID
}

type textBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type message struct {
	Role    string      `json:"role"`
	Content []textBlock `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	System           string    `json:"system"`
	Messages         []message `json:"messages"`
}

type invokeResponse struct {
	Content []textBlock `json:"content"`
}

// Generate sends one user turn and returns the text of the first content
// block.
func (g *TextGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		System:           system,
		Messages: []message{{
			Role:    "user",
			Content: []textBlock{{Type: "text", Text: prompt}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        body,
	})
	if err != nil {
		g.logger.Warn("invoke model failed", zap.Error(err))
		return "", fmt.Errorf("invoke model %s: %w", g.modelID, err)
	}

	var resp invokeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", ErrEmptyResponse
	}

	g.logger.Debug("model answered", zap.Int("prompt_bytes", len(prompt)), zap.Int("answer_bytes", len(resp.Content[0].Text)))
	return resp.Content[0].Text, nil
}
