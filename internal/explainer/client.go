package explainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"gw-fraud-scoring/internal/custom_err"
)

type ClientConfig struct {
	URL         string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client вызывает chat completions; ретраев нет, один вызов на запрос
type Client struct {
	http *resty.Client
	cfg  ClientConfig
	log  *slog.Logger
}

var errEmptyCompletion = errors.New("empty completion")

func NewClient(cfg ClientConfig, log *slog.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http: httpClient,
		cfg:  cfg,
		log:  log,
	}
}

// New отдаёт NoOp если ключ не настроен
func New(cfg ClientConfig, log *slog.Logger) Explainer {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("EXPLAINER_API_KEY не задан, объяснения будут резервными")
		return NoOp{}
	}
	return NewClient(cfg, log)
}

func (c *Client) Explain(ctx context.Context, req Request) (string, error) {
	return c.complete(ctx, buildExplanationPrompt(req))
}

func (c *Client) Recommend(ctx context.Context, req Request) (string, error) {
	return c.complete(ctx, buildRecommendationPrompt(req))
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	const op = "explainer.complete"

	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	var result chatResponse
	var failure apiError

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post(c.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, custom_err.ErrExplainerUnavailable, err)
	}

	if resp.IsError() {
		c.log.Warn("explainer вернул ошибку",
			slog.Int("status", resp.StatusCode()),
			slog.String("type", failure.Error.Type),
			slog.String("message", failure.Error.Message))
		return "", fmt.Errorf("%s: %w: status %d", op, custom_err.ErrExplainerUnavailable, resp.StatusCode())
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%s: %w: %w", op, custom_err.ErrExplainerUnavailable, errEmptyCompletion)
	}

	c.log.Debug("explainer ответил",
		slog.Duration("latency", time.Since(start)),
		slog.Int("choices", len(result.Choices)))

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
