// Package ai - клиент OpenAI-совместимого chat-completions для терминала связи и вступления.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"space-horror/internal/config"
	"space-horror/internal/terminal"
	"space-horror/pkg/logger"
)

// ErrNoAPIKey - ключ не задан в окружении.
var ErrNoAPIKey = errors.New("ai: api key not configured")

const storyPrompt = `Generate a short, engaging story for a space survival horror game. The story should include:
1. A mysterious awakening on a space station
2. Signs of danger or a threat
3. A hint at the player's mission or goal

Separate paragraphs with a blank line.`

const (
	storyTemperature = 0.7
	chatTemperature  = 0.5
	maxTokens        = 400
)

type chatRequest struct {
	Model       string             `json:"model"`
	Messages    []terminal.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
	Temperature float64            `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client реализует terminal.Responder и engine.StoryTeller.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	log     *logrus.Entry
}

// New читает ключ из переменной окружения cfg.APIKeyEnv.
// Без ключа возвращает ErrNoAPIKey: игра работает без собеседника.
func New(cfg config.AIConfig) (*Client, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, ErrNoAPIKey
	}
	return NewWithKey(cfg, key), nil
}

func NewWithKey(cfg config.AIConfig, key string) *Client {
	return &Client{
		apiKey:  key,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logger.For("ai"),
	}
}

// Respond отправляет историю диалога и новое сообщение от имени persona.
func (c *Client) Respond(ctx context.Context, persona string, history []terminal.Message, message string) (string, error) {
	msgs := make([]terminal.Message, 0, len(history)+2)
	msgs = append(msgs, terminal.Message{Role: "system", Content: persona})
	msgs = append(msgs, history...)
	msgs = append(msgs, terminal.Message{Role: "user", Content: message})
	return c.complete(ctx, msgs, chatTemperature)
}

// Story возвращает карточки вступления, по абзацу на карточку.
func (c *Client) Story(ctx context.Context, level int) ([]string, error) {
	prompt := storyPrompt
	if level > 1 {
		prompt += fmt.Sprintf("\nThe player has reached deck %d.", level)
	}
	text, err := c.complete(ctx, []terminal.Message{{Role: "user", Content: prompt}}, storyTemperature)
	if err != nil {
		return nil, err
	}
	cards := SplitStory(text)
	if len(cards) == 0 {
		return nil, errors.New("ai: empty story")
	}
	return cards, nil
}

// SplitStory делит текст на абзацы по пустой строке.
func SplitStory(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var cards []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			cards = append(cards, p)
		}
	}
	return cards
}

func (c *Client) complete(ctx context.Context, msgs []terminal.Message, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("ai error (status %d)", resp.StatusCode)
		}
		return "", fmt.Errorf("parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := http.StatusText(resp.StatusCode)
		if out.Error != nil {
			msg = out.Error.Message
		}
		c.log.WithField("status", resp.StatusCode).Warn("Completion request rejected")
		return "", fmt.Errorf("ai error (status %d): %s", resp.StatusCode, msg)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("ai: no choices returned")
	}

	c.log.WithField("messages", len(msgs)).Debug("Completion received")
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

var _ terminal.Responder = (*Client)(nil)
