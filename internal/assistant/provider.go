package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mal4crypt/genova-health/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Insight, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Insight, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Failed to generate Gemini content")
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return nil, errors.New("empty response from model")
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var insights []Insight
	if err := json.Unmarshal([]byte(clean), &insights); err != nil {
		log.WithError(err).Errorf("Failed to decode insight JSON. Cleaned content:\n%s", clean)
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	log.Infof("Generated %d insights", len(insights))
	return insights, nil
}
