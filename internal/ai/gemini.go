package ai

import (
	"context"
	"errors"

	"go.uber.org/zap"
	genai "google.golang.org/genai"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

const defaultModel = "gemini-2.5-flash"

type Gemini struct {
	gen    generator
	model  string
	Logger *zap.Logger
}

type geminiClient struct {
	client *genai.Client
	model  string
}

func (c geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return "", err
	}
	return res.Text(), nil
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}
	if model == "" {
		model = defaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &Gemini{gen: geminiClient{client: c, model: model}, model: model, Logger: zap.NewNop()}, nil
}

// Summarize asks the model for a one-sentence summary. Model failures and
// empty answers fall back to analyze.Summarize, so it never returns an error.
func (g *Gemini) Summarize(ctx context.Context, clauses []analyze.Clause) (string, error) {
	fallback := analyze.Summarize(clauses)
	if len(clauses) == 0 || g.gen == nil {
		return fallback, nil
	}
	out, err := g.gen.generate(ctx, buildPrompt(clauses))
	if err != nil {
		g.logger().Warn("gemini summary failed, using deterministic summary", zap.String("model", g.model), zap.Error(err))
		return fallback, nil
	}
	if s := cleanAnswer(out); s != "" {
		return s, nil
	}
	return fallback, nil
}

func (g *Gemini) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
