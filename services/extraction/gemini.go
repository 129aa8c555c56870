// File: services/extraction/gemini.go
package extraction

import (
	"context"
	"fmt"
	"strings"

	"calendai/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExtractor implements IntentExtractor on top of a Gemini model.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

func NewGeminiExtractor(ctx context.Context, apiKey, modelName string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiExtractor{model: client.GenerativeModel(modelName)}, nil
}

func (g *GeminiExtractor) Extract(ctx context.Context, message string) (models.ExtractedIntent, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(extractionPrompt(message)))
	if err != nil {
		return models.ExtractedIntent{}, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return DecodeExtraction(sb.String()), nil
}
