package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	apperrors "github.com/secquiz/secquiz/internal/errors"
)

// Gemini talks to the Google generative language API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, apperrors.ModelUnavailable(errors.New("api key not configured"))
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperrors.ModelUnavailable(err)
	}

	log.Info().Str("model", model).Msg("gemini client initialized")
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string, doc *Handle) (string, error) {
	parts := []genai.Part{genai.Text(prompt)}
	if doc != nil {
		parts = append(parts, genai.FileData{MIMEType: doc.MIMEType, URI: doc.URI})
	}

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, parts...)
	if err != nil {
		return "", classify(err)
	}

	text := flatten(resp)
	if text == "" {
		return "", apperrors.Internal("model returned no content", nil)
	}
	return text, nil
}

func (g *Gemini) Upload(ctx context.Context, path, displayName string) (*Handle, error) {
	file, err := g.client.UploadFileFromPath(ctx, path, &genai.UploadFileOptions{
		DisplayName: displayName,
		MIMEType:    "application/pdf",
	})
	if err != nil {
		return nil, apperrors.DocumentUploadFailed(classify(err))
	}

	log.Info().Str("name", file.Name).Str("uri", file.URI).Msg("document uploaded")
	return &Handle{
		Name:        file.Name,
		DisplayName: file.DisplayName,
		URI:         file.URI,
		MIMEType:    file.MIMEType,
	}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// classify tags an API failure with its caller-facing category at the call
// site that observed it.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ModelTimeout(err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 404:
			return apperrors.DocumentNotFound("remote document", err)
		case 408, 504:
			return apperrors.ModelTimeout(err)
		case 401, 403, 429, 503:
			return apperrors.ModelUnavailable(err)
		}
	}

	return apperrors.Internal("model request failed", err)
}

func flatten(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
