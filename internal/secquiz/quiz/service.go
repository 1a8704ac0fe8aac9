package quiz

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/secquiz/secquiz/internal/errors"
	"github.com/secquiz/secquiz/internal/knowledge"
	"github.com/secquiz/secquiz/internal/llm"
)

// Service executes the three tools: question generation and PII redaction
// against the model, page-link resolution locally. It holds no state of its
// own; the one cross-request slot (the document handle) lives in the store.
type Service struct {
	model        llm.Client // nil when no credential is configured
	docs         *knowledge.Store
	baseURL      string
	excerptBytes int
}

func NewService(model llm.Client, docs *knowledge.Store, baseURL string, excerptBytes int) *Service {
	return &Service{
		model:        model,
		docs:         docs,
		baseURL:      strings.TrimRight(baseURL, "/"),
		excerptBytes: excerptBytes,
	}
}

// QuestionRequest carries the generate_question inputs. Type and Level are
// passed through to the prompt without enum enforcement.
type QuestionRequest struct {
	Topic  string
	Type   string
	Level  string
	Amount int
}

// GenerateQuestions composes the question prompt over the knowledge document
// and returns the model's raw text. qtype and level are lax strings; amount 0
// defaults to 1.
func (s *Service) GenerateQuestions(ctx context.Context, topic, qtype, level string, amount int) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", errors.InvalidArg("topic")
	}
	if amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return "", errors.InvalidArg("amount")
	}
	req := QuestionRequest{Topic: topic, Type: qtype, Level: level, Amount: amount}

	if s.model == nil {
		return "", errors.ModelUnavailable(nil)
	}

	handle, err := s.docs.Handle(ctx)
	if err != nil {
		return "", err
	}

	// Extraction failure is not fatal: the uploaded document still grounds
	// the prompt.
	excerpt, _ := s.docs.Excerpt(s.excerptBytes)

	text, err := s.model.Generate(ctx, questionPrompt(req, excerpt), handle)
	if err != nil {
		return "", degrade(err, "error generating question")
	}

	log.Debug().Str("topic", req.Topic).Int("amount", req.Amount).Msg("questions generated")
	return text, nil
}

// RedactText asks the model to replace PII with category placeholders and
// returns the cleaned text with surrounding whitespace trimmed.
func (s *Service) RedactText(ctx context.Context, text string) (string, error) {
	if s.model == nil {
		return "", errors.ModelUnavailable(nil)
	}

	cleaned, err := s.model.Generate(ctx, redactPrompt(text), nil)
	if err != nil {
		return "", degrade(err, "error cleaning PII")
	}

	return strings.TrimSpace(cleaned), nil
}

// PageLink resolves a locator for one page of the knowledge document.
func (s *Service) PageLink(page int) (string, error) {
	return s.docs.PageLink(s.baseURL, page)
}

// degrade keeps explicitly classified failures (timeout, unavailable,
// not-found, upload) intact and folds everything else into a generic message.
func degrade(err error, message string) error {
	switch errors.GetType(err) {
	case errors.ErrTypeTimeout, errors.ErrTypeUnavailable, errors.ErrTypeNotFound, errors.ErrTypeUpload:
		return err
	default:
		return errors.Internal(message, err)
	}
}
