package secquiz

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/secquiz/secquiz/internal/knowledge"
	"github.com/secquiz/secquiz/internal/llm"
	"github.com/secquiz/secquiz/internal/secquiz/conf"
	"github.com/secquiz/secquiz/internal/secquiz/http"
	"github.com/secquiz/secquiz/internal/secquiz/quiz"
	"github.com/secquiz/secquiz/internal/secquiz/rpc"
)

// Manager wires configuration into services and owns their lifecycle.
type Manager struct {
	conf *conf.Config

	// Services
	model llm.Client
	docs  *knowledge.Store
	quiz  *quiz.Service
	rpc   *rpc.Service
	http  *http.Service
}

func New(c *conf.Config) *Manager {
	return &Manager{conf: c}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM.
func (m *Manager) Run() error {
	if err := m.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return m.Stop()
}

func (m *Manager) Start() error {
	if m.conf.APIKey != "" {
		gemini, err := llm.NewGemini(context.Background(), m.conf.APIKey, m.conf.Model)
		if err != nil {
			return err
		}
		m.model = gemini
	} else {
		// Model-backed tools will answer service-unavailable; the page-link
		// tool and document serving still work.
		log.Warn().Msg("no api key configured, model-backed tools disabled")
	}

	var uploader knowledge.Uploader
	if m.model != nil {
		uploader = m.model
	}
	m.docs = knowledge.NewStore(m.conf.DocPath, uploader)

	m.quiz = quiz.NewService(m.model, m.docs, m.conf.BaseURL(), m.conf.ExcerptBytes)
	m.rpc = rpc.NewService(m.quiz)
	m.http = http.NewService(m.conf, m.quiz, m.rpc)

	return m.http.Start()
}

func (m *Manager) Stop() error {
	if m.http != nil {
		if err := m.http.Stop(); err != nil {
			return err
		}
	}
	if closer, ok := m.model.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close model client")
		}
	}
	return nil
}
