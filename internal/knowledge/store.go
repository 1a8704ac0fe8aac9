package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/secquiz/secquiz/internal/errors"
	"github.com/secquiz/secquiz/internal/llm"
)

// Uploader makes a local file available to the model service.
type Uploader interface {
	Upload(ctx context.Context, path, displayName string) (*llm.Handle, error)
}

// Store owns the single knowledge document: its local path, its extracted
// text, and the remote handle after first upload. The handle is populated
// exactly once under the lock and reused for the process lifetime; a failed
// upload is not cached, so the next request retries.
type Store struct {
	path        string
	displayName string
	uploader    Uploader

	mu     sync.Mutex
	handle *llm.Handle

	textOnce sync.Once
	text     string
	textErr  error
}

func NewStore(path string, uploader Uploader) *Store {
	return &Store{
		path:        path,
		displayName: filepath.Base(path),
		uploader:    uploader,
	}
}

// Path returns the local path of the knowledge document.
func (s *Store) Path() string {
	return s.path
}

// Handle returns the remote document handle, uploading the document on first
// use.
func (s *Store) Handle(ctx context.Context) (*llm.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != nil {
		return s.handle, nil
	}

	if s.uploader == nil {
		return nil, errors.ModelUnavailable(nil)
	}

	if _, err := os.Stat(s.path); err != nil {
		return nil, errors.DocumentNotFound(s.displayName, err)
	}

	handle, err := s.uploader.Upload(ctx, s.path, s.displayName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeUpload, "document upload failed", errors.GetCode(err))
	}

	s.handle = handle
	return handle, nil
}

// Excerpt returns up to maxBytes of the document's extracted text. Extraction
// runs once; both outcome and error are memoized.
func (s *Store) Excerpt(maxBytes int) (string, error) {
	s.textOnce.Do(func() {
		s.text, s.textErr = ExtractText(s.path, maxBytes)
		if s.textErr != nil {
			log.Warn().Err(s.textErr).Str("path", s.path).Msg("knowledge text extraction failed")
		}
	})
	return s.text, s.textErr
}

// PageLink builds a locator for one page of the document as served under the
// baseURL's /docs/ mount. Purely local: no model call is involved.
func (s *Store) PageLink(baseURL string, page int) (string, error) {
	if page <= 0 {
		return "", errors.InvalidArg("page_number")
	}

	if _, err := os.Stat(s.path); err != nil {
		return "", errors.DocumentNotFound(s.displayName, err)
	}

	return fmt.Sprintf("%s/docs/%s#page=%d", baseURL, s.displayName, page), nil
}
