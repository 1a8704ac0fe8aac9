package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/secquiz/secquiz/internal/errors"
	"github.com/secquiz/secquiz/internal/llm"
)

type fakeUploader struct {
	calls int32
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, path, displayName string) (*llm.Handle, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Handle{Name: "files/abc", DisplayName: displayName, URI: "uri://abc", MIMEType: "application/pdf"}, nil
}

func tempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CCSK.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHandleUploadsOnce(t *testing.T) {
	up := &fakeUploader{}
	store := NewStore(tempDoc(t), up)

	// Concurrent first requests must not race into duplicate uploads.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Handle(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&up.calls); got != 1 {
		t.Errorf("upload calls = %d, want 1", got)
	}

	handle, err := store.Handle(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if handle.Name != "files/abc" {
		t.Errorf("handle name = %q, want files/abc", handle.Name)
	}
}

func TestHandleMissingDocument(t *testing.T) {
	up := &fakeUploader{}
	store := NewStore(filepath.Join(t.TempDir(), "absent.pdf"), up)

	_, err := store.Handle(context.Background())
	if !errors.Is(err, errors.ErrTypeNotFound) {
		t.Errorf("Handle() error = %v, want not_found", err)
	}
	if up.calls != 0 {
		t.Errorf("upload attempted for missing document")
	}
}

// A failed upload is not cached; the next request retries.
func TestHandleRetriesAfterFailure(t *testing.T) {
	up := &fakeUploader{err: errors.DocumentUploadFailed(nil)}
	store := NewStore(tempDoc(t), up)

	if _, err := store.Handle(context.Background()); !errors.Is(err, errors.ErrTypeUpload) {
		t.Errorf("Handle() error = %v, want upload_failed", err)
	}

	up.err = nil
	if _, err := store.Handle(context.Background()); err != nil {
		t.Errorf("Handle() after recovery = %v, want nil", err)
	}
	if up.calls != 2 {
		t.Errorf("upload calls = %d, want 2", up.calls)
	}
}

func TestHandleNoUploader(t *testing.T) {
	store := NewStore(tempDoc(t), nil)
	_, err := store.Handle(context.Background())
	if !errors.Is(err, errors.ErrTypeUnavailable) {
		t.Errorf("Handle() error = %v, want unavailable", err)
	}
}

// Extraction runs once; the second call returns the memoized outcome rather
// than re-parsing the document.
func TestExcerptMemoizesOutcome(t *testing.T) {
	store := NewStore(tempDoc(t), nil)

	_, err1 := store.Excerpt(100)
	if err1 == nil {
		t.Fatal("Excerpt() on a header-only stub succeeded, want extraction error")
	}

	_, err2 := store.Excerpt(100)
	if err2 != err1 {
		t.Errorf("Excerpt() second call error = %v, want the memoized %v", err2, err1)
	}
}

func TestPageLink(t *testing.T) {
	store := NewStore(tempDoc(t), nil)

	link, err := store.PageLink("http://127.0.0.1:5040", 5)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(link, "#page=5") {
		t.Errorf("PageLink() = %q, want #page=5 suffix", link)
	}
	if !strings.Contains(link, "/docs/CCSK.pdf") {
		t.Errorf("PageLink() = %q, want /docs/CCSK.pdf path", link)
	}
}

func TestPageLinkInvalidPage(t *testing.T) {
	store := NewStore(tempDoc(t), nil)
	for _, page := range []int{0, -3} {
		if _, err := store.PageLink("http://localhost", page); !errors.Is(err, errors.ErrTypeInvalidArg) {
			t.Errorf("PageLink(%d) error = %v, want invalid_argument", page, err)
		}
	}
}

func TestPageLinkMissingDocument(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.pdf"), nil)
	if _, err := store.PageLink("http://localhost", 5); !errors.Is(err, errors.ErrTypeNotFound) {
		t.Errorf("PageLink() error = %v, want not_found", err)
	}
}
