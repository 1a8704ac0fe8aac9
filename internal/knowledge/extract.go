package knowledge

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/secquiz/secquiz/internal/errors"
)

// ExtractText pulls the extractable text out of the PDF at path. maxBytes
// bounds the returned excerpt; 0 means unbounded.
func ExtractText(path string, maxBytes int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", errors.Internal("failed to read document", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", errors.Internal("failed to extract document text", err)
	}

	var buf bytes.Buffer
	if maxBytes > 0 {
		_, err = io.Copy(&buf, io.LimitReader(plain, int64(maxBytes)))
	} else {
		_, err = io.Copy(&buf, plain)
	}
	if err != nil {
		return "", errors.Internal("failed to extract document text", err)
	}

	return buf.String(), nil
}
