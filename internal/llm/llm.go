package llm

import "context"

// Handle is an opaque reference to a document that has been made available to
// the model service. Reusable across calls for the process lifetime.
type Handle struct {
	Name        string
	DisplayName string
	URI         string
	MIMEType    string
}

// Client is the boundary to the generative model service. Implementations
// classify their failures into the typed categories of internal/errors
// (timeout, unavailable, not-found) before returning; callers never infer a
// category from error text.
type Client interface {
	// Generate runs one completion for prompt. When doc is non-nil the
	// uploaded document is attached as grounding material.
	Generate(ctx context.Context, prompt string, doc *Handle) (string, error)

	// Upload makes a local file available to the model service and returns
	// the remote handle.
	Upload(ctx context.Context, path, displayName string) (*Handle, error)
}
