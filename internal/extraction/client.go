// Package extraction talks to the external structured-extraction collaborator
// that turns a free-form utterance into a preliminary transaction guess, and
// parses its response into the strict ParsedTransaction shape.
package extraction

import "context"

// Client is the boundary to the extraction collaborator. Implementations make
// exactly one outbound call per Extract invocation and never retry — callers
// own retry policy for the whole pipeline.
type Client interface {
	Extract(ctx context.Context, text string) (string, error)
}
