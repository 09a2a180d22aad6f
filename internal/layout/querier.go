// Package layout answers "which keyboard layout is active" through the host
// operating system and reports the answer as a single line.
package layout

import "context"

// Querier returns the identifier of the keyboard layout active for the
// calling thread or session.
type Querier interface {
	CurrentLayoutID(ctx context.Context) (string, error)
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(ctx context.Context) (string, error)

func (f QuerierFunc) CurrentLayoutID(ctx context.Context) (string, error) { return f(ctx) }
