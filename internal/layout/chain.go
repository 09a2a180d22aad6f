package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Backend is a named Querier.
type Backend struct {
	Name    string
	Querier Querier
}

// Answer is a successful query together with the backend that produced it.
type Answer struct {
	ID      string
	Backend string
}

// Chain tries its backends in order and answers with the first success.
type Chain struct {
	backends []Backend
	trace    io.Writer
}

// NewChain builds a chain from registered backend names. No names selects
// every registered backend in default order.
func NewChain(names ...string) (*Chain, error) {
	if len(names) == 0 {
		names = Names()
	}
	backends := make([]Backend, 0, len(names))
	for _, name := range names {
		q, err := New(name)
		if err != nil {
			return nil, err
		}
		backends = append(backends, Backend{Name: name, Querier: q})
	}
	return ChainOf(backends...), nil
}

// ChainOf builds a chain from explicit backends.
func ChainOf(backends ...Backend) *Chain {
	return &Chain{backends: backends}
}

// WithTrace makes the chain write one line per attempt to w.
func (c *Chain) WithTrace(w io.Writer) *Chain {
	c.trace = w
	return c
}

// Backends returns the backend names in query order.
func (c *Chain) Backends() []string {
	names := make([]string, 0, len(c.backends))
	for _, b := range c.backends {
		names = append(names, b.Name)
	}
	return names
}

// Query returns the first successful answer. An empty identifier counts as
// an answer.
func (c *Chain) Query(ctx context.Context) (Answer, error) {
	if len(c.backends) == 0 {
		return Answer{}, queryFailure("", ErrUnsupported)
	}
	var errs []error
	for _, b := range c.backends {
		id, err := b.Querier.CurrentLayoutID(ctx)
		if err == nil {
			c.emit(b.Name, nil)
			return Answer{ID: id, Backend: b.Name}, nil
		}
		err = asQueryError(b.Name, err)
		c.emit(b.Name, err)
		errs = append(errs, err)
	}
	return Answer{}, errors.Join(errs...)
}

// CurrentLayoutID implements Querier.
func (c *Chain) CurrentLayoutID(ctx context.Context) (string, error) {
	a, err := c.Query(ctx)
	return a.ID, err
}

// Probe is the result of querying one backend in isolation.
type Probe struct {
	Backend string
	ID      string
	OK      bool
	Err     error
}

// Probe queries every backend, without stopping at the first success.
func (c *Chain) Probe(ctx context.Context) []Probe {
	out := make([]Probe, 0, len(c.backends))
	for _, b := range c.backends {
		id, err := b.Querier.CurrentLayoutID(ctx)
		if err != nil {
			err = asQueryError(b.Name, err)
			c.emit(b.Name, err)
			out = append(out, Probe{Backend: b.Name, Err: err})
			continue
		}
		c.emit(b.Name, nil)
		out = append(out, Probe{Backend: b.Name, ID: id, OK: true})
	}
	return out
}

func (c *Chain) emit(name string, err error) {
	if c.trace == nil {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(c.trace, "backend name=%s ok=false error=%q\n", name, err.Error())
		return
	}
	_, _ = fmt.Fprintf(c.trace, "backend name=%s ok=true\n", name)
}

func asQueryError(name string, err error) error {
	if errors.Is(err, ErrQueryFailed) {
		return err
	}
	return queryFailure(name, err)
}
