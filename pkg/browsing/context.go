// Package browsing provides browsing contexts and their lifecycle: the
// dispatcher's view of navigation and close detection.
package browsing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/odvcencio/bidinput/pkg/page"
)

// ErrContextClosed is returned for operations on a closed context. The
// dispatch layer maps it onto the NoSuchFrame error kind.
var ErrContextClosed = errors.New("browsing context closed")

// Wait selects how much of the load Navigate waits for. Documents load
// synchronously, so every navigation is complete before Navigate returns
// and both conditions observe the same state.
type Wait string

const (
	WaitNone     Wait = "none"
	WaitComplete Wait = "complete"
)

// Loader builds the document for a URL. The daemon installs a JSON page
// loader; tests install fixtures.
type Loader func(ctx context.Context, url string) (*page.Document, error)

// Context is a top-level browsing context. Close detection is monotonic:
// once closed, every later document access fails.
type Context struct {
	id     string
	loader Loader
	closed atomic.Bool

	mu  sync.RWMutex
	doc *page.Document
}

// NewContext creates a context displaying the given document.
func NewContext(doc *page.Document, loader Loader) *Context {
	return &Context{
		id:     uuid.NewString(),
		loader: loader,
		doc:    doc,
	}
}

// ID returns the context identifier.
func (c *Context) ID() string { return c.id }

// Navigate loads a new document, replacing the current one. The wait
// condition is accepted for protocol parity; see Wait.
func (c *Context) Navigate(ctx context.Context, url string, _ Wait) error {
	if c.closed.Load() {
		return ErrContextClosed
	}
	if c.loader == nil {
		return fmt.Errorf("navigate %q: no loader installed", url)
	}
	doc, err := c.loader(ctx, url)
	if err != nil {
		return fmt.Errorf("navigate %q: %w", url, err)
	}
	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()
	return nil
}

// Document returns the current document, or ErrContextClosed.
func (c *Context) Document() (*page.Document, error) {
	if c.closed.Load() {
		return nil, ErrContextClosed
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc, nil
}

// Close marks the context closed. Safe to call more than once and from
// event-sink side effects mid-dispatch.
func (c *Context) Close() {
	c.closed.Store(true)
}

// Closed reports whether the context has been closed.
func (c *Context) Closed() bool {
	return c.closed.Load()
}
