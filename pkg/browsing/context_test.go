package browsing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/bidinput/pkg/page"
)

func testDocument(t *testing.T, url string) *page.Document {
	t.Helper()
	doc, err := page.Build(page.Spec{
		URL:      url,
		Viewport: page.Viewport{Width: 800, Height: 600},
	})
	require.NoError(t, err)
	return doc
}

func TestContextLifecycle(t *testing.T) {
	doc := testDocument(t, "https://example.test/a")
	bc := NewContext(doc, nil)

	assert.NotEmpty(t, bc.ID())
	assert.False(t, bc.Closed())

	got, err := bc.Document()
	require.NoError(t, err)
	assert.Same(t, doc, got)

	bc.Close()
	bc.Close() // idempotent

	assert.True(t, bc.Closed())
	_, err = bc.Document()
	assert.ErrorIs(t, err, ErrContextClosed)
}

func TestContextNavigate(t *testing.T) {
	loader := func(ctx context.Context, url string) (*page.Document, error) {
		if url == "about:blank" {
			return nil, fmt.Errorf("unroutable url")
		}
		return testDocument(t, url), nil
	}

	bc := NewContext(testDocument(t, "https://example.test/a"), loader)

	require.NoError(t, bc.Navigate(context.Background(), "https://example.test/b", WaitComplete))
	doc, err := bc.Document()
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/b", doc.URL())

	assert.Error(t, bc.Navigate(context.Background(), "about:blank", WaitNone))

	bc.Close()
	assert.ErrorIs(t, bc.Navigate(context.Background(), "https://example.test/c", WaitNone), ErrContextClosed)
}

func TestContextNavigate_NoLoader(t *testing.T) {
	bc := NewContext(testDocument(t, "https://example.test/a"), nil)
	assert.Error(t, bc.Navigate(context.Background(), "https://example.test/b", WaitNone))
}

func TestManager(t *testing.T) {
	m := NewManager()

	a := NewContext(testDocument(t, "https://example.test/a"), nil)
	b := NewContext(testDocument(t, "https://example.test/b"), nil)
	m.Add(a)
	m.Add(b)

	got, ok := m.Get(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	assert.ElementsMatch(t, []string{a.ID(), b.ID()}, m.List())

	require.NoError(t, m.CloseContext(a.ID()))
	assert.True(t, a.Closed())
	_, ok = m.Get(a.ID())
	assert.False(t, ok)

	assert.ErrorIs(t, m.CloseContext(a.ID()), ErrContextClosed)

	m.Close()
	assert.True(t, b.Closed())
	assert.Empty(t, m.List())
}
