package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, spec Spec) *Document {
	t.Helper()
	doc, err := Build(spec)
	require.NoError(t, err)
	return doc
}

func TestHitTest(t *testing.T) {
	doc := mustBuild(t, Spec{
		Viewport: Viewport{Width: 800, Height: 600},
		Nodes: []NodeSpec{
			{
				ID:   "outer",
				Rect: Rect{X: 100, Y: 100, Width: 300, Height: 300},
				Nodes: []NodeSpec{
					{ID: "inner", Rect: Rect{X: 150, Y: 150, Width: 100, Height: 100}},
				},
			},
			{ID: "overlay", Rect: Rect{X: 350, Y: 100, Width: 100, Height: 100}},
		},
	})

	tests := []struct {
		name   string
		x, y   float64
		wantID string
	}{
		{name: "deepest child wins", x: 200, y: 200, wantID: "inner"},
		{name: "parent outside the child", x: 120, y: 120, wantID: "outer"},
		{name: "later sibling paints on top", x: 380, y: 120, wantID: "overlay"},
		{name: "uncovered point falls to the root", x: 700, y: 500, wantID: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantID, doc.HitTest(tc.x, tc.y).ID())
		})
	}
}

func TestHitTest_OutsideRootReturnsRoot(t *testing.T) {
	doc := mustBuild(t, Spec{Viewport: Viewport{Width: 800, Height: 600}})
	assert.Same(t, doc.Root(), doc.HitTest(-10, -10))
}

func TestHitTest_ShadowTrees(t *testing.T) {
	// A host with a shadow subtree in each mode, one of them nesting a
	// second root. Hit testing must reach the innermost shadow node no
	// matter the mode.
	for _, mode := range []ShadowMode{ShadowOpen, ShadowClosed} {
		t.Run(string(mode), func(t *testing.T) {
			doc := mustBuild(t, Spec{
				Viewport: Viewport{Width: 800, Height: 600},
				Nodes: []NodeSpec{
					{
						ID:   "host",
						Rect: Rect{X: 100, Y: 100, Width: 200, Height: 200},
						Shadow: &ShadowSpec{
							Mode: mode,
							Nodes: []NodeSpec{
								{
									ID:   "shadow-child",
									Rect: Rect{X: 120, Y: 120, Width: 160, Height: 160},
									Shadow: &ShadowSpec{
										Mode: mode,
										Nodes: []NodeSpec{
											{ID: "nested-target", Rect: Rect{X: 140, Y: 140, Width: 40, Height: 40}},
										},
									},
								},
							},
						},
					},
				},
			})

			assert.Equal(t, "nested-target", doc.HitTest(150, 150).ID())
			assert.Equal(t, "shadow-child", doc.HitTest(250, 250).ID())
			assert.Equal(t, "host", doc.HitTest(105, 105).ID())
		})
	}
}

func TestHitTest_ShadowPaintsOverLightTree(t *testing.T) {
	doc := mustBuild(t, Spec{
		Viewport: Viewport{Width: 800, Height: 600},
		Nodes: []NodeSpec{
			{
				ID:   "host",
				Rect: Rect{X: 0, Y: 0, Width: 200, Height: 200},
				Nodes: []NodeSpec{
					{ID: "light", Rect: Rect{X: 50, Y: 50, Width: 100, Height: 100}},
				},
				Shadow: &ShadowSpec{
					Mode: ShadowOpen,
					Nodes: []NodeSpec{
						{ID: "projected", Rect: Rect{X: 50, Y: 50, Width: 100, Height: 100}},
					},
				},
			},
		},
	})

	assert.Equal(t, "projected", doc.HitTest(100, 100).ID())
}

func TestLoad(t *testing.T) {
	doc, err := Load([]byte(`{
		"url": "https://example.test/actions",
		"viewport": {"width": 800, "height": 600},
		"nodes": [
			{
				"id": "host",
				"rect": {"x": 10, "y": 10, "width": 100, "height": 100},
				"shadow": {"nodes": [{"id": "target", "rect": {"x": 20, "y": 20, "width": 50, "height": 50}}]}
			}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/actions", doc.URL())

	host, err := doc.GetElement("host")
	require.NoError(t, err)
	require.NotNil(t, host.ShadowRoot(), "shadow mode defaults to open")

	target, err := doc.GetElement("target")
	require.NoError(t, err)
	assert.Same(t, host, target.Parent())
}

func TestLoad_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "garbage", payload: `{`},
		{name: "missing viewport", payload: `{"nodes": []}`},
		{name: "duplicate ids", payload: `{
			"viewport": {"width": 100, "height": 100},
			"nodes": [
				{"id": "dup", "rect": {"width": 10, "height": 10}},
				{"id": "dup", "rect": {"width": 10, "height": 10}}
			]
		}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.payload))
			assert.Error(t, err)
		})
	}
}
