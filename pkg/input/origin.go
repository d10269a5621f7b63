package input

// OriginKind selects the coordinate-system anchor for a pointer move.
type OriginKind string

const (
	OriginViewport OriginKind = "viewport"
	OriginPointer  OriginKind = "pointer"
	OriginElement  OriginKind = "element"
)

// Origin anchors a move action's offsets. The zero value is the viewport
// origin, matching the WebDriver default.
type Origin struct {
	Kind    OriginKind
	Element string
}

// ViewportOrigin anchors offsets at the viewport's top-left corner.
func ViewportOrigin() Origin {
	return Origin{Kind: OriginViewport}
}

// PointerOrigin anchors offsets at the pointer's current position.
func PointerOrigin() Origin {
	return Origin{Kind: OriginPointer}
}

// ElementOrigin anchors offsets at the in-view center of the referenced
// element. The center is resolved at tick-execution time, so DOM mutations
// between submission and execution are observed.
func ElementOrigin(elementID string) Origin {
	return Origin{Kind: OriginElement, Element: elementID}
}

// KindOrDefault returns the origin kind, defaulting to viewport for the
// zero value.
func (o Origin) KindOrDefault() OriginKind {
	if o.Kind == "" {
		return OriginViewport
	}
	return o.Kind
}
