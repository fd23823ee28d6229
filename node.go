package plaintext

// Node is a read-only view of an element in the source document tree.
// The tree representation itself is external to this package;
// implementations adapt concrete DOM libraries (see html/ and
// goquery/).
type Node interface {
	// TagName returns the element's tag name, e.g. "math" or "div".
	TagName() string

	// ClassNames returns the element's class names in document order.
	// Returns nil when the element has no class attribute.
	ClassNames() []string

	// Attr returns the value of the named attribute and whether it is
	// present on the element.
	Attr(name string) (string, bool)

	// Text returns the concatenated text content of the element's
	// subtree.
	Text() string
}

// ReplacementFunc computes a replacement token for a node at traversal
// time. A single configuration may be shared by many concurrent
// extraction runs, so implementations must be stateless with respect
// to shared mutable state, or internally synchronized.
type ReplacementFunc func(n Node) string
