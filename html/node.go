// Package html adapts golang.org/x/net/html nodes to the
// plaintext.Node interface.
package html

import (
	"strings"

	"github.com/fwojciec/plaintext"
	"golang.org/x/net/html"
)

// Ensure Node implements plaintext.Node at compile time.
var _ plaintext.Node = (*Node)(nil)

// Node wraps an element node from a parsed x/net/html tree.
type Node struct {
	n *html.Node
}

// Wrap returns a Node backed by n. n should be an element node; for
// other node types TagName and ClassNames report empty values.
func Wrap(n *html.Node) *Node {
	return &Node{n: n}
}

// TagName returns the element's tag name, lowercased by the parser.
func (w *Node) TagName() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return w.n.Data
}

// ClassNames returns the class attribute split on whitespace, in
// document order.
func (w *Node) ClassNames() []string {
	value, ok := w.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// Attr returns the value of the named attribute.
func (w *Node) Attr(name string) (string, bool) {
	for _, attr := range w.n.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated text content of the subtree.
func (w *Node) Text() string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(w.n)
	return sb.String()
}
