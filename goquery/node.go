// Package goquery adapts goquery selections to the plaintext.Node
// interface.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/plaintext"
)

// Ensure Node implements plaintext.Node at compile time.
var _ plaintext.Node = (*Node)(nil)

// Node wraps a goquery selection. Accessors operate on the
// selection's first element.
type Node struct {
	sel *goquery.Selection
}

// Wrap returns a Node backed by sel.
func Wrap(sel *goquery.Selection) *Node {
	return &Node{sel: sel}
}

// TagName returns the element's tag name.
func (w *Node) TagName() string {
	return goquery.NodeName(w.sel)
}

// ClassNames returns the class attribute split on whitespace, in
// document order.
func (w *Node) ClassNames() []string {
	value, ok := w.sel.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// Attr returns the value of the named attribute.
func (w *Node) Attr(name string) (string, bool) {
	return w.sel.Attr(name)
}

// Text returns the combined text content of the selection's subtree.
func (w *Node) Text() string {
	return w.sel.Text()
}
