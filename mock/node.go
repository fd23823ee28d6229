package mock

import "github.com/fwojciec/plaintext"

var _ plaintext.Node = (*Node)(nil)

// Node is a mock implementation of plaintext.Node.
type Node struct {
	TagNameFn    func() string
	ClassNamesFn func() []string
	AttrFn       func(name string) (string, bool)
	TextFn       func() string
}

func (n *Node) TagName() string {
	return n.TagNameFn()
}

func (n *Node) ClassNames() []string {
	return n.ClassNamesFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}
