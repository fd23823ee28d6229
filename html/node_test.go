package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/plaintext"
	pthtml "github.com/fwojciec/plaintext/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Ensure Node implements plaintext.Node at compile time.
var _ plaintext.Node = (*pthtml.Node)(nil)

const latexmlFragment = `<!DOCTYPE html>
<html>
<body>
<div class="ltx_para">
	<p class="ltx_p">Consider the value <math alttext="\frac{1}{2}" class="ltx_Math">½</math> below.</p>
</div>
<div class="ltx_equation ltx_eqn_table"><math>E=mc^2</math></div>
<span class="ltx_ref">Theorem 1</span>
<div class="ltx_bibliography"><p>References</p></div>
</body>
</html>`

func TestNode(t *testing.T) {
	t.Parallel()

	t.Run("reports the element's tag name", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElement(t, latexmlFragment, "math"))

		assert.Equal(t, "math", node.TagName())
	})

	t.Run("returns class names in document order", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElementByClass(t, latexmlFragment, "ltx_equation"))

		assert.Equal(t, []string{"ltx_equation", "ltx_eqn_table"}, node.ClassNames())
	})

	t.Run("returns nil class names for an element without a class attribute", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElement(t, "<html><body><p>text</p></body></html>", "p"))

		assert.Nil(t, node.ClassNames())
	})

	t.Run("looks up attributes by name", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElement(t, latexmlFragment, "math"))

		alttext, ok := node.Attr("alttext")
		assert.True(t, ok)
		assert.Equal(t, `\frac{1}{2}`, alttext)

		_, ok = node.Attr("missing")
		assert.False(t, ok)
	})

	t.Run("returns the subtree's text content", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElementByClass(t, latexmlFragment, "ltx_p"))

		assert.Equal(t, "Consider the value ½ below.", node.Text())
	})
}

func TestNode_Resolution(t *testing.T) {
	t.Parallel()

	cfg := plaintext.ScientificConfig()

	t.Run("math element normalizes by tag name", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElement(t, latexmlFragment, "math"))

		assert.Equal(t, plaintext.Normalize("mathformula"), cfg.Policy.ResolveNode(node))
	})

	t.Run("equation div normalizes by class", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElementByClass(t, latexmlFragment, "ltx_equation"))

		assert.Equal(t, plaintext.Normalize("\nmathformula\n"), cfg.Policy.ResolveNode(node))
	})

	t.Run("bibliography div skips by class", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElementByClass(t, latexmlFragment, "ltx_bibliography"))

		assert.Equal(t, plaintext.Skip(), cfg.Policy.ResolveNode(node))
	})

	t.Run("paragraph without rules enters", func(t *testing.T) {
		t.Parallel()

		node := pthtml.Wrap(findElementByClass(t, latexmlFragment, "ltx_para"))

		assert.Equal(t, plaintext.Enter(), cfg.Policy.ResolveNode(node))
	})

	t.Run("replacement callback reads the live node", func(t *testing.T) {
		t.Parallel()

		action := plaintext.NormalizeFunc(func(n plaintext.Node) string {
			if alttext, ok := n.Attr("alttext"); ok {
				return alttext
			}
			return "mathformula"
		})
		node := pthtml.Wrap(findElement(t, latexmlFragment, "math"))

		assert.Equal(t, `\frac{1}{2}`, action.Replacement(node))
	})
}

// findElement parses doc and returns the first element with the given
// tag name.
func findElement(t *testing.T, doc, tag string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	node := find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
	require.NotNil(t, node, "no <%s> element in document", tag)
	return node
}

// findElementByClass parses doc and returns the first element carrying
// the given class name.
func findElementByClass(t *testing.T, doc, class string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	node := find(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key == "class" {
				for _, c := range strings.Fields(attr.Val) {
					if c == class {
						return true
					}
				}
			}
		}
		return false
	})
	require.NotNil(t, node, "no element with class %q in document", class)
	return node
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}
