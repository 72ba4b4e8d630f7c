// Package dom provides the document-tree abstraction the reconciler operates on.
// It wraps the node tree produced by golang.org/x/net/html behind a small query
// and mutation surface. Every node is represented by a single interned *Element
// handle, so pointer equality on *Element is node identity: two queries that
// reach the same underlying node always return the same handle, and two
// structurally identical but distinct nodes always return distinct handles.
//
// A Document is not safe for concurrent use. The reconciler assumes a
// single-threaded host, and so does this package.
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed markup tree.
type Document struct {
	root  *html.Node
	elems map[*html.Node]*Element
}

// Parse reads and parses a full document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:  root,
		elems: make(map[*html.Node]*Element),
	}, nil
}

// ParseString parses a full document from a string.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// elementFor returns the interned handle for a node, creating it on first use.
func (d *Document) elementFor(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elems[n]; ok {
		return el
	}
	el := &Element{node: n, doc: d}
	d.elems[n] = el
	return el
}

// Root returns the document element (the <html> node).
func (d *Document) Root() *Element {
	for n := d.root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return d.elementFor(n)
		}
	}
	return nil
}

// Body returns the <body> element, or nil if the document has none.
func (d *Document) Body() *Element {
	return d.firstElement(func(n *html.Node) bool {
		return n.Data == "body"
	})
}

// ElementsWithAttr returns every element carrying the named attribute,
// in document order (depth-first, pre-order). The order is stable across
// calls as long as the tree is unchanged.
func (d *Document) ElementsWithAttr(name string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if hasAttr(n, name) {
			out = append(out, d.elementFor(n))
		}
	})
	return out
}

// firstElement returns the first element in document order matching the predicate.
func (d *Document) firstElement(match func(*html.Node) bool) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found == nil && match(n) {
			found = n
		}
	})
	return d.elementFor(found)
}

// AppendFragment parses fragment in the context of parent and appends the
// resulting nodes as parent's last children. It returns handles for the
// top-level element nodes of the fragment, in order. Text nodes are appended
// to the tree but not returned.
func (d *Document) AppendFragment(parent *Element, fragment string) ([]*Element, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent.node)
	if err != nil {
		return nil, err
	}
	var out []*Element
	for _, n := range nodes {
		parent.node.AppendChild(n)
		if n.Type == html.ElementNode {
			out = append(out, d.elementFor(n))
		}
	}
	return out, nil
}

// Render writes the document back out as markup.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML returns the document rendered as markup.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// walk visits every element node under root in depth-first pre-order.
func walk(root *html.Node, visit func(*html.Node)) {
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			visit(n)
		}
		walk(n, visit)
	}
}

// hasAttr reports whether n carries the named attribute.
func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
