package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is an interned handle on one element node. Handles stay valid when
// the node is detached from the tree; a detached element simply stops showing
// up in Document queries. The zero value is not usable; elements are obtained
// from Document queries.
type Element struct {
	node *html.Node
	doc  *Document
}

// Node exposes the underlying parse-tree node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr reads the named attribute. The second return reports whether the
// attribute is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Classes returns the element's class tokens.
func (e *Element) Classes() []string {
	raw, ok := e.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// HasClass reports whether the element carries the given class token.
func (e *Element) HasClass(token string) bool {
	for _, c := range e.Classes() {
		if c == token {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of the element's subtree, with
// surrounding whitespace trimmed.
func (e *Element) Text() string {
	var sb strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(e.node)
	return strings.TrimSpace(sb.String())
}

// Parent returns the parent element, or nil at the tree root or when detached.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	for p != nil && p.Type != html.ElementNode {
		p = p.Parent
	}
	if p == nil {
		return nil
	}
	return e.doc.elementFor(p)
}

// DescendantsWithClass returns every element in e's subtree (excluding e
// itself) carrying the given class token, in document order.
func (e *Element) DescendantsWithClass(token string) []*Element {
	var out []*Element
	walk(e.node, func(n *html.Node) {
		if hasClassToken(n, token) {
			out = append(out, e.doc.elementFor(n))
		}
	})
	return out
}

// FirstDescendantWithClass returns the first element in e's subtree carrying
// the given class token, or nil.
func (e *Element) FirstDescendantWithClass(token string) *Element {
	found := e.DescendantsWithClass(token)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// DescendantsWithAttr returns every element in e's subtree (excluding e
// itself) carrying the named attribute, in document order.
func (e *Element) DescendantsWithAttr(name string) []*Element {
	var out []*Element
	walk(e.node, func(n *html.Node) {
		if hasAttr(n, name) {
			out = append(out, e.doc.elementFor(n))
		}
	})
	return out
}

// Detach removes the element from its parent. The handle stays valid and the
// subtree stays intact, so a detached element can be re-attached later with
// AppendChild.
func (e *Element) Detach() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// AppendChild attaches child as e's last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	child.Detach()
	e.node.AppendChild(child.node)
}

func hasClassToken(n *html.Node, token string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == token {
					return true
				}
			}
		}
	}
	return false
}
