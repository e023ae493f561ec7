// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document exposes a parsed XML record through a narrow, read-only
// path lookup. Parsers depend on the Document interface only, never on the
// tree representation behind it.
//
// A path is a slash-separated list of element names. The first name matches
// any descendant of the receiver; each following name matches a direct child
// of the previous match. "PubDate/Year" therefore finds a Year element whose
// parent is a PubDate anywhere below the receiver.
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Document is a read-only view of one element subtree.
type Document interface {
	// Text returns the trimmed text of the first element matching path.
	// ok is false when no element matches or the match has no text.
	Text(path string) (text string, ok bool)

	// All returns every element matching path, in document order.
	All(path string) []Document

	// First returns the first element matching path, or nil.
	First(path string) Document
}

// Node is an element in a parsed XML tree.
type Node struct {
	Name     string
	children []*Node
	text     strings.Builder
}

var _ Document = (*Node)(nil)

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			// Character data counts toward every open ancestor so an element's
			// text includes inline markup such as <i> or <sup>.
			for _, n := range stack {
				n.text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("decoding XML: no root element")
	}
	return root, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Node, error) {
	return Parse(bytes.NewReader(data))
}

// Text implements Document.
func (n *Node) Text(path string) (string, bool) {
	m := n.find(path, true)
	if len(m) == 0 {
		return "", false
	}
	s := m[0].Content()
	return s, s != ""
}

// All implements Document.
func (n *Node) All(path string) []Document {
	m := n.find(path, false)
	docs := make([]Document, len(m))
	for i, e := range m {
		docs[i] = e
	}
	return docs
}

// First implements Document.
func (n *Node) First(path string) Document {
	m := n.find(path, true)
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

// Content returns the element's character data with surrounding whitespace
// trimmed.
func (n *Node) Content() string {
	return strings.TrimSpace(n.text.String())
}

// find resolves path against the subtree below n. With firstOnly set it
// stops at the first complete match.
func (n *Node) find(path string, firstOnly bool) []*Node {
	steps := strings.Split(strings.Trim(path, "/"), "/")
	if len(steps) == 0 || steps[0] == "" {
		return nil
	}

	var out []*Node
	n.walk(func(d *Node) bool {
		if d.Name != steps[0] {
			return true
		}
		for _, m := range d.descend(steps[1:]) {
			out = append(out, m)
			if firstOnly {
				return false
			}
		}
		return true
	})
	return out
}

// descend follows child steps from n and returns every element reached.
func (n *Node) descend(steps []string) []*Node {
	if len(steps) == 0 {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.children {
		if c.Name == steps[0] {
			out = append(out, c.descend(steps[1:])...)
		}
	}
	return out
}

// walk visits every descendant of n in document order until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	for _, c := range n.children {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}
