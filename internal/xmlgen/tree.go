package xmlgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// node is one element of the document tree under construction. Children keep
// insertion order; shared path prefixes merge into a single node so that all
// Buyr fields land inside one <Buyr> block.
type node struct {
	name     string
	attrs    []xml.Attr
	text     string
	hasText  bool
	children []*node
}

func newNode(name string) *node {
	return &node{name: name}
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := newNode(name)
	n.children = append(n.children, c)
	return c
}

func (n *node) setAttr(name, value string) {
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (n *node) setText(value string) {
	n.text = value
	n.hasText = true
}

// insert places a value at the given path below n, merging with existing
// elements along the way. A final "@Name" segment sets an attribute on the
// element addressed by the preceding segments.
func (n *node) insert(path []string, value string) error {
	cur := n
	for i, seg := range path {
		if strings.HasPrefix(seg, "@") {
			if i != len(path)-1 {
				return fmt.Errorf("attribute segment %q is not last in path", seg)
			}
			cur.setAttr(seg[1:], value)
			return nil
		}
		cur = cur.child(seg)
	}
	cur.setText(value)
	return nil
}

// render serializes the tree with an XML declaration and 2-space indent.
func render(root *node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := encodeNode(enc, root); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeNode(enc *xml.Encoder, n *node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.name}, Attr: n.attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.hasText {
		if err := enc.EncodeToken(xml.CharData(n.text)); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := encodeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
