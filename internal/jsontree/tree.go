// Package jsontree turns an arbitrary JSON document into a navigable tree
// with per-node collapse state. Parsing preserves object key order and
// number formatting; rendering is left to the caller.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind classifies a tree node.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// Node is one value in the parsed tree. Paths follow a jsonpath-like shape:
// "$" for the root, "$.types[0].type.name" for nested values.
type Node struct {
	Key      string // object key or array index label; empty at the root
	Path     string
	Depth    int
	Kind     Kind
	Value    string // rendered scalar; empty for objects and arrays
	Children []*Node
}

// IsContainer reports whether the node can hold children.
func (n *Node) IsContainer() bool {
	return n.Kind == KindObject || n.Kind == KindArray
}

// Parse decodes data into a tree. The whole input must be one JSON value;
// trailing content is an error.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := parseValue(dec, "", "$", 0)
	if err != nil {
		return nil, err
	}

	if dec.More() {
		return nil, fmt.Errorf("trailing content after json value")
	}
	return root, nil
}

func parseValue(dec *json.Decoder, key, path string, depth int) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	n := &Node{Key: key, Path: path, Depth: depth}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n.Kind = KindObject
			if err := parseMembers(dec, n); err != nil {
				return nil, err
			}
		case '[':
			n.Kind = KindArray
			if err := parseElements(dec, n); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("parse %s: unexpected %q", path, t)
		}
	case string:
		n.Kind = KindString
		n.Value = strconv.Quote(t)
	case json.Number:
		n.Kind = KindNumber
		n.Value = t.String()
	case bool:
		n.Kind = KindBool
		n.Value = strconv.FormatBool(t)
	case nil:
		n.Kind = KindNull
		n.Value = "null"
	default:
		return nil, fmt.Errorf("parse %s: unexpected token %v", path, tok)
	}

	return n, nil
}

func parseMembers(dec *json.Decoder, parent *Node) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parse %s: %w", parent.Path, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("parse %s: expected object key, got %v", parent.Path, tok)
		}

		child, err := parseValue(dec, key, parent.Path+"."+key, parent.Depth+1)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parse %s: %w", parent.Path, err)
	}
	return nil
}

func parseElements(dec *json.Decoder, parent *Node) error {
	for i := 0; dec.More(); i++ {
		label := fmt.Sprintf("[%d]", i)
		child, err := parseValue(dec, label, parent.Path+label, parent.Depth+1)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parse %s: %w", parent.Path, err)
	}
	return nil
}
