package jzon

import "github.com/valyala/fastjson/fastfloat"

/*
StrictNode implements API with error handling.
Wrap any Node with Strict(), lookups and conversions on the wrong kind of
node return an error instead of a default.
*/
type StrictNode struct {
	Node
}

func (n Node) Strict() StrictNode {
	return StrictNode{n}
}

func (n StrictNode) Get(name string) (Node, error) {
	if n.typ != TypeObject {
		return Node{}, ErrNotObject
	}
	node := n.Node.Get(name)
	if !node.IsValid() {
		return Node{}, ErrNotFound
	}
	return node, nil
}

func (n StrictNode) Index(i int) (Node, error) {
	if !n.IsContainer() {
		return Node{}, ErrNotContainer
	}
	if i < 0 || i >= n.n {
		return Node{}, ErrOutOfRange
	}
	return n.Node.Index(i), nil
}

// AsString requires a string node.
func (n StrictNode) AsString() (string, error) {
	if n.typ != TypeString {
		return "", ErrNotString
	}
	return n.text, nil
}

func (n StrictNode) AsBool() (bool, error) {
	if n.typ != TypeBool {
		return false, ErrNotBool
	}
	return n.text == "true", nil
}

// AsInt fails for numbers that aren't integers or don't fit.
func (n StrictNode) AsInt() (int, error) {
	if n.typ != TypeNumber {
		return 0, ErrNotNumber
	}
	v, err := fastfloat.ParseInt64(n.text)
	if err != nil || int64(int(v)) != v {
		return 0, ErrNotNumber
	}
	return int(v), nil
}

func (n StrictNode) AsFloat() (float64, error) {
	if n.typ != TypeNumber {
		return 0, ErrNotNumber
	}
	f, err := fastfloat.Parse(n.text)
	if err != nil {
		return 0, ErrNotNumber
	}
	return f, nil
}
