package jzon

import (
	"iter"
	"math"
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

type Type int

const (
	TypeInvalid Type = iota
	TypeNull
	TypeBool
	TypeNumber
	TypeString
	TypeObject
	TypeArray
)

func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "invalid"
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

/*
Node is any JSON value: null, bool, number, string, object or array. The zero
Node is the invalid node, it's what lookups return when nothing is found.

Nodes are passed by value. Copies of a container share the children until one
of them is mutated, at which point the mutated copy gets its own children, so
	a := jzon.NewObject()
	b := a
	b.Add("x", jzon.NewInt(1))
leaves a empty. Numbers keep the text they were parsed from.

A Node must not be mutated from several goroutines at once.
*/
type Node struct {
	typ  Type
	text string

	// containers only: the shared child store and how much of it is ours
	st *store
	n  int
}

// Child is a single container entry. Name is empty for array elements.
type Child struct {
	Name string
	Node Node
}

// store is append only: an element, once written, is never changed.
// Handles that see fewer elements than the store holds never observe
// the extra ones.
type store struct {
	children []Child
}

func Invalid() Node {
	return Node{}
}

func Null() Node {
	return Node{typ: TypeNull}
}

func NewObject() Node {
	return Node{typ: TypeObject, st: &store{}}
}

func NewArray() Node {
	return Node{typ: TypeArray, st: &store{}}
}

// NewString makes a string node holding s as is.
func NewString(s string) Node {
	return Node{typ: TypeString, text: s}
}

func NewBool(b bool) Node {
	if b {
		return Node{typ: TypeBool, text: "true"}
	}
	return Node{typ: TypeBool, text: "false"}
}

// NewNumber makes a number node from its decimal text. If text isn't a
// valid number the invalid node is returned.
func NewNumber(text string) Node {
	if !isNumber(text, true) {
		return Node{}
	}
	return Node{typ: TypeNumber, text: text}
}

func NewInt(v int64) Node {
	return Node{typ: TypeNumber, text: strconv.FormatInt(v, 10)}
}

// NewFloat returns the invalid node for NaN and infinities.
func NewFloat(v float64) Node {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Node{}
	}
	return Node{typ: TypeNumber, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// NewValue builds a scalar node from a type and its text the way the parser
// does: string text is unescaped, anything else is kept verbatim.
func NewValue(t Type, text string) Node {
	n := Node{}
	if n.SetValue(t, text) != nil {
		return Node{}
	}
	return n
}

func (n Node) Type() Type {
	return n.typ
}

func (n Node) IsValid() bool {
	return n.typ != TypeInvalid
}

func (n Node) IsNull() bool {
	return n.typ == TypeNull
}

func (n Node) IsBool() bool {
	return n.typ == TypeBool
}

func (n Node) IsNumber() bool {
	return n.typ == TypeNumber
}

func (n Node) IsString() bool {
	return n.typ == TypeString
}

func (n Node) IsObject() bool {
	return n.typ == TypeObject
}

func (n Node) IsArray() bool {
	return n.typ == TypeArray
}

// IsValue reports whether n is a scalar.
func (n Node) IsValue() bool {
	return n.typ == TypeNull || n.typ == TypeBool || n.typ == TypeNumber || n.typ == TypeString
}

func (n Node) IsContainer() bool {
	return n.typ == TypeObject || n.typ == TypeArray
}

// ******************** //
//      ACCESSORS       //
// ******************** //

// AsString returns the text of a scalar: the string itself, the number
// digits, "true"/"false" or "null".
func (n Node) AsString() (string, error) {
	switch n.typ {
	case TypeNull:
		return "null", nil
	case TypeBool, TypeNumber, TypeString:
		return n.text, nil
	default:
		return "", ErrNotValue
	}
}

// AsInt converts a number node, returning def for anything else.
// Fractions are truncated.
func (n Node) AsInt(def int) int {
	return int(n.AsInt64(int64(def)))
}

func (n Node) AsInt64(def int64) int64 {
	if n.typ != TypeNumber {
		return def
	}
	if v, err := fastfloat.ParseInt64(n.text); err == nil {
		return v
	}
	f, err := fastfloat.Parse(n.text)
	if err != nil {
		return def
	}
	return int64(f)
}

func (n Node) AsFloat(def float64) float64 {
	if n.typ != TypeNumber {
		return def
	}
	f, err := fastfloat.Parse(n.text)
	if err != nil {
		return def
	}
	return f
}

func (n Node) AsBool(def bool) bool {
	if n.typ != TypeBool {
		return def
	}
	return n.text == "true"
}

// Count returns the number of children, zero for scalars.
func (n Node) Count() int {
	if !n.IsContainer() {
		return 0
	}
	return n.n
}

func (n Node) view() []Child {
	if n.st == nil {
		return nil
	}
	return n.st.children[:n.n:n.n]
}

// Get returns the first child named name, or the invalid node.
func (n Node) Get(name string) Node {
	if i := n.find(name); i >= 0 {
		return n.st.children[i].Node
	}
	return Node{}
}

func (n Node) Has(name string) bool {
	return n.find(name) >= 0
}

// Index returns the i-th child of an object or array, or the invalid node.
func (n Node) Index(i int) Node {
	if !n.IsContainer() || i < 0 || i >= n.n {
		return Node{}
	}
	return n.st.children[i].Node
}

func (n Node) find(name string) int {
	if n.typ != TypeObject {
		return -1
	}
	for i, c := range n.view() {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// All iterates over the children in order. Names are empty for arrays.
func (n Node) All() iter.Seq2[string, Node] {
	children := n.view()
	return func(yield func(string, Node) bool) {
		for _, c := range children {
			if !yield(c.Name, c.Node) {
				return
			}
		}
	}
}

// Children returns a copy of the children that the caller may keep.
func (n Node) Children() []Child {
	return append([]Child(nil), n.view()...)
}

/*
Equal compares two nodes. Scalars are equal when type and text match.
Containers are equal only if they are the same container, i.e. one is an
unmodified copy of the other; contents are not compared.
*/
func (n Node) Equal(other Node) bool {
	if n.typ != other.typ {
		return false
	}
	if n.IsContainer() {
		return n.st == other.st && n.n == other.n
	}
	return n.text == other.text
}

// String encodes n compactly.
func (n Node) String() string {
	return Write(n, CompactFormat)
}

// ******************** //
//      MUTATIONS       //
// ******************** //

// detach gives n its own copy of the visible children.
func (n *Node) detach(extra int) {
	children := make([]Child, n.n, n.n+extra)
	copy(children, n.view())
	n.st = &store{children: children}
}

func (n *Node) push(c Child) {
	if n.st == nil || n.n != len(n.st.children) {
		n.detach(1)
	}
	n.st.children = append(n.st.children, c)
	n.n++
}

// Add appends a named child to an object. Names aren't checked for
// uniqueness.
func (n *Node) Add(name string, child Node) error {
	if n.typ != TypeObject {
		return ErrNotObject
	}
	if !child.IsValid() {
		return ErrInvalidNode
	}
	n.push(Child{Name: name, Node: child})
	return nil
}

// Append adds an element to an array.
func (n *Node) Append(child Node) error {
	if n.typ != TypeArray {
		return ErrNotArray
	}
	if !child.IsValid() {
		return ErrInvalidNode
	}
	n.push(Child{Node: child})
	return nil
}

// Merge appends all children of other to n. Both must be objects or both
// must be arrays.
func (n *Node) Merge(other Node) error {
	if !n.IsContainer() {
		return ErrNotContainer
	}
	if other.typ != n.typ {
		if n.typ == TypeObject {
			return ErrNotObject
		}
		return ErrNotArray
	}
	more := other.view()
	if len(more) == 0 {
		return nil
	}
	if n.st == nil || n.n != len(n.st.children) {
		n.detach(len(more))
	}
	n.st.children = append(n.st.children, more...)
	n.n += len(more)
	return nil
}

// Set replaces the first child named name, adding it if there is none.
func (n *Node) Set(name string, child Node) error {
	if n.typ != TypeObject {
		return ErrNotObject
	}
	if !child.IsValid() {
		return ErrInvalidNode
	}
	i := n.find(name)
	if i < 0 {
		n.push(Child{Name: name, Node: child})
		return nil
	}
	n.detach(0)
	n.st.children[i].Node = child
	return nil
}

// SetAt replaces the i-th child of an object or array keeping its name.
func (n *Node) SetAt(i int, child Node) error {
	if !n.IsContainer() {
		return ErrNotContainer
	}
	if !child.IsValid() {
		return ErrInvalidNode
	}
	if i < 0 || i >= n.n {
		return ErrOutOfRange
	}
	n.detach(0)
	n.st.children[i].Node = child
	return nil
}

// Remove deletes the first child named name.
func (n *Node) Remove(name string) error {
	if n.typ != TypeObject {
		return ErrNotObject
	}
	i := n.find(name)
	if i < 0 {
		return ErrNotFound
	}
	n.cut(i)
	return nil
}

// RemoveAt deletes the i-th child of an object or array. The remaining
// children keep their order.
func (n *Node) RemoveAt(i int) error {
	if !n.IsContainer() {
		return ErrNotContainer
	}
	if i < 0 || i >= n.n {
		return ErrOutOfRange
	}
	n.cut(i)
	return nil
}

func (n *Node) cut(i int) {
	old := n.view()
	children := make([]Child, 0, len(old)-1)
	children = append(children, old[:i]...)
	children = append(children, old[i+1:]...)
	n.st = &store{children: children}
	n.n = len(children)
}

// Clear removes all children of an object or array.
func (n *Node) Clear() error {
	if !n.IsContainer() {
		return ErrNotContainer
	}
	n.st = &store{}
	n.n = 0
	return nil
}

func (n *Node) setScalar(t Type, text string) error {
	if n.IsContainer() {
		return ErrNotValue
	}
	n.typ = t
	n.text = text
	return nil
}

// SetNull turns a scalar (or the invalid node) into null.
func (n *Node) SetNull() error {
	return n.setScalar(TypeNull, "")
}

func (n *Node) SetBool(b bool) error {
	return n.setScalar(TypeBool, NewBool(b).text)
}

// SetString stores s as is.
func (n *Node) SetString(s string) error {
	return n.setScalar(TypeString, s)
}

func (n *Node) SetNumber(text string) error {
	if n.IsContainer() {
		return ErrNotValue
	}
	if !isNumber(text, true) {
		return ErrNotNumber
	}
	return n.setScalar(TypeNumber, text)
}

func (n *Node) SetInt(v int64) error {
	return n.setScalar(TypeNumber, strconv.FormatInt(v, 10))
}

func (n *Node) SetFloat(v float64) error {
	if n.IsContainer() {
		return ErrNotValue
	}
	f := NewFloat(v)
	if !f.IsValid() {
		return ErrNotNumber
	}
	return n.setScalar(TypeNumber, f.text)
}

/*
SetValue sets a scalar from a type and text. String text is unescaped,
bool text must be "true" or "false" (any case), null ignores text.
Numbers are stored verbatim without validation, like the parser does after
the tokenizer has already checked them.
*/
func (n *Node) SetValue(t Type, text string) error {
	switch t {
	case TypeNull:
		return n.setScalar(TypeNull, "")
	case TypeString:
		return n.setScalar(TypeString, Unescape(text))
	case TypeNumber:
		return n.setScalar(TypeNumber, text)
	case TypeBool:
		kw, canonical, ok := keyword(text)
		if !ok || kw != TypeBool {
			return ErrNotBool
		}
		return n.setScalar(TypeBool, canonical)
	default:
		return ErrBadType
	}
}
