package jzon

// frame is a container under construction together with the name it will
// get in its parent.
type frame struct {
	name      string
	node      Node
	needComma bool
}

type assembler struct {
	opts     *parseOptions
	json     string
	tokens   []Token
	literals []Literal

	stack []frame
	lit   int

	name    string
	hasName bool

	root Node
	done bool
}

// Assemble builds the document tree from the output of Tokenize. It stops at
// the first fault and returns the invalid node with a *ParseError.
func Assemble(tokens []Token, literals []Literal, opts ...ParseOption) (Node, error) {
	return assemble("", tokens, literals, newParseOptions(opts))
}

func assemble(json string, tokens []Token, literals []Literal, opts *parseOptions) (Node, error) {
	a := &assembler{
		opts:     opts,
		json:     json,
		tokens:   tokens,
		literals: literals,
		stack:    make([]frame, 0, 16),
	}
	if err := a.run(); err != nil {
		return Node{}, err
	}
	return a.root, nil
}

func (a *assembler) fail(err error, offset int) *ParseError {
	return newParseError(err, a.json, offset)
}

func (a *assembler) top() *frame {
	if len(a.stack) == 0 {
		return nil
	}
	return &a.stack[len(a.stack)-1]
}

func (a *assembler) peek(i int) TokenKind {
	if i+1 < len(a.tokens) {
		return a.tokens[i+1].Kind
	}
	return TokenUnknown
}

func (a *assembler) run() error {
	for i := 0; i < len(a.tokens); i++ {
		token := a.tokens[i]
		switch token.Kind {
		case TokenUnknown:
			if a.lit >= len(a.literals) {
				return a.fail(ErrMissingData, token.Offset)
			}
			err := a.fail(ErrUnknownToken, token.Offset)
			err.Token = a.literals[a.lit].Text
			return err

		case TokenObjBegin, TokenArrayBegin:
			if err := a.place(token.Offset); err != nil {
				return err
			}
			node := NewArray()
			if token.Kind == TokenObjBegin {
				node = NewObject()
			}
			a.stack = append(a.stack, frame{name: a.name, node: node})
			a.name, a.hasName = "", false

		case TokenObjEnd, TokenArrayEnd:
			top := a.top()
			if top == nil {
				return a.fail(ErrEndWithoutBeginning, token.Offset)
			}
			if token.Kind == TokenObjEnd && !top.node.IsObject() {
				return a.fail(ErrMismatchedObjectEnd, token.Offset)
			}
			if token.Kind == TokenArrayEnd && !top.node.IsArray() {
				return a.fail(ErrMismatchedArrayEnd, token.Offset)
			}
			if a.hasName {
				return a.fail(ErrMissingData, token.Offset)
			}

			closed := *top
			a.stack = a.stack[:len(a.stack)-1]
			if len(a.stack) == 0 {
				a.root = closed.node
				a.done = true
				break
			}
			if err := a.attach(closed.name, closed.node, token.Offset); err != nil {
				return err
			}

		case TokenValue:
			if a.lit >= len(a.literals) {
				return a.fail(ErrMissingData, token.Offset)
			}
			lit := a.literals[a.lit]
			a.lit++

			if a.peek(i) == TokenSeparatorName {
				i++
				if err := a.setName(lit); err != nil {
					return err
				}
				break
			}

			if len(a.stack) == 0 {
				if a.done {
					return a.fail(ErrDataAfterRoot, token.Offset)
				}
				if !a.opts.scalarRoot {
					return a.fail(ErrScalarRoot, token.Offset)
				}
				a.root = a.leaf(lit)
				a.done = true
				break
			}
			if err := a.place(token.Offset); err != nil {
				return err
			}
			name := a.name
			a.name, a.hasName = "", false
			if err := a.attach(name, a.leaf(lit), token.Offset); err != nil {
				return err
			}

		case TokenSeparatorName:
			// a valid ':' is consumed together with the name before it
			return a.fail(ErrNameSeparatorAlone, token.Offset)

		case TokenSeparatorNode:
			if a.hasName {
				return a.fail(ErrMissingData, token.Offset)
			}
			next := a.peek(i)
			if next == TokenArrayEnd {
				return a.fail(ErrTrailingComma, token.Offset)
			}
			if next == TokenObjEnd {
				return a.fail(ErrTrailingCommaObject, token.Offset)
			}
			top := a.top()
			if top == nil || !top.needComma {
				return a.fail(ErrUnexpectedComma, token.Offset)
			}
			top.needComma = false
		}
	}

	if len(a.stack) > 0 {
		return a.fail(ErrUnterminated, len(a.json))
	}
	if !a.done {
		return a.fail(ErrEmptyJSON, 0)
	}
	return nil
}

func (a *assembler) setName(lit Literal) error {
	if lit.Type != TypeString {
		return a.fail(ErrNameNotString, lit.Offset)
	}
	top := a.top()
	if top == nil || !top.node.IsObject() {
		return a.fail(ErrNameInArray, lit.Offset)
	}
	if top.needComma {
		return a.fail(ErrMissingComma, lit.Offset)
	}
	if a.hasName {
		return a.fail(ErrMissingData, lit.Offset)
	}
	a.name, a.hasName = a.unescape(lit.Text), true
	return nil
}

// place checks that a value or container may start at offset.
func (a *assembler) place(offset int) error {
	top := a.top()
	if top == nil {
		if a.done {
			return a.fail(ErrDataAfterRoot, offset)
		}
		return nil
	}
	if top.needComma {
		return a.fail(ErrMissingComma, offset)
	}
	if top.node.IsObject() && !a.hasName {
		return a.fail(ErrMissingName, offset)
	}
	return nil
}

func (a *assembler) attach(name string, node Node, offset int) error {
	top := a.top()
	switch top.node.typ {
	case TypeObject:
		top.node.push(Child{Name: name, Node: node})
	case TypeArray:
		top.node.push(Child{Node: node})
	default:
		return a.fail(ErrNotAContainer, offset)
	}
	top.needComma = true
	return nil
}

// leaf turns a literal into a scalar node, unescaping strings.
func (a *assembler) leaf(lit Literal) Node {
	switch lit.Type {
	case TypeString:
		return Node{typ: TypeString, text: a.unescape(lit.Text)}
	case TypeNumber, TypeBool:
		return Node{typ: lit.Type, text: lit.Text}
	default:
		return Null()
	}
}

func (a *assembler) unescape(s string) string {
	if a.opts.unicode {
		return UnescapeUnicode(s)
	}
	return Unescape(s)
}
