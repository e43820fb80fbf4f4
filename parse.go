package jzon

type parseOptions struct {
	scalarRoot   bool
	noScientific bool
	noComments   bool
	unicode      bool
}

type ParseOption func(*parseOptions)

// AllowScalarRoot accepts a single scalar as the whole document.
func AllowScalarRoot() ParseOption {
	return func(o *parseOptions) { o.scalarRoot = true }
}

// NoScientific rejects numbers with an exponent part.
func NoScientific() ParseOption {
	return func(o *parseOptions) { o.noScientific = true }
}

// NoComments makes '/' an ordinary character, so comments end up as
// unknown tokens.
func NoComments() ParseOption {
	return func(o *parseOptions) { o.noComments = true }
}

// UnicodeEscapes decodes \uXXXX sequences in strings and names.
func UnicodeEscapes() ParseOption {
	return func(o *parseOptions) { o.unicode = true }
}

func newParseOptions(opts []ParseOption) *parseOptions {
	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse decodes json into a document. The root must be an object or an
// array unless AllowScalarRoot is given. On failure the invalid node and a
// *ParseError are returned.
func Parse(json string, opts ...ParseOption) (Node, error) {
	return parse(json, newParseOptions(opts))
}

func ParseBytes(json []byte, opts ...ParseOption) (Node, error) {
	return parse(string(json), newParseOptions(opts))
}

func parse(json string, o *parseOptions) (Node, error) {
	t := newTokenizer(json, o)
	t.run()
	return assemble(json, t.tokens, t.literals, o)
}

/*
Parser parses documents with a fixed set of options and keeps the message of
the last failure around:
	p := jzon.NewParser(jzon.AllowScalarRoot())
	node := p.ParseString(`"x"`)
	if !node.IsValid() {
		fmt.Println(p.LastError())
	}
A Parser isn't safe for concurrent use.
*/
type Parser struct {
	opts *parseOptions
	err  error
}

func NewParser(opts ...ParseOption) *Parser {
	return &Parser{opts: newParseOptions(opts)}
}

// ParseString returns the document or the invalid node, see Err.
func (p *Parser) ParseString(json string) Node {
	node, err := parse(json, p.opts)
	p.err = err
	return node
}

func (p *Parser) ParseBytes(json []byte) Node {
	return p.ParseString(string(json))
}

// Err returns the error of the last parse, nil if it succeeded.
func (p *Parser) Err() error {
	return p.err
}

// LastError returns the message of the last failure or an empty string.
func (p *Parser) LastError() string {
	if p.err == nil {
		return ""
	}
	if pe, ok := p.err.(*ParseError); ok {
		return pe.Message()
	}
	return p.err.Error()
}
