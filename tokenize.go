package jzon

import (
	"strings"
)

type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenObjBegin
	TokenObjEnd
	TokenArrayBegin
	TokenArrayEnd
	TokenSeparatorNode
	TokenSeparatorName
	TokenValue
)

func (k TokenKind) String() string {
	switch k {
	case TokenUnknown:
		return "unknown"
	case TokenObjBegin:
		return "{"
	case TokenObjEnd:
		return "}"
	case TokenArrayBegin:
		return "["
	case TokenArrayEnd:
		return "]"
	case TokenSeparatorNode:
		return ","
	case TokenSeparatorName:
		return ":"
	case TokenValue:
		return "value"
	default:
		return "invalid token"
	}
}

// Token is a lexical unit. Offset is the byte position in the source.
type Token struct {
	Kind   TokenKind
	Offset int
}

/*
Literal carries the payload of a TokenValue or TokenUnknown token. Literals
are queued in the same order as the tokens that reference them.
	string  - Text is the raw content between the quotes, still escaped
	number  - Text is the number as written
	bool    - Text is "true" or "false"
	null    - Text is empty
	invalid - Text is the unrecognized word (TokenUnknown)
*/
type Literal struct {
	Type   Type
	Text   string
	Offset int
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

type tokenizer struct {
	opts     *parseOptions
	json     string
	tokens   []Token
	literals []Literal

	// start of the pending bare word, -1 if none
	word int
}

// Tokenize splits json into tokens and their literal payloads in a single
// left to right pass. It never fails: words that are neither keywords nor
// numbers become TokenUnknown and are reported by Assemble.
func Tokenize(json string, opts ...ParseOption) ([]Token, []Literal) {
	t := newTokenizer(json, newParseOptions(opts))
	t.run()
	return t.tokens, t.literals
}

func newTokenizer(json string, o *parseOptions) *tokenizer {
	return &tokenizer{
		opts:     o,
		json:     json,
		tokens:   make([]Token, 0, len(json)/4+1),
		literals: make([]Literal, 0, len(json)/8+1),
		word:     -1,
	}
}

func (t *tokenizer) run() {
	json := t.json
	l := len(json)
	o := 0
	for o < l {
		c := json[o]
		switch {
		case isWhitespace(c):
			t.flush(o)
			o++
		case c == '{':
			o = t.structural(TokenObjBegin, o)
		case c == '}':
			o = t.structural(TokenObjEnd, o)
		case c == '[':
			o = t.structural(TokenArrayBegin, o)
		case c == ']':
			o = t.structural(TokenArrayEnd, o)
		case c == ',':
			o = t.structural(TokenSeparatorNode, o)
		case c == ':':
			o = t.structural(TokenSeparatorName, o)
		case c == '"':
			t.flush(o)
			o = t.readString(o)
		case c == '/' && !t.opts.noComments && o+1 < l && json[o+1] == '*':
			t.flush(o)
			x := strings.Index(json[o+2:], "*/")
			if x < 0 {
				o = l
			} else {
				o += 2 + x + 2
			}
		case c == '/' && !t.opts.noComments && o+1 < l && json[o+1] == '/':
			t.flush(o)
			x := strings.IndexByte(json[o:], '\n')
			if x < 0 {
				o = l
			} else {
				o += x
			}
		default:
			if t.word < 0 {
				t.word = o
			}
			o++
		}
	}
	t.flush(l)
}

func (t *tokenizer) structural(kind TokenKind, o int) int {
	t.flush(o)
	t.tokens = append(t.tokens, Token{Kind: kind, Offset: o})
	return o + 1
}

// readString queues the content of the string starting at the quote at o
// and returns the offset after the closing quote. An unterminated string
// runs to the end of the input.
func (t *tokenizer) readString(o int) int {
	json := t.json
	start := o + 1
	escaped := false
	end := len(json)
	for i := start; i < len(json); i++ {
		c := json[i]
		if c == '"' && !escaped {
			end = i
			break
		}
		escaped = c == '\\' && !escaped
	}

	t.literals = append(t.literals, Literal{Type: TypeString, Text: json[start:end], Offset: o})
	t.tokens = append(t.tokens, Token{Kind: TokenValue, Offset: o})

	if end == len(json) {
		return end
	}
	return end + 1
}

// flush classifies the pending bare word ending at end, if there is one.
func (t *tokenizer) flush(end int) {
	if t.word < 0 {
		return
	}
	o := t.word
	word := t.json[o:end]
	t.word = -1

	if kw, text, ok := keyword(word); ok {
		t.literals = append(t.literals, Literal{Type: kw, Text: text, Offset: o})
		t.tokens = append(t.tokens, Token{Kind: TokenValue, Offset: o})
		return
	}
	if isNumber(word, !t.opts.noScientific) {
		t.literals = append(t.literals, Literal{Type: TypeNumber, Text: word, Offset: o})
		t.tokens = append(t.tokens, Token{Kind: TokenValue, Offset: o})
		return
	}

	// keep the word so it can be shown to the user
	t.literals = append(t.literals, Literal{Type: TypeInvalid, Text: word, Offset: o})
	t.tokens = append(t.tokens, Token{Kind: TokenUnknown, Offset: o})
}

// keyword recognizes null, true and false in any case and returns the
// canonical text for them.
func keyword(word string) (Type, string, bool) {
	switch {
	case strings.EqualFold(word, "null"):
		return TypeNull, "", true
	case strings.EqualFold(word, "true"):
		return TypeBool, "true", true
	case strings.EqualFold(word, "false"):
		return TypeBool, "false", true
	default:
		return TypeInvalid, "", false
	}
}

/*
isNumber checks s against the number grammar:
	-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?
The exponent part is only accepted when scientific is set.
*/
func isNumber(s string, scientific bool) bool {
	l := len(s)
	o := 0
	if o < l && s[o] == '-' {
		o++
	}

	t := o
	for o < l && s[o] >= '0' && s[o] <= '9' {
		o++
	}
	if o == t {
		return false
	}

	if o < l && s[o] == '.' {
		o++
		t = o
		for o < l && s[o] >= '0' && s[o] <= '9' {
			o++
		}
		if o == t {
			return false
		}
	}

	if o < l && (s[o] == 'e' || s[o] == 'E') {
		if !scientific {
			return false
		}
		o++
		if o < l && (s[o] == '+' || s[o] == '-') {
			o++
		}
		t = o
		for o < l && s[o] >= '0' && s[o] <= '9' {
			o++
		}
		if o == t {
			return false
		}
	}

	return o == l
}
