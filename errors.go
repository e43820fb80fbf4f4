package jzon

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// parse errors
	ErrEmptyJSON           = errors.New("json is empty")
	ErrUnknownToken        = errors.New("unknown token")
	ErrEndWithoutBeginning = errors.New("found end of object or array without beginning")
	ErrMismatchedObjectEnd = errors.New("mismatched end and beginning of object")
	ErrMismatchedArrayEnd  = errors.New("mismatched end and beginning of array")
	ErrNotAContainer       = errors.New("can only add elements to objects and arrays")
	ErrMissingData         = errors.New("missing data for value")
	ErrNameNotString       = errors.New("a name has to be a string")
	ErrNameSeparatorAlone  = errors.New("name separator without a name")
	ErrMissingName         = errors.New("missing name for object member")
	ErrNameInArray         = errors.New("names are only allowed in objects")
	ErrScalarRoot          = errors.New("outermost node must be an object or array")
	ErrTrailingComma       = errors.New("extra comma in array")
	ErrTrailingCommaObject = errors.New("extra comma in object")
	ErrUnexpectedComma     = errors.New("unexpected comma")
	ErrMissingComma        = errors.New("missing comma between elements")
	ErrUnterminated        = errors.New("unterminated object or array")
	ErrDataAfterRoot       = errors.New("unexpected data after root node")

	// api errors
	ErrNotFound     = errors.New("node isn't found")
	ErrInvalidNode  = errors.New("node is invalid")
	ErrNotObject    = errors.New("node isn't an object")
	ErrNotArray     = errors.New("node isn't an array")
	ErrNotContainer = errors.New("node isn't an object or array")
	ErrNotValue     = errors.New("node isn't a value")
	ErrNotBool      = errors.New("node isn't a bool")
	ErrNotNumber    = errors.New("node isn't a number")
	ErrNotString    = errors.New("node isn't a string")
	ErrBadType      = errors.New("type can't hold a value")
	ErrOutOfRange   = errors.New("index out of range")
)

// ParseError describes the first fault found while parsing a document.
// Err is one of the parse error sentinels above. Line and Column are zero
// when the source text isn't known, e.g. for errors returned by Assemble.
type ParseError struct {
	Err    error
	Token  string
	Offset int
	Line   int
	Column int

	json string
}

func newParseError(err error, json string, offset int) *ParseError {
	e := &ParseError{Err: err, Offset: offset, json: json}
	if json != "" {
		e.Line, e.Column = position(json, offset)
	}
	return e
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message is the bare human-readable description without the source excerpt.
func (e *ParseError) Message() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Token)
	}
	return e.Err.Error()
}

func (e *ParseError) Error() string {
	if e.json == "" {
		return fmt.Sprintf("%s at offset %d", e.Message(), e.Offset)
	}
	msg := fmt.Sprintf("%s at line %d, column %d", e.Message(), e.Line, e.Column)

	a := e.Offset - 20
	b := e.Offset + 20
	if a < 0 {
		a = 0
	}
	if b > len(e.json) {
		b = len(e.json)
	}
	if a > b {
		a = b
	}

	str := e.json[a:b]
	str = strings.ReplaceAll(str, "\n", " ")
	str = strings.ReplaceAll(str, "\r", " ")
	str = strings.ReplaceAll(str, "\t", " ")

	pointer := strings.Repeat(" ", e.Offset-a+len(msg)+len(" near `")) + "^"

	return fmt.Sprintf("%s near `%s`\n%s", msg, str, pointer)
}

// position converts a byte offset into a 1-based line and column.
func position(json string, offset int) (int, int) {
	if offset > len(json) {
		offset = len(json)
	}
	line := 1 + strings.Count(json[:offset], "\n")
	col := offset + 1
	if i := strings.LastIndexByte(json[:offset], '\n'); i >= 0 {
		col = offset - i
	}
	return line, col
}
