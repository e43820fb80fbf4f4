package jzon

import (
	"io"
)

// Format controls the whitespace the writer emits. Without Newline the
// indentation disappears and line breaks become the Spacing separator.
type Format struct {
	Newline    bool
	Spacing    bool
	UseTabs    bool
	IndentSize uint
}

var (
	StandardFormat = Format{Newline: true, Spacing: true, UseTabs: true, IndentSize: 1}
	SpacedFormat   = Format{Newline: true, Spacing: true, UseTabs: false, IndentSize: 2}
	CompactFormat  = Format{}
)

type WriteOption func(*Writer)

// WithColors paints the output for a terminal. The result isn't JSON anymore
// as far as other parsers are concerned.
func WithColors(c *Colors) WriteOption {
	return func(w *Writer) { w.colors = c }
}

// Writer serializes nodes with a fixed format. It holds no per call state
// and can be shared.
type Writer struct {
	format  Format
	colors  *Colors
	indent  byte
	spacing string
	newline string
}

func NewWriter(format Format, opts ...WriteOption) *Writer {
	w := &Writer{format: format, indent: ' '}
	if format.UseTabs {
		w.indent = '\t'
	}
	if format.Spacing {
		w.spacing = " "
	}
	w.newline = w.spacing
	if format.Newline {
		w.newline = "\n"
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write is a shortcut for NewWriter(format).WriteString(n).
func Write(n Node, format Format) string {
	return NewWriter(format).WriteString(n)
}

// AppendFormat appends the encoding of n to out.
func AppendFormat(out []byte, n Node, format Format) []byte {
	return NewWriter(format).Append(out, n)
}

func (w *Writer) WriteString(n Node) string {
	return string(w.Append(make([]byte, 0, 64), n))
}

// Encode writes n to dst.
func (w *Writer) Encode(dst io.Writer, n Node) error {
	_, err := dst.Write(w.Append(make([]byte, 0, 512), n))
	return err
}

// Append appends the encoding of n to out, the invalid node encodes to
// nothing.
func (w *Writer) Append(out []byte, n Node) []byte {
	return w.node(out, n, 0)
}

func (w *Writer) node(out []byte, n Node, level uint) []byte {
	switch n.typ {
	case TypeObject:
		return w.container(out, n, level, '{', '}')
	case TypeArray:
		return w.container(out, n, level, '[', ']')
	case TypeString:
		return w.str(out, n.text, false)
	case TypeNull:
		return w.paint(out, "null", TypeNull)
	case TypeNumber, TypeBool:
		return w.paint(out, n.text, n.typ)
	default:
		return out
	}
}

func (w *Writer) container(out []byte, n Node, level uint, open, end byte) []byte {
	children := n.view()
	if len(children) == 0 {
		out = w.punct(out, string(open))
		return w.punct(out, string(end))
	}

	out = w.punct(out, string(open))
	out = append(out, w.newline...)
	for i, c := range children {
		if i > 0 {
			out = w.punct(out, ",")
			out = append(out, w.newline...)
		}
		out = w.indentation(out, level+1)
		if n.typ == TypeObject {
			out = w.str(out, c.Name, true)
			out = w.punct(out, ":")
			out = append(out, w.spacing...)
		}
		out = w.node(out, c.Node, level+1)
	}
	out = append(out, w.newline...)
	out = w.indentation(out, level)
	return w.punct(out, string(end))
}

func (w *Writer) indentation(out []byte, level uint) []byte {
	if !w.format.Newline {
		return out
	}
	for i := uint(0); i < w.format.IndentSize*level; i++ {
		out = append(out, w.indent)
	}
	return out
}

// str writes a quoted and escaped string, field selects the name color.
func (w *Writer) str(out []byte, s string, field bool) []byte {
	if w.colors == nil {
		out = append(out, '"')
		out = escapeString(out, s)
		return append(out, '"')
	}
	quoted := string(escapeString([]byte{'"'}, s)) + `"`
	if field {
		return append(out, w.colors.Field(quoted)...)
	}
	return append(out, w.colors.String(quoted)...)
}

func (w *Writer) punct(out []byte, s string) []byte {
	if w.colors == nil {
		return append(out, s...)
	}
	return append(out, w.colors.Punct(s)...)
}

func (w *Writer) paint(out []byte, s string, t Type) []byte {
	if w.colors == nil {
		return append(out, s...)
	}
	return append(out, w.colors.paint(t, s)...)
}
