package jzon

import (
	"github.com/fatih/color"
)

// Colors holds a paint function per kind of output token.
type Colors struct {
	Field  func(a ...any) string
	String func(a ...any) string
	Number func(a ...any) string
	Bool   func(a ...any) string
	Null   func(a ...any) string
	Punct  func(a ...any) string
}

// NewColors returns the default palette. The colors are always enabled, it's
// up to the caller to decide whether the destination is a terminal.
func NewColors() *Colors {
	paint := func(c *color.Color) func(a ...any) string {
		c.EnableColor()
		return c.SprintFunc()
	}
	return &Colors{
		Field:  paint(color.RGB(128, 168, 196)),
		String: paint(color.RGB(8, 196, 16)),
		Number: paint(color.RGB(128, 216, 236)),
		Bool:   paint(color.New(color.FgCyan)),
		Null:   paint(color.RGB(168, 0, 196)),
		Punct:  paint(color.RGB(196, 128, 128)),
	}
}

func (c *Colors) paint(t Type, s string) string {
	switch t {
	case TypeString:
		return c.String(s)
	case TypeNumber:
		return c.Number(s)
	case TypeBool:
		return c.Bool(s)
	case TypeNull:
		return c.Null(s)
	default:
		return s
	}
}
