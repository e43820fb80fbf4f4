package jzon

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func TestEncode(t *testing.T) {
	json := `{"key_a":{"key_a_a":["v1","vv1"],"key_a_b":[],"key_a_c":"v3"},"key_b":{"key_b_a":["v3","v31"],"key_b_b":{}}}`
	root := mustParse(t, json)

	assert.Equal(t, json, Write(root, CompactFormat), "wrong encoding")
	assert.Equal(t, json, string(AppendFormat(nil, root, CompactFormat)), "wrong appending encoding")
	assert.Equal(t, "prefix:"+json, string(AppendFormat([]byte("prefix:"), root, CompactFormat)), "prefix should be kept")
}

func TestEncodeFormats(t *testing.T) {
	root := mustParse(t, `{"a":1,"b":[true,{}],"c":[]}`)

	tests := []struct {
		format Format
		result string
	}{
		{
			format: StandardFormat,
			result: "{\n\t\"a\": 1,\n\t\"b\": [\n\t\ttrue,\n\t\t{}\n\t],\n\t\"c\": []\n}",
		},
		{
			format: SpacedFormat,
			result: "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    {}\n  ],\n  \"c\": []\n}",
		},
		{
			format: CompactFormat,
			result: `{"a":1,"b":[true,{}],"c":[]}`,
		},
		{
			format: Format{Spacing: true},
			result: `{ "a": 1, "b": [ true, {} ], "c": [] }`,
		},
		{
			format: Format{Newline: true},
			result: "{\n\"a\":1,\n\"b\":[\ntrue,\n{}\n],\n\"c\":[]\n}",
		},
		{
			format: Format{Newline: true, UseTabs: true, IndentSize: 2},
			result: "{\n\t\t\"a\":1,\n\t\t\"b\":[\n\t\t\t\ttrue,\n\t\t\t\t{}\n\t\t],\n\t\t\"c\":[]\n}",
		},
	}

	for i, test := range tests {
		assert.Equal(t, test.result, Write(root, test.format), "wrong encoding with format %d", i)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		node   Node
		result string
	}{
		{node: Null(), result: `null`},
		{node: NewBool(true), result: `true`},
		{node: NewNumber("1E5"), result: `1E5`},
		{node: NewString("tab\there \"q\" /"), result: `"tab\there \"q\" \/"`},
		{node: NewString(""), result: `""`},
		{node: Invalid(), result: ``},
	}

	for _, test := range tests {
		assert.Equal(t, test.result, Write(test.node, StandardFormat), "wrong encoding")
	}
}

func TestEncodeNames(t *testing.T) {
	root := NewObject()
	require.NoError(t, root.Add("we\"ird\nname", NewInt(1)))
	assert.Equal(t, `{"we\"ird\nname":1}`, root.String(), "name should be escaped")
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`{"a":{"6":"5","l":[3,4]},"c":"d"}`,
		`["hello \\ \" op \\ \" op op","plain"]`,
		`[1,-2.5,3e10,true,false,null,"",{},[]]`,
		bigJSON,
	}

	for _, json := range tests {
		root := mustParse(t, json)
		for _, format := range []Format{StandardFormat, SpacedFormat, CompactFormat} {
			out := Write(root, format)
			assert.NoError(t, fastjson.Validate(out), "output should be valid json: %s", out)

			again, err := Parse(out)
			require.NoError(t, err, "own output should parse: %s", out)
			assert.Equal(t, out, Write(again, format), "output should be stable")
			assert.Equal(t, root.String(), again.String(), "round trip should keep the tree")
		}
	}
}

func TestEncodeMatchesFastJSON(t *testing.T) {
	root := mustParse(t, bigJSON)

	var p fastjson.Parser
	v, err := p.Parse(Write(root, SpacedFormat))
	require.NoError(t, err, "fastjson should accept the output")

	assert.Equal(t, root.Get("age").AsInt(0), v.GetInt("age"), "wrong int")
	assert.Equal(t, root.Get("tags").Index(3).AsFloat(0), v.GetFloat64("tags", "3"), "wrong float")
	assert.Equal(t, root.Get("isActive").AsBool(true), v.GetBool("isActive"), "wrong bool")
	assert.Equal(t, root.Get("friends").Count(), len(v.GetArray("friends")), "wrong array length")

	picture, _ := root.Get("picture").AsString()
	assert.Equal(t, picture, string(v.GetStringBytes("picture")), "wrong string")

	obj := v.GetObject()
	require.NotNil(t, obj, "root should be an object")
	assert.Equal(t, root.Count(), obj.Len(), "wrong field count")
}

func TestEncodeComment(t *testing.T) {
	root := mustParse(t, "{ // comment\n \"k\":1 }")
	assert.Equal(t, `{"k":1}`, Write(root, CompactFormat), "wrong encoding")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk is full")
}

func TestWriterEncode(t *testing.T) {
	root := mustParse(t, `[1,{"a":null}]`)
	w := NewWriter(SpacedFormat)

	buf := &bytes.Buffer{}
	require.NoError(t, w.Encode(buf, root))
	assert.Equal(t, "[\n  1,\n  {\n    \"a\": null\n  }\n]", buf.String(), "wrong encoding")
	assert.Equal(t, buf.String(), w.WriteString(root), "writer should be reusable")

	assert.Error(t, w.Encode(failWriter{}, root), "write error should be returned")
}

func TestWriterColors(t *testing.T) {
	root := mustParse(t, `{"a":[1,"s",true,null]}`)
	plain := Write(root, CompactFormat)
	painted := NewWriter(CompactFormat, WithColors(NewColors())).WriteString(root)

	assert.NotEqual(t, plain, painted, "output should be painted")
	assert.True(t, strings.Contains(painted, "\x1b["), "output should have escape codes")
	for _, part := range []string{`"a"`, `1`, `"s"`, `true`, `null`, `{`, `]`} {
		assert.Contains(t, painted, part, "painted output should keep %s", part)
	}

	colors := &Colors{
		Field:  func(a ...any) string { return "<f>" + a[0].(string) },
		String: func(a ...any) string { return "<s>" + a[0].(string) },
		Number: func(a ...any) string { return "<n>" + a[0].(string) },
		Bool:   func(a ...any) string { return "<b>" + a[0].(string) },
		Null:   func(a ...any) string { return "<0>" + a[0].(string) },
		Punct:  func(a ...any) string { return a[0].(string) },
	}
	custom := NewWriter(CompactFormat, WithColors(colors)).WriteString(root)
	assert.Equal(t, `{<f>"a":[<n>1,<s>"s",<b>true,<0>null]}`, custom, "wrong painting")
}

func BenchmarkEncode(b *testing.B) {
	root, err := Parse(bigJSON)
	if err != nil {
		b.Fatal(err)
	}
	w := NewWriter(CompactFormat)
	out := make([]byte, 0, len(bigJSON)*2)

	b.SetBytes(int64(len(bigJSON)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = w.Append(out[:0], root)
	}
}
