package ecprops_test

import (
	"fmt"

	"github.com/apstndb/ecprops"
)

func ExampleDefinition_ParseValue() {
	style, ok := ecprops.IndentStyle.ParseValue("space")
	fmt.Println(style, ok)

	// Matching is exact: no case folding, no trimming.
	style, ok = ecprops.IndentStyle.ParseValue("Space")
	fmt.Println(style, ok)
	// Output:
	// space true
	// unspecified false
}

func ExampleNewOptionalUint() {
	limit := ecprops.NewOptionalUint("my_limit", "none")

	if v, ok := limit.ParseValue("72"); ok {
		fmt.Println("limit:", *v)
	}
	if v, ok := limit.ParseValue("none"); ok && v == nil {
		fmt.Println("explicitly unlimited")
	}
	// Output:
	// limit: 72
	// explicitly unlimited
}

func ExampleGet() {
	section := ecprops.Properties{
		"indent_style": "space",
		"indent_size":  "2",
	}

	style, _ := ecprops.Get(section, ecprops.IndentStyle)
	size, _ := ecprops.Get(section, ecprops.IndentSize)
	fmt.Println(style, *size)
	// Output: space 2
}

func ExampleBuiltin() {
	r := ecprops.Builtin()

	v, ok := r.Parse("max_line_length", "off")
	fmt.Println(v, ok)

	_, ok = r.Parse("max_line_length", "Off")
	fmt.Println(ok)
	// Output:
	// <nil> true
	// false
}

func ExampleLineEnding_Sequence() {
	eol, _ := ecprops.EndOfLine.ParseValue("crlf")
	fmt.Printf("%q\n", eol.Sequence())
	// Output: "\r\n"
}
