package ecprops

// Canonical keys of the standard properties.
const (
	KeyIndentStyle            = "indent_style"
	KeyIndentSize             = "indent_size"
	KeyTabWidth               = "tab_width"
	KeyEndOfLine              = "end_of_line"
	KeyCharset                = "charset"
	KeyTrimTrailingWhitespace = "trim_trailing_whitespace"
	KeyInsertFinalNewline     = "insert_final_newline"
	KeyMaxLineLength          = "max_line_length"
)

// IndentStyle parses indent_style: "tab" or "space".
var IndentStyle = NewEnum(KeyIndentStyle, map[string]Indentation{
	"tab":   IndentationTabs,
	"space": IndentationSpaces,
})

// IndentSize parses indent_size: a decimal column count, or the sentinel
// "tab" meaning the size follows tab_width.
//
// NOTE: "0" parses to a zero count. The EditorConfig wiki wording
// ("whole number defining the number of columns") is read here as
// permitting zero; tools that require a positive size must enforce that
// themselves.
var IndentSize = NewOptionalUint(KeyIndentSize, "tab")

// TabWidth parses tab_width: a decimal column width.
var TabWidth = NewUint(KeyTabWidth)

// EndOfLine parses end_of_line: "lf", "crlf" or "cr".
var EndOfLine = NewEnum(KeyEndOfLine, map[string]LineEnding{
	"lf":   LineEndingLF,
	"crlf": LineEndingCRLF,
	"cr":   LineEndingCR,
})

// Charset parses charset. Only the five spellings the EditorConfig
// format defines are recognized; arbitrary IANA names are not.
var Charset = NewEnum(KeyCharset, map[string]Encoding{
	"utf-8":     EncodingUTF8,
	"latin1":    EncodingLatin1,
	"utf-16le":  EncodingUTF16LE,
	"utf-16be":  EncodingUTF16BE,
	"utf-8-bom": EncodingUTF8BOM,
})

// TrimTrailingWhitespace parses trim_trailing_whitespace: "true" or "false".
var TrimTrailingWhitespace = NewBool(KeyTrimTrailingWhitespace)

// FinalNewline parses insert_final_newline: "true" or "false".
var FinalNewline = NewBool(KeyInsertFinalNewline)

// MaxLineLength parses max_line_length: a decimal column limit, or the
// sentinel "off" disabling the limit.
var MaxLineLength = NewOptionalUint(KeyMaxLineLength, "off")

// builtinProperties returns the standard properties in documentation
// order. A fresh slice is returned each call.
func builtinProperties() []Property {
	return []Property{
		IndentStyle,
		IndentSize,
		TabWidth,
		EndOfLine,
		Charset,
		TrimTrailingWhitespace,
		FinalNewline,
		MaxLineLength,
	}
}
