package ecprops

import "fmt"

// Indentation is the indentation mechanism selected by indent_style.
// The zero value IndentationUnspecified is never produced by a successful
// parse; it exists so that the zero Definition result is distinguishable
// from every real variant.
type Indentation int

const (
	IndentationUnspecified Indentation = iota
	IndentationTabs
	IndentationSpaces
)

// String returns the canonical spelling accepted by IndentStyle.
func (i Indentation) String() string {
	switch i {
	case IndentationUnspecified:
		return "unspecified"
	case IndentationTabs:
		return "tab"
	case IndentationSpaces:
		return "space"
	default:
		return fmt.Sprintf("UNKNOWN(%v)", int(i))
	}
}

// LineEnding is the line terminator selected by end_of_line.
type LineEnding int

const (
	LineEndingUnspecified LineEnding = iota
	LineEndingLF
	LineEndingCRLF
	LineEndingCR
)

// String returns the canonical spelling accepted by EndOfLine.
func (e LineEnding) String() string {
	switch e {
	case LineEndingUnspecified:
		return "unspecified"
	case LineEndingLF:
		return "lf"
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return fmt.Sprintf("UNKNOWN(%v)", int(e))
	}
}

// Sequence returns the literal terminator bytes for the ending, or the
// empty string for LineEndingUnspecified.
func (e LineEnding) Sequence() string {
	switch e {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return ""
	}
}

// Encoding is the character encoding selected by charset.
type Encoding int

const (
	EncodingUnspecified Encoding = iota
	EncodingUTF8
	EncodingLatin1
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF8BOM
)

// String returns the canonical spelling accepted by Charset.
func (e Encoding) String() string {
	switch e {
	case EncodingUnspecified:
		return "unspecified"
	case EncodingUTF8:
		return "utf-8"
	case EncodingLatin1:
		return "latin1"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	case EncodingUTF8BOM:
		return "utf-8-bom"
	default:
		return fmt.Sprintf("UNKNOWN(%v)", int(e))
	}
}

// BOM returns the byte-order mark the encoding implies, or nil when the
// encoding does not call for one. EncodingUTF8 deliberately returns nil;
// only EncodingUTF8BOM asks for the UTF-8 signature.
func (e Encoding) BOM() []byte {
	switch e {
	case EncodingUTF16LE:
		return []byte{0xFF, 0xFE}
	case EncodingUTF16BE:
		return []byte{0xFE, 0xFF}
	case EncodingUTF8BOM:
		return []byte{0xEF, 0xBB, 0xBF}
	default:
		return nil
	}
}
