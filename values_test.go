package ecprops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndentationString(t *testing.T) {
	tests := []struct {
		name  string
		value Indentation
		want  string
	}{
		{"tabs", IndentationTabs, "tab"},
		{"spaces", IndentationSpaces, "space"},
		{"unspecified", IndentationUnspecified, "unspecified"},
		{"out of range", Indentation(42), "UNKNOWN(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineEndingString(t *testing.T) {
	tests := []struct {
		name  string
		value LineEnding
		want  string
	}{
		{"lf", LineEndingLF, "lf"},
		{"crlf", LineEndingCRLF, "crlf"},
		{"cr", LineEndingCR, "cr"},
		{"unspecified", LineEndingUnspecified, "unspecified"},
		{"out of range", LineEnding(-1), "UNKNOWN(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineEndingSequence(t *testing.T) {
	tests := []struct {
		name  string
		value LineEnding
		want  string
	}{
		{"lf", LineEndingLF, "\n"},
		{"crlf", LineEndingCRLF, "\r\n"},
		{"cr", LineEndingCR, "\r"},
		{"unspecified", LineEndingUnspecified, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Sequence(); got != tt.want {
				t.Errorf("Sequence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodingString(t *testing.T) {
	tests := []struct {
		name  string
		value Encoding
		want  string
	}{
		{"utf-8", EncodingUTF8, "utf-8"},
		{"latin1", EncodingLatin1, "latin1"},
		{"utf-16le", EncodingUTF16LE, "utf-16le"},
		{"utf-16be", EncodingUTF16BE, "utf-16be"},
		{"utf-8-bom", EncodingUTF8BOM, "utf-8-bom"},
		{"unspecified", EncodingUnspecified, "unspecified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodingBOM(t *testing.T) {
	tests := []struct {
		name  string
		value Encoding
		want  []byte
	}{
		{"utf-8 has none", EncodingUTF8, nil},
		{"latin1 has none", EncodingLatin1, nil},
		{"utf-16le", EncodingUTF16LE, []byte{0xFF, 0xFE}},
		{"utf-16be", EncodingUTF16BE, []byte{0xFE, 0xFF}},
		{"utf-8-bom", EncodingUTF8BOM, []byte{0xEF, 0xBB, 0xBF}},
		{"unspecified has none", EncodingUnspecified, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.value.BOM()); diff != "" {
				t.Errorf("BOM() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
