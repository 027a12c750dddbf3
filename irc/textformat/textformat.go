// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

// Package textformat renders mIRC-style formatting codes (bold, italic,
// colors, and friends; see https://modern.ircdocs.horse/formatting.html)
// into nested HTML span elements, or strips them to plain text. HTML output
// can optionally hyperlink URL- and email-shaped substrings.
package textformat

import (
	"fmt"
	"strings"
)

// SpanFormat selects how generated span elements are attributed.
type SpanFormat uint

const (
	// SpanStyle emits self-contained elements with inline style attributes.
	SpanStyle SpanFormat = iota
	// SpanClass emits elements with symbolic class attributes, to be styled
	// by an external style sheet.
	SpanClass
)

func (sf SpanFormat) String() string {
	switch sf {
	case SpanStyle:
		return "style"
	case SpanClass:
		return "class"
	default:
		return ""
	}
}

// SpanFormatFromString parses a span format name as found in config files.
// The empty string selects SpanStyle.
func SpanFormatFromString(name string) (SpanFormat, error) {
	switch strings.ToLower(name) {
	case "style", "":
		return SpanStyle, nil
	case "class":
		return SpanClass, nil
	default:
		return SpanStyle, fmt.Errorf("invalid span format value: %s", name)
	}
}

// Formatter holds the settings for HTML conversion. It carries no state
// between calls: every ToHTML call reads only the input text and the fields
// below, so a single Formatter may be shared by concurrent callers as long
// as nobody mutates it or its palette.
//
// The zero value renders with fallback colors only and performs no link
// detection; NewFormatter returns one with the default palette and URL
// pattern.
type Formatter struct {
	// Palette resolves color indices to names. nil resolves every index to
	// the defaults below.
	Palette *Palette

	SpanFormat SpanFormat

	// URLPattern recognizes URLs and email addresses in rendered output.
	// Empty disables link detection entirely; a pattern that fails to
	// compile is reported by ToHTML.
	URLPattern string

	// DefaultForeground and DefaultBackground name the colors used when a
	// color directive's index has no palette entry. Empty values mean
	// "black" and "transparent" respectively.
	DefaultForeground string
	DefaultBackground string
}

// NewFormatter returns a Formatter with the standard palette, inline style
// spans, and the default URL pattern.
func NewFormatter() *Formatter {
	return &Formatter{
		Palette:    NewPalette(),
		SpanFormat: SpanStyle,
		URLPattern: DefaultURLPattern,
	}
}
