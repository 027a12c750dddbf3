// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const closeSpan = "</span>"

// Opening tags per attribute. The inverse color swap is left to the style
// sheet or rendering engine; we only mark the region.
var (
	styleTags = map[attribute]string{
		attrBold:          "<span style='font-weight: bold'>",
		attrItalic:        "<span style='font-style: italic'>",
		attrStrikethrough: "<span style='text-decoration: line-through'>",
		attrUnderline:     "<span style='text-decoration: underline'>",
		attrInverse:       "<span style='text-decoration: inverse'>",
	}
	classTags = map[attribute]string{
		attrBold:          "<span class='bold'>",
		attrItalic:        "<span class='italic'>",
		attrStrikethrough: "<span class='line-through'>",
		attrUnderline:     "<span class='underline'>",
		attrInverse:       "<span class='inverse'>",
	}
)

// ToHTML converts message text to HTML markup. Toggle codes become span
// elements (a second occurrence of an active code closes the innermost open
// span), color directives always open a new span, a bare color marker or a
// reset closes spans, and a literal '<' becomes &lt;. No other character is
// escaped, and spans left open at the end of input are not closed: a message
// is one fragment of a larger document, not a document of its own.
//
// When the text plausibly contains a URL, a second pass rewrites pattern
// matches in the rendered markup as anchor elements. The returned markup is
// usable even when err is non-nil: a URLPattern that fails to compile
// disables link detection for the call and is reported to the caller.
func (f *Formatter) ToHTML(text string) (markup string, err error) {
	defaultFg := f.DefaultForeground
	if defaultFg == "" {
		defaultFg = "black"
	}
	defaultBg := f.DefaultBackground
	if defaultBg == "" {
		defaultBg = "transparent"
	}

	openTags := styleTags
	if f.SpanFormat == SpanClass {
		openTags = classTags
	}

	var out strings.Builder
	out.Grow(len(text) + len(text)/4)

	var state attribute
	var depth int
	var potentialURL bool

	sc := scanner{text: text}
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokenLiteral:
			writeLiteral(&out, text, tok.start, tok.end, &potentialURL)
		case tokenToggle:
			if state&tok.attr != 0 {
				out.WriteString(closeSpan)
				if depth > 0 {
					depth--
				}
			} else {
				out.WriteString(openTags[tok.attr])
				depth++
			}
			state ^= tok.attr
		case tokenColor:
			// color directives stack rather than toggle: each one opens a
			// fresh span even when another color is already active
			out.WriteString(f.colorSpan(tok.fg, tok.bg, defaultFg, defaultBg))
			depth++
		case tokenColorReset:
			out.WriteString(closeSpan)
			if depth > 0 {
				depth--
			}
		case tokenReset:
			for ; depth > 0; depth-- {
				out.WriteString(closeSpan)
			}
			state = 0
		}
	}

	markup = out.String()
	if potentialURL && f.URLPattern != "" {
		re, compileErr := regexp.Compile(f.URLPattern)
		if compileErr != nil {
			return markup, fmt.Errorf("invalid URL pattern: %w", compileErr)
		}
		markup = hyperlinkAll(markup, re)
	}
	return markup, nil
}

func (f *Formatter) colorSpan(fg, bg int, defaultFg, defaultBg string) string {
	fgName := f.Palette.ColorName(fg, defaultFg)
	if bg < 0 {
		if f.SpanFormat == SpanClass {
			return fmt.Sprintf("<span class='%s'>", fgName)
		}
		return fmt.Sprintf("<span style='color: %s'>", fgName)
	}
	bgName := f.Palette.ColorName(bg, defaultBg)
	if f.SpanFormat == SpanClass {
		return fmt.Sprintf("<span class='%s %s-background'>", fgName, bgName)
	}
	return fmt.Sprintf("<span style='color: %s; background-color: %s'>", fgName, bgName)
}

// writeLiteral copies text[start:end] to out, escaping '<', and checks for
// potential URLs: a '.', '/', or ':' with a non-space character on both
// sides makes a later link detection pass worthwhile. The right neighbor is
// the next source byte, control codes included; the left neighbor at a run
// boundary is the last character already rendered, so text at the very start
// of the message never qualifies.
func writeLiteral(out *strings.Builder, text string, start, end int, potentialURL *bool) {
	for i := start; i < end; i++ {
		c := text[i]
		if c == '<' {
			out.WriteString("&lt;")
			continue
		}
		if !*potentialURL && (c == '.' || c == '/' || c == ':') &&
			hasLeftNeighbor(out, text, start, i) && hasRightNeighbor(text, i) {
			*potentialURL = true
		}
		out.WriteByte(c)
	}
}

func hasLeftNeighbor(out *strings.Builder, text string, start, i int) bool {
	if i > start {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		return !unicode.IsSpace(r)
	}
	rendered := out.String()
	if rendered == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(rendered)
	return !unicode.IsSpace(r)
}

func hasRightNeighbor(text string, i int) bool {
	if i+1 >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i+1:])
	return !unicode.IsSpace(r)
}
