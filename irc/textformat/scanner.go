// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"regexp"
	"strconv"
	"strings"
)

// Formatting control bytes recognized in message text. \x15 is a legacy
// alternate for underline; both map to the same attribute.
const (
	bold            = '\x02'
	colour          = '\x03'
	reset           = '\x0f'
	strikethrough   = '\x13'
	legacyUnderline = '\x15'
	inverse         = '\x16'
	italic          = '\x1d'
	underline       = '\x1f'

	// metacharacters delimits literal runs; every recognized control byte
	// appears here and nowhere else.
	metacharacters = "\x02\x03\x0f\x13\x15\x16\x1d\x1f"
)

// attribute identifies one togglable formatting flag.
type attribute uint32

const (
	attrBold attribute = 1 << iota
	attrItalic
	attrStrikethrough
	attrUnderline
	attrInverse
)

type tokenKind uint

const (
	tokenLiteral tokenKind = iota
	tokenToggle
	tokenColor
	tokenColorReset
	tokenReset
)

// token is one lexed element of a formatted message. Literal tokens
// reference the source bytes [start, end); color tokens carry the parsed
// indices, with bg == -1 when the background group is absent.
type token struct {
	kind  tokenKind
	start int
	end   int
	attr  attribute
	fg    int
	bg    int
}

// scanner lexes message text into literal runs and control tokens, left to
// right. The cursor only advances; no input byte is visited twice.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) next() (tok token, ok bool) {
	if s.pos >= len(s.text) {
		return
	}

	if idx := strings.IndexAny(s.text[s.pos:], metacharacters); idx != 0 {
		start := s.pos
		if idx == -1 {
			s.pos = len(s.text)
		} else {
			s.pos += idx
		}
		return token{kind: tokenLiteral, start: start, end: s.pos}, true
	}

	c := s.text[s.pos]
	s.pos++
	switch c {
	case bold:
		return token{kind: tokenToggle, attr: attrBold}, true
	case italic:
		return token{kind: tokenToggle, attr: attrItalic}, true
	case strikethrough:
		return token{kind: tokenToggle, attr: attrStrikethrough}, true
	case underline, legacyUnderline:
		return token{kind: tokenToggle, attr: attrUnderline}, true
	case inverse:
		return token{kind: tokenToggle, attr: attrInverse}, true
	case reset:
		return token{kind: tokenReset}, true
	case colour:
		fg, bg, n := parseColorDigits(s.text[s.pos:])
		if n == 0 {
			// bare color marker, no digits to consume
			return token{kind: tokenColorReset}, true
		}
		s.pos += n
		return token{kind: tokenColor, fg: fg, bg: bg}, true
	default:
		// should be impossible: IndexAny only stops at metacharacters
		return token{kind: tokenLiteral, start: s.pos - 1, end: s.pos}, true
	}
}

// colorDigitsRe matches the digit group following a color marker: one or two
// foreground digits, then optionally a comma and one or two background
// digits. Matching is greedy, so two digits are taken whenever two are
// available. A comma not followed by a digit belongs to the message text.
var colorDigitsRe = regexp.MustCompile(`^([0-9]{1,2})(?:,([0-9]{1,2}))?`)

// parseColorDigits parses the fg(,bg) indices at the start of s, returning
// the number of bytes consumed. bg is -1 when the background group is
// absent; n is 0 when s does not begin with a digit.
func parseColorDigits(s string) (fg, bg, n int) {
	bg = -1
	m := colorDigitsRe.FindStringSubmatch(s)
	if m == nil {
		return
	}
	fg, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		bg, _ = strconv.Atoi(m[2])
	}
	return fg, bg, len(m[0])
}
