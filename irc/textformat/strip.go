// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"strings"
)

// ToPlainText strips all formatting codes from text: toggle and reset bytes
// are removed outright, and a color marker is removed together with the
// digits it would consume. All other bytes pass through unchanged. The
// result is stable: stripping a stripped string is the identity.
func ToPlainText(text string) string {
	if strings.IndexAny(text, metacharacters) == -1 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		c := text[i]
		switch c {
		case bold, reset, strikethrough, legacyUnderline, inverse, italic, underline:
			i++
		case colour:
			i++
			_, _, n := parseColorDigits(text[i:])
			i += n
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}
