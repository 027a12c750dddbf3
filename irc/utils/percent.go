// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package utils

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// PercentEncodeExcept percent-encodes every byte of s other than the RFC
// 3986 unreserved characters (letters, digits, "-", ".", "_", "~") and the
// bytes of passthrough. Multibyte characters are encoded byte by byte. This
// is laxer than url.QueryEscape and friends, which have no way to leave an
// arbitrary set of reserved characters intact.
func PercentEncodeExcept(s string, passthrough string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(passthrough, c) != -1 {
			out.WriteByte(c)
		} else {
			out.WriteByte('%')
			out.WriteByte(upperhex[c>>4])
			out.WriteByte(upperhex[c&0x0f])
		}
	}
	return out.String()
}

func isUnreserved(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') || c == '-' || c == '.' || c == '_' || c == '~'
}
