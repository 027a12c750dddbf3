// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"regexp"
	"strings"

	"github.com/ergochat/irctext/irc/utils"
)

// quoteChars are typographic quote characters (guillemets and smart quotes)
// excluded from match tails along with ASCII sentence punctuation, so that
// quoted or bracketed links do not swallow the closing character.
const quoteChars = "«»“”‘’"

// DefaultURLPattern matches scheme-qualified URLs, www/ftp/domain-shaped
// hosts, and email addresses. Group 1 captures the whole candidate; group 2
// captures its scheme when it has one, which decides whether hyperlinking
// prepends http://, ftp:// or mailto:. Nested parentheses are tolerated one
// level deep, for the Wikipedia style of URL.
const DefaultURLPattern = `\b((?:(?:([a-z][\w\.-]+:/{1,3})|www|ftp\d{0,3}[.]|[a-z0-9.\-]+[.][a-z]{2,4}/)` +
	`(?:[^\s()<>]+|\(([^\s()<>]+|(\([^\s()<>]+\)))*\))+` +
	`(?:\(([^\s()<>]+|(\([^\s()<>]+\)))*\)|\}\]|[^\s` + "`" + `!()\[\]{};:'".,<>?` + quoteChars + `])|` +
	`[a-z0-9.\-+_]+@[a-z0-9.\-]+[.][a-z]{1,5}[^\s/` + "`" + `!()\[\]{};:'".,<>?` + quoteChars + `]))`

// hrefPassthrough lists the reserved characters left unescaped when
// percent-encoding a match into an href attribute.
const hrefPassthrough = ":/?@%#=+&,"

// hyperlinkAll rewrites every pattern match in rendered as an anchor
// element. Matches are found left to right and the inserted markup is not
// rescanned. The visible text is the match verbatim; the href is the match
// percent-encoded, prefixed with a scheme when the match itself lacks one.
func hyperlinkAll(rendered string, re *regexp.Regexp) string {
	matches := re.FindAllStringSubmatchIndex(rendered, -1)
	if matches == nil {
		return rendered
	}

	var out strings.Builder
	out.Grow(len(rendered) + 64*len(matches))
	last := 0
	for _, m := range matches {
		href := rendered[m[0]:m[1]]
		out.WriteString(rendered[last:m[0]])
		out.WriteString("<a href='")
		out.WriteString(linkScheme(rendered, m))
		out.WriteString(utils.PercentEncodeExcept(href, hrefPassthrough))
		out.WriteString("'>")
		out.WriteString(href)
		out.WriteString("</a>")
		last = m[1]
	}
	out.WriteString(rendered[last:])
	return out.String()
}

// linkScheme picks the scheme to prepend to a match's href: nothing when the
// match already embeds one, mailto: for addresses, ftp:// for hosts named
// ftp, http:// for everything else.
func linkScheme(rendered string, m []int) string {
	if matchGroup(rendered, m, 2) != "" {
		return ""
	}
	candidate := matchGroup(rendered, m, 1)
	switch {
	case strings.ContainsRune(candidate, '@'):
		return "mailto:"
	case len(candidate) >= 4 && strings.EqualFold(candidate[:4], "ftp."):
		return "ftp://"
	default:
		return "http://"
	}
}

// matchGroup extracts capture group i from a FindAllStringSubmatchIndex
// entry, tolerating custom patterns with fewer groups.
func matchGroup(s string, m []int, i int) string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}
