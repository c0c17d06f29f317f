package profilecss

import "strings"

// The host only renders the prefixed backdrop filter, but the minifier drops the
// standard declaration in front of it as overridden.
const (
	prefixedProperty   = "-webkit-backdrop-filter"
	unprefixedProperty = "backdrop-filter"
)

// RestoreUnprefixed inserts "backdrop-filter:<v>;" immediately before every
// "-webkit-backdrop-filter:<v>" declaration in minified CSS and returns the new
// text with the number of insertions. A prefixed declaration that already follows
// an identical unprefixed one is left alone, so the pass can run repeatedly.
//
// The value ends at ';', '}' or the end of text. This holds for minifier output
// because backdrop-filter values never contain either character.
func RestoreUnprefixed(css string) (string, int) {
	needle := prefixedProperty + ":"
	if !strings.Contains(css, needle) {
		return css, 0
	}

	var b strings.Builder
	b.Grow(len(css) + len(css)/8)

	restored := 0
	rest := css
	written := 0 // bytes of css already copied to b
	for {
		idx := strings.Index(rest, needle)
		if idx < 0 {
			break
		}
		start := len(css) - len(rest) + idx
		valueStart := start + len(needle)
		valueEnd := valueStart + strings.IndexAny(css[valueStart:], ";}")
		if valueEnd < valueStart {
			valueEnd = len(css)
		}
		value := css[valueStart:valueEnd]

		if !hasFallbackBefore(css[:start], value) {
			b.WriteString(css[written:start])
			b.WriteString(unprefixedProperty)
			b.WriteByte(':')
			b.WriteString(value)
			b.WriteByte(';')
			written = start
			restored++
		}

		rest = css[valueEnd:]
	}
	if restored == 0 {
		return css, 0
	}
	b.WriteString(css[written:])

	return b.String(), restored
}

// hasFallbackBefore reports whether prefix ends with the unprefixed declaration
// for value. The declaration must start at a boundary so that a preceding
// "-webkit-backdrop-filter:<value>;" does not count.
func hasFallbackBefore(prefix, value string) bool {
	decl := unprefixedProperty + ":" + value + ";"
	if !strings.HasSuffix(prefix, decl) {
		return false
	}
	at := len(prefix) - len(decl)
	if at == 0 {
		return true
	}
	switch prefix[at-1] {
	case '{', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
