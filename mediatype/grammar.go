package mediatype

import "strings"

// isTSpecial reports whether r is in 'tspecials' as defined by RFC 1521 and RFC 2045.
func isTSpecial(r rune) bool {
	return strings.ContainsRune(`()<>@,;:\"/[]?=`, r)
}

// isTokenChar reports whether r is any US-ASCII character except SPACE, CTLs, or tspecials.
func isTokenChar(r rune) bool {
	return r > 0x20 && r < 0x7f && !isTSpecial(r)
}

func isNotTokenChar(r rune) bool {
	return !isTokenChar(r)
}

// consumeToken splits v into the leading token and the rest.
// If v does not start with a token character, the token is empty and rest is v.
func consumeToken(v string) (token, rest string) {
	notPos := strings.IndexFunc(v, isNotTokenChar)
	switch notPos {
	case -1:
		return v, ""
	case 0:
		return "", v
	}

	return v[:notPos], v[notPos:]
}

// consumeValue consumes a token or a quoted-string from the start of v.
//
// For a quoted-string, the returned value is unescaped. A CR or LF inside the quotes causes v to
// be returned unchanged as rest with an empty value. A missing closing quote returns an empty
// value and an empty rest.
func consumeValue(v string) (value, rest string) {
	if v == "" {
		return "", ""
	}

	if v[0] != '"' {
		return consumeToken(v)
	}

	var b strings.Builder
	for i := 1; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '"':
			return b.String(), v[i+1:]
		case c == '\\' && i+1 < len(v) && isTSpecial(rune(v[i+1])):
			i++
			b.WriteByte(v[i])
		case c == '\r' || c == '\n':
			return "", v
		default:
			b.WriteByte(c)
		}
	}

	return "", ""
}

// consumeMediaParam consumes one ";name=value" pair from the start of v, ignoring surrounding
// whitespace.
// On failure, param is empty and rest is v.
func consumeMediaParam(v string) (param, value, rest string) {
	rest = trimLeftSpace(v)
	if !strings.HasPrefix(rest, ";") {
		return "", "", v
	}

	rest = trimLeftSpace(rest[1:])
	param, rest = consumeToken(rest)
	if param == "" {
		return "", "", v
	}

	rest = trimLeftSpace(rest)
	if !strings.HasPrefix(rest, "=") {
		return "", "", v
	}

	rest = trimLeftSpace(rest[1:])
	value, rest2 := consumeValue(rest)
	if value == "" && rest2 == rest {
		// An empty quoted-string is a value, consuming nothing is not.
		return "", "", v
	}

	return param, value, rest2
}
