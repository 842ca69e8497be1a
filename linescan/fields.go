package linescan

import "unicode/utf8"

var asciiSpace = [256]uint8{'\t': 1, '\n': 1, '\v': 1, '\f': 1, '\r': 1, ' ': 1}

// IsASCII reports whether b only contains ASCII characters.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// Fields splits b around each run of ASCII whitespace and returns the non-empty fields.
// b must only contain ASCII characters, use [IsASCII] to check this. Fields panics otherwise.
func Fields(b []byte) []string {
	n := 0
	wasSpace := 1
	var setBits uint8
	for _, c := range b {
		setBits |= c
		isSpace := int(asciiSpace[c])
		n += wasSpace & ^isSpace
		wasSpace = isSpace
	}

	if setBits >= utf8.RuneSelf {
		panic("linescan: Fields called with non-ASCII input")
	}

	fields := make([]string, 0, n)
	i := 0
	for i < len(b) && asciiSpace[b[i]] != 0 {
		i++
	}

	fieldStart := i
	for i < len(b) {
		if asciiSpace[b[i]] == 0 {
			i++
			continue
		}

		fields = append(fields, string(b[fieldStart:i]))
		i++
		for i < len(b) && asciiSpace[b[i]] != 0 {
			i++
		}
		fieldStart = i
	}

	if fieldStart < len(b) {
		fields = append(fields, string(b[fieldStart:]))
	}

	return fields
}
