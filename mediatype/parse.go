package mediatype

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalid is returned when the parameters of a media type are malformed.
	ErrInvalid = errors.New("invalid media parameter")

	// ErrDuplicate is returned when a parameter name occurs more than once.
	ErrDuplicate = errors.New("duplicate media parameter")
)

// Parse parses a media type value and any optional parameters, e.g.
// "text/html; charset=utf-8".
//
// The returned media type is the part before the first ';', lowercased and trimmed of
// whitespace. It is not validated to be of the form type/subtype, use [New] for that.
// Parameter names are returned as written, they are not lowercased.
//
// A single trailing ';' without a parameter is accepted.
// Any other malformed parameter results in an error wrapping [ErrInvalid].
// A repeated parameter name results in an error wrapping [ErrDuplicate].
// On error, no media type or parameters are returned.
func Parse(v string) (string, map[string]string, error) {
	base, _, _ := strings.Cut(v, ";")
	mediaType := strings.TrimSpace(strings.ToLower(base))

	params := make(map[string]string)
	var rest string
	if i := strings.IndexByte(v, ';'); i != -1 {
		rest = v[i:]
	}

	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}

		key, value, remainder := consumeMediaParam(rest)
		if key == "" {
			if strings.TrimSpace(remainder) == ";" {
				break
			}

			return "", nil, fmt.Errorf("%w: %q", ErrInvalid, rest)
		}

		if !utf8.ValidString(value) {
			return "", nil, fmt.Errorf("%w: value of %s is not valid UTF-8", ErrInvalid, key)
		}

		if _, exists := params[key]; exists {
			return "", nil, fmt.Errorf("%w: %s", ErrDuplicate, key)
		}

		params[key] = value
		rest = remainder
	}

	return mediaType, params, nil
}

func trimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
