package mediatype

import (
	"fmt"
	"slices"
	"strings"
)

// MediaType is a parsed media type such as text/html; charset=utf-8.
// Type and SubType are lowercase.
type MediaType struct {
	Type       string
	SubType    string
	Parameters map[string]string
}

// New parses v using [Parse] and splits the result into type and subtype.
// The media type must contain exactly one '/' with a non-empty type and subtype, otherwise an
// error wrapping [ErrInvalid] is returned.
func New(v string) (MediaType, error) {
	essence, params, err := Parse(v)
	if err != nil {
		return MediaType{}, err
	}

	typ, subType, err := splitEssence(essence)
	if err != nil {
		return MediaType{}, err
	}

	return MediaType{
		Type:       typ,
		SubType:    subType,
		Parameters: params,
	}, nil
}

func splitEssence(essence string) (string, string, error) {
	parts := strings.Split(essence, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: expected type/subtype, got %q", ErrInvalid, essence)
	}

	return parts[0], parts[1], nil
}

// Essence returns type/subtype without parameters.
func (m MediaType) Essence() string {
	return m.Type + "/" + m.SubType
}

// Param returns the value of the parameter with the given name.
// The name is matched exactly.
func (m MediaType) Param(name string) (string, bool) {
	value, ok := m.Parameters[name]
	return value, ok
}

// Serialize returns the media type in the form "type/subtype; key1=value1; key2=value2".
// Parameters are written in ascending order of their names.
// Values are written as is, they are not quoted.
func (m MediaType) Serialize() string {
	var b strings.Builder
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.SubType)

	keys := make([]string, 0, len(m.Parameters))
	for key := range m.Parameters {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		b.WriteString("; ")
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(m.Parameters[key])
	}

	return b.String()
}

func (m MediaType) String() string {
	return m.Serialize()
}

// MarshalText implements [encoding.TextMarshaler] using [MediaType.Serialize].
func (m MediaType) MarshalText() ([]byte, error) {
	return []byte(m.Serialize()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [New].
func (m *MediaType) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
