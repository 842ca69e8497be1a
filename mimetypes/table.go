package mimetypes

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/MatthiasKunnen/mimetype/mediatype"
)

const defaultTextCharset = "utf-8"

// Table maps file extensions to media types.
// It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	byExt map[string]mediatype.MediaType
}

func NewTable() *Table {
	return &Table{
		byExt: make(map[string]mediatype.MediaType),
	}
}

// SetExtensionType maps ext, without leading dot, to mimeType.
// Types of the form text/* without a charset parameter get charset=utf-8.
// An existing mapping for ext is replaced.
// If mimeType cannot be parsed, the table is not changed and the error is returned.
func (t *Table) SetExtensionType(ext string, mimeType string) error {
	m, err := mediatype.New(mimeType)
	if err != nil {
		return err
	}

	if m.Type == "text" {
		if _, ok := m.Parameters["charset"]; !ok {
			m.Parameters["charset"] = defaultTextCharset
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byExt[ext] = m

	return nil
}

// ByExtension returns the media type of the extension, e.g. "html".
// The extension is matched exactly and must not have a leading dot.
// The Parameters map of the result is shared with the table and must not be modified.
func (t *Table) ByExtension(ext string) (mediatype.MediaType, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	m, ok := t.byExt[ext]
	return m, ok
}

// ExtensionsByType returns the sorted extensions mapped to the given type/subtype.
// Parameters in essence, if any, are ignored.
func (t *Table) ExtensionsByType(essence string) []string {
	essence, _, _ = strings.Cut(essence, ";")
	essence = strings.TrimSpace(strings.ToLower(essence))

	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]string, 0)
	for ext, m := range t.byExt {
		if m.Essence() == essence {
			result = append(result, ext)
		}
	}
	slices.Sort(result)

	return result
}

// Extensions returns all extensions in the table, sorted.
func (t *Table) Extensions() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return slices.Sorted(maps.Keys(t.byExt))
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.byExt)
}
