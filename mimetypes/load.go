package mimetypes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MatthiasKunnen/mimetype/basedir"
	"github.com/MatthiasKunnen/mimetype/linescan"
)

// systemFiles are the well-known locations of mime.types, lowest precedence first.
var systemFiles = []string{
	"/etc/mime.types",
	"/etc/apache2/mime.types",
	"/etc/apache/mime.types",
	"/etc/httpd/conf/mime.types",
}

// Load reads a mime.types file from reader and adds its mappings to the table.
// Comments, blank lines, and lines without extensions are ignored.
// Lines with an invalid media type, or non-ASCII characters, are logged and skipped.
// When an extension occurs more than once, the last occurrence wins.
func (t *Table) Load(reader io.Reader) error {
	sc := linescan.NewScanner(reader)
	lineNumber := 0

	for sc.Scan() {
		lineNumber++
		line := sc.Bytes()

		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) > 0 && trimmed[0] == '#' {
			continue
		}

		if !linescan.IsASCII(line) {
			log.Printf("Skipping line %d of mime.types, it contains non-ASCII characters\n", lineNumber)
			continue
		}

		fields := linescan.Fields(line)
		if len(fields) <= 1 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		mimeType := fields[0]
		for _, ext := range fields[1:] {
			err := t.SetExtensionType(ext, mimeType)
			if err != nil {
				// The type is the same for every extension on the line.
				log.Printf("Skipping line %d of mime.types, type '%s': %v\n", lineNumber, mimeType, err)
				break
			}
		}
	}

	if err := sc.Err(); err != nil {
		return &LineError{Line: lineNumber + 1, Err: err}
	}

	return nil
}

// LoadFile loads the mime.types file at path into the table.
// See [Table.Load].
func (t *Table) LoadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("LoadFile: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("LoadFile: '%s': %w", path, ErrIsDirectory)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("LoadFile: failed to open mime.types file '%s'. %w", path, err)
	}
	defer file.Close()

	if err := t.Load(file); err != nil {
		return fmt.Errorf("LoadFile: failed to load mime.types file '%s'. %w", path, err)
	}

	return nil
}

// SystemFiles returns the paths of the mime.types files that [LoadFromOs] reads, lowest
// precedence first. Existence of these files is not checked.
//
// These are the system files used by common web servers, followed by mime.types in each
// directory of $XDG_CONFIG_DIRS and $XDG_CONFIG_HOME, and finally ~/.mime.types.
func SystemFiles() []string {
	files := slices.Clone(systemFiles)

	for _, path := range slices.Backward(basedir.ConfigPaths("mime.types")) {
		files = append(files, path)
	}
	files = append(files, filepath.Join(basedir.Home, ".mime.types"))

	return files
}

// LoadFromOs loads every file of [SystemFiles] that exists into a new table.
func LoadFromOs() (*Table, error) {
	return LoadFiles(SystemFiles())
}

// LoadFiles loads the given mime.types files, in order, into a new table.
// Later files override mappings of earlier files.
// Files that do not exist are skipped. Other errors are collected and returned together with
// the table holding everything that could be loaded.
func LoadFiles(paths []string) (*Table, error) {
	table := NewTable()
	var err error

	for _, path := range paths {
		loadErr := table.LoadFile(path)
		switch {
		case loadErr == nil:
		case errors.Is(loadErr, os.ErrNotExist):
			continue
		default:
			err = errors.Join(err, loadErr)
		}
	}

	return table, err
}
