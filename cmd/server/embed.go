package main

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode"
)

//go:embed embed/version.txt
var embeddedVersion string

//go:embed embed/sql
var embeddedSQLFS embed.FS

// sqlFileNames are the setup files for the sql database, in the order they are run.
// The table must be created before the functions that use it.
var sqlFileNames = []string{
	"layouts_create.sql",
	"layout_create.sql",
	"layout_read.sql",
	"layout_list.sql",
	"layout_delete.sql",
}

// cleanVersion returns the version, but cleaned up to only be letters and digits.
// Trailing whitespace is removed.
func cleanVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	switch {
	case len(v) == 0:
		return "", fmt.Errorf("empty version")
	case strings.IndexFunc(v, func(r rune) bool {
		return !unicode.In(r, unicode.Letter, unicode.Digit)
	}) >= 0:
		return "", fmt.Errorf("only letters and digits are allowed in version: %q", v)
	}
	return v, nil
}

// sqlFiles opens the named setup files in the embed/sql directory of the file system.
func sqlFiles(fsys fs.FS, names []string) ([]io.Reader, error) {
	files := make([]io.Reader, len(names))
	for i, n := range names {
		f, err := fsys.Open(path.Join("embed", "sql", n))
		if err != nil {
			return nil, fmt.Errorf("opening sql setup file: %w", err)
		}
		files[i] = f
	}
	return files, nil
}
