package main

import (
	"io"
	"testing"
	"testing/fstest"
)

func TestCleanVersion(t *testing.T) {
	cleanVersionTests := []struct {
		v      string
		wantOk bool
		want   string
	}{
		{},
		{
			v:      "9d2ffad8e5e5383569d37ec381147f2d\n",
			wantOk: true,
			want:   "9d2ffad8e5e5383569d37ec381147f2d",
		},
		{
			v: "adhoc version",
		},
		{
			v: "v1.0",
		},
	}
	for i, test := range cleanVersionTests {
		got, err := cleanVersion(test.v)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error when version is '%v'", i, test.v)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error when version is '%v': %v", i, test.v, err)
		case test.want != got:
			t.Errorf("Test %v: when version is '%v':\nwanted: '%v'\ngot:    '%v", i, test.v, test.want, got)
		}
	}
}

func TestEmbeddedVersion(t *testing.T) {
	if _, err := cleanVersion(embeddedVersion); err != nil {
		t.Errorf("embedded version is not valid: %v", err)
	}
}

func TestSQLFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"embed/sql/b.sql": &fstest.MapFile{Data: []byte("B")},
		"embed/sql/a.sql": &fstest.MapFile{Data: []byte("A")},
	}
	sqlFilesTests := []struct {
		names  []string
		wantOk bool
		want   string
	}{
		{
			wantOk: true,
		},
		{
			names: []string{"c.sql"},
		},
		{
			names:  []string{"b.sql", "a.sql"},
			wantOk: true,
			want:   "BA",
		},
	}
	for i, test := range sqlFilesTests {
		files, err := sqlFiles(fsys, test.names)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		default:
			b, err := io.ReadAll(io.MultiReader(files...))
			switch {
			case err != nil:
				t.Errorf("Test %v: unwanted error reading files: %v", i, err)
			case test.want != string(b):
				t.Errorf("Test %v: wanted files to be read in order as %q, got %q", i, test.want, b)
			}
		}
	}
}

func TestEmbeddedSQLFiles(t *testing.T) {
	files, err := sqlFiles(embeddedSQLFS, sqlFileNames)
	switch {
	case err != nil:
		t.Errorf("unwanted error opening embedded sql files: %v", err)
	case len(files) != len(sqlFileNames):
		t.Errorf("wanted %v files, got %v", len(sqlFileNames), len(files))
	}
	entries, err := embeddedSQLFS.ReadDir("embed/sql")
	switch {
	case err != nil:
		t.Errorf("unwanted error reading embedded sql directory: %v", err)
	case len(entries) != len(sqlFileNames):
		t.Errorf("wanted every embedded sql file to be run during setup: wanted %v, got %v", len(entries), len(sqlFileNames))
	}
}
