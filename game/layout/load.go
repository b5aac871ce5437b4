package layout

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Load reads the layouts in the file at the path in the file system.
// GNOME Mahjongg map files end in ".xml" and KMahjongg desktop files end in ".desktop".
// Other files are read as KMahjongg layout files if they start with the KMahjongg magic header,
// and are named after the file.
func Load(fsys fs.FS, name string) ([]Layout, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}
	switch path.Ext(name) {
	case ".xml":
		return ReadGnome(bytes.NewReader(b))
	case ".desktop":
		return loadKMahjonggDesktop(fsys, name, b)
	}
	magic, _, _ := bufio.NewReader(bytes.NewReader(b)).ReadLine()
	if !bytes.HasPrefix(magic, []byte(kmahjonggMagicPrefix)) {
		return nil, fmt.Errorf("loading layout %q: %w", name, ErrUnknownFormat)
	}
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	l, err := ReadKMahjongg(bytes.NewReader(b), base)
	if err != nil {
		return nil, err
	}
	return []Layout{*l}, nil
}

// loadKMahjonggDesktop reads the layout file referenced by the desktop file.
func loadKMahjonggDesktop(fsys fs.FS, name string, b []byte) ([]Layout, error) {
	d, err := ReadKMahjonggDesktop(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	layoutName := path.Join(path.Dir(name), d.FileName)
	f, err := fsys.Open(layoutName)
	if err != nil {
		return nil, fmt.Errorf("loading kmahjongg layout file for %q: %w", d.Name, err)
	}
	defer f.Close()
	l, err := ReadKMahjongg(f, d.Name)
	if err != nil {
		return nil, err
	}
	return []Layout{*l}, nil
}
