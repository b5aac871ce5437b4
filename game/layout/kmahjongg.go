package layout

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
	"gopkg.in/ini.v1"
)

const (
	kmahjonggSection       = "KMahjonggLayout"
	kmahjonggVersionFormat = 1
	kmahjonggMagicPrefix   = "kmahjongg-layout-v"
	kmahjonggMagicV10      = kmahjonggMagicPrefix + "1.0"
	kmahjonggMagicV11      = kmahjonggMagicPrefix + "1.1"
)

// KMahjonggDesktop is the description of a KMahjongg layout.
type KMahjonggDesktop struct {
	// Name is the display name of the layout.
	Name string
	// FileName is the name of the layout file, relative to the directory of the desktop file.
	FileName string
}

// ReadKMahjonggDesktop reads the ini .desktop file that describes a KMahjongg layout.
func ReadKMahjonggDesktop(r io.Reader) (*KMahjonggDesktop, error) {
	f, err := ini.Load(r)
	if err != nil {
		return nil, fmt.Errorf("reading kmahjongg desktop file: %w", err)
	}
	s, err := f.GetSection(kmahjonggSection)
	if err != nil {
		return nil, fmt.Errorf("invalid kmahjongg desktop file: %w", err)
	}
	if s.HasKey("VersionFormat") {
		if v, _ := s.Key("VersionFormat").Int(); v > kmahjonggVersionFormat {
			return nil, fmt.Errorf("unsupported kmahjongg layout version: %v", v)
		}
	}
	d := KMahjonggDesktop{
		Name:     s.Key("Name").String(),
		FileName: s.Key("FileName").String(),
	}
	switch {
	case len(d.Name) == 0:
		return nil, fmt.Errorf("invalid kmahjongg desktop file: no layout name")
	case len(d.FileName) == 0:
		return nil, fmt.Errorf("invalid kmahjongg desktop file: no layout file name")
	}
	return &d, nil
}

// ReadKMahjongg reads a KMahjongg layout file.
// Each '1' in the data marks the top left corner of a tile in a grid of half cells, layer by layer.
// Version 1.0 files have a fixed size of 32x16x5.  Version 1.1 files declare their width, height, and depth.
func ReadKMahjongg(r io.Reader, name string) (*Layout, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading kmahjongg layout: %w", err)
		}
		return nil, fmt.Errorf("invalid kmahjongg layout: empty file")
	}
	magic := strings.TrimSpace(scanner.Text())
	var width, height, depth int
	var headers bool
	switch magic {
	case kmahjonggMagicV10:
		width, height, depth = 32, 16, 5
	case kmahjonggMagicV11:
		headers = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, magic)
	}
	var data strings.Builder
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		if !headers {
			if line[0] != '#' {
				data.WriteString(line)
			}
			continue
		}
		var dest *int
		switch line[0] {
		case '#':
			continue
		case 'w':
			dest = &width
		case 'h':
			dest = &height
		case 'd':
			dest = &depth
		default:
			data.WriteString(line)
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(line[1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid kmahjongg layout header %q: %w", line, err)
		}
		*dest = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading kmahjongg layout: %w", err)
	}
	switch {
	case width <= 0, height <= 0, depth <= 0:
		return nil, fmt.Errorf("invalid kmahjongg layout size: %vx%vx%v", width, height, depth)
	case data.Len() != width*height*depth:
		return nil, fmt.Errorf("invalid kmahjongg layout: wanted %v cells, got %v", width*height*depth, data.Len())
	}
	var positions []tile.Position
	for i, c := range []byte(data.String()) {
		if c != '1' {
			continue
		}
		p := tile.Position{
			X: tile.X(i % width),
			Y: tile.Y(i / width % height),
			Z: tile.Z(i / (width * height)),
		}
		positions = append(positions, p)
	}
	if len(positions)%2 != 0 {
		return nil, fmt.Errorf("invalid kmahjongg layout: odd number of tiles: %v", len(positions))
	}
	l := Layout{
		Name:      name,
		Positions: positions,
	}
	return &l, nil
}
