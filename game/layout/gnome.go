package layout

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

type (
	// gnomeFile is the root element of a GNOME Mahjongg map file.
	gnomeFile struct {
		XMLName xml.Name   `xml:"mahjongg"`
		Maps    []gnomeMap `xml:"map"`
	}

	// gnomeMap is a single layout in a GNOME Mahjongg map file.
	gnomeMap struct {
		name  string
		items []gnomeItem
	}

	// gnomeItem is a layer, row, column, block, or tile element.
	// The items are kept in document order.
	gnomeItem struct {
		kind     string
		attrs    map[string]string
		children []gnomeItem
	}
)

// ReadGnome reads the layouts in a GNOME Mahjongg xml map file.
// Coordinates in the file are in cells, and may end in ".5" to place tiles on half cells.
func ReadGnome(r io.Reader) ([]Layout, error) {
	var f gnomeFile
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("reading gnome mahjongg map file: %w", err)
	}
	layouts := make([]Layout, 0, len(f.Maps))
	for _, m := range f.Maps {
		var positions []tile.Position
		for _, item := range m.items {
			var err error
			positions, err = item.appendPositions(positions, 0)
			if err != nil {
				return nil, fmt.Errorf("reading map %q: %w", m.name, err)
			}
		}
		if len(positions)%2 != 0 {
			return nil, fmt.Errorf("reading map %q: odd number of tiles: %v", m.name, len(positions))
		}
		l := Layout{
			Name:      m.name,
			Positions: positions,
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

// UnmarshalXML implements the encoding/xml.Unmarshaler interface to keep the items of the map in order.
func (m *gnomeMap) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	attrs := xmlAttrs(start)
	m.name = attrs["name"]
	if len(m.name) == 0 {
		m.name = attrs["scorename"]
	}
	items, err := decodeGnomeItems(d)
	if err != nil {
		return err
	}
	m.items = items
	return nil
}

// decodeGnomeItems reads the child elements of the current element until it ends.
func decodeGnomeItems(d *xml.Decoder) ([]gnomeItem, error) {
	var items []gnomeItem
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			children, err := decodeGnomeItems(d)
			if err != nil {
				return nil, err
			}
			item := gnomeItem{
				kind:     t.Name.Local,
				attrs:    xmlAttrs(t),
				children: children,
			}
			items = append(items, item)
		case xml.EndElement:
			return items, nil
		}
	}
}

// xmlAttrs creates a map of the local attribute names of the element to their values.
func xmlAttrs(e xml.StartElement) map[string]string {
	attrs := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		attrs[a.Name.Local] = a.Value
	}
	return attrs
}

// appendPositions adds the positions of the item to the positions.
// Items without a z attribute use the z of the layer they are in.
func (item gnomeItem) appendPositions(positions []tile.Position, layerZ int) ([]tile.Position, error) {
	z := layerZ
	if s, ok := item.attrs["z"]; ok {
		z2, err := strconv.Atoi(s)
		if err != nil || z2 < 0 {
			return nil, fmt.Errorf("invalid z on %v: %q", item.kind, s)
		}
		z = z2
	}
	if item.kind == "layer" {
		for _, child := range item.children {
			var err error
			positions, err = child.appendPositions(positions, z)
			if err != nil {
				return nil, err
			}
		}
		return positions, nil
	}
	var names []string
	switch item.kind {
	case "row":
		names = []string{"left", "right", "y", "y"}
	case "column":
		names = []string{"x", "x", "top", "bottom"}
	case "block":
		names = []string{"left", "right", "top", "bottom"}
	case "tile":
		names = []string{"x", "x", "y", "y"}
	default:
		return nil, fmt.Errorf("unknown item: %q", item.kind)
	}
	var c [4]int
	for i, name := range names {
		v, err := item.coordinate(name)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	for x := c[0]; x <= c[1]; x += 2 {
		for y := c[2]; y <= c[3]; y += 2 {
			p := tile.Position{X: tile.X(x), Y: tile.Y(y), Z: tile.Z(z)}
			positions = append(positions, p)
		}
	}
	return positions, nil
}

// coordinate reads the named attribute of the item in half cells.
// Attributes that are not present are zero.
func (item gnomeItem) coordinate(name string) (int, error) {
	s, ok := item.attrs[name]
	if !ok {
		return 0, nil
	}
	half := 0
	whole := s
	if strings.HasSuffix(s, ".5") {
		half = 1
		whole = strings.TrimSuffix(s, ".5")
	}
	v, err := strconv.Atoi(whole)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %v on %v: %q", name, item.kind, s)
	}
	return v*2 + half, nil
}
