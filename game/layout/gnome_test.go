package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
)

func TestReadGnome(t *testing.T) {
	readGnomeTests := []struct {
		xml    string
		wantOk bool
		want   []Layout
	}{
		{
			xml: `not xml`,
		},
		{ // wrong root
			xml: `<maps><map name="a"/></maps>`,
		},
		{
			xml:    `<mahjongg></mahjongg>`,
			wantOk: true,
			want:   []Layout{},
		},
		{ // unknown item
			xml: `<mahjongg><map name="a"><circle x="1"/></map></mahjongg>`,
		},
		{ // bad coordinate
			xml: `<mahjongg><map name="a"><tile x="one" y="0"/><tile x="1" y="0"/></map></mahjongg>`,
		},
		{ // odd tile count
			xml: `<mahjongg><map name="a"><tile x="1" y="0"/></map></mahjongg>`,
		},
		{
			xml: `<mahjongg>
				<map name="half">
					<tile x="0.5" y="1"/>
					<tile x="2" y="1.5"/>
				</map>
			</mahjongg>`,
			wantOk: true,
			want: []Layout{
				{
					Name: "half",
					Positions: []tile.Position{
						{X: 1, Y: 2},
						{X: 4, Y: 3},
					},
				},
			},
		},
		{ // items in order, with layers and z overrides
			xml: `<mahjongg>
				<map scorename="mixed">
					<row left="0" right="2" y="0"/>
					<layer z="1">
						<column x="1" top="0" bottom="1"/>
						<tile x="5" y="5" z="3"/>
					</layer>
					<block left="4" right="5" top="0" bottom="1" z="2"/>
					<tile x="9" y="9"/>
					<tile x="9" y="8"/>
				</map>
			</mahjongg>`,
			wantOk: true,
			want: []Layout{
				{
					Name: "mixed",
					Positions: []tile.Position{
						{X: 0, Y: 0, Z: 0},
						{X: 2, Y: 0, Z: 0},
						{X: 4, Y: 0, Z: 0},
						{X: 2, Y: 0, Z: 1},
						{X: 2, Y: 2, Z: 1},
						{X: 10, Y: 10, Z: 3},
						{X: 8, Y: 0, Z: 2},
						{X: 8, Y: 2, Z: 2},
						{X: 10, Y: 0, Z: 2},
						{X: 10, Y: 2, Z: 2},
						{X: 18, Y: 18, Z: 0},
						{X: 18, Y: 16, Z: 0},
					},
				},
			},
		},
	}
	for i, test := range readGnomeTests {
		got, err := ReadGnome(strings.NewReader(test.xml))
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case !reflect.DeepEqual(test.want, got):
			t.Errorf("Test %v:\nwanted %v\ngot    %v", i, test.want, got)
		}
	}
}

func TestReadGnomeMultipleMaps(t *testing.T) {
	xml := `<?xml version="1.0"?>
	<mahjongg>
		<map name="a"><row left="0" right="1" y="0"/></map>
		<map name="b"><column x="0" top="0" bottom="3"/></map>
	</mahjongg>`
	got, err := ReadGnome(strings.NewReader(xml))
	switch {
	case err != nil:
		t.Errorf("unwanted error: %v", err)
	case len(got) != 2:
		t.Errorf("wanted 2 layouts, got %v", got)
	case got[0].Name != "a", len(got[0].Positions) != 2:
		t.Errorf("unexpected first layout: %v", got[0])
	case got[1].Name != "b", len(got[1].Positions) != 4:
		t.Errorf("unexpected second layout: %v", got[1])
	}
}
