package tile

import (
	"encoding/json"
	"testing"
)

func TestMarshalPosition(t *testing.T) {
	marshalPositionTests := []struct {
		Position
		want string
	}{
		{
			want: `[0,0,0]`,
		},
		{
			Position: Position{X: 3, Y: 14, Z: 2},
			want:     `[3,14,2]`,
		},
	}
	for i, test := range marshalPositionTests {
		got, err := json.Marshal(test.Position)
		switch {
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != string(got):
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, string(got))
		}
	}
}

func TestUnmarshalPosition(t *testing.T) {
	unmarshalPositionTests := []struct {
		json   string
		want   Position
		wantOk bool
	}{
		{
			json: `{"x":1}`,
		},
		{
			json: `[1,2]`,
		},
		{
			json: `[1,-2,0]`,
		},
		{
			json:   `[1,2,3]`,
			want:   Position{X: 1, Y: 2, Z: 3},
			wantOk: true,
		},
	}
	for i, test := range unmarshalPositionTests {
		var got Position
		err := json.Unmarshal([]byte(test.json), &got)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != got:
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}

func TestTileJSON(t *testing.T) {
	tile := New(9, Position{X: 2, Y: 4, Z: 0})
	want := `{"id":9,"position":[2,4,0],"visible":true}`
	got, err := json.Marshal(tile)
	switch {
	case err != nil:
		t.Errorf("unwanted error: %v", err)
	case want != string(got):
		t.Errorf("wanted %v, got %v", want, string(got))
	}
}
