package tile

import "testing"

func TestFace(t *testing.T) {
	faceTests := []struct {
		ID
		want   int
		wantOk bool
	}{
		{ID: -1},
		{ID: SetSize},
		{ID: 0, want: 0, wantOk: true},
		{ID: 5, want: 1, wantOk: true},
		{ID: 131, want: 32, wantOk: true},
		{ID: 132, want: 33, wantOk: true},
		{ID: 135, want: 36, wantOk: true},
		{ID: 136, want: 37, wantOk: true},
		{ID: 139, want: 37, wantOk: true},
		{ID: 140, want: 38, wantOk: true},
		{ID: 143, want: NumFaces - 1, wantOk: true},
	}
	for i, test := range faceTests {
		got, ok := test.ID.Face()
		switch {
		case test.wantOk != ok:
			t.Errorf("Test %v: wanted ok %v, got %v", i, test.wantOk, ok)
		case test.want != got:
			t.Errorf("Test %v: wanted face %v, got %v", i, test.want, got)
		}
	}
}
