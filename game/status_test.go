package game

import "testing"

func TestStatusString(t *testing.T) {
	statusStringTests := []struct {
		Status
		want string
	}{
		{0, "?"},
		{InProgress, "In Progress"},
		{Finished, "Finished"},
		{Stuck, "Stuck"},
		{Stuck + 1, "?"},
		{-1, "?"},
	}
	for i, test := range statusStringTests {
		if got := test.Status.String(); test.want != got {
			t.Errorf("Test %v: wanted status string %q for status %d, got %q", i, test.want, int(test.Status), got)
		}
	}
}
