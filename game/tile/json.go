package tile

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the encoding/json.Marshaler interface to marshal positions into compact [x,y,z] arrays.
func (p Position) MarshalJSON() ([]byte, error) {
	a := [3]int{int(p.X), int(p.Y), int(p.Z)}
	return json.Marshal(a)
}

// UnmarshalJSON implements the encoding/json.UnMarshaler interface to unmarshal positions from [x,y,z] arrays.
func (p *Position) UnmarshalJSON(b []byte) error {
	var a []int
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a) != 3 {
		return fmt.Errorf("position must have 3 coordinates, got %v", len(a))
	}
	for _, c := range a {
		if c < 0 {
			return fmt.Errorf("position coordinates must not be negative: %v", a)
		}
	}
	p.X, p.Y, p.Z = X(a[0]), Y(a[1]), Z(a[2])
	return nil
}
