package layout

import (
	"embed"
	"fmt"
)

// DefaultName is the name of the layout used when no other layout is chosen.
const DefaultName = "Easy"

//go:embed builtin
var builtinFS embed.FS

// Builtin returns the layouts that are always available.
func Builtin() ([]Layout, error) {
	layouts, err := Load(builtinFS, "builtin/builtin.xml")
	if err != nil {
		return nil, fmt.Errorf("loading builtin layouts: %w", err)
	}
	return layouts, nil
}

// Default returns the builtin layout with the default name.
func Default() (*Layout, error) {
	layouts, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, l := range layouts {
		if l.Name == DefaultName {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("no builtin layout named %q", DefaultName)
}
