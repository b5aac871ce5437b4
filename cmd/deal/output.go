package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/selene-mahjongg/game/board"
	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/jacobpatterson1549/selene-mahjongg/game/tile"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type (
	// dealOutput is the written form of a deal.
	dealOutput struct {
		Layout   string           `json:"layout" yaml:"layout"`
		Seed     int64            `json:"seed" yaml:"seed"`
		Width    int              `json:"width" yaml:"width"`
		Height   int              `json:"height" yaml:"height"`
		Tiles    []tileOutput     `json:"tiles" yaml:"tiles"`
		Solution []board.Match    `json:"solution,omitempty" yaml:"solution,omitempty"`
		Stats    *generator.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	}

	// tileOutput is a tile of a deal.
	tileOutput struct {
		Index    int           `json:"index" yaml:"index"`
		ID       tile.ID       `json:"id" yaml:"id"`
		Face     int           `json:"face" yaml:"face"`
		Position tile.Position `json:"position" yaml:"position,flow"`
	}
)

// newDealOutput creates the output for the deal of the layout.
func newDealOutput(l layout.Layout, d generator.Deal, withSolution bool) dealOutput {
	width, height := l.Size()
	out := dealOutput{
		Layout: l.Name,
		Seed:   d.Seed,
		Width:  width,
		Height: height,
		Tiles:  make([]tileOutput, d.Board.Len()),
	}
	for i, t := range d.Board.Tiles() {
		face, _ := t.ID.Face()
		out.Tiles[i] = tileOutput{
			Index:    i,
			ID:       t.ID,
			Face:     face,
			Position: t.Position,
		}
	}
	if withSolution {
		out.Solution = d.Solution.Removals
		stats := d.Solution.Stats
		out.Stats = &stats
	}
	return out
}

// write encodes the output in the format.
func (out dealOutput) write(w io.Writer, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q, wanted %v or %v", format, formatYAML, formatJSON)
}
