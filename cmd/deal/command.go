package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/jacobpatterson1549/selene-mahjongg/game/generator"
	"github.com/jacobpatterson1549/selene-mahjongg/game/layout"
	"github.com/urfave/cli/v3"
)

// layoutsDir is the directory under the xdg data directories that holds layout files.
const layoutsDir = "selene-mahjongg/layouts"

// newCommand creates the command that writes deals to w.
func newCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "deal",
		Usage: "deal a solvable mahjongg solitaire board",
		Description: "Layouts are builtin or read from files in the " + layoutsDir + " directory of the xdg data directories.\n" +
			"The same layout, seed, and max steps always deal the same board.",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Value:   layout.DefaultName,
				Usage:   "the name of a builtin layout, or a layout file in the layouts data directory or at a path",
				Sources: cli.EnvVars("MAHJONGG_LAYOUT"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "the random seed to deal the board with, picked randomly if not set",
			},
			&cli.IntFlag{
				Name:    "max-steps",
				Value:   200000,
				Usage:   "the maximum number of placements tried for each seed, zero does not limit the search",
				Sources: cli.EnvVars("MAX_STEPS"),
			},
			&cli.IntFlag{
				Name:    "retries",
				Value:   8,
				Usage:   "the number of following seeds tried if a board cannot be dealt from a seed",
				Sources: cli.EnvVars("DEAL_RETRIES"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatYAML,
				Usage:   "the output format: yaml or json",
			},
			&cli.BoolFlag{
				Name:  "solution",
				Usage: "include the order to remove the tiles",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list the builtin layouts and the files in the layouts data directories instead of dealing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("list") {
				return listLayouts(cmd.Root().Writer)
			}
			seed := randomSeed()
			if cmd.IsSet("seed") {
				seed = cmd.Int64("seed")
			}
			cfg := generator.DealConfig{
				MaxSteps: cmd.Int("max-steps"),
				Retries:  cmd.Int("retries"),
			}
			l, err := findLayout(cmd.String("layout"))
			if err != nil {
				return err
			}
			d, err := cfg.Deal(l.Positions, seed)
			if err != nil {
				return err
			}
			out := newDealOutput(*l, *d, cmd.Bool("solution"))
			return out.write(cmd.Root().Writer, cmd.String("format"))
		},
	}
}

// findLayout gets the builtin layout with the name, or loads the layout file with the name.
// Files are looked for in the layouts data directories before the name is used as a path.
// The first layout in files with many layouts is used.
func findLayout(name string) (*layout.Layout, error) {
	builtin, err := layout.Builtin()
	if err != nil {
		return nil, err
	}
	for _, l := range builtin {
		if l.Name == name {
			return &l, nil
		}
	}
	path, err := xdg.SearchDataFile(filepath.Join(layoutsDir, name))
	if err != nil {
		if _, err2 := os.Stat(name); err2 != nil {
			return nil, fmt.Errorf("no builtin layout or layout file named %q", name)
		}
		path = name
	}
	layouts, err := layout.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	switch {
	case err != nil:
		return nil, err
	case len(layouts) == 0:
		return nil, fmt.Errorf("no layouts in %v", path)
	}
	l := layouts[0]
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("layout %q in %v: %w", l.Name, path, err)
	}
	return &l, nil
}

// listLayouts writes the names of the builtin layouts and files in the layouts data directories.
func listLayouts(w io.Writer) error {
	builtin, err := layout.Builtin()
	if err != nil {
		return err
	}
	for _, l := range builtin {
		fmt.Fprintf(w, "%v (builtin, %v tiles)\n", l.Name, len(l.Positions))
	}
	var names []string
	for _, dir := range append([]string{xdg.DataHome}, xdg.DataDirs...) {
		entries, err := os.ReadDir(filepath.Join(dir, layoutsDir))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

// randomSeed picks a seed for deals that do not specify one.
func randomSeed() int64 {
	return rand.Int63()
}
