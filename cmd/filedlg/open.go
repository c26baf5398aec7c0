//go:build windows

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/winshell/filedialog"
	"github.com/winshell/filedialog/internal/appargs"
	"github.com/winshell/filedialog/internal/presets"
)

var dialogFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "default-path",
		Usage: "folder to open in when the user has no recent choice",
	},
	cli.StringSliceFlag{
		Name:  "filter",
		Usage: "file type filter as name:pattern (repeatable)",
	},
	cli.StringFlag{
		Name:  "filename",
		Usage: "file name to prefill",
	},
	cli.StringFlag{
		Name:  "presets",
		Usage: "TOML file of named filter presets",
	},
	cli.StringFlag{
		Name:  "preset",
		Usage: "preset to apply from the --presets file",
	},
}

var openCommand = cli.Command{
	Name:      "open",
	Usage:     "show an open dialog and print the chosen path",
	ArgsUsage: "[folder]",
	Before:    appargs.Validate(appargs.Optional),
	Flags:     dialogFlags,
	Action: func(context *cli.Context) error {
		b := filedialog.NewOpenDialogBuilder().InitRuntime()
		if folder := context.Args().First(); folder != "" {
			b.Path(folder)
		}
		if p := context.String("default-path"); p != "" {
			b.DefaultPath(p)
		}
		if name := context.String("filename"); name != "" {
			b.FileName(name)
		}
		if err := applyFilters(context, func(name, pattern string) { b.Filter(name, pattern) }); err != nil {
			return err
		}

		path, err := b.Execute()
		if err != nil {
			if filedialog.IsCancelled(err) {
				return cli.NewExitError("cancelled", 2)
			}
			return err
		}
		fmt.Println(path)
		return nil
	},
}

// applyFilters feeds --filter pairs and the selected preset into add, in
// command line order then preset file order.
func applyFilters(context *cli.Context, add func(name, pattern string)) error {
	for _, f := range context.StringSlice("filter") {
		name, pattern, ok := strings.Cut(f, ":")
		if !ok || name == "" || pattern == "" {
			return errors.Errorf("invalid filter %q, expected name:pattern", f)
		}
		add(name, pattern)
	}

	file := context.String("presets")
	name := context.String("preset")
	if name == "" {
		return nil
	}
	if file == "" {
		return errors.New("--preset requires --presets")
	}
	pf, err := presets.Load(file)
	if err != nil {
		return err
	}
	entries, err := pf.Get(name)
	if err != nil {
		return err
	}
	for _, e := range entries {
		add(e.Name, e.Pattern)
	}
	return nil
}
