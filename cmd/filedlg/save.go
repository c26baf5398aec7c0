//go:build windows

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/winshell/filedialog"
	"github.com/winshell/filedialog/internal/appargs"
)

var saveCommand = cli.Command{
	Name:      "save",
	Usage:     "show a save dialog and print the chosen path",
	ArgsUsage: "[folder]",
	Before:    appargs.Validate(appargs.Optional),
	Flags:     dialogFlags,
	Action: func(context *cli.Context) error {
		b := filedialog.NewSaveDialogBuilder().InitRuntime()
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
