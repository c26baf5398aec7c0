//go:build windows

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/winshell/filedialog/internal/appargs"
	"github.com/winshell/filedialog/internal/shell"
	"github.com/winshell/filedialog/internal/wstr"
)

var resolveCommand = cli.Command{
	Name:      "resolve",
	Usage:     "resolve a path to absolute form and print it with its filename part",
	ArgsUsage: "<path>",
	Before:    appargs.Validate(appargs.NonEmptyString),
	Action: func(context *cli.Context) error {
		wp, err := wstr.New(wstr.Path(context.Args().First()))
		if err != nil {
			return err
		}
		full, idx, err := shell.GetFullPathName(&wp.WideStr)
		if err != nil {
			return err
		}
		fmt.Println(full.String())
		if idx >= 0 {
			fmt.Printf("filename: %s\n", full.Suffix(idx).String())
		}
		return nil
	},
}
