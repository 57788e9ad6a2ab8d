package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/trainmerge/internal/cmd"
	"github.com/renato0307/trainmerge/internal/version"
)

func main() {
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("trainmerge"),
		kong.Description(version.Tagline),
		cmd.Vars(version.Info()),
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err := ctx.Run()
	cli.Close()

	var exitErr *cmd.ExitCodeError
	switch {
	case errors.As(err, &exitErr):
		os.Exit(exitErr.Code)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
