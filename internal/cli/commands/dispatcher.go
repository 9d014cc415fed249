package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Lumme/internal/config"
)

// Exit codes returned by Dispatch.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Dispatch is the single entry point to execute CLI commands.
// args are the positional arguments left after global flag parsing
// (flag.Args()); only args[0] is treated as a help switch, so "-h"
// given to a subcommand reaches that subcommand.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "-h", "-help", "--help":
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	case "help": // lumme help [command]
		return dispatchHelp(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		return unknownCommand(name)
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitFailure
	}
}

func dispatchHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		return unknownCommand(args[0])
	}
	fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
	return exitOK
}

func unknownCommand(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}
