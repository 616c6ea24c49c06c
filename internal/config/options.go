// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/urfave/cli/v3"
)

// RawOptions is the syntactic result of command-line parsing. The *Set
// fields record whether the user passed the flag explicitly; a flag left at
// its default never overrides lower-priority sources.
type RawOptions struct {
	Host    string
	HostSet bool

	Port    int
	PortSet bool

	// ConfigPaths is nil when --config was not passed; the resolver then
	// computes the default candidate list from the environment snapshot.
	ConfigPaths []string

	IgnoreConfigErrors bool

	BindingsPath    string
	BindingsPathSet bool

	Screen    string
	ScreenSet bool

	SlaveScreen    string
	SlaveScreenSet bool
}

// HelpText is the informational text printed on --help. The program name is
// prepended by the caller.
const HelpText = `Options:
  -h, --host <arg>         connect to server at host (default: localhost)
  -p, --port <arg>         connect to server at port (default: 6600)
  -c, --config <arg>       specify configuration file(s); may be given more
                           than once (default: ~/.ncmpcpp/config and
                           $XDG_CONFIG_HOME/ncmpcpp/config)
  --ignore-config-errors   ignore unknown and invalid options in
                           configuration files
  -b, --bindings <arg>     specify bindings file (default: ~/.ncmpcpp/bindings)
  -s, --screen <arg>       specify initial screen
  -S, --slave-screen <arg> specify initial slave screen
  -?, --help               show help message
  -v, --version            display version information
`

// parseOptions performs syntax-only parsing of the argument vector into a
// RawOptions bag. It consults neither the filesystem nor the environment.
//
// --help and --version win over everything else and are reported through the
// [ErrHelpRequested] and [ErrVersionRequested] sentinels; any other parse
// failure is wrapped in a [CommandLineError].
func parseOptions(args []string) (*RawOptions, error) {
	// Terminal switches are evaluated before anything else, wherever they
	// appear in the argument vector. They are handled before argv ever
	// reaches the flag parser: cli's builtin help machinery would otherwise
	// swallow --help without running the action.
	if err := terminalSwitch(args); err != nil {
		return nil, err
	}

	var raw RawOptions

	cmd := &cli.Command{
		Name:        "ncmpcpp",
		Usage:       "featureful ncurses based MPD client",
		HideHelp:    true, // -h belongs to --host; help is a plain flag below
		HideVersion: true,
		Writer:      io.Discard, // all user-visible output is ours
		ErrWriter:   io.Discard,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"h"},
				Value:   DefaultHost,
				Usage:   "connect to server at host",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   DefaultPort,
				Usage:   "connect to server at port",
			},
			&cli.StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "specify configuration file(s)",
			},
			&cli.BoolFlag{
				Name:  "ignore-config-errors",
				Usage: "ignore unknown and invalid options in configuration files",
			},
			&cli.StringFlag{
				Name:    "bindings",
				Aliases: []string{"b"},
				Value:   "~/.ncmpcpp/bindings",
				Usage:   "specify bindings file",
			},
			&cli.StringFlag{
				Name:    "screen",
				Aliases: []string{"s"},
				Usage:   "specify initial screen",
			},
			&cli.StringFlag{
				Name:    "slave-screen",
				Aliases: []string{"S"},
				Usage:   "specify initial slave screen",
			},
			&cli.BoolFlag{
				Name:    "help",
				Aliases: []string{"?"},
				Usage:   "show help message",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "display version information",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			// Catches spellings the argv pre-scan cannot, e.g. --help=true.
			if cmd.Bool("help") {
				return ErrHelpRequested
			}
			if cmd.Bool("version") {
				return ErrVersionRequested
			}

			raw = RawOptions{
				Host:               cmd.String("host"),
				HostSet:            cmd.IsSet("host"),
				Port:               int(cmd.Int("port")),
				PortSet:            cmd.IsSet("port"),
				IgnoreConfigErrors: cmd.Bool("ignore-config-errors"),
				BindingsPath:       cmd.String("bindings"),
				BindingsPathSet:    cmd.IsSet("bindings"),
				Screen:             cmd.String("screen"),
				ScreenSet:          cmd.IsSet("screen"),
				SlaveScreen:        cmd.String("slave-screen"),
				SlaveScreenSet:     cmd.IsSet("slave-screen"),
			}
			if cmd.IsSet("config") {
				raw.ConfigPaths = cmd.StringSlice("config")
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{"ncmpcpp"}, args...)); err != nil {
		if errors.Is(err, ErrHelpRequested) || errors.Is(err, ErrVersionRequested) {
			return nil, err
		}
		return nil, &CommandLineError{Token: offendingToken(args, err), Err: err}
	}

	return &raw, nil
}

// terminalSwitch reports whether the argument vector requests help or
// version output. Help wins when both are present.
func terminalSwitch(args []string) error {
	version := false
	for _, arg := range args {
		switch arg {
		case "--help", "-?":
			return ErrHelpRequested
		case "--version", "-v":
			version = true
		}
	}
	if version {
		return ErrVersionRequested
	}
	return nil
}

// offendingToken finds the argument the parse error complains about, so the
// diagnostic can point at the exact token the user typed.
func offendingToken(args []string, err error) string {
	msg := err.Error()
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed != "" && strings.Contains(msg, trimmed) {
			return arg
		}
	}
	return ""
}
