// Package cli implements the itinerary command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// usageExample is printed with input errors.
const usageExample = "usage: BASED=SVQ itinerary build input.txt"

// exitError carries the exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by the root command to a process exit
// code. Errors without an explicit code are usage errors raised by cobra.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// app holds the state shared by subcommands for one invocation.
type app struct {
	configDir string
	v         *viper.Viper
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "itinerary" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "itinerary",
		Short: "Stitch travel and lodging records into round trips",
		Long: "Itinerary reads reservation records (flights, trains, hotels) and groups\n" +
			"them into trips that leave from and return to a home location.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// init writes the config file and version needs none.
			if cmd.Name() == "version" || cmd.Name() == "init" {
				return nil
			}
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/itinerary)")
	pf.String("home", "", "home location trips start from (env BASED)")
	pf.String("source", defaultSource, "record source: text, jsonl or sqlite")
	pf.String("format", defaultFormat, "output format: text, json or yaml")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn or error")
	pf.String("log-format", defaultLogFormat, "log format: text or json")

	root.AddCommand(newBuildCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
