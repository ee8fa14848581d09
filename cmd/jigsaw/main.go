// Command jigsaw generates password-candidate wordlists via the mask,
// Markov, and personal generators (spec.md §1).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/config"
	"github.com/jigsaw-gen/jigsaw/internal/logger"
)

// Exit codes per spec.md §7.
const (
	exitOK           = 0
	exitInputError   = 2
	exitIOError      = 3
	exitInternalErr  = 4
)

var (
	logLevelFlag string
	logFileFlag  string

	// cfg holds the merged user+project configuration (SPEC_FULL.md §7),
	// loaded once at startup and used to seed subcommand flag defaults.
	cfg = &config.Config{}
)

func loadConfig() error {
	userDir, err := config.GetUserConfigDir()
	if err != nil {
		return err
	}
	projectDir, err := config.GetProjectDir()
	if err != nil {
		return err
	}
	mgr := config.NewManager()
	if err := mgr.Load(userDir, projectDir); err != nil {
		return err
	}
	cfg = mgr.Get()
	return nil
}

func main() {
	// Loaded eagerly, before subcommands are constructed below, so their
	// flag defaults (e.g. --max-line-len, --dedup-cap) can read from cfg.
	if err := loadConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load config, using built-in defaults:", err)
	}

	root := &cobra.Command{
		Use:   "jigsaw",
		Short: "JIGSAW — password-candidate wordlist generator",
		Long:  "Generates password-candidate wordlists via mask, Markov, and personal-profile engines for offensive-security assessments.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevelFlag, logFileFlag)
		},
	}
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "additionally append logs to this file")

	root.AddCommand(
		maskCmd(),
		trainCmd(),
		markovCmd(),
		personalCmd(),
		modelsCmd(),
		serveCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return exitInputError
}

// exitCoder lets a command-layer error carry its own exit code
// (spec.md §7's taxonomy), defaulting to 2 (input error) otherwise.
type exitCoder interface {
	error
	ExitCode() int
}

type codedError struct {
	code int
	err  error
}

func (e codedError) Error() string { return e.err.Error() }
func (e codedError) ExitCode() int { return e.code }
func (e codedError) Unwrap() error { return e.err }

func ioErr(err error) error       { return codedError{code: exitIOError, err: err} }
func internalErr(err error) error { return codedError{code: exitInternalErr, err: err} }

// userConfigDir resolves ~/.jigsaw, used by models/config commands.
func userConfigDir() (string, error) {
	return config.GetUserConfigDir()
}
