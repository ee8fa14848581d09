package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jigsaw-gen/jigsaw/internal/logger"
	"github.com/jigsaw-gen/jigsaw/internal/personal"
	"github.com/jigsaw-gen/jigsaw/internal/profile"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// readPasswordSecurely prompts on stderr and reads a password from the
// controlling terminal without echoing it, for --check -.
func readPasswordSecurely() (string, error) {
	fmt.Fprint(os.Stderr, "password to check: ")
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal, cannot prompt securely")
	}
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func personalCmd() *cobra.Command {
	var (
		profilePath string
		outputPath  string
		checkTarget string
		minLen      int
		maxLen      int
		dedupCap    int
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "personal",
		Short: "Generate or check candidates from a profile (spec.md §4.4)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profilePath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--profile is required")}
			}

			opts := personal.Options{MinLen: minLen, MaxLen: maxLen, DedupCap: dedupCap}

			if checkTarget != "" {
				if checkTarget == "-" {
					pw, err := readPasswordSecurely()
					if err != nil {
						return codedError{code: exitInputError, err: err}
					}
					checkTarget = pw
				}
				p, err := profile.Load(profilePath)
				if err != nil {
					return codedError{code: exitInputError, err: err}
				}
				result := personal.Check(p, checkTarget, opts)
				if result.Found {
					fmt.Printf("FOUND pattern=%s\n", result.Pattern)
				} else {
					fmt.Println("NOT FOUND")
				}
				return nil
			}

			if outputPath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--output is required")}
			}

			run := func(ctx context.Context) error {
				p, err := profile.Load(profilePath)
				if err != nil {
					return codedError{code: exitInputError, err: err}
				}

				f, err := os.Create(outputPath)
				if err != nil {
					return ioErr(err)
				}
				defer f.Close()

				snk := sink.New(f, sink.DefaultChannelDepth)
				snk.Run()

				genErr := personal.Generate(ctx, p, opts, snk)
				snk.Close()
				waitErr := snk.Wait()
				if waitErr != nil {
					return ioErr(waitErr)
				}
				if genErr != nil && genErr != context.Canceled {
					return internalErr(genErr)
				}
				return nil
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			notifyCancelOnSignal(cancel)

			if !watch {
				return run(ctx)
			}
			return watchAndRun(ctx, profilePath, run)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "profile JSON/YAML file")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&checkTarget, "check", "", "check a single password against the profile instead of generating (\"-\" prompts securely)")
	cmd.Flags().IntVar(&minLen, "min-len", cfg.MinCandLen, "minimum candidate length")
	cmd.Flags().IntVar(&maxLen, "max-len", cfg.MaxCandLen, "maximum candidate length")
	cmd.Flags().IntVar(&dedupCap, "dedup-cap", cfg.DedupCap, "maximum number of candidates tracked for deduplication")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run generation whenever the profile file changes")
	return cmd
}

// watchAndRun runs fn once, then again each time path changes on disk,
// until ctx is cancelled (spec.md §7's --watch mode).
func watchAndRun(ctx context.Context, path string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return internalErr(err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return internalErr(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("profile changed, regenerating", "path", path)
			if err := fn(ctx); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}
