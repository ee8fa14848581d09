package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/logger"
	"github.com/jigsaw-gen/jigsaw/internal/mask"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

func maskCmd() *cobra.Command {
	var (
		maskStr    string
		outputPath string
		workers    int
		charset1   string
		charset2   string
		charset3   string
		charset4   string
	)

	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Enumerate candidates from a mask (spec.md §4.2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if maskStr == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("-m/--mask is required")}
			}
			if outputPath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--output is required")}
			}

			charsets := mask.DefaultCharsets()
			if charset1 != "" {
				charsets.Custom1 = charset1
			}
			if charset2 != "" {
				charsets.Custom2 = charset2
			}
			if charset3 != "" {
				charsets.Custom3 = charset3
			}
			if charset4 != "" {
				charsets.Custom4 = charset4
			}

			spec, err := mask.Parse(maskStr, charsets)
			if err != nil {
				return codedError{code: exitInputError, err: err}
			}

			total, err := spec.Total()
			if err != nil {
				return codedError{code: exitInputError, err: err}
			}
			logger.Info("mask parsed", "mask", maskStr, "total", humanize.Comma(total))

			f, err := os.Create(outputPath)
			if err != nil {
				return ioErr(err)
			}
			defer f.Close()

			snk := sink.New(f, sink.DefaultChannelDepth)
			snk.Run()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			notifyCancelOnSignal(cancel)

			genErr := mask.Enumerate(ctx, spec, snk, workers, 0)
			snk.Close()
			waitErr := snk.Wait()
			if waitErr != nil {
				return ioErr(waitErr)
			}
			if genErr != nil && genErr != context.Canceled {
				return internalErr(genErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&maskStr, "mask", "m", "", "mask string, e.g. ?l?l?d?d")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	cmd.Flags().StringVar(&charset1, "charset1", cfg.Charset1, "custom charset for ?1")
	cmd.Flags().StringVar(&charset2, "charset2", cfg.Charset2, "custom charset for ?2")
	cmd.Flags().StringVar(&charset3, "charset3", cfg.Charset3, "custom charset for ?3")
	cmd.Flags().StringVar(&charset4, "charset4", cfg.Charset4, "custom charset for ?4")
	return cmd
}

// notifyCancelOnSignal cancels on SIGINT/SIGTERM so workers finish
// their current batch and exit cleanly (spec.md §5).
func notifyCancelOnSignal(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("received interrupt, finishing current batch")
		cancel()
	}()
}
