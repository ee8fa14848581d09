package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/logger"
	"github.com/jigsaw-gen/jigsaw/internal/markov"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

func loadMarkovModel(path string) (*markov.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markov.Load(f)
}

func markovCmd() *cobra.Command {
	var (
		modelPath  string
		outputPath string
		count      int
		minLen     int
		maxLen     int
		seed       int64
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "markov",
		Short: "Sample candidates from a trained Markov model (spec.md §4.3)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelPath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--model is required")}
			}
			if outputPath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--output is required")}
			}
			if count <= 0 {
				return codedError{code: exitInputError, err: fmt.Errorf("--count must be positive")}
			}

			m, err := loadMarkovModel(modelPath)
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

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			notifyCancelOnSignal(cancel)

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			logger.Info("sampling from model", "model", modelPath, "count", count, "seed", seed)
			genErr := markov.Sample(ctx, m, count, minLen, maxLen, seed, workers, snk, 0)
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

	cmd.Flags().StringVar(&modelPath, "model", "", "trained model path")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().IntVar(&count, "count", 0, "number of candidates to sample")
	cmd.Flags().IntVar(&minLen, "min-len", 0, "minimum candidate length (0 = model default)")
	cmd.Flags().IntVar(&maxLen, "max-len", 0, "maximum candidate length (0 = model default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 = derive from current time)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	return cmd
}
