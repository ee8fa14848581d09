package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/config"
	"github.com/jigsaw-gen/jigsaw/internal/logger"
	"github.com/jigsaw-gen/jigsaw/internal/markov"
	"github.com/jigsaw-gen/jigsaw/internal/modelstore"
)

func trainCmd() *cobra.Command {
	var (
		corpusPath  string
		modelPath   string
		order       int
		maxLineLen  int
		registerDB  bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Markov model from a corpus and write it to disk (spec.md §4.3)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if corpusPath == "" {
				return codedError{code: exitInputError, err: fmt.Errorf("--train is required")}
			}
			if modelPath == "" {
				modelPath = "markov.json"
			}

			f, err := os.Open(corpusPath)
			if err != nil {
				return ioErr(err)
			}
			defer f.Close()

			m, err := markov.Train(f, order, maxLineLen)
			if err != nil {
				return codedError{code: exitInputError, err: err}
			}

			out, err := os.Create(modelPath)
			if err != nil {
				return ioErr(err)
			}
			defer out.Close()
			if err := markov.Save(out, m); err != nil {
				return ioErr(err)
			}

			logger.Info("model trained", "model", modelPath, "order", order, "min_len", m.MinLen, "max_len", m.MaxLen)

			if registerDB {
				cfgDir, err := userConfigDir()
				if err != nil {
					return internalErr(err)
				}
				store, err := modelstore.Open(config.ModelRegistryPath(cfgDir))
				if err != nil {
					return internalErr(err)
				}
				defer store.Close()
				if _, err := f.Seek(0, io.SeekStart); err != nil {
					return ioErr(err)
				}
				corpusLines := 0
				sc := bufio.NewScanner(f)
				sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
				for sc.Scan() {
					corpusLines++
				}
				absPath, _ := filepath.Abs(modelPath)
				if _, err := store.Insert(modelstore.ModelInfo{
					Path:        absPath,
					Order:       m.Order,
					MinLen:      m.MinLen,
					MaxLen:      m.MaxLen,
					CorpusLines: corpusLines,
				}); err != nil {
					return internalErr(err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "train", "", "line-oriented training corpus")
	cmd.Flags().StringVar(&modelPath, "model", "", "output model path (default markov.json)")
	cmd.Flags().IntVar(&order, "order", 3, "n-gram order")
	cmd.Flags().IntVar(&maxLineLen, "max-line-len", cfg.MaxTrainLineLen, "truncate corpus lines longer than this")
	cmd.Flags().BoolVar(&registerDB, "register", true, "record the trained model in the model registry")
	return cmd
}
