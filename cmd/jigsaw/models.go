package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/config"
	"github.com/jigsaw-gen/jigsaw/internal/modelstore"
)

func modelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect the trained-model registry (spec.md §4.8)",
	}
	cmd.AddCommand(modelsListCmd(), modelsShowCmd())
	return cmd
}

func openDefaultStore() (*modelstore.Store, error) {
	cfgDir, err := userConfigDir()
	if err != nil {
		return nil, err
	}
	return modelstore.Open(config.ModelRegistryPath(cfgDir))
}

func modelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered model",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openDefaultStore()
			if err != nil {
				return internalErr(err)
			}
			defer store.Close()

			models, err := store.List()
			if err != nil {
				return internalErr(err)
			}
			for _, m := range models {
				fmt.Printf("%d\t%s\torder=%d\tlen=[%d,%d]\ttrained=%s\n",
					m.ID, m.Path, m.Order, m.MinLen, m.MaxLen, m.TrainedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func modelsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <model-path>",
		Short: "Show a single registered model by its on-disk path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openDefaultStore()
			if err != nil {
				return internalErr(err)
			}
			defer store.Close()

			m, err := store.Get(args[0])
			if err != nil {
				return codedError{code: exitInputError, err: err}
			}
			fmt.Printf("id: %d\npath: %s\norder: %d\nmin_len: %d\nmax_len: %d\ncorpus_lines: %d\ntrained_at: %s\n",
				m.ID, m.Path, m.Order, m.MinLen, m.MaxLen, m.CorpusLines, m.TrainedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
