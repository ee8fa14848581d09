package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jigsaw-gen/jigsaw/internal/httpapi"
	"github.com/jigsaw-gen/jigsaw/internal/logger"
)

func serveCmd() *cobra.Command {
	var (
		addr         string
		apiToken     string
		rateLimitRPS float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP facade over the generators (SPEC_FULL.md §7)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiToken == "" {
				apiToken = cfg.APIToken
			}
			if apiToken == "" {
				apiToken = os.Getenv("JIGSAW_API_TOKEN")
			}
			srv := &httpapi.Server{
				APIToken:     apiToken,
				RateLimitRPS: rateLimitRPS,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Warn("shutting down httpapi")
				srv.Close()
			}()

			if err := srv.Start(addr); err != nil {
				return internalErr(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8877", "listen address")
	cmd.Flags().StringVar(&apiToken, "api-token", "", "HS256 secret that request bearer tokens must be signed with (default: config file, then JIGSAW_API_TOKEN env var)")
	cmd.Flags().Float64Var(&rateLimitRPS, "rate-limit", float64(cfg.RateLimitRPS), "sustained requests per second per remote address")
	return cmd
}
