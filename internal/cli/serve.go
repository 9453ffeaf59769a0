package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/itinerary/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trip building over HTTP",
		Long: "Start an HTTP server that builds trips from posted reservation records.\n" +
			"POST /v1/trips?home=SVQ with a reservation log body, or JSON Lines with\n" +
			"Content-Type: application/x-ndjson.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}
	cmd.Flags().String("addr", defaultAddr, "listen address")
	cmd.Flags().Int64("max-body-bytes", server.DefaultMaxBodyBytes, "largest accepted request body")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	maxBody, _ := cmd.Flags().GetInt64("max-body-bytes")
	travel, stay := a.kinds()
	srv := server.New(server.Config{
		Addr:         a.v.GetString(cfgKeyAddr),
		MaxBodyBytes: maxBody,
		TravelKinds:  travel,
		StayKinds:    stay,
	}, a.logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.ListenAndServe(ctx); err != nil {
		return sysError(fmt.Errorf("serve: %w", err))
	}
	return nil
}
