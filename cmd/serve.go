package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/envelope-zero/budget-helpers/internal/config"
	"github.com/envelope-zero/budget-helpers/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long:  "Serve the HTTP API on the configured port until an interrupt or termination signal is received.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln, err := net.Listen("tcp", fmt.Sprintf(":%d", o.cfg.Port))
			if err != nil {
				return fmt.Errorf("could not listen on port %d: %w", o.cfg.Port, err)
			}

			return serve(cmd.Context(), o.cfg, ln)
		},
	}
}

// serve serves the API on ln until ctx is done.
func serve(ctx context.Context, cfg config.Config, ln net.Listener) error {
	r, teardown, err := router.Config(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(cfg, r.Group("/"))

	server := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", ln.Addr().String()).Msg("Listening")
		errs <- server.Serve(ln)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
