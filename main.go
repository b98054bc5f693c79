package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/envelope-zero/budget-helpers/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("Received interrupt signal, shutting down gracefully")
		cancel()
	}()

	err := cmd.NewRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
