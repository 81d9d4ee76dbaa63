package cli

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundkeeper/backend/pkg/router"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type serveCmd struct {
	addr    string
	timeout time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-addr <address>] [-shutdown-timeout <duration>]

  Migrates the database and serves the API until SIGINT or SIGTERM is
  received. The API is served below the path of API_URL.
`
}

func (s *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.addr, "addr", ":8080", "Address to listen on.")
	f.DurationVar(&s.timeout, "shutdown-timeout", 10*time.Second, "Time to wait for open requests on shutdown.")
}

func (s *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg, err := setup(os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("Startup")
		return subcommands.ExitFailure
	}
	defer closeDB()

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Error().Err(err).Msg("Router")
		return subcommands.ExitFailure
	}

	url, _ := cfg.URL()
	router.AttachRoutes(r.Group(url.Path), cfg)

	server := &http.Server{
		Addr:              s.addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("Backend startup complete")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server")
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Shutdown")
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}
