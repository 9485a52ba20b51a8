package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"numlab/internal/app"
	"numlab/internal/labapi"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var home, configPath, addr string
	cmd := &cobra.Command{
		Use:          "labd",
		Short:        "Serve the coin change and integration lab over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".numlab")
			}
			if configPath == "" {
				configPath = filepath.Join(home, app.ConfigFile)
			}
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Home = home
			if addr != "" {
				cfg.Server.Addr = addr
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("config %s: %w", configPath, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, w)
		},
	}
	cmd.Flags().StringVar(&home, "home", "", "state dir (default ~/.numlab)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default <home>/numlab.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured grace period.
func serve(ctx context.Context, w *app.Wire) error {
	sc := w.Config.Server
	h := labapi.New(
		w.Change,
		w.Integration,
		w.Config.Coins.Denominations,
		w.Logger.With("component", "labapi"),
		w.Registry,
		sc.WriteTimeout.Duration,
	)
	srv := &http.Server{
		Addr:         sc.Addr,
		Handler:      h.Routes(),
		ReadTimeout:  sc.ReadTimeout.Duration,
		WriteTimeout: sc.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		w.Logger.Info("labd listening", "addr", sc.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	w.Logger.Info("labd shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
