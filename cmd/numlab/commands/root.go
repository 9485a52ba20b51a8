package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"numlab/internal/app"
	"numlab/internal/domain"
	"numlab/internal/labclient"
)

// configEnv names an explicit config file, like --config.
const configEnv = "NUMLAB_CONFIG"

var (
	home       string
	configPath string
	remoteURL  string
	save       bool
	logLevel   string
	logFormat  string

	appCtx *app.Wire
	remote domain.LabClient
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "numlab",
		Short:         "Coin change and Monte Carlo integration lab",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".numlab")
			}
			if configPath == "" {
				configPath = os.Getenv(configEnv)
			}
			if configPath == "" {
				configPath = filepath.Join(home, app.ConfigFile)
			}

			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Home = home
			flags := cmd.Flags()
			if flags.Changed("save") {
				cfg.Reports.Save = save
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("config %s: %w", configPath, err)
			}
			appCtx = w

			remote = nil
			if remoteURL != "" {
				remote = labclient.NewHTTP(remoteURL, &http.Client{Timeout: 5 * time.Minute})
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.numlab)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/numlab.toml or $"+configEnv+")")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "labd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVar(&save, "save", false, "save results as reports")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(changeCmd(), canonicalCmd(), integrateCmd(), convergenceCmd(), reportsCmd())
	return root
}
