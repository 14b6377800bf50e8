// Package cli contains the cobra commands of tallerctl. Each command builds
// the shared app state from config, runs one view-model operation and
// renders the result; the interactive grid lives in internal/tui.
package cli

import (
	"os"

	"tallerctl/internal/config"
	"tallerctl/internal/presupuesto"
	"tallerctl/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagAPIURL string
	flagToken  string
)

var rootCmd = &cobra.Command{
	Use:   "tallerctl",
	Short: "Cliente de terminal para la gestión de presupuestos del taller",
	Long: `tallerctl administra los presupuestos del taller mecánico contra la
API REST: listado denormalizado (cliente, vehículo y productos resueltos),
altas, ediciones y bajas con confirmación.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "URL base de la API (sobrescribe TALLER_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "credencial bearer (sobrescribe TALLER_TOKEN)")
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("comando fallido")
		os.Exit(1)
	}
}

// nuevaApp builds the app state container for one command invocation.
func nuevaApp(notifier presupuesto.Notifier) (*store.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	return store.New(cfg, notifier), nil
}
