// mockapi serves the in-memory taller mecánico API for local development:
//
//	go run ./cmd/mockapi
//	tallerctl --api-url http://localhost:8082/tallermecanico/api listar
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tallerctl/internal/mockapi"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	viper.AutomaticEnv()
	viper.SetDefault("MOCKAPI_PORT", 8082)
	viper.SetDefault("TALLER_TOKEN", "")
	port := viper.GetInt("MOCKAPI_PORT")

	srv := mockapi.New()
	srv.Token = viper.GetString("TALLER_TOKEN")
	srv.SeedDemo()

	mux := http.NewServeMux()
	mux.Handle("/tallermecanico/api/", http.StripPrefix("/tallermecanico/api", srv.Router()))

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("mock API listening on :%d", port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down mock API…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
}
