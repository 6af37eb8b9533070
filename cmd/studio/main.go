package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	studio "github.com/darko-kalany/studio"
	"github.com/darko-kalany/studio/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Server-rendered marketing site for Darko Kalany Studio",
	Long: `studio serves the Darko Kalany Studio site: pages are authored as
block documents in the CMS and rendered server side.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is a dev convenience; absence is fine.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		app, err := studio.New(cfg)
		if err != nil {
			return err
		}

		srv := app.Server()
		errc := make(chan error, 1)
		go func() {
			app.Log().Info("serving", "addr", cfg.Addr, "dev", cfg.Dev)
			errc <- srv.ListenAndServe()
		}()

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errc:
			return err
		case sig := <-sigc:
			app.Log().Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and CMS connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Printf("config ok (project %s, dataset %s)\n", cfg.SanityProjectID, cfg.SanityDataset)

		app, err := studio.New(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		if err := app.Ping(ctx); err != nil {
			return fmt.Errorf("cms unreachable: %w", err)
		}
		fmt.Println("cms reachable")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./studio.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(doctorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
