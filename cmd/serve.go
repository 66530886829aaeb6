package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contoso/talentbot/internal/bot"
	"github.com/contoso/talentbot/internal/config"
	"github.com/contoso/talentbot/internal/db"
	"github.com/contoso/talentbot/internal/extension"
	"github.com/contoso/talentbot/internal/logger"
	"github.com/contoso/talentbot/internal/server"
	"github.com/contoso/talentbot/internal/talent"
	"github.com/contoso/talentbot/internal/teams"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot webhook server",
	Long:  `Starts the talentbot HTTP server: the Bot Framework webhook on /api/messages and the local playground console on /api/playground.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if serveAllowAll {
			cfg.AllowAllOrigins = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err := logger.New(cfg.LogJSON, cfg.Debug || verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		database, err := db.Open(filepath.Join(cfg.DataDir, "talentbot.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		candidates := talent.NewMockCandidates(cfg.BaseURL, cfg.TopCandidates)
		positions := talent.NewMockPositions(cfg.MaxPositions)
		connector := teams.NewConnectorClient(log, cfg.AppID, cfg.AppPassword)
		states := bot.NewSQLiteStore(database)

		engine := bot.NewEngine(candidates, positions, connector, log)
		ext := extension.NewHandler(candidates, positions, log)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, engine, ext, states, candidates, positions, log)

		// Graceful shutdown on SIGINT/SIGTERM.
		done := make(chan error, 1)
		go func() {
			done <- srv.Start()
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-done:
			return err
		case s := <-sig:
			log.Info("shutting down", zap.String("signal", s.String()))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
