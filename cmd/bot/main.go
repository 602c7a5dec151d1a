// Package main is the entry point for the tic-tac-toe Telegram bot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tictactoe-bot/internal/bot"
	"tictactoe-bot/internal/config"
	"tictactoe-bot/internal/game/tictactoe"
	"tictactoe-bot/internal/terminal"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "bot",
		Short:         "Play tic-tac-toe against a random opponent",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config", "directory containing config.yaml")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	play := &cobra.Command{
		Use:   "play",
		Short: "Play a game in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, configPath)
		},
	}

	root.AddCommand(serve, play)
	root.RunE = serve.RunE
	return root
}

// loadConfig loads configuration and applies the log level.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Info().Msg("Configuration loaded successfully")
	return cfg, nil
}

func glyphsFrom(cfg *config.Config) tictactoe.Glyphs {
	return tictactoe.Glyphs{
		Empty:    cfg.Game.EmptyMark,
		Human:    cfg.Game.HumanMark,
		Opponent: cfg.Game.OpponentMark,
	}
}

func runServe(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	controller := tictactoe.NewController(nil)

	telegramBot, err := bot.New(&bot.Dependencies{
		Config:     cfg,
		Controller: controller,
		Glyphs:     glyphsFrom(cfg),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create bot")
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Msg("Bot is starting...")
		telegramBot.Start()
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	telegramBot.Stop()
	log.Info().Int("active_games", controller.Active()).Msg("Bot stopped gracefully")
	return nil
}

func runPlay(cmd *cobra.Command, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller := tictactoe.NewController(nil)
	return terminal.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), controller, glyphsFrom(cfg))
}
