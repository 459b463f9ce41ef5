package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/udisondev/growthcalc/internal/calc"
	"github.com/udisondev/growthcalc/internal/command"
	"github.com/udisondev/growthcalc/internal/command/commands"
	"github.com/udisondev/growthcalc/internal/config"
	"github.com/udisondev/growthcalc/internal/formula"
)

const DefaultConfigPath = "config/calcbot.yaml"

// app is what every subcommand runs against.
type app struct {
	cfg     config.Calcbot
	handler *command.Handler
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		a          app
	)

	root := &cobra.Command{
		Use:   "calcbot",
		Short: "Growth-tier calculator bot",
		Long: `calcbot computes final stats and damage, and infers an opponent's
investment tier from observed damage.

Commands are chat lines such as "/reverse-defense 186xg8 80 75 130".
They can be served over TCP, evaluated once, or run in batch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = DefaultConfigPath
				if p := os.Getenv(config.EnvConfigPath); p != "" {
					configPath = p
				}
			}
			var err error
			a, err = setup(configPath)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default "+DefaultConfigPath+", or $"+config.EnvConfigPath+")")

	root.AddCommand(
		newServeCmd(&a),
		newEvalCmd(&a),
		newBatchCmd(&a),
	)
	return root
}

// setup loads the config, configures logging and wires the command handler.
func setup(path string) (app, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return app{}, fmt.Errorf("loading config: %w", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	c := calc.New(formula.New(cfg.Constants()), cfg.LexiconTable(), cfg.Tag())
	h := command.NewHandler(c.Printer())
	commands.RegisterAll(h, c)

	slog.Debug("calculator ready",
		"config", path,
		"locale", cfg.Tag().String(),
		"commands", h.CommandCount())

	return app{cfg: cfg, handler: h}, nil
}
