package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/growthcalc/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve commands over TCP, one command per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := server.New(a.cfg.Server, a.handler)

			slog.Info("calcbot starting",
				"bind", a.cfg.Server.BindAddress,
				"port", a.cfg.Server.Port,
				"locale", a.cfg.Tag().String())

			if err := srv.Run(cmd.Context()); err != nil {
				return fmt.Errorf("calc server: %w", err)
			}
			return nil
		},
	}
}
