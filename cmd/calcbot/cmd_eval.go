package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval COMMAND...",
		Short: "Evaluate one command and print the reply",
		Example: `  calcbot eval /reverse-defense 186xg8 80 75 130
  calcbot eval "/vitality-reverse opponent-side128 lost20% damage102"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			reply, ok := a.handler.HandleLine(line)
			if reply == "" {
				return fmt.Errorf("%q is not a command: commands start with /", line)
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			if !ok {
				return fmt.Errorf("unknown command in %q", line)
			}
			return nil
		},
	}
}
