package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/growthcalc/internal/server"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate every command line of FILE (- for stdin)",
		Long: `Evaluates each line of FILE independently and prints the replies in
input order. Each reply is preceded by its command line and followed by a
blank line. Lines that are not commands are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return fmt.Errorf("reading batch file: %w", err)
			}

			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}
			replies, err := evalLines(cmd.Context(), a.handler, lines, workers)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for i, reply := range replies {
				if reply == "" {
					continue
				}
				fmt.Fprintf(out, "%s\n%s\n\n", lines[i], reply)
			}
			return out.Flush()
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent evaluations (default from config)")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	return lines, sc.Err()
}

// evalLines evaluates lines with at most workers in flight. replies[i] is the
// reply to lines[i], empty for lines that are not commands.
func evalLines(ctx context.Context, h server.LineHandler, lines []string, workers int) ([]string, error) {
	replies := make([]string, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			replies[i], _ = h.HandleLine(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	return replies, nil
}
