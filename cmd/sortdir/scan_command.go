package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortdir/internal/classify"
	"sortdir/internal/preflight"
	"sortdir/internal/scanner"
	"sortdir/internal/services"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "List what a sort would classify without changing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args[0])
			if err != nil {
				return err
			}
			if err := preflight.FirstFailure([]preflight.Result{preflight.CheckDirectoryAccess("Root directory", root)}); err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}

			rules := classify.DefaultRules()
			scanCtx := services.WithStage(cmd.Context(), "scan")
			inv, err := scanner.New(rules, logger).Scan(scanCtx, root)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, inv.Report())
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderScanReport(inv, rules, shouldColorize(cmd.OutOrStdout())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the inventory as JSON")
	return cmd
}
