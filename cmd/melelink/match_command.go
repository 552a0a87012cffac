package main

import (
	"github.com/spf13/cobra"

	"melelink/internal/config"
	"melelink/internal/linkage"
	"melelink/internal/store"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "match <canonical-id>",
		Short: "Score unlinked songbook entries against a canonical song",
		Long: `Score every unlinked songbook entry against the canonical song and print
the ranked results. Nothing is persisted; use "melelink process" to record
linkage decisions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(func(engine *linkage.Engine, _ *store.Store, _ *config.Config) error {
				matches, err := engine.FindMatches(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				renderMatches(matches)
				return nil
			})
		},
	}
}
