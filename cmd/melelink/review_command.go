package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"melelink/internal/linkage"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List linkage decisions awaiting human review",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.DecisionsByStatus(cmd.Context(), linkage.Status(status))
			if err != nil {
				return err
			}
			renderDecisions(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(linkage.StatusNeedsReview),
		"Decision status to list (needs_review, auto_linked, rejected, confirmed)")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record and decision counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Canonical songs:  %d\n", stats.Songs)
			fmt.Printf("Songbook entries: %d (%d linked)\n", stats.Entries, stats.LinkedEntries)
			fmt.Printf("Decisions:        %d\n", stats.Decisions)
			for _, status := range []linkage.Status{
				linkage.StatusAutoLinked,
				linkage.StatusNeedsReview,
				linkage.StatusConfirmed,
				linkage.StatusRejected,
			} {
				if count := stats.DecisionsByKind[status]; count > 0 {
					fmt.Printf("  %-14s %d\n", status, count)
				}
			}
			return nil
		},
	}
}
