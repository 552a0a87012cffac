package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"melelink/internal/config"
	"melelink/internal/linkage"
	"melelink/internal/store"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var (
		all        bool
		reviewOnly bool
	)

	cmd := &cobra.Command{
		Use:   "process [canonical-id]",
		Short: "Run a matching pass and persist linkage decisions",
		Long: `Run the matching engine for one canonical song (or every song with --all),
persist a decision for each match, and auto-link high-confidence results.
With --review-only, high-confidence matches are queued for review instead of
linked.

A lock file next to the database serializes processing runs so that two
concurrent passes cannot race to auto-link the same songbook entry.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return errors.New("provide a canonical id or --all")
			}
			if all && len(args) > 0 {
				return errors.New("--all does not take a canonical id")
			}

			return ctx.withEngine(func(engine *linkage.Engine, st *store.Store, cfg *config.Config) error {
				lock := flock.New(cfg.LockPath())
				locked, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire process lock: %w", err)
				}
				if !locked {
					return fmt.Errorf("another process run holds %s", cfg.LockPath())
				}
				defer func() {
					_ = lock.Unlock()
				}()

				autoLink := cfg.Matching.AutoLink && !reviewOnly

				ids := args
				if all {
					songs, err := st.ListSongs(cmd.Context())
					if err != nil {
						return err
					}
					ids = ids[:0]
					for _, song := range songs {
						ids = append(ids, song.ID)
					}
				}

				for _, id := range ids {
					summary, err := engine.Process(cmd.Context(), id, autoLink)
					if err != nil {
						return err
					}
					renderSummary(summary)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Process every canonical song")
	cmd.Flags().BoolVar(&reviewOnly, "review-only", false, "Queue high-confidence matches for review instead of auto-linking")
	return cmd
}
