package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// approvedLinkage mirrors the JSON shape exported by the review UI.
type approvedLinkage struct {
	SongbookEntryID int64  `json:"songbook_entry_id"`
	CanonicalMeleID string `json:"canonical_mele_id"`
	MatchStatus     string `json:"match_status"`
	ReviewedBy      string `json:"reviewed_by"`
}

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var (
		file     string
		reviewer string
	)

	cmd := &cobra.Command{
		Use:   "link [entry-id] [canonical-id]",
		Short: "Apply a confirmed linkage, or a file of approved linkages",
		Long: `Confirm a (songbook entry, canonical song) linkage. The matching_status row
moves to confirmed and the entry's link is applied in the same transaction.
A pair the engine never scored is recorded as a manual decision.

With --file, process a JSON array of review decisions and apply every one
whose match_status is "approved".`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) != 0 {
					return fmt.Errorf("--file does not take positional arguments")
				}
				return applyLinkageFile(cmd, ctx, file, reviewer)
			}
			if len(args) != 2 {
				return fmt.Errorf("provide <entry-id> <canonical-id> or --file")
			}
			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse entry id %q: %w", args[0], err)
			}

			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.ConfirmDecision(cmd.Context(), args[1], entryID, reviewer); err != nil {
				return err
			}
			fmt.Printf("Linked songbook entry %d to %s\n", entryID, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file of review decisions to apply")
	cmd.Flags().StringVar(&reviewer, "reviewed-by", "", "Reviewer attribution recorded on the decision")
	return cmd
}

func newUnlinkCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <entry-id>",
		Short: "Clear a songbook entry's confirmed link",
		Long: `Clear the confirmed link on a songbook entry, returning it to the unlinked
candidate pool for future matching passes. Recorded decisions are kept for
the audit trail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse entry id %q: %w", args[0], err)
			}

			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UnlinkEntry(cmd.Context(), entryID); err != nil {
				return err
			}
			fmt.Printf("Unlinked songbook entry %d\n", entryID)
			return nil
		},
	}
}

func applyLinkageFile(cmd *cobra.Command, ctx *commandContext, path, reviewer string) error {
	var linkages []approvedLinkage
	if err := readJSONFile(path, &linkages); err != nil {
		return err
	}

	st, _, err := ctx.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	applied := 0
	for _, l := range linkages {
		if l.MatchStatus != "approved" {
			continue
		}
		who := l.ReviewedBy
		if who == "" {
			who = reviewer
		}
		if err := st.ConfirmDecision(cmd.Context(), l.CanonicalMeleID, l.SongbookEntryID, who); err != nil {
			return fmt.Errorf("apply linkage (%s, %d): %w", l.CanonicalMeleID, l.SongbookEntryID, err)
		}
		applied++
	}
	fmt.Printf("Applied %d approved linkages\n", applied)
	return nil
}
