package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPopulateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Recompute normalized search columns for all records",
		Long: `Recompute the normalized title and composer columns for every canonical
song and songbook entry. Run after bulk imports or after normalization rules
change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			songs, entries, err := st.PopulateNormalized(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Normalized %d canonical songs and %d songbook entries\n", songs, entries)
			return nil
		},
	}
}
