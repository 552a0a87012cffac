package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"melelink/internal/linkage"
)

// songImport mirrors the canonical_mele JSON export shape.
type songImport struct {
	CanonicalMeleID        string `json:"canonical_mele_id"`
	CanonicalTitleHawaiian string `json:"canonical_title_hawaiian"`
	CanonicalTitleEnglish  string `json:"canonical_title_english"`
	PrimaryComposer        string `json:"primary_composer"`
}

// entryImport mirrors the songbook_entries JSON export shape.
type entryImport struct {
	PrintedSongTitle string `json:"printed_song_title"`
	Composer         string `json:"composer"`
	PubYear          string `json:"pub_year"`
	SongbookName     string `json:"songbook_name"`
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import canonical songs or songbook entries from JSON",
	}
	cmd.AddCommand(newImportSongsCommand(ctx))
	cmd.AddCommand(newImportEntriesCommand(ctx))
	return cmd
}

func newImportSongsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "songs <file.json>",
		Short: "Import canonical songs (ids are generated when absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var songs []songImport
			if err := readJSONFile(args[0], &songs); err != nil {
				return err
			}

			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			for _, song := range songs {
				_, err := st.UpsertSong(cmd.Context(), linkage.CanonicalSong{
					ID:              song.CanonicalMeleID,
					TitleHawaiian:   song.CanonicalTitleHawaiian,
					TitleEnglish:    song.CanonicalTitleEnglish,
					PrimaryComposer: song.PrimaryComposer,
				})
				if err != nil {
					return err
				}
			}
			fmt.Printf("Imported %d canonical songs\n", len(songs))
			return nil
		},
	}
}

func newImportEntriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "entries <file.json>",
		Short: "Import songbook entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []entryImport
			if err := readJSONFile(args[0], &entries); err != nil {
				return err
			}

			st, _, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			for _, entry := range entries {
				_, err := st.InsertEntry(cmd.Context(), linkage.SongbookEntry{
					PrintedTitle: entry.PrintedSongTitle,
					Composer:     entry.Composer,
					PubYear:      entry.PubYear,
					SongbookName: entry.SongbookName,
				})
				if err != nil {
					return err
				}
			}
			fmt.Printf("Imported %d songbook entries\n", len(entries))
			return nil
		},
	}
}

func readJSONFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
