package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"melelink/internal/linkage"
	"melelink/internal/store"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		t.SetStyle(table.StyleDefault)
		t.Style().Options.DrawBorder = false
	}
	return t
}

func renderMatches(matches []linkage.MatchResult) {
	if len(matches) == 0 {
		fmt.Println("No matches above the relevance floor.")
		return
	}
	t := newTable()
	t.AppendHeader(table.Row{"#", "Entry", "Printed Title", "Composer", "Songbook", "Confidence", "Tier", "Method"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Confidence", Align: text.AlignRight},
	})
	for i, m := range matches {
		t.AppendRow(table.Row{
			i + 1,
			m.EntryID,
			m.Entry.PrintedTitle,
			m.Entry.Composer,
			m.Entry.SongbookName,
			fmt.Sprintf("%.1f", m.Confidence),
			m.Tier,
			m.Method,
		})
	}
	t.Render()
}

func renderDecisions(records []store.DecisionRecord) {
	if len(records) == 0 {
		fmt.Println("No decisions in this state.")
		return
	}
	t := newTable()
	t.AppendHeader(table.Row{"Canonical", "Entry", "Confidence", "Method", "Version", "Matched At"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Confidence", Align: text.AlignRight},
	})
	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.CanonicalID,
			rec.EntryID,
			fmt.Sprintf("%.1f", rec.Confidence),
			rec.Method,
			rec.AlgorithmVersion,
			rec.MatchedAt.Format("2006-01-02 15:04"),
		})
	}
	t.Render()
}

func renderSummary(summary *linkage.Summary) {
	fmt.Printf("Canonical song %s: %d matches (high %d, medium %d, low %d)\n",
		summary.CanonicalID,
		summary.TotalMatches,
		summary.HighConfidence,
		summary.MediumConfidence,
		summary.LowConfidence,
	)
	fmt.Printf("  auto-linked %d, queued for review %d", summary.AutoLinked, summary.QueuedForReview)
	if summary.Conflicts > 0 {
		fmt.Printf(", conflicts %d", summary.Conflicts)
	}
	fmt.Println()
}
