// Command melelink links songbook entries to canonical Hawaiian songs.
//
// The matching engine scores every unlinked songbook entry against a
// canonical song on title, composer, and metadata dimensions, then
// auto-links high-confidence matches and queues the rest for review.
// Supporting commands import records, precompute normalized search columns,
// apply human-approved linkages, and inspect the review queue.
package main
