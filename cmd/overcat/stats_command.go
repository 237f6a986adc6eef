package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"overcat/internal/logging"
	"overcat/internal/overcast"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize playlists, feeds, and episodes in an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, ok, err := resolveExportPath(cmd, args[0])
			if err != nil || !ok {
				return err
			}
			logger, err := ctx.ensureLogger(cmd)
			if err != nil {
				return err
			}

			export, _, err := overcast.LoadFile(path, overcast.Options{
				ReportUnknownAttrs: cfg.Report.UnknownAttributes,
				Logger:             logging.NewComponentLogger(logger, "extract"),
			})
			if err != nil {
				logger.Error("unable to parse export", logging.Error(err), logging.String(logging.FieldPath, path))
				return errReported
			}

			summary := overcast.Summarize(export)
			if asJSON {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd, summary, overcast.FeedStats(export))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the summary as JSON")
	return cmd
}

func printSummary(cmd *cobra.Command, summary overcast.Summary, feeds []overcast.FeedStat) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Export overview", colorize) {
		fmt.Fprintln(out, line)
	}
	rows := [][]string{
		{"Playlists", strconv.Itoa(summary.Playlists)},
		{"Smart playlists", strconv.Itoa(summary.SmartPlaylists)},
		{"Feeds", strconv.Itoa(summary.Feeds)},
		{"Subscribed feeds", strconv.Itoa(summary.SubscribedFeeds)},
		{"Episodes", strconv.Itoa(summary.Episodes)},
		{"Played episodes", strconv.Itoa(summary.PlayedEpisodes)},
		{"In-progress episodes", strconv.Itoa(summary.InProgressEpisodes)},
		{"Deleted episodes", strconv.Itoa(summary.DeletedEpisodes)},
		{"Recommended episodes", strconv.Itoa(summary.RecommendedEpisodes)},
	}
	if summary.NewestEpisode != nil {
		rows = append(rows, []string{"Newest episode", summary.NewestEpisode.UTC().Format(time.RFC3339)})
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))

	if len(feeds) == 0 {
		return
	}
	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Feeds", colorize) {
		fmt.Fprintln(out, line)
	}
	feedRows := make([][]string, 0, len(feeds))
	for _, feed := range feeds {
		feedRows = append(feedRows, []string{
			feed.Title,
			strconv.Itoa(feed.Episodes),
			strconv.Itoa(feed.Played),
			strconv.Itoa(feed.Deleted),
			yesNo(feed.Subscribed),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Feed", "Episodes", "Played", "Deleted", "Subscribed"},
		feedRows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
}
