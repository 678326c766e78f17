package cli

import (
	"context"

	"github.com/spf13/cobra"

	configfile "github.com/docmirror/docmirror-cli/internal/adapters/driven/config/file"
	"github.com/docmirror/docmirror-cli/internal/adapters/driven/storage/sqlite"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs",
	Long:  `Lists recent sync runs with their per-outcome counts, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.Load(flagConfig)
	if err != nil {
		return err
	}

	store, err := sqlite.NewHistoryStore(cfg.Layout.DataDir)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // Best-effort store close

	records, err := store.ListRuns(context.Background(), flagHistoryLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	cmd.Println(render(headerStyle, "Recent runs"))
	for _, r := range records {
		cmd.Printf("  %s  %d discovered, %d new, %d updated, %d unchanged, %d failed\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Summary.Discovered, r.Summary.New, r.Summary.Updated,
			r.Summary.Unchanged, r.Summary.Failed)
	}
	return nil
}
