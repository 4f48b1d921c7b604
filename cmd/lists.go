package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var clearList bool

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(_ context.Context, rt *runtime) error {
			if clearList {
				return rt.session.ClearBookmarks()
			}
			return listBookmarks(cmd.OutOrStdout(), rt)
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List visited pages, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(_ context.Context, rt *runtime) error {
			if clearList {
				return rt.session.ClearHistory()
			}
			return listHistory(cmd.OutOrStdout(), rt)
		})
	},
}

func init() {
	bookmarksCmd.Flags().BoolVar(&clearList, "clear", false, "Remove every bookmark")
	historyCmd.Flags().BoolVar(&clearList, "clear", false, "Remove every history entry")
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(historyCmd)
}

func listBookmarks(w io.Writer, rt *runtime) error {
	bookmarks := rt.session.Snapshot().Bookmarks
	if len(bookmarks) == 0 {
		fmt.Fprintln(w, "No bookmarks.")
		return nil
	}
	for _, b := range bookmarks {
		fmt.Fprintf(w, "%s\t%s\n", b.ID, b.URL)
	}
	return nil
}

func listHistory(w io.Writer, rt *runtime) error {
	history := rt.session.Snapshot().History
	if len(history) == 0 {
		fmt.Fprintln(w, "No history.")
		return nil
	}
	for i, url := range history {
		fmt.Fprintf(w, "%3d  %s\n", i+1, url)
	}
	return nil
}
