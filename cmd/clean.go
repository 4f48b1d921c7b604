package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/navigator/internal/config"
	"github.com/zhubert/navigator/internal/logger"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/store"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved bookmarks, history, summaries, the API key and logs",
	Long: `Clears everything navigator has persisted: the stored API key, bookmarks,
browsing history and summary history, and removes log files.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), st, cfg.DataDir)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, w io.Writer, st store.Store, dataDir string) error {
	// Read what is there so the summary is accurate
	sess, err := session.Load(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some saved state was unreadable: %v\n", err)
	}
	snap := sess.Snapshot()

	fmt.Fprintln(w, "This will clean:")
	if snap.Credential != "" {
		fmt.Fprintln(w, "  - the saved API key")
	}
	fmt.Fprintf(w, "  - %d bookmark(s)\n", len(snap.Bookmarks))
	fmt.Fprintf(w, "  - %d history item(s)\n", len(snap.History))
	fmt.Fprintf(w, "  - %d summary record(s)\n", len(snap.Summaries))
	fmt.Fprintf(w, "  - All log files in %s\n", dataDir)

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, w, "Continue?") {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	if err := store.Clear(st); err != nil {
		return fmt.Errorf("error clearing saved state: %w", err)
	}

	logsCleared, err := logger.ClearLogs(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cleaned:")
	fmt.Fprintln(w, "  - saved state cleared")
	if logsCleared > 0 {
		fmt.Fprintf(w, "  - %d log file(s) removed\n", logsCleared)
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, w io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
