package cmd

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/theme"
)

var searchCmd = &cobra.Command{
	Use:   "search <prompt>",
	Short: "Ask the model a question and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			return runSearch(ctx, cmd.OutOrStdout(), rt, strings.Join(args, " "))
		})
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file|-]",
	Short: "Summarize a file or standard input",
	Long: `Summarizes the text in file, or standard input when file is "-" or omitted.
Genuine summaries are added to the summary history shown in the TUI.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			return runSummarize(ctx, cmd.OutOrStdout(), rt, text)
		})
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme <prompt>",
	Short: "Generate a color theme and print it with its derived tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *runtime) error {
			return runTheme(ctx, cmd.OutOrStdout(), rt, strings.Join(args, " "))
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(themeCmd)
}

// withRuntime opens the runtime, runs fn and closes everything.
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(ctx, rt)
}

// replyError turns a sentinel reply into a command error.
func replyError(r ai.Reply) error {
	if r.Genuine() {
		return nil
	}
	return stderrors.New(strings.TrimPrefix(r.Text, "Error: "))
}

func runSearch(ctx context.Context, w io.Writer, rt *runtime, prompt string) error {
	if !rt.session.Begin(session.OpSearch) {
		return fmt.Errorf("a search is already running")
	}
	defer rt.session.End(session.OpSearch)

	reply := rt.pipeline.Search(ctx, prompt, rt.session.Snapshot().Credential)
	if err := replyError(reply); err != nil {
		return err
	}
	fmt.Fprintln(w, reply.Text)
	return nil
}

func runSummarize(ctx context.Context, w io.Writer, rt *runtime, text string) error {
	if !rt.session.Begin(session.OpSummarize) {
		return fmt.Errorf("a summary is already running")
	}
	defer rt.session.End(session.OpSummarize)

	reply := rt.pipeline.Summarize(ctx, text, rt.session.Snapshot().Credential)
	if err := replyError(reply); err != nil {
		return err
	}
	fmt.Fprintln(w, reply.Text)

	if _, err := rt.session.RecordSummary(text, reply); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: summary not saved to history: %v\n", err)
	}
	return nil
}

// themeOutput is the JSON printed by the theme command.
type themeOutput struct {
	Theme     theme.Theme       `json:"theme"`
	Variables map[string]string `json:"variables"`
}

func runTheme(ctx context.Context, w io.Writer, rt *runtime, prompt string) error {
	if !rt.session.Begin(session.OpTheme) {
		return fmt.Errorf("a theme is already being generated")
	}
	defer rt.session.End(session.OpTheme)

	t, ok := rt.pipeline.GenerateTheme(ctx, prompt, rt.session.Snapshot().Credential)
	if !ok {
		return fmt.Errorf("failed to generate theme; the AI service may be unavailable or the API key invalid")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(themeOutput{Theme: t, Variables: theme.Variables(t)})
}

// readInput returns the text of the named file, or stdin for "-" or no
// argument.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", args[0], err)
	}
	return string(data), nil
}

