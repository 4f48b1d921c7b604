package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/app"
	"github.com/zhubert/navigator/internal/config"
	"github.com/zhubert/navigator/internal/logger"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/store"
	"github.com/zhubert/navigator/internal/viewport"
)

var (
	debugMode             bool
	quietMode             bool
	dbPath                string
	ephemeral             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "navigator",
	Short: "AI-assisted terminal browser",
	Long: `Navigator is a terminal browser shell with an AI side panel.

Search the model, summarize text, generate color themes from a prompt and
browse pages rendered as Markdown. Bookmarks, history and summaries are kept
in a local SQLite database.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default: <data dir>/navigator.db)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep all state in memory for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("navigator %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("navigator %s\n", version)
}

// runtime is what every command needs: config, store, session and the
// AI pipeline.
type runtime struct {
	cfg      *config.Config
	store    store.Store
	session  *session.State
	pipeline *ai.Pipeline
	close    func() error
}

// openRuntime loads the config, opens the store and builds the session.
// A session that loads with read errors is still usable; the errors are
// logged and the affected entries start empty.
func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := logger.Init(cfg.LogPath()); err != nil {
		return nil, fmt.Errorf("error opening log: %w", err)
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	return newRuntime(ctx, cfg, st, closeStore), nil
}

// openStore opens the SQLite store, or an in-memory one with --ephemeral.
func openStore(cfg *config.Config) (store.Store, func() error, error) {
	if ephemeral {
		return store.NewMemory(), func() error { return nil }, nil
	}
	path := dbPath
	if path == "" {
		path = cfg.DBPath()
	}
	db, err := store.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}
	return db, db.Close, nil
}

func newRuntime(ctx context.Context, cfg *config.Config, st store.Store, closeStore func() error) *runtime {
	log := logger.WithComponent("cmd")

	sess, err := session.Load(st, session.WithHomeURL(cfg.HomeURL))
	if err != nil {
		log.Warn("session loaded with errors", "error", err)
	}

	// The environment client is built once; a failure leaves it absent
	var env ai.Generator
	if key := cfg.EnvCredential(); key != "" {
		client, err := ai.NewGeminiClient(ctx, key)
		if err != nil {
			log.Error("environment client unavailable", "error", err)
		} else {
			env = client
		}
	}

	return &runtime{
		cfg:      cfg,
		store:    st,
		session:  sess,
		pipeline: ai.New(env, ai.WithModel(cfg.Model)),
		close:    closeStore,
	}
}

func (r *runtime) Close() {
	if err := r.close(); err != nil {
		logger.WithComponent("cmd").Error("closing store failed", "error", err)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	// Ensure logger is closed on exit
	defer logger.Close()
	defer rt.Close()

	fetcher := viewport.NewFetcher(rt.cfg.FetchTimeout, viewport.DefaultCapabilities)
	m := app.New(ctx, rt.cfg, app.Deps{
		Session:  rt.session,
		Pipeline: rt.pipeline,
		Fetcher:  fetcher,
	}, version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
