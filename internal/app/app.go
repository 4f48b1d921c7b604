// Package app wires the session, the AI pipeline and the page viewport into
// the Bubble Tea program.
package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/config"
	"github.com/zhubert/navigator/internal/layout"
	"github.com/zhubert/navigator/internal/logger"
	"github.com/zhubert/navigator/internal/session"
	"github.com/zhubert/navigator/internal/theme"
	"github.com/zhubert/navigator/internal/ui"
	"github.com/zhubert/navigator/internal/viewport"
)

// Focus represents which pane has the keyboard
type Focus int

const (
	FocusSidebar Focus = iota
	FocusAddress
	FocusPage
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusAddress:
		return "Address"
	case FocusPage:
		return "Page"
	default:
		return "Unknown"
	}
}

// Deps are the collaborators the model drives.
type Deps struct {
	Session  *session.State
	Pipeline *ai.Pipeline
	Fetcher  *viewport.Fetcher
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	ctx     context.Context
	log     *slog.Logger

	session  *session.State
	pipeline *ai.Pipeline
	fetcher  *viewport.Fetcher

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	address *ui.AddressBar
	page    *ui.PageView
	resizer *layout.Resizer

	width  int
	height int
	focus  Focus

	// pageSeq numbers navigations so stale page loads can be dropped
	pageSeq int

	unsubscribe func()
}

// New creates a new app model
func New(ctx context.Context, cfg *config.Config, deps Deps, version string) *Model {
	m := &Model{
		config:   cfg,
		version:  version,
		ctx:      ctx,
		log:      logger.WithComponent("app"),
		session:  deps.Session,
		pipeline: deps.Pipeline,
		fetcher:  deps.Fetcher,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		address:  ui.NewAddressBar(),
		page:     ui.NewPageView(),
		resizer:  layout.NewResizer(layout.CellBounds, 0),
		focus:    FocusSidebar,
	}

	snap := m.session.Snapshot()
	ui.ApplyTheme(theme.Variables(snap.Theme))
	m.applySnapshot(snap)
	m.unsubscribe = m.session.Subscribe(m.applySnapshot)
	m.sidebar.SetFocused(true)
	return m
}

// Close detaches the model from the session.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// applySnapshot pushes session state into the components.
func (m *Model) applySnapshot(snap session.Snapshot) {
	if snap.CurrentURL != m.address.URL() {
		m.address.SetURL(snap.CurrentURL)
	}
	m.address.SetBookmarked(snap.IsBookmarked(snap.CurrentURL))
	m.address.SetHistory(snap.History)
	m.sidebar.Bookmarks.SetBookmarks(snap.Bookmarks)
	m.sidebar.Summarize.SetRecords(snap.Summaries)
	m.sidebar.Theme.SetTheme(snap.Theme)
	m.sidebar.Settings.SetStatus(m.credentialSource(snap), m.pipeline.Model())
}

// credentialSource reports which client a request would use.
func (m *Model) credentialSource(snap session.Snapshot) ui.CredentialSource {
	switch {
	case snap.Credential != "":
		return ui.CredentialSession
	case m.pipeline.HasEnvironmentClient():
		return ui.CredentialEnvironment
	default:
		return ui.CredentialNone
	}
}

// Focus returns the focused pane.
func (m *Model) Focus() Focus { return m.focus }

// SidebarWidth returns the current side panel width in cells.
func (m *Model) SidebarWidth() int { return m.resizer.Width() }

// Init loads the starting page
func (m *Model) Init() tea.Cmd {
	url := m.session.Snapshot().CurrentURL
	if url == "" {
		return nil
	}
	return m.load(url)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleShortcut(msg); handled {
			return m, cmd
		}
		return m, m.routeKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)

	case tea.PasteMsg:
		return m, m.routeKey(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case ui.SidebarTickMsg:
		return m, m.sidebar.Update(msg)

	// Panel intents
	case ui.SearchSubmitMsg:
		return m, m.startSearch(msg.Prompt)
	case ui.SummarizeSubmitMsg:
		return m, m.startSummarize(msg.Text)
	case ui.ThemeSubmitMsg:
		return m, m.startTheme(msg.Prompt)
	case ui.NavigateMsg:
		return m, m.navigate(msg.URL)
	case ui.DeleteBookmarkMsg:
		return m, m.persistResult(m.session.DeleteBookmark(msg.ID))
	case ui.ClearBookmarksMsg:
		return m, m.clearBookmarks()
	case ui.ClearHistoryMsg:
		return m, m.clearHistory()
	case ui.ClearSummariesMsg:
		return m, m.clearSummaries()
	case ui.CredentialSubmitMsg:
		return m, m.setCredential(msg.Value)
	case ui.PasteRequestMsg:
		return m, m.pasteIntoSummarize()

	// Async results
	case SearchResultMsg:
		return m, m.handleSearchResult(msg)
	case SummaryResultMsg:
		return m, m.handleSummaryResult(msg)
	case ThemeResultMsg:
		return m, m.handleThemeResult(msg)
	case viewport.LoadedMsg:
		return m, m.handlePageLoaded(msg)
	case viewport.ErroredMsg:
		return m, m.handlePageErrored(msg)
	}

	// Anything else (cursor blink and friends) goes to the focused pane
	return m, m.routeKey(msg)
}

// routeKey sends msg to the focused pane.
func (m *Model) routeKey(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case FocusAddress:
		return m.address.Update(msg)
	case FocusPage:
		return m.page.Update(msg)
	default:
		return m.sidebar.Update(msg)
	}
}

// setFocus moves keyboard focus to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	if f == m.focus {
		return nil
	}
	m.log.Debug("focus change", "from", m.focus, "to", f)
	m.focus = f

	var cmds []tea.Cmd
	cmds = append(cmds, m.sidebar.SetFocused(f == FocusSidebar))
	cmds = append(cmds, m.address.SetFocused(f == FocusAddress))
	m.page.SetFocused(f == FocusPage)
	return tea.Batch(cmds...)
}

// cycleFocus moves focus to the next pane.
func (m *Model) cycleFocus() tea.Cmd {
	return m.setFocus((m.focus + 1) % 3)
}
