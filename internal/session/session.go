package session

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/zhubert/navigator/internal/ai"
	"github.com/zhubert/navigator/internal/errors"
	"github.com/zhubert/navigator/internal/logger"
	"github.com/zhubert/navigator/internal/store"
	"github.com/zhubert/navigator/internal/theme"
)

// DefaultHomeURL is the page a new session starts on.
const DefaultHomeURL = "https://www.google.com/webhp?igu=1"

// Operation names an asynchronous request tracked by the in-flight flags.
type Operation string

const (
	OpSearch    Operation = "search"
	OpSummarize Operation = "summarize"
	OpTheme     Operation = "theme"
	OpPage      Operation = "page"
)

// State is the session. All methods are safe for concurrent use, but the
// program mutates it from a single goroutine.
type State struct {
	mu       sync.RWMutex
	snap     Snapshot
	store    store.Store
	inFlight map[Operation]bool
	subs     map[int]func(Snapshot)
	nextSub  int

	now        func() time.Time
	bookmarkID func() string
	summaryID  func() string
	log        *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source used for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithIDs overrides bookmark and summary id generation.
func WithIDs(bookmark, summary func() string) Option {
	return func(s *State) {
		if bookmark != nil {
			s.bookmarkID = bookmark
		}
		if summary != nil {
			s.summaryID = summary
		}
	}
}

// WithHomeURL sets the initial current URL.
func WithHomeURL(url string) Option {
	return func(s *State) {
		if url = strings.TrimSpace(url); url != "" {
			s.snap.CurrentURL = url
		}
	}
}

func newBookmarkID() string {
	return "bm-" + ulid.Make().String()
}

func newSummaryID() string {
	return "sum-" + uuid.Must(uuid.NewV7()).String()
}

// New returns a session with the default theme and empty collections,
// mirrored to st. Nothing is read from st; use Load for that.
func New(st store.Store, opts ...Option) *State {
	s := &State{
		store:      st,
		inFlight:   make(map[Operation]bool),
		subs:       make(map[int]func(Snapshot)),
		now:        time.Now,
		bookmarkID: newBookmarkID,
		summaryID:  newSummaryID,
		log:        logger.WithComponent("session"),
		snap: Snapshot{
			CurrentURL: DefaultHomeURL,
			History:    []string{},
			Bookmarks:  []Bookmark{},
			Summaries:  []SummaryRecord{},
		}.withTheme(theme.Default()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load builds a session from the values persisted in st. It always
// returns a usable State; the error joins any read failures, whose
// entries were cleared and replaced by empty defaults.
func Load(st store.Store, opts ...Option) (*State, error) {
	s := New(st, opts...)

	var errs []error
	credential, err := store.LoadString(st, store.KeyCredential)
	if err != nil {
		errs = append(errs, err)
	}
	history, err := store.LoadJSON(st, store.KeyHistory, []string{})
	if err != nil {
		errs = append(errs, err)
	}
	bookmarks, err := store.LoadJSON(st, store.KeyBookmarks, []Bookmark{})
	if err != nil {
		errs = append(errs, err)
	}
	summaries, err := store.LoadJSON(st, store.KeySummaryHistory, []SummaryRecord{})
	if err != nil {
		errs = append(errs, err)
	}

	s.snap.Credential = strings.TrimSpace(credential)
	s.snap.History = truncate(slices.Compact(nonNil(history)), MaxHistory)
	s.snap.Bookmarks = uniqueBookmarks(nonNil(bookmarks))
	s.snap.Summaries = truncate(nonNil(summaries), MaxSummaries)

	s.log.Debug("session loaded",
		"history", len(s.snap.History),
		"bookmarks", len(s.snap.Bookmarks),
		"summaries", len(s.snap.Summaries),
		"credential", s.snap.Credential != "")
	return s, stderrors.Join(errs...)
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// uniqueBookmarks keeps the first bookmark for each URL.
func uniqueBookmarks(bookmarks []Bookmark) []Bookmark {
	seen := make(map[string]bool, len(bookmarks))
	out := make([]Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		if seen[b.URL] {
			continue
		}
		seen[b.URL] = true
		out = append(out, b)
	}
	return out
}

func truncate[T any](v []T, limit int) []T {
	if len(v) > limit {
		return v[:limit]
	}
	return v
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function unregisters it.
func (s *State) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// commit installs next, applies effects to the store and notifies
// subscribers. Subscribers run without the lock held.
func (s *State) commit(next Snapshot, effects []Effect) error {
	s.mu.Lock()
	s.snap = next
	err := s.applyLocked(effects)
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	snap := s.snap.clone()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return err
}

func (s *State) applyLocked(effects []Effect) error {
	if s.store == nil {
		return nil
	}
	var errs []error
	for _, e := range effects {
		var err error
		switch e.Kind {
		case EffectSaveJSON:
			err = store.SaveJSON(s.store, e.Key, e.Value)
		case EffectSaveString:
			v, _ := e.Value.(string)
			err = store.SaveString(s.store, e.Key, v)
		case EffectRemove:
			err = store.Delete(s.store, e.Key)
		default:
			err = fmt.Errorf("unknown effect kind %d", e.Kind)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// current returns the live snapshot for a transition to build on.
func (s *State) current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// SetCredential stores the session credential. A blank value clears it
// and removes the persisted entry.
func (s *State) SetCredential(value string) error {
	return s.commit(s.current().withCredential(value))
}

// Navigate makes url current and records it in history.
func (s *State) Navigate(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return s.commit(s.current().navigate(url))
}

// ToggleBookmark removes the bookmark for url if there is one and adds
// one otherwise. Blank URLs are ignored.
func (s *State) ToggleBookmark(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return s.commit(s.current().toggleBookmark(url, s.bookmarkID()))
}

// DeleteBookmark removes the bookmark with id, if present.
func (s *State) DeleteBookmark(id string) error {
	next, effects := s.current().deleteBookmark(id)
	if effects == nil {
		return nil
	}
	return s.commit(next, effects)
}

// ApplyTheme validates t and makes it the active theme. An invalid theme
// leaves the active one unchanged.
func (s *State) ApplyTheme(t theme.Theme) error {
	if err := theme.Validate(t); err != nil {
		return err
	}
	return s.commit(s.current().withTheme(t), nil)
}

// RecordSummary adds a summary history entry for a genuine reply. Anything
// else, including blank output, is ignored and reports false.
func (s *State) RecordSummary(text string, reply ai.Reply) (bool, error) {
	if !reply.Genuine() {
		return false, nil
	}
	rec := SummaryRecord{
		ID:          s.summaryID(),
		Text:        text,
		Summary:     reply.Text,
		TimestampMs: s.now().UnixMilli(),
	}
	return true, s.commit(s.current().recordSummary(rec))
}

// ClearSummaries empties the summary history.
func (s *State) ClearSummaries() error {
	return s.commit(s.current().clearSummaries())
}

// ClearHistory empties the navigation history.
func (s *State) ClearHistory() error {
	return s.commit(s.current().clearHistory())
}

// ClearBookmarks removes every bookmark.
func (s *State) ClearBookmarks() error {
	return s.commit(s.current().clearBookmarks())
}

// Begin marks op as in flight. It returns false if op already was.
func (s *State) Begin(op Operation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[op] {
		return false
	}
	s.inFlight[op] = true
	return true
}

// End clears the in-flight flag for op.
func (s *State) End(op Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, op)
}

// InFlight reports whether op is pending.
func (s *State) InFlight(op Operation) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight[op]
}

// IsPersistenceError reports whether err came from the store.
func IsPersistenceError(err error) bool {
	return errors.Is(err, errors.KindPersistenceWrite) || errors.Is(err, errors.KindPersistenceRead)
}
