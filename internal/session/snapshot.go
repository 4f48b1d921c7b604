package session

import (
	"slices"
	"strings"

	"github.com/zhubert/navigator/internal/store"
	"github.com/zhubert/navigator/internal/theme"
)

// Capacity of the capped sequences.
const (
	MaxHistory   = 50
	MaxSummaries = 50
)

// Bookmark is a saved URL.
type Bookmark struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SummaryRecord is one successful summarization.
type SummaryRecord struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Summary     string `json:"summary"`
	TimestampMs int64  `json:"timestampMs"`
}

// Snapshot is a point-in-time copy of the session. Transitions never
// modify a Snapshot's slices in place.
type Snapshot struct {
	CurrentURL string
	History    []string
	Bookmarks  []Bookmark
	Summaries  []SummaryRecord
	Theme      theme.Theme
	Tokens     theme.Tokens
	Credential string
}

// IsBookmarked reports whether url has a bookmark.
func (s Snapshot) IsBookmarked(url string) bool {
	return s.bookmarkIndex(url) >= 0
}

func (s Snapshot) bookmarkIndex(url string) int {
	return slices.IndexFunc(s.Bookmarks, func(b Bookmark) bool { return b.URL == url })
}

// clone returns a copy whose slices share nothing with s.
func (s Snapshot) clone() Snapshot {
	s.History = slices.Clone(s.History)
	s.Bookmarks = slices.Clone(s.Bookmarks)
	s.Summaries = slices.Clone(s.Summaries)
	return s
}

// EffectKind is the kind of persistence side effect.
type EffectKind int

const (
	// EffectSaveJSON writes Value JSON-encoded under Key.
	EffectSaveJSON EffectKind = iota
	// EffectSaveString writes Value, which must be a string, verbatim.
	EffectSaveString
	// EffectRemove deletes Key.
	EffectRemove
)

// Effect is a persistence side effect produced by a transition.
type Effect struct {
	Kind  EffectKind
	Key   string
	Value any
}

func saveJSON(key string, v any) Effect { return Effect{Kind: EffectSaveJSON, Key: key, Value: v} }
func remove(key string) Effect         { return Effect{Kind: EffectRemove, Key: key} }

// withCredential stores a trimmed credential or clears it when blank.
func (s Snapshot) withCredential(value string) (Snapshot, []Effect) {
	value = strings.TrimSpace(value)
	s.Credential = value
	if value == "" {
		return s, []Effect{remove(store.KeyCredential)}
	}
	return s, []Effect{{Kind: EffectSaveString, Key: store.KeyCredential, Value: value}}
}

// navigate sets the current URL and records it in history unless it is
// already the most recent entry.
func (s Snapshot) navigate(url string) (Snapshot, []Effect) {
	s.CurrentURL = url
	if len(s.History) > 0 && s.History[0] == url {
		return s, nil
	}
	s.History = Prepend(url, s.History, MaxHistory)
	return s, []Effect{saveJSON(store.KeyHistory, s.History)}
}

// toggleBookmark removes the bookmark for url or creates one with id.
func (s Snapshot) toggleBookmark(url, id string) (Snapshot, []Effect) {
	if i := s.bookmarkIndex(url); i >= 0 {
		s.Bookmarks = slices.Delete(slices.Clone(s.Bookmarks), i, i+1)
	} else {
		s.Bookmarks = Prepend(Bookmark{ID: id, URL: url}, s.Bookmarks, len(s.Bookmarks)+1)
	}
	return s, []Effect{saveJSON(store.KeyBookmarks, s.Bookmarks)}
}

func (s Snapshot) deleteBookmark(id string) (Snapshot, []Effect) {
	i := slices.IndexFunc(s.Bookmarks, func(b Bookmark) bool { return b.ID == id })
	if i < 0 {
		return s, nil
	}
	s.Bookmarks = slices.Delete(slices.Clone(s.Bookmarks), i, i+1)
	return s, []Effect{saveJSON(store.KeyBookmarks, s.Bookmarks)}
}

func (s Snapshot) recordSummary(rec SummaryRecord) (Snapshot, []Effect) {
	s.Summaries = Prepend(rec, s.Summaries, MaxSummaries)
	return s, []Effect{saveJSON(store.KeySummaryHistory, s.Summaries)}
}

func (s Snapshot) withTheme(t theme.Theme) Snapshot {
	s.Theme = t
	s.Tokens = theme.DeriveTokens(t)
	return s
}

func (s Snapshot) clearHistory() (Snapshot, []Effect) {
	s.History = []string{}
	return s, []Effect{remove(store.KeyHistory)}
}

func (s Snapshot) clearBookmarks() (Snapshot, []Effect) {
	s.Bookmarks = []Bookmark{}
	return s, []Effect{remove(store.KeyBookmarks)}
}

func (s Snapshot) clearSummaries() (Snapshot, []Effect) {
	s.Summaries = []SummaryRecord{}
	return s, []Effect{remove(store.KeySummaryHistory)}
}
