// Package session owns the navigator's session state and keeps it
// consistent with the persistent store.
//
// # Overview
//
// A State holds the current URL, history, bookmarks, summary history, the
// active theme and the optional session credential. Everything else in the
// program reads copies of that state (a Snapshot) and changes it only
// through the mutators on State.
//
// # Update Model
//
// Each mutator runs in two steps:
//
//  1. A pure transition on Snapshot computes the next snapshot and the
//     persistence Effects it implies (save or remove a store key).
//  2. State commits the snapshot, applies the effects inline and then
//     notifies subscribers registered with Subscribe.
//
// Write failures are logged and returned, but the in-memory state is
// already updated when they happen; the session stays correct and the
// change is simply not durable.
//
// # Persistence
//
// Four store keys mirror the state: credential (plain string), bookmarks,
// history and summary-history (JSON arrays). The theme and current URL are
// session-only. Load reads every key once at startup; a corrupt entry is
// cleared and replaced by an empty default.
//
// # Capping
//
// History and summary history are prepend-then-truncate sequences of at
// most 50 entries. A navigation to the URL already at the front of the
// history is not recorded again.
//
// # In-flight Operations
//
// Begin, End and InFlight track one flag per asynchronous operation so a
// panel can disable its trigger while its request is pending. There is no
// request fencing: when two calls overlap, the last response applied wins.
package session
