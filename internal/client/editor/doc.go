// Package editor implements the note editor session: an in-memory draft that
// is reconciled with the note store on open, explicit save, explicit delete,
// and flush.
//
// # States
//
//   - New: the session has no note id; nothing is persisted yet.
//   - Loaded: the session is bound to a stored note id and keeps a snapshot of
//     what was last read from or written to the store.
//   - Deleted: the note was deleted from this session; later flushes are ignored.
//
// Dirty is derived: a New draft is dirty when its title or content is not
// blank, a Loaded draft when either field differs from the snapshot.
//
// # Saving
//
// Save creates the note on the first non-blank save, updates it on later
// dirty saves, and otherwise does nothing, so blank notes are never stored and
// unchanged notes are never rewritten. Flush is the hook a host calls when the
// editor loses visibility; Back flushes and then leaves the editor.
//
// Store faults are returned to the caller. A note that is absent on lookup is
// not an error.
package editor
