// Package draft implements the writing session: an append-only text buffer
// with a live word count, and an autosave scheduler that periodically writes
// the buffer to draft storage.
//
// A Session enforces the no-delete policy by comparing character counts. An
// edit that shortens the buffer is rejected and the buffer reverts to the
// last accepted text, unless the session is paused. The comparison is length
// only, so an edit that replaces part of the text with something at least as
// long is accepted even though content was lost.
//
// A Scheduler reads the session text on every tick and stores it under
// DraftKey. Callers drive it from session lifecycle events:
//
//	sched.Start() // session visible
//	...
//	sched.Hide() // session hidden: stop, then one final persist
package draft
