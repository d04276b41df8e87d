package practice

import (
	engine "github.com/abhisek/molkkylog/internal/practice"
)

// SnapshotMsg carries a fresh engine snapshot. The app broadcasts it to
// every screen so backgrounded views stay current.
type SnapshotMsg struct {
	Snapshot engine.Snapshot
}

// opDoneMsg reports the outcome of a fire-and-forget engine operation.
type opDoneMsg struct {
	Err error
}

// exitResolvedMsg reports the outcome of settling drafts on exit. When
// Err is nil the app may terminate.
type exitResolvedMsg struct {
	Err error
}

// switchResolvedMsg reports the outcome of settling drafts before a user
// switch.
type switchResolvedMsg struct {
	Err error
}

// userCreatedMsg reports the outcome of creating a new player.
type userCreatedMsg struct {
	Err error
}
