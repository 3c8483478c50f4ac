package api

import "context"

// FSM represents the application state managed by Raft.
// It defines how committed log entries are applied, and how the state can be
// snapshotted and restored.
// The application using Raft must implement this interface.
type FSM interface {
	Start(ctx context.Context)     // Run a long-lived goroutine consuming ApplyMessages
	Snapshot() ([]byte, error)     // Serialize the current application state
	Restore(snapshot []byte) error // Restore application state from snapshot

	// Read queries the state machine. readIndex is the log index the read
	// was ordered at: implementations must not answer before they have
	// applied every entry up through it. Raft only calls Read after the
	// applier has caught up, so most implementations can ignore readIndex.
	Read(ctx context.Context, readIndex int64, query []byte) ([]byte, error)
}

type ApplyMessage struct {
	CommandValid bool
	Command      []byte
	CommandIndex int64

	SnapshotValid bool
	Snapshot      []byte
	SnapshotIndex int64
	SnapshotTerm  int64
}

// ReadState is the outcome of a single linearizable read request:
// the commit index the read was ordered at and the correlation token
// it was registered under.
type ReadState struct {
	Index      int64
	RequestCtx []byte
}
