package api

import "context"

// SubmitResult describes where a submitted command landed in the log.
type SubmitResult struct {
	Term     int64
	LogIndex int64
	IsLeader bool
}

// Coordinator routes client operations to the current cluster leader.
type Coordinator interface {
	// Submit proposes a command and reports the log position the leader
	// assigned to it.
	Submit(ctx context.Context, cmd []byte) (*SubmitResult, error)

	// Read performs a linearizable read against the current leader.
	Read(ctx context.Context, query []byte) ([]byte, error)

	Shutdown() error
}
