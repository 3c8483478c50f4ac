package api

import (
	"time"

	"github.com/readix/raft/pkg/logger"
)

// ReadOnlyOption selects how the leader serves linearizable reads.
type ReadOnlyOption int

const (
	// ReadOnlySafe confirms leadership with a quorum heartbeat round
	// before releasing each read. This is the safe default.
	ReadOnlySafe ReadOnlyOption = iota

	// ReadOnlyLeaseBased serves reads while a leader lease obtained from
	// a recent quorum round is still valid. Cheaper than ReadOnlySafe,
	// but correctness depends on bounded clock drift across the cluster.
	ReadOnlyLeaseBased
)

type RaftConfig struct {
	Log       LoggerCfg
	Timings   RaftTimings
	CBreaker  CircuitBreakerCfg
	Fsync     FsyncCfg
	Snapshots SnapshotsCfg
	ReadOnly  ReadOnlyCfg

	HttpMonitoringAddr string
	GRPCAddr           string

	// CommitNoOpOn makes a freshly elected leader immediately replicate a
	// no-op entry so that an entry of its own term commits without waiting
	// for client traffic. Linearizable reads are held back until such an
	// entry commits, so leaving this off delays them after elections.
	CommitNoOpOn bool
}

type LoggerCfg struct {
	Env logger.Environment
}

type RaftTimings struct {
	ElectionTimeoutBase        time.Duration
	ElectionTimeoutRandomDelta time.Duration
	HeartbeatTimeout           time.Duration
	RPCTimeout                 time.Duration
	ShutdownTimeout            time.Duration
}

type CircuitBreakerCfg struct {
	FailureThreshold int
	SuccessThreshold int
	ResetTimeout     time.Duration
}

type FsyncCfg struct {
	BatchSize int
	Timeout   time.Duration
}

type SnapshotsCfg struct {
	CheckLogSizeInterval time.Duration
	ThresholdBytes       int64
}

type ReadOnlyCfg struct {
	Option ReadOnlyOption

	// LeaseDuration bounds how long the last quorum acknowledgment is
	// trusted in ReadOnlyLeaseBased mode. Zero means ElectionTimeoutBase.
	LeaseDuration time.Duration
}
