package raft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/readix/raft/api"
	raftpb "github.com/readix/raft/internal/proto/gen"
	"github.com/readix/raft/pkg/logger"
	"github.com/readix/raft/pkg/storage"
)

// A Go object implementing a single Raft peer.
type Raft struct {
	wg sync.WaitGroup
	mu sync.RWMutex // Lock to protect shared access to this peer's state

	peersCount int           // Amount of peers in cluster
	transport  api.Transport // RPC clients layer abstraction
	persister  api.Persister // Persistence layer abstraction (should be concurrent safe)
	me         int           // this peer's index
	dead       int32         // set by Stop()

	state State           // State of the peer
	cfg   *api.RaftConfig // Config of the peer

	resetElectionTimerCh   chan struct{}
	resetHeartbeatTickerCh chan struct{}
	electionTimer          *time.Timer
	heartbeatTicker        *time.Ticker

	applyChan         chan *api.ApplyMessage
	signalApplierChan chan struct{}
	// closed and replaced whenever lastAppliedIdx advances, so that
	// linearizable reads can wait for the applier to catch up
	applyWaitCh chan struct{}

	// Persistent state:

	curTerm  int64              // latest term server has seen
	votedFor int64              // index of peer in peers
	log      []*raftpb.LogEntry // log entries

	// Volatile state on all servers:

	leaderId int
	// index of highest log entry known to be committed
	commitIdx int64
	// index of the highest log entry applied to state machine
	lastAppliedIdx int64

	// Volatile state leaders only (reinitialized after election):

	// for each server, index of the next log entry
	// to send to that server (initialized to leader last log index + 1)
	nextIdx []int64
	// for each server, index of highest log entry known
	// to be replicated on server (initialized to 0, increases monotonically)
	matchIdx []int64

	// Linearizable reads (leaders only):

	readOnly      *readOnly // registry of pending ReadIndex requests
	readSeq       uint64    // monotonic source of correlation tokens
	lastQuorumAck time.Time // when a quorum last acknowledged a read round

	// the index of the last entry in the log that the snapshot replaces
	lastIncludedIndex int64
	// the term of the last entry in the log that the snapshot replaces
	lastIncludedTerm int64

	raftCtx    context.Context
	raftCancel func()
	logger     *slog.Logger

	monitoringServer MonitoringServer
	grpcServer       GRPCServer
	fsm              api.FSM
	raftpb.UnimplementedRaftServiceServer
}

// NewRaft creates a new Raft peer
func NewRaft(
	cfg *api.RaftConfig,
	me int,
	persister api.Persister,
	applyCh chan *api.ApplyMessage,
	transport api.Transport,
	fsm api.FSM,
) (api.Raft, error) {
	ctx, cancel := context.WithCancel(context.Background())

	rf := &Raft{
		peersCount:             transport.PeersCount(),
		transport:              transport,
		me:                     me,
		applyChan:              applyCh,
		signalApplierChan:      make(chan struct{}, 1),
		applyWaitCh:            make(chan struct{}),
		resetElectionTimerCh:   make(chan struct{}, 1),
		resetHeartbeatTickerCh: make(chan struct{}, 1),
		log:                    make([]*raftpb.LogEntry, 0),
		leaderId:               -1,
		nextIdx:                make([]int64, transport.PeersCount()),
		matchIdx:               make([]int64, transport.PeersCount()),
		readOnly:               newReadOnly(),
		fsm:                    fsm,
		raftCtx:                ctx,
		raftCancel:             cancel,
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}

	rf.cfg = cfg
	if cfg.Log.Env == logger.Dev {
		_, rf.logger = logger.NewTestLogger()
	} else {
		rf.logger = logger.NewLogger(rf.cfg.Log.Env, false).With(slog.Int("me", me))
	}

	if persister == nil {
		s, err := storage.NewWALStorage(fmt.Sprintf("data-%d", me), cfg, rf.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize default storage: %w", err)
		}
		persister = s
	}
	rf.persister = persister
	return rf, nil
}

func (rf *Raft) Start() error {
	state, err := rf.persister.ReadRaftState()
	if err != nil {
		return fmt.Errorf("failed to read peer #%d state: %w", rf.me, err)
	}
	rf.restoreState(state)
	rf.initializeNextIndexes()
	rf.electionTimer = time.NewTimer(rf.randElectionInterval())
	rf.heartbeatTicker = time.NewTicker(rf.cfg.Timings.HeartbeatTimeout)
	rf.heartbeatTicker.Stop()

	rf.mu.Lock()
	rf.becomeFollower(rf.curTerm)
	rf.mu.Unlock()

	if rf.grpcServer != nil {
		if err := rf.grpcServer.Start(); err != nil {
			return fmt.Errorf("failed to start gRPC server: %w", err)
		}
	}

	if rf.monitoringServer != nil {
		if err := rf.monitoringServer.Start(); err != nil {
			return fmt.Errorf("failed to start monitoring HTTP server: %w", err)
		}
	}

	rf.wg.Add(2)
	go rf.applier()
	go rf.ticker()

	if rf.cfg.Snapshots.ThresholdBytes > 0 {
		rf.wg.Add(1)
		go rf.snapshotter()
	}

	return nil
}

// Stop sets the peer to a dead state and stops completely
func (rf *Raft) Stop() error {
	tctx, tcancel := context.WithTimeout(context.Background(), rf.cfg.Timings.ShutdownTimeout)
	defer tcancel()

	var err error
	atomic.StoreInt32(&rf.dead, 1)
	if rf.grpcServer != nil {
		if serr := rf.grpcServer.Stop(); serr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shutdown gRPC server: %w", serr))
		}
	}

	if rf.monitoringServer != nil {
		if serr := rf.monitoringServer.Stop(tctx); serr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shutdown monitoring server: %w", serr))
		}
	}

	rf.mu.Lock()
	rf.drainPendingReads()
	rf.mu.Unlock()

	rf.raftCancel()
	rf.wg.Wait()
	return err
}

// Submit proposes a new command to be replicated
func (rf *Raft) Submit(command []byte) (int64, int64, bool) {
	rf.mu.Lock()

	if !rf.isState(leader) {
		term := rf.curTerm
		rf.mu.Unlock()
		return -1, term, false
	}

	term := rf.curTerm
	entry := &raftpb.LogEntry{
		Term: rf.curTerm,
		Cmd:  command,
	}
	rf.log = append(rf.log, entry)
	lastLogIdx, _ := rf.lastLogIdxAndTerm()
	rf.matchIdx[rf.me] = lastLogIdx
	rf.nextIdx[rf.me] = lastLogIdx + 1

	if rf.peersCount == 1 {
		// No replication round will run, so commit right here.
		lastCommitIdx := rf.commitIdx
		rf.tryToCommit()
		if rf.commitIdx != lastCommitIdx {
			rf.signalApplier()
			rf.flushCommittedReads()
		}
	}

	// If persistence fails, the node must not continue as leader,
	// because it's no longer a reliable state machine replica.
	if err := rf.persistAppendAndUnlock(entry); err != nil {
		rf.logger.Warn("failed to persist log, stepping down as leader", logger.ErrAttr(err))

		rf.mu.Lock()
		if rf.curTerm == term && rf.isState(leader) {
			rf.becomeFollower(term)
		}
		rf.mu.Unlock()
		return -1, term, false
	}

	go rf.sendSnapshotOrEntries()

	return lastLogIdx, term, true
}
