package raft

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/readix/raft/api"
	raftpb "github.com/readix/raft/internal/proto/gen"
	"github.com/readix/raft/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLeader builds an unstarted peer in the leader state with the
// given log terms, so the read paths can be driven directly.
func newTestLeader(t *testing.T, peers int, logTerms ...int64) *Raft {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	_, log := logger.NewTestLogger()
	rf := &Raft{
		peersCount:             peers,
		me:                     0,
		cfg:                    TestsConfig(),
		leaderId:               0,
		nextIdx:                make([]int64, peers),
		matchIdx:               make([]int64, peers),
		readOnly:               newReadOnly(),
		applyWaitCh:            make(chan struct{}),
		signalApplierChan:      make(chan struct{}, 1),
		resetElectionTimerCh:   make(chan struct{}, 1),
		resetHeartbeatTickerCh: make(chan struct{}, 1),
		raftCtx:                ctx,
		raftCancel:             cancel,
		logger:                 log,
	}
	atomic.StoreUint32(&rf.state, leader)

	for _, term := range logTerms {
		rf.log = append(rf.log, &raftpb.LogEntry{Term: term})
		rf.curTerm = max(rf.curTerm, term)
	}
	return rf
}

func registerRead(rf *Raft, token string) *readRequest {
	req := &readRequest{
		ctx:      []byte(token),
		from:     int64(rf.me),
		to:       int64(rf.me),
		resultCh: make(chan readResult, 1),
	}
	rf.mu.Lock()
	rf.readOnly.addRequest(rf.commitIdx, req)
	rf.mu.Unlock()
	return req
}

func TestHandleReadIndexAckQuorumRelease(t *testing.T) {
	rf := newTestLeader(t, 3, 1)
	rf.commitIdx = 1 // entry of the current term is committed

	req := registerRead(rf, "r1")

	rf.mu.Lock()
	rf.handleReadIndexAck(1, req.ctx)
	rf.mu.Unlock()

	select {
	case res := <-req.resultCh:
		require.NoError(t, res.err)
		assert.Equal(t, int64(1), res.state.Index)
		assert.Equal(t, []byte("r1"), res.state.RequestCtx)
	default:
		t.Fatal("expected read to be released after quorum ack")
	}
	assert.Equal(t, 0, rf.readOnly.pendingReadCount())
	assert.False(t, rf.lastQuorumAck.IsZero())
}

func TestHandleReadIndexAckBelowQuorum(t *testing.T) {
	rf := newTestLeader(t, 5, 1)
	rf.commitIdx = 1

	req := registerRead(rf, "r1")

	// leader + one follower = 2 of 5, below quorum
	rf.mu.Lock()
	rf.handleReadIndexAck(1, req.ctx)
	rf.mu.Unlock()

	select {
	case <-req.resultCh:
		t.Fatal("read released without a quorum")
	default:
	}
	assert.Equal(t, 1, rf.readOnly.pendingReadCount())
}

func TestTermStartGateAndCommitFlush(t *testing.T) {
	// Leader of term 2, but only a term-1 entry is committed: reads must
	// stay gated until an entry of term 2 commits.
	rf := newTestLeader(t, 3, 1)
	rf.curTerm = 2
	rf.commitIdx = 1

	req := registerRead(rf, "r1")

	rf.mu.Lock()
	rf.handleReadIndexAck(1, req.ctx)
	rf.mu.Unlock()

	select {
	case <-req.resultCh:
		t.Fatal("read released before an own-term entry committed")
	default:
	}
	require.Equal(t, 1, rf.readOnly.waitingForReady)

	// Own-term entry commits; the flush stamps the new committed index.
	rf.mu.Lock()
	rf.log = append(rf.log, &raftpb.LogEntry{Term: 2})
	rf.commitIdx = 2
	rf.flushCommittedReads()
	rf.mu.Unlock()

	select {
	case res := <-req.resultCh:
		require.NoError(t, res.err)
		assert.Equal(t, int64(2), res.state.Index, "committed index must override the captured one")
	default:
		t.Fatal("expected the commit flush to release the gated read")
	}
	assert.Equal(t, 0, rf.readOnly.waitingForReady)
}

func TestStepDownFailsPendingReads(t *testing.T) {
	rf := newTestLeader(t, 3, 1)
	rf.commitIdx = 1

	first := registerRead(rf, "r1")
	second := registerRead(rf, "r2")

	rf.mu.Lock()
	rf.becomeFollower(5)
	rf.mu.Unlock()

	for _, req := range []*readRequest{first, second} {
		select {
		case res := <-req.resultCh:
			assert.ErrorIs(t, res.err, api.ErrLeadershipLost)
		default:
			t.Fatal("expected pending read to fail on step-down")
		}
	}
	assert.Equal(t, 0, rf.readOnly.pendingReadCount())
}

func TestReadIndexSingleNode(t *testing.T) {
	rf := newTestLeader(t, 1, 1)
	rf.commitIdx = 1

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	idx, err := rf.ReadIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), idx)
}

func TestReadIndexNotLeader(t *testing.T) {
	rf := newTestLeader(t, 3, 1)
	atomic.StoreUint32(&rf.state, follower)

	_, err := rf.ReadIndex(context.Background())
	assert.ErrorIs(t, err, api.ErrNotLeader)
}

func TestLeaseRead(t *testing.T) {
	t.Run("valid lease serves the commit index", func(t *testing.T) {
		rf := newTestLeader(t, 3, 1)
		rf.cfg.ReadOnly.Option = api.ReadOnlyLeaseBased
		rf.commitIdx = 1
		rf.lastQuorumAck = time.Now()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		idx, err := rf.ReadIndex(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), idx)
		assert.Equal(t, 0, rf.readOnly.pendingReadCount(), "lease read must not register a round")
	})

	t.Run("no lease before a quorum ack", func(t *testing.T) {
		rf := newTestLeader(t, 3, 1)
		rf.commitIdx = 1

		rf.mu.Lock()
		_, ok := rf.leaseRead()
		rf.mu.Unlock()
		assert.False(t, ok)
	})

	t.Run("no lease before an own-term commit", func(t *testing.T) {
		rf := newTestLeader(t, 3, 1)
		rf.curTerm = 2
		rf.commitIdx = 1
		rf.lastQuorumAck = time.Now()

		rf.mu.Lock()
		_, ok := rf.leaseRead()
		rf.mu.Unlock()
		assert.False(t, ok)
	})

	t.Run("expired lease", func(t *testing.T) {
		rf := newTestLeader(t, 3, 1)
		rf.commitIdx = 1
		rf.lastQuorumAck = time.Now().Add(-time.Minute)

		rf.mu.Lock()
		_, ok := rf.leaseRead()
		rf.mu.Unlock()
		assert.False(t, ok)
	})
}

func TestWaitForApplied(t *testing.T) {
	rf := newTestLeader(t, 1, 1)
	rf.commitIdx = 1

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- rf.waitForApplied(ctx, 1)
	}()

	time.Sleep(20 * time.Millisecond)
	rf.mu.Lock()
	rf.lastAppliedIdx = 1
	rf.notifyApplyWaiters()
	rf.mu.Unlock()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waitForApplied did not observe the applied index")
	}
}

func TestAppendEntriesEchoesReadCtx(t *testing.T) {
	rf := newTestLeader(t, 3, 1)
	atomic.StoreUint32(&rf.state, follower)
	rf.persister = &noopPersister{}

	reply, err := rf.AppendEntries(context.Background(), &raftpb.AppendEntriesRequest{
		Term:     rf.curTerm,
		LeaderId: 1,
		ReadCtx:  []byte("round-7"),
	})
	require.NoError(t, err)
	require.True(t, reply.Success)
	assert.Equal(t, []byte("round-7"), reply.ReadCtx)
}

type noopPersister struct{}

func (p *noopPersister) AppendEntries(entries []*raftpb.LogEntry) error  { return nil }
func (p *noopPersister) SetMetadata(term int64, votedFor int64) error    { return nil }
func (p *noopPersister) SaveStateAndSnapshot(state, snap []byte) error   { return nil }
func (p *noopPersister) ReadRaftState() ([]byte, error)                  { return nil, nil }
func (p *noopPersister) ReadSnapshot() ([]byte, error)                   { return nil, nil }
func (p *noopPersister) RaftStateSize() (int, error)                     { return 0, nil }
func (p *noopPersister) Close() error                                    { return nil }
