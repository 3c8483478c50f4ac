package raft

import (
	"context"
	"fmt"
	"time"

	"github.com/readix/raft/api"
)

// ReadIndex returns a commit index that is safe to serve a linearizable
// read at. It registers the request under a fresh correlation token,
// broadcasts a heartbeat round carrying the token, and blocks until a
// quorum acknowledges the round (or, with ReadOnlyLeaseBased, answers
// immediately while the leader lease is valid).
func (rf *Raft) ReadIndex(ctx context.Context) (int64, error) {
	rf.mu.Lock()

	if !rf.isState(leader) {
		rf.mu.Unlock()
		return 0, api.ErrNotLeader
	}

	if rf.cfg.ReadOnly.Option == api.ReadOnlyLeaseBased {
		if idx, ok := rf.leaseRead(); ok {
			rf.mu.Unlock()
			return idx, nil
		}
		// Lease not valid (fresh leader or quorum silence): fall back
		// to a full quorum round.
	}

	req := &readRequest{
		ctx:      rf.nextReadToken(),
		from:     int64(rf.me),
		to:       int64(rf.me),
		resultCh: make(chan readResult, 1),
	}
	rf.readOnly.addRequest(rf.commitIdx, req)

	if rf.peersCount == 1 {
		// The leader's own acknowledgment already is the quorum.
		rf.handleReadIndexAck(int64(rf.me), req.ctx)
	}
	rf.mu.Unlock()

	rf.sendSnapshotOrEntries()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-rf.raftCtx.Done():
		return 0, api.ErrLeadershipLost
	case res := <-req.resultCh:
		if res.err != nil {
			return 0, res.err
		}
		return res.state.Index, nil
	}
}

// Read performs a full linearizable read: obtain a read index, wait for
// the applier to catch up to it, then query the state machine.
func (rf *Raft) Read(ctx context.Context, query []byte) ([]byte, error) {
	idx, err := rf.ReadIndex(ctx)
	if err != nil {
		return nil, err
	}

	if err := rf.waitForApplied(ctx, idx); err != nil {
		return nil, err
	}

	return rf.fsm.Read(ctx, idx, query)
}

// nextReadToken generates a correlation token unique across this peer's
// lifetime: node id plus a monotonic sequence number.
//
// Assumes the lock is held when called.
func (rf *Raft) nextReadToken() []byte {
	rf.readSeq++
	return fmt.Appendf(nil, "%d-%d", rf.me, rf.readSeq)
}

// handleReadIndexAck records a leadership acknowledgment from a peer for
// the read round carrying token and releases every read the ack confirms.
// A read is released as ready only once an entry of the leader's own term
// has committed; before that the registry's gate holds it back and the
// commit path flushes it later.
//
// Assumes the lock is held when called.
func (rf *Raft) handleReadIndexAck(from int64, token []byte) {
	if len(token) == 0 {
		return
	}

	acks := rf.readOnly.recvAck(from, int64(rf.me), token)
	if len(acks) <= rf.peersCount/2 {
		return
	}
	rf.lastQuorumAck = time.Now()

	ready := rf.getTerm(rf.commitIdx) == rf.curTerm
	released := rf.readOnly.advance(token, ready)
	rf.deliverReadStates(released, nil)
}

// flushCommittedReads releases reads held behind the term-start gate once
// the commit index has advanced into the leader's term. The committed
// index is stamped onto each released read.
//
// Assumes the lock is held when called.
func (rf *Raft) flushCommittedReads() {
	if rf.getTerm(rf.commitIdx) != rf.curTerm {
		return
	}
	released := rf.readOnly.advanceByCommit(rf.commitIdx)
	rf.deliverReadStates(released, nil)
}

// drainPendingReads fails every outstanding read. Called when this peer
// can no longer prove any of them safe: on step-down and on shutdown.
//
// Assumes the lock is held when called.
func (rf *Raft) drainPendingReads() {
	released := rf.readOnly.drainAll()
	if len(released) > 0 {
		rf.logger.Info("failing pending linearizable reads", "count", len(released))
	}
	rf.deliverReadStates(released, api.ErrLeadershipLost)
}

// deliverReadStates hands each released read's outcome to the goroutine
// blocked on it. Sends never block: every result channel is buffered and
// written exactly once.
func (rf *Raft) deliverReadStates(released []*readIndexStatus, err error) {
	for _, rs := range released {
		res := readResult{
			state: api.ReadState{Index: rs.index, RequestCtx: rs.req.ctx},
			err:   err,
		}
		select {
		case rs.req.resultCh <- res:
		default:
		}
	}
}

// leaseRead serves the current commit index without a quorum round while
// the leader lease is still valid. The lease is the last time a read
// round was quorum-acknowledged; trusting it assumes bounded clock drift.
//
// Assumes the lock is held when called.
func (rf *Raft) leaseRead() (int64, bool) {
	if rf.getTerm(rf.commitIdx) != rf.curTerm {
		return 0, false
	}

	lease := rf.cfg.ReadOnly.LeaseDuration
	if lease == 0 {
		lease = rf.cfg.Timings.ElectionTimeoutBase
	}
	if rf.lastQuorumAck.IsZero() || time.Since(rf.lastQuorumAck) >= lease {
		return 0, false
	}
	return rf.commitIdx, true
}

// waitForApplied blocks until the state machine has applied entries up
// through index.
func (rf *Raft) waitForApplied(ctx context.Context, index int64) error {
	for {
		rf.mu.RLock()
		if rf.lastAppliedIdx >= index {
			rf.mu.RUnlock()
			return nil
		}
		waitCh := rf.applyWaitCh
		rf.mu.RUnlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-rf.raftCtx.Done():
			return api.ErrLeadershipLost
		case <-waitCh:
		}
	}
}

// PendingReadCount reports how many linearizable reads are waiting on a
// quorum confirmation. Exposed for monitoring.
func (rf *Raft) PendingReadCount() int {
	rf.mu.RLock()
	defer rf.mu.RUnlock()
	return rf.readOnly.pendingReadCount()
}
