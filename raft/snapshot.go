package raft

import (
	"context"
	"fmt"

	"github.com/readix/raft/api"
	raftpb "github.com/readix/raft/internal/proto/gen"
)

// Snapshot informs Raft that the service has created a snapshot covering
// all log entries up through index, so the prefix can be discarded.
func (rf *Raft) Snapshot(index int64, snapshot []byte) error {
	rf.mu.Lock()

	if index <= rf.lastIncludedIndex {
		rf.mu.Unlock()
		return fmt.Errorf("%w index: %d, last included index: %d.", api.ErrOldSnapshot, index, rf.lastIncludedIndex)
	}

	term := rf.getTerm(index)
	sliceIndex := index - rf.lastIncludedIndex
	if sliceIndex < int64(len(rf.log)) {
		rf.log = append([]*raftpb.LogEntry(nil), rf.log[sliceIndex:]...)
	} else {
		rf.log = nil
	}

	rf.lastIncludedIndex = index
	rf.lastIncludedTerm = term

	return rf.persistAndUnlock(snapshot)
}

// leaderSendSnapshot handles sending a snapshot to a single peer
//
// Assumes the read lock is held when called; it releases it before the RPC.
func (rf *Raft) leaderSendSnapshot(peerIdx int) error {
	snapshot, err := rf.persister.ReadSnapshot()
	if err != nil {
		rf.mu.RUnlock()
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	req := &raftpb.InstallSnapshotRequest{
		Term:              rf.curTerm,
		LeaderId:          int64(rf.me),
		LastIncludedIndex: rf.lastIncludedIndex,
		LastIncludedTerm:  rf.lastIncludedTerm,
		Data:              snapshot,
	}
	rf.mu.RUnlock()

	tctx, tcancel := context.WithTimeout(rf.raftCtx, rf.cfg.Timings.RPCTimeout)
	defer tcancel()

	reply, err := rf.transport.SendInstallSnapshot(tctx, peerIdx, req)
	if err != nil {
		return fmt.Errorf("InstallSnapshot to peer #%d: %w", peerIdx, err)
	}

	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.curTerm != req.Term {
		return nil
	}

	if reply.Term > rf.curTerm {
		rf.becomeFollower(reply.Term)
		return nil
	}

	rf.matchIdx[peerIdx] = max(rf.matchIdx[peerIdx], req.LastIncludedIndex)
	rf.nextIdx[peerIdx] = rf.matchIdx[peerIdx] + 1
	return nil
}
