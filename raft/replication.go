package raft

import (
	"context"
	"fmt"
	"slices"

	raftpb "github.com/readix/raft/internal/proto/gen"
)

// leaderSendEntries handles sending log entries to a single peer
//
// Assumes the read lock is held when called; it releases it before the RPC.
func (rf *Raft) leaderSendEntries(peerIdx int) error {
	prevLogIdx := rf.nextIdx[peerIdx] - 1
	prevLogTerm := rf.getTerm(prevLogIdx)

	sliceIndex := rf.nextIdx[peerIdx] - rf.lastIncludedIndex - 1
	entries := make([]*raftpb.LogEntry, len(rf.log[sliceIndex:]))
	copy(entries, rf.log[sliceIndex:])

	args := &raftpb.AppendEntriesRequest{
		Term:              rf.curTerm,
		LeaderId:          int64(rf.me),
		PrevLogIndex:      prevLogIdx,
		PrevLogTerm:       prevLogTerm,
		LeaderCommitIndex: rf.commitIdx,
		Entries:           entries,
		ReadCtx:           rf.readOnly.lastPendingRequestCtx(),
	}
	rf.mu.RUnlock()

	tctx, tcancel := context.WithTimeout(rf.raftCtx, rf.cfg.Timings.RPCTimeout)
	defer tcancel()

	reply, err := rf.transport.SendAppendEntries(tctx, peerIdx, args)
	if err != nil {
		return fmt.Errorf("AppendEntries to peer #%d: %w", peerIdx, err)
	}

	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.curTerm != args.Term {
		return nil
	}

	rf.handleAppendEntriesReply(peerIdx, args, reply)
	return nil
}

// handleAppendEntriesReply processes the reply from an AppendEntries RPC
//
// Assumes the lock is held when called
func (rf *Raft) handleAppendEntriesReply(peerIdx int, req *raftpb.AppendEntriesRequest, reply *raftpb.AppendEntriesResponse) {
	if reply.Term > rf.curTerm {
		rf.becomeFollower(reply.Term)
		return
	}

	if !rf.isState(leader) || req.Term != rf.curTerm {
		return
	}

	// Any same-term response is an acknowledgment of our leadership for
	// the read round it echoes, regardless of log consistency.
	rf.handleReadIndexAck(int64(peerIdx), reply.ReadCtx)

	if reply.Success {
		newMatchIdx := req.PrevLogIndex + int64(len(req.Entries))
		if newMatchIdx > rf.matchIdx[peerIdx] {
			rf.matchIdx[peerIdx] = newMatchIdx
		}
		rf.nextIdx[peerIdx] = rf.matchIdx[peerIdx] + 1

		lastCommitIdx := rf.commitIdx
		rf.tryToCommit()
		if rf.commitIdx != lastCommitIdx {
			rf.signalApplier()
			rf.flushCommittedReads()
		}
		return
	}

	rf.updateNextIndexAfterConflict(peerIdx, reply)
}

// updateNextIndexAfterConflict is a helper function to update a follower's nextIdx
// after a failed AppendEntries RPC
//
// Assumes the lock is held when called.
func (rf *Raft) updateNextIndexAfterConflict(peerIdx int, reply *raftpb.AppendEntriesResponse) {
	if reply.ConflictTerm < 0 {
		rf.nextIdx[peerIdx] = reply.ConflictIndex
		return
	}

	lastLogIdx, _ := rf.lastLogIdxAndTerm()
	for i := lastLogIdx; i > rf.lastIncludedIndex; i-- {
		if rf.getTerm(i) == reply.ConflictTerm {
			rf.nextIdx[peerIdx] = i + 1
			return
		}
	}
	rf.nextIdx[peerIdx] = reply.ConflictIndex
}

// tryToCommit advances the commit index to the highest log index
// replicated on a majority, provided that entry is from the current term.
//
// Assumes the lock is held when called.
func (rf *Raft) tryToCommit() {
	matchIdxCopy := make([]int64, len(rf.matchIdx))
	copy(matchIdxCopy, rf.matchIdx)

	slices.Sort(matchIdxCopy)
	majorityIdx := rf.peersCount / 2
	newCommitIdx := matchIdxCopy[majorityIdx]

	if newCommitIdx > rf.commitIdx && rf.getTerm(newCommitIdx) == rf.curTerm {
		rf.commitIdx = newCommitIdx
	}
}
