package raft

import (
	"log/slog"
	"time"

	"github.com/readix/raft/pkg/logger"
)

// snapshotter is a background goroutine
// that periodically checks if a snapshot needs to be taken.
func (rf *Raft) snapshotter() {
	defer func() {
		rf.wg.Done()
		rf.logger.Info("snapshotter exiting")
	}()

	ticker := time.NewTicker(rf.cfg.Snapshots.CheckLogSizeInterval)
	defer ticker.Stop()

	rf.logger.Info("snapshotter starting")
	for {
		select {
		case <-rf.raftCtx.Done():
			return
		case <-ticker.C:
			rf.checkAndTakeSnapshot()
		}
	}
}

func (rf *Raft) checkAndTakeSnapshot() {
	rf.mu.RLock()
	size := rf.calculateLogSizeInBytes()
	lastApplied := rf.lastAppliedIdx
	rf.mu.RUnlock()

	if size < rf.cfg.Snapshots.ThresholdBytes {
		return
	}

	rf.logger.Info(
		"log size exceeds threshold, requesting snapshot from FSM",
		slog.Int64("size", size),
		slog.Int64("threshold", rf.cfg.Snapshots.ThresholdBytes))

	snapshotData, err := rf.fsm.Snapshot()
	if err != nil {
		rf.logger.Warn("failed to get snapshot from FSM", logger.ErrAttr(err))
		return
	}

	if err := rf.Snapshot(lastApplied, snapshotData); err != nil {
		rf.logger.Warn("failed to apply snapshot", logger.ErrAttr(err))
	}
}
