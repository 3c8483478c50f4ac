package raft

import (
	"context"
	"errors"

	"github.com/readix/raft/api"
	raftpb "github.com/readix/raft/internal/proto/gen"
)

// Client-facing RPC surface. Peers answer these on the same gRPC server
// as the consensus RPCs; the coordinator routes requests to the leader.

func (rf *Raft) SubmitCommand(ctx context.Context, req *raftpb.SubmitRequest) (*raftpb.SubmitResponse, error) {
	idx, term, isLeader := rf.Submit(req.Command)
	return &raftpb.SubmitResponse{
		Term:     term,
		Index:    idx,
		IsLeader: isLeader,
	}, nil
}

func (rf *Raft) ReadOnly(ctx context.Context, req *raftpb.ReadOnlyRequest) (*raftpb.ReadOnlyResponse, error) {
	data, err := rf.Read(ctx, req.Query)
	if err != nil {
		if errors.Is(err, api.ErrNotLeader) || errors.Is(err, api.ErrLeadershipLost) {
			return &raftpb.ReadOnlyResponse{IsLeader: false}, nil
		}
		return nil, err
	}
	return &raftpb.ReadOnlyResponse{Data: data, IsLeader: true}, nil
}

func (rf *Raft) IsLeader(ctx context.Context, req *raftpb.IsLeaderRequest) (*raftpb.IsLeaderResponse, error) {
	_, isLeader := rf.State()
	return &raftpb.IsLeaderResponse{
		IsLeader: isLeader,
		PeerId:   int64(rf.me),
	}, nil
}
