package transport

import (
	"context"
	"time"

	"github.com/readix/raft/api"
	"github.com/readix/raft/internal/cbreaker"
	raftpb "github.com/readix/raft/internal/proto/gen"
	"google.golang.org/grpc"
)

var _ api.Transport = (*GRPCTransport)(nil)

// GRPCTransport is the default Transport implementation. Every peer gets
// its own circuit breaker so an unresponsive node stops consuming RPC
// budget until it recovers.
type GRPCTransport struct {
	requestTimeout time.Duration
	clients        []raftpb.RaftServiceClient
	breakers       []*cbreaker.CircuitBreaker
}

func NewGRPCTransport(cfg *api.RaftConfig, conns []*grpc.ClientConn) (*GRPCTransport, error) {
	tr := &GRPCTransport{
		requestTimeout: cfg.Timings.RPCTimeout,
		clients:        make([]raftpb.RaftServiceClient, len(conns)),
		breakers:       make([]*cbreaker.CircuitBreaker, len(conns)),
	}

	for i, conn := range conns {
		tr.clients[i] = raftpb.NewRaftServiceClient(conn)
		tr.breakers[i] = cbreaker.NewCircuitBreaker(
			cfg.CBreaker.FailureThreshold,
			cfg.CBreaker.SuccessThreshold,
			cfg.CBreaker.ResetTimeout,
		)
	}

	return tr, nil
}

func (t *GRPCTransport) SendRequestVote(
	ctx context.Context,
	to int,
	req *raftpb.RequestVoteRequest) (*raftpb.RequestVoteResponse, error) {
	tctx, tcancel := context.WithTimeout(ctx, t.requestTimeout)
	defer tcancel()

	return cbreaker.Do(tctx, t.breakers[to], func(ctx context.Context) (*raftpb.RequestVoteResponse, error) {
		return t.clients[to].RequestVote(ctx, req)
	})
}

func (t *GRPCTransport) SendAppendEntries(
	ctx context.Context,
	to int,
	req *raftpb.AppendEntriesRequest) (*raftpb.AppendEntriesResponse, error) {
	tctx, tcancel := context.WithTimeout(ctx, t.requestTimeout)
	defer tcancel()

	return cbreaker.Do(tctx, t.breakers[to], func(ctx context.Context) (*raftpb.AppendEntriesResponse, error) {
		return t.clients[to].AppendEntries(ctx, req)
	})
}

func (t *GRPCTransport) SendInstallSnapshot(
	ctx context.Context,
	to int,
	req *raftpb.InstallSnapshotRequest) (*raftpb.InstallSnapshotResponse, error) {
	tctx, tcancel := context.WithTimeout(ctx, t.requestTimeout)
	defer tcancel()

	return cbreaker.Do(tctx, t.breakers[to], func(ctx context.Context) (*raftpb.InstallSnapshotResponse, error) {
		return t.clients[to].InstallSnapshot(ctx, req)
	})
}

func (t *GRPCTransport) PeersCount() int {
	return len(t.clients)
}

func (t *GRPCTransport) IsPeerAvailable(peerID int) bool {
	return t.breakers[peerID].IsClosed()
}
