package coordinator

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	raftpb "github.com/readix/raft/internal/proto/gen"
	"github.com/readix/raft/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// mockNode is a RaftServiceServer whose leadership can be toggled at runtime.
type mockNode struct {
	raftpb.UnimplementedRaftServiceServer
	id       int64
	isLeader atomic.Bool

	submitCalls atomic.Int64
	readCalls   atomic.Int64
	readData    []byte
}

func (n *mockNode) IsLeader(_ context.Context, _ *raftpb.IsLeaderRequest) (*raftpb.IsLeaderResponse, error) {
	return &raftpb.IsLeaderResponse{IsLeader: n.isLeader.Load(), PeerId: n.id}, nil
}

func (n *mockNode) SubmitCommand(_ context.Context, _ *raftpb.SubmitRequest) (*raftpb.SubmitResponse, error) {
	n.submitCalls.Add(1)
	if !n.isLeader.Load() {
		return &raftpb.SubmitResponse{IsLeader: false}, nil
	}
	return &raftpb.SubmitResponse{Term: 1, Index: 7, IsLeader: true}, nil
}

func (n *mockNode) ReadOnly(_ context.Context, _ *raftpb.ReadOnlyRequest) (*raftpb.ReadOnlyResponse, error) {
	n.readCalls.Add(1)
	if !n.isLeader.Load() {
		return &raftpb.ReadOnlyResponse{IsLeader: false}, nil
	}
	return &raftpb.ReadOnlyResponse{Data: n.readData, IsLeader: true}, nil
}

func startCluster(t *testing.T, nodes []*mockNode) []*grpc.ClientConn {
	t.Helper()
	conns := make([]*grpc.ClientConn, len(nodes))
	for i, node := range nodes {
		lis, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		s := grpc.NewServer()
		raftpb.RegisterRaftServiceServer(s, node)
		go func() { _ = s.Serve(lis) }()
		t.Cleanup(s.GracefulStop)

		conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
		require.NoError(t, err)
		conns[i] = conn
	}
	return conns
}

func newTestCoordinator(t *testing.T, nodes []*mockNode) *Coordinator {
	t.Helper()
	conns := startCluster(t, nodes)
	_, log := logger.NewTestLogger()
	c, err := NewCoordinator(conns, 500*time.Millisecond, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Shutdown() })
	return c
}

func TestCoordinatorSubmit(t *testing.T) {
	nodes := []*mockNode{{id: 0}, {id: 1}, {id: 2}}
	nodes[1].isLeader.Store(true)
	c := newTestCoordinator(t, nodes)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := c.Submit(ctx, []byte("cmd"))
	require.NoError(t, err)
	assert.True(t, res.IsLeader)
	assert.Equal(t, int64(7), res.LogIndex)
	assert.Equal(t, int64(1), res.Term)

	// Leader is cached, so a second submit skips discovery.
	_, err = c.Submit(ctx, []byte("cmd2"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), nodes[1].submitCalls.Load())
	assert.Equal(t, int64(0), nodes[0].submitCalls.Load())
}

func TestCoordinatorRead(t *testing.T) {
	nodes := []*mockNode{{id: 0}, {id: 1, readData: []byte("value")}}
	nodes[1].isLeader.Store(true)
	c := newTestCoordinator(t, nodes)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Read(ctx, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), data)
}

func TestCoordinatorLeaderFailover(t *testing.T) {
	nodes := []*mockNode{{id: 0, readData: []byte("v0")}, {id: 1, readData: []byte("v1")}}
	nodes[0].isLeader.Store(true)
	c := newTestCoordinator(t, nodes)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.Read(ctx, []byte("key"))
	require.NoError(t, err)

	// Leadership moves; the cached leader now rejects operations and the
	// coordinator must rediscover.
	nodes[0].isLeader.Store(false)
	nodes[1].isLeader.Store(true)

	data, err := c.Read(ctx, []byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
	assert.GreaterOrEqual(t, nodes[1].readCalls.Load(), int64(1))
}

func TestCoordinatorNoLeader(t *testing.T) {
	nodes := []*mockNode{{id: 0}, {id: 1}}
	c := newTestCoordinator(t, nodes)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := c.Read(ctx, []byte("key"))
	assert.Error(t, err)
}
