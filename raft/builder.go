package raft

import (
	"log/slog"

	"github.com/readix/raft/api"
)

type nodeBuilder struct {
	// required
	me        int
	applyCh   chan *api.ApplyMessage
	fsm       api.FSM
	transport api.Transport

	// optional with defaults
	cfg       *api.RaftConfig
	persister api.Persister
	logger    *slog.Logger
}

func NewNodeBuilder(
	nodeIdx int,
	applyCh chan *api.ApplyMessage,
	fsm api.FSM,
	transport api.Transport,
) api.NodeBuilder {
	return &nodeBuilder{
		me:        nodeIdx,
		applyCh:   applyCh,
		fsm:       fsm,
		transport: transport,
		cfg:       DefaultConfig(),
	}
}

func (nb *nodeBuilder) Build() (api.Raft, error) {
	node, err := NewRaft(nb.cfg, nb.me, nb.persister, nb.applyCh, nb.transport, nb.fsm)
	if err != nil {
		return nil, err
	}

	rf := node.(*Raft)
	if nb.logger != nil {
		rf.logger = nb.logger.With(slog.Int("me", nb.me))
	}

	if nb.cfg.GRPCAddr != "" {
		rf.grpcServer = NewGRPCServer(rf, nb.cfg.GRPCAddr)
	}

	if nb.cfg.HttpMonitoringAddr != "" {
		rf.monitoringServer = NewMonitoringServer(rf, nb.cfg.HttpMonitoringAddr)
	}

	return rf, nil
}

func (nb *nodeBuilder) WithConfig(cfg *api.RaftConfig) api.NodeBuilder {
	if cfg != nil {
		nb.cfg = cfg
	}
	return nb
}

func (nb *nodeBuilder) WithPersister(p api.Persister) api.NodeBuilder {
	nb.persister = p
	return nb
}

func (nb *nodeBuilder) WithLogger(l *slog.Logger) api.NodeBuilder {
	nb.logger = l
	return nb
}
