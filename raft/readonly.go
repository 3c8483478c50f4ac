package raft

import (
	"fmt"
	"slices"

	"github.com/readix/raft/api"
)

// readResult is delivered to the goroutine blocked in ReadIndex once its
// request is released or failed.
type readResult struct {
	state api.ReadState
	err   error
}

// readRequest is the envelope of one in-flight linearizable read: the
// correlation token it is tracked under, the node ids it traveled between,
// and the channel its outcome is delivered on. The registry stores
// envelopes but never inspects the delivery fields.
type readRequest struct {
	ctx      []byte
	from, to int64
	resultCh chan readResult
}

// readIndexStatus tracks one registered read: its envelope, the commit
// index captured at registration time, and the set of peers that
// acknowledged the heartbeat round carrying its token.
type readIndexStatus struct {
	req   *readRequest
	index int64
	acks  map[int64]struct{}
}

// readOnly is the registry of pending linearizable reads on a leader.
//
// pendingReadIndex and readIndexQueue are always mutated together: a token
// is a key of the map iff it is present in the queue, and the queue holds
// registration order. waitingForReady counts entries at the front of the
// queue that cannot be confirmed until an entry of the leader's own term
// commits.
//
// Guarded by the engine's mutex; no internal locking.
type readOnly struct {
	pendingReadIndex map[string]*readIndexStatus
	readIndexQueue   []string
	waitingForReady  int
}

func newReadOnly() *readOnly {
	return &readOnly{
		pendingReadIndex: make(map[string]*readIndexStatus),
	}
}

// addRequest registers a read against the commit index observed at arrival.
// Registering a token that is already pending is a silent no-op.
func (ro *readOnly) addRequest(index int64, req *readRequest) {
	token := string(req.ctx)
	if _, ok := ro.pendingReadIndex[token]; ok {
		return
	}
	ro.pendingReadIndex[token] = &readIndexStatus{
		req:   req,
		index: index,
		acks:  make(map[int64]struct{}),
	}
	ro.readIndexQueue = append(ro.readIndexQueue, token)
}

// recvAck records that peer from acknowledged the heartbeat round carrying
// the given token. It returns a fresh set holding every acker recorded so
// far plus to (the leader implicitly confirms its own round); the caller
// compares its size against the cluster quorum. An unknown token returns
// an empty set without mutating anything.
func (ro *readOnly) recvAck(from, to int64, token []byte) map[int64]struct{} {
	rs, ok := ro.pendingReadIndex[string(token)]
	if !ok {
		return nil
	}
	rs.acks[from] = struct{}{}

	acks := make(map[int64]struct{}, len(rs.acks)+1)
	for id := range rs.acks {
		acks[id] = struct{}{}
	}
	acks[to] = struct{}{}
	return acks
}

// advance releases reads after a quorum acknowledged the round carrying
// token.
//
// If the token is not pending, nothing is released. If ready is false the
// leader has not yet committed an entry of its own term, so the token and
// everything queued before it stay put and the readiness gate is raised to
// cover them. If ready is true, the token and every earlier read are
// popped in registration order: the commit index is monotonic, so
// confirming a later read also confirms all earlier ones.
func (ro *readOnly) advance(token []byte, ready bool) []*readIndexStatus {
	i := slices.Index(ro.readIndexQueue, string(token))
	if i < 0 {
		return nil
	}
	if !ready {
		ro.waitingForReady = max(ro.waitingForReady, i+1)
		return nil
	}
	return ro.pop(i + 1)
}

// advanceByCommit flushes every read blocked on the readiness gate once
// the commit index has advanced into the leader's term. Drained entries
// are stamped with the newly committed index: it supersedes the index
// captured at registration, which may be stale on lagging followers.
func (ro *readOnly) advanceByCommit(committed int64) []*readIndexStatus {
	if ro.waitingForReady == 0 {
		return nil
	}
	n := ro.waitingForReady
	ro.waitingForReady = 0

	released := ro.pop(n)
	for _, rs := range released {
		rs.index = committed
	}
	return released
}

// drainAll removes and returns every pending read in registration order.
// The engine uses it to fail outstanding reads when leadership is lost.
func (ro *readOnly) drainAll() []*readIndexStatus {
	ro.waitingForReady = 0
	return ro.pop(len(ro.readIndexQueue))
}

// lastPendingRequestCtx returns the token of the most recently registered
// read, or nil when nothing is pending.
func (ro *readOnly) lastPendingRequestCtx() []byte {
	if len(ro.readIndexQueue) == 0 {
		return nil
	}
	return []byte(ro.readIndexQueue[len(ro.readIndexQueue)-1])
}

func (ro *readOnly) pendingReadCount() int {
	return len(ro.readIndexQueue)
}

// pop removes the n oldest entries from both structures and returns them
// in registration order. Ownership of the returned entries moves to the
// caller; the registry keeps no reference.
func (ro *readOnly) pop(n int) []*readIndexStatus {
	if n == 0 {
		return nil
	}
	released := make([]*readIndexStatus, 0, n)
	for _, token := range ro.readIndexQueue[:n] {
		rs, ok := ro.pendingReadIndex[token]
		if !ok {
			// The map and the queue diverged. There is no way to
			// continue safely with a partially drained registry.
			panic(fmt.Sprintf("raft: cannot find read state for pending token %q", token))
		}
		released = append(released, rs)
		delete(ro.pendingReadIndex, token)
	}
	ro.readIndexQueue = append([]string(nil), ro.readIndexQueue[n:]...)
	return released
}
