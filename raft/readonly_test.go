package raft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReadRequest(token string) *readRequest {
	return &readRequest{
		ctx:      []byte(token),
		from:     1,
		to:       1,
		resultCh: make(chan readResult, 1),
	}
}

func TestReadOnlyAddRequest(t *testing.T) {
	t.Run("registration order and count", func(t *testing.T) {
		ro := newReadOnly()

		for i := 0; i < 5; i++ {
			ro.addRequest(int64(i), newTestReadRequest(fmt.Sprintf("t%d", i)))
		}

		require.Equal(t, 5, ro.pendingReadCount())
		assert.Equal(t, []string{"t0", "t1", "t2", "t3", "t4"}, ro.readIndexQueue)
	})

	t.Run("duplicate token is a no-op", func(t *testing.T) {
		ro := newReadOnly()
		ro.addRequest(5, newTestReadRequest("dup"))
		ro.recvAck(2, 1, []byte("dup"))

		ro.addRequest(9, newTestReadRequest("dup"))

		require.Equal(t, 1, ro.pendingReadCount())
		rs := ro.pendingReadIndex["dup"]
		require.NotNil(t, rs)
		assert.Equal(t, int64(5), rs.index, "original captured index must survive")
		assert.Contains(t, rs.acks, int64(2), "ack state must survive")
	})
}

func TestReadOnlyRecvAck(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		ro := newReadOnly()
		ro.addRequest(1, newTestReadRequest("known"))

		acks := ro.recvAck(2, 1, []byte("unknown"))

		assert.Empty(t, acks)
		assert.Empty(t, ro.pendingReadIndex["known"].acks, "no mutation on unknown token")
	})

	t.Run("returned set includes the leader", func(t *testing.T) {
		ro := newReadOnly()
		ro.addRequest(1, newTestReadRequest("r"))

		acks := ro.recvAck(2, 1, []byte("r"))
		require.Len(t, acks, 2)
		assert.Contains(t, acks, int64(1))
		assert.Contains(t, acks, int64(2))

		// stored set only grows
		acks = ro.recvAck(3, 1, []byte("r"))
		require.Len(t, acks, 3)
		assert.Len(t, ro.pendingReadIndex["r"].acks, 2, "leader's implicit ack is never stored")
	})
}

func TestReadOnlyAdvance(t *testing.T) {
	t.Run("unknown token releases nothing", func(t *testing.T) {
		ro := newReadOnly()
		ro.addRequest(1, newTestReadRequest("a"))

		require.Nil(t, ro.advance([]byte("nope"), true))
		assert.Equal(t, 1, ro.pendingReadCount())
	})

	t.Run("ready releases prefix in registration order", func(t *testing.T) {
		ro := newReadOnly()
		for _, token := range []string{"a", "b", "c", "d"} {
			ro.addRequest(1, newTestReadRequest(token))
		}

		released := ro.advance([]byte("c"), true)
		require.Len(t, released, 3)
		assert.Equal(t, []byte("a"), released[0].req.ctx)
		assert.Equal(t, []byte("b"), released[1].req.ctx)
		assert.Equal(t, []byte("c"), released[2].req.ctx)

		require.Equal(t, 1, ro.pendingReadCount())
		assert.Equal(t, []byte("d"), ro.lastPendingRequestCtx())
		_, ok := ro.pendingReadIndex["a"]
		assert.False(t, ok, "released entries must leave the map")
	})

	t.Run("not ready only raises the gate", func(t *testing.T) {
		ro := newReadOnly()
		for _, token := range []string{"a", "b", "c"} {
			ro.addRequest(1, newTestReadRequest(token))
		}

		require.Nil(t, ro.advance([]byte("b"), false))
		assert.Equal(t, 3, ro.pendingReadCount())
		assert.Equal(t, 2, ro.waitingForReady)

		// non-decreasing across calls with earlier positions
		require.Nil(t, ro.advance([]byte("a"), false))
		assert.Equal(t, 2, ro.waitingForReady)

		require.Nil(t, ro.advance([]byte("c"), false))
		assert.Equal(t, 3, ro.waitingForReady)
	})
}

func TestReadOnlyAdvanceByCommit(t *testing.T) {
	t.Run("nothing gated", func(t *testing.T) {
		ro := newReadOnly()
		ro.addRequest(1, newTestReadRequest("a"))

		require.Nil(t, ro.advanceByCommit(10))
		assert.Equal(t, 1, ro.pendingReadCount())
	})

	t.Run("drains exactly the gated prefix and stamps the committed index", func(t *testing.T) {
		ro := newReadOnly()
		for _, token := range []string{"a", "b", "c"} {
			ro.addRequest(3, newTestReadRequest(token))
		}
		ro.advance([]byte("b"), false)
		require.Equal(t, 2, ro.waitingForReady)

		released := ro.advanceByCommit(10)
		require.Len(t, released, 2)
		for _, rs := range released {
			assert.Equal(t, int64(10), rs.index, "committed index overrides the captured one")
		}
		assert.Equal(t, 0, ro.waitingForReady)
		require.Equal(t, 1, ro.pendingReadCount())
		assert.Equal(t, []byte("c"), ro.lastPendingRequestCtx())
	})
}

func TestReadOnlyLastPendingRequestCtx(t *testing.T) {
	ro := newReadOnly()
	assert.Nil(t, ro.lastPendingRequestCtx())

	ro.addRequest(1, newTestReadRequest("a"))
	ro.addRequest(1, newTestReadRequest("b"))
	assert.Equal(t, []byte("b"), ro.lastPendingRequestCtx())

	ro.advance([]byte("b"), true)
	assert.Nil(t, ro.lastPendingRequestCtx())
}

func TestReadOnlyDrainAll(t *testing.T) {
	ro := newReadOnly()
	for _, token := range []string{"a", "b", "c"} {
		ro.addRequest(1, newTestReadRequest(token))
	}
	ro.advance([]byte("c"), false)

	drained := ro.drainAll()
	require.Len(t, drained, 3)
	assert.Equal(t, []byte("a"), drained[0].req.ctx)
	assert.Equal(t, []byte("c"), drained[2].req.ctx)
	assert.Equal(t, 0, ro.pendingReadCount())
	assert.Equal(t, 0, ro.waitingForReady)
	assert.Empty(t, ro.pendingReadIndex)
}

func TestReadOnlyQuorumScenario(t *testing.T) {
	ro := newReadOnly()
	ro.addRequest(5, newTestReadRequest("c1"))
	ro.addRequest(7, newTestReadRequest("c2"))

	acks := ro.recvAck(2, 1, []byte("c1"))
	require.Len(t, acks, 2)
	assert.Contains(t, acks, int64(1))
	assert.Contains(t, acks, int64(2))

	released := ro.advance([]byte("c1"), true)
	require.Len(t, released, 1)
	assert.Equal(t, []byte("c1"), released[0].req.ctx)
	assert.Equal(t, int64(5), released[0].index)
	assert.Contains(t, released[0].acks, int64(2))

	require.Equal(t, 1, ro.pendingReadCount())
	assert.Equal(t, []byte("c2"), ro.lastPendingRequestCtx())
}

func TestReadOnlyGatingScenario(t *testing.T) {
	ro := newReadOnly()
	ro.addRequest(3, newTestReadRequest("c3"))

	require.Nil(t, ro.advance([]byte("c3"), false))
	assert.Equal(t, 1, ro.waitingForReady)

	released := ro.advanceByCommit(10)
	require.Len(t, released, 1)
	assert.Equal(t, []byte("c3"), released[0].req.ctx)
	assert.Equal(t, int64(10), released[0].index)
	assert.Equal(t, 0, ro.waitingForReady)
	assert.Equal(t, 0, ro.pendingReadCount())
}

func TestReadOnlyInconsistencyPanics(t *testing.T) {
	ro := newReadOnly()
	ro.addRequest(1, newTestReadRequest("a"))
	delete(ro.pendingReadIndex, "a")

	assert.Panics(t, func() {
		ro.advance([]byte("a"), true)
	})
}
