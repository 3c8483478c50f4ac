package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/readix/raft/api"
	raftpb "github.com/readix/raft/internal/proto/gen"
	"github.com/readix/raft/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func testStorageConfig() *api.RaftConfig {
	return &api.RaftConfig{
		Fsync: api.FsyncCfg{
			BatchSize: 10,
			Timeout:   10 * time.Millisecond,
		},
	}
}

// newTestWAL creates a new WALStorage in a temporary directory for testing.
func newTestWAL(t *testing.T) (*WALStorage, string) {
	t.Helper()
	dir := t.TempDir()

	_, log := logger.NewTestLogger()
	ws, err := NewWALStorage(dir, testStorageConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws, dir
}

func readPersistedState(t *testing.T, ws *WALStorage) *raftpb.RaftPersistentState {
	t.Helper()
	stateBytes, err := ws.ReadRaftState()
	require.NoError(t, err)
	require.NotNil(t, stateBytes)

	state := &raftpb.RaftPersistentState{}
	require.NoError(t, proto.Unmarshal(stateBytes, state))
	return state
}

func TestNewWALStorage(t *testing.T) {
	t.Run("creates dir if not exists", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "wal")

		_, log := logger.NewTestLogger()
		ws, err := NewWALStorage(dir, testStorageConfig(), log)
		require.NoError(t, err)
		defer ws.Close()

		_, err = os.Stat(dir)
		require.NoError(t, err, "directory should be created")
	})

	t.Run("loads existing data on startup", func(t *testing.T) {
		ws, dir := newTestWAL(t)

		entries := []*raftpb.LogEntry{{Term: 1, Cmd: []byte("command")}}
		require.NoError(t, ws.AppendEntries(entries))
		require.NoError(t, ws.SetMetadata(1, 1))
		require.NoError(t, ws.Close())

		_, log := logger.NewTestLogger()
		ws2, err := NewWALStorage(dir, testStorageConfig(), log)
		require.NoError(t, err)
		defer ws2.Close()

		state := readPersistedState(t, ws2)
		assert.Equal(t, int64(1), state.CurrentTerm)
		assert.Equal(t, int64(1), state.VotedFor)
		require.Len(t, state.Log, 1)
		assert.True(t, proto.Equal(entries[0], state.Log[0]))
	})
}

func TestWALStorage_StateOperations(t *testing.T) {
	ws, _ := newTestWAL(t)

	stateBytes, err := ws.ReadRaftState()
	require.NoError(t, err)
	assert.Nil(t, stateBytes, "fresh storage has no state")
	size, err := ws.RaftStateSize()
	require.NoError(t, err)
	assert.Equal(t, 0, size)

	entries := []*raftpb.LogEntry{
		{Term: 1, Cmd: []byte("entry1")},
		{Term: 1, Cmd: []byte("entry2")},
		{Term: 2, Cmd: nil}, // no-op entry
	}
	require.NoError(t, ws.AppendEntries(entries))
	require.NoError(t, ws.SetMetadata(2, 5))

	state := readPersistedState(t, ws)
	assert.Equal(t, int64(2), state.CurrentTerm)
	assert.Equal(t, int64(5), state.VotedFor)
	require.Len(t, state.Log, 3)
	for i := range entries {
		assert.True(t, proto.Equal(entries[i], state.Log[i]))
	}

	stateBytes, err = ws.ReadRaftState()
	require.NoError(t, err)
	size, err = ws.RaftStateSize()
	require.NoError(t, err)
	assert.Equal(t, len(stateBytes), size)
}

func TestWALStorage_ConcurrentAppends(t *testing.T) {
	ws, _ := newTestWAL(t)

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			err := ws.AppendEntries([]*raftpb.LogEntry{{Term: int64(n), Cmd: []byte{byte(n)}}})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	state := readPersistedState(t, ws)
	assert.Len(t, state.Log, writers)
}

func TestWALStorage_Snapshots(t *testing.T) {
	ws, dir := newTestWAL(t)

	require.NoError(t, ws.AppendEntries([]*raftpb.LogEntry{{Term: 1, Cmd: []byte("cmd1")}}))
	require.NoError(t, ws.SetMetadata(1, -1))

	snapshotData := []byte("snapshot-data-1")
	// The new raft state post-snapshot: log truncated up to index 5.
	state := &raftpb.RaftPersistentState{
		CurrentTerm:       2,
		VotedFor:          -1,
		Log:               []*raftpb.LogEntry{{Term: 2}},
		LastIncludedIndex: 5,
		LastIncludedTerm:  1,
	}
	stateBytes, err := proto.Marshal(state)
	require.NoError(t, err)

	require.NoError(t, ws.SaveStateAndSnapshot(stateBytes, snapshotData))

	snap, err := ws.ReadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snapshotData, snap)

	persisted := readPersistedState(t, ws)
	assert.Equal(t, int64(2), persisted.CurrentTerm)
	assert.Equal(t, int64(5), persisted.LastIncludedIndex)
	require.Len(t, persisted.Log, 1)

	// Reload from disk and verify everything survived.
	require.NoError(t, ws.Close())
	_, log := logger.NewTestLogger()
	ws2, err := NewWALStorage(dir, testStorageConfig(), log)
	require.NoError(t, err)
	defer ws2.Close()

	reloadedSnap, err := ws2.ReadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snapshotData, reloadedSnap)
	reloaded := readPersistedState(t, ws2)
	assert.Equal(t, int64(2), reloaded.CurrentTerm)
	require.Len(t, reloaded.Log, 1)
}

func TestWALStorage_Corruption(t *testing.T) {
	t.Run("CRC mismatch", func(t *testing.T) {
		dir := t.TempDir()

		entry := &raftpb.LogEntry{Term: 1, Cmd: []byte("command")}
		encoded, err := encodeEntry(entry)
		require.NoError(t, err)

		// Corrupt the CRC
		encoded[5]++

		walPath := filepath.Join(dir, walFileName)
		require.NoError(t, os.WriteFile(walPath, encoded, 0644))

		_, log := logger.NewTestLogger()
		_, err = NewWALStorage(dir, testStorageConfig(), log)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "crc mismatch")
	})

	t.Run("partial write is ignored", func(t *testing.T) {
		dir := t.TempDir()

		entry := &raftpb.LogEntry{Term: 1, Cmd: []byte("a long entry")}
		encoded, err := encodeEntry(entry)
		require.NoError(t, err)

		walPath := filepath.Join(dir, walFileName)
		require.NoError(t, os.WriteFile(walPath, encoded[:len(encoded)-5], 0644))

		_, log := logger.NewTestLogger()
		ws, err := NewWALStorage(dir, testStorageConfig(), log)
		require.NoError(t, err)
		defer ws.Close()

		stateBytes, err := ws.ReadRaftState()
		require.NoError(t, err)
		assert.Nil(t, stateBytes, "torn tail entry should be dropped")
	})
}

func TestEncodeDecodeEntry(t *testing.T) {
	entry := &raftpb.LogEntry{
		Term: 1,
		Cmd:  []byte("some data"),
	}

	encoded, err := encodeEntry(entry)
	require.NoError(t, err)

	decoded, err := decodeEntry(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.True(t, proto.Equal(entry, decoded))
}
