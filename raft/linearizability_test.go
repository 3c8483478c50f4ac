package raft

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/anishathalye/porcupine"
	"github.com/stretchr/testify/require"
)

const (
	opGet = iota
	opPut
)

type registerInput struct {
	op    int
	value string
}

// registerModel is a single linearizable register: puts overwrite the
// value, gets must observe the latest linearized put.
var registerModel = porcupine.Model{
	Init: func() interface{} {
		return ""
	},
	Step: func(state, input, output interface{}) (bool, interface{}) {
		in := input.(registerInput)
		if in.op == opPut {
			return true, in.value
		}
		return output.(string) == state.(string), state
	},
	DescribeOperation: func(input, output interface{}) string {
		in := input.(registerInput)
		if in.op == opPut {
			return fmt.Sprintf("put(%q)", in.value)
		}
		return fmt.Sprintf("get() -> %q", output.(string))
	},
}

// TestClusterLinearizableHistory drives concurrent writers and readers
// against a live cluster and checks the recorded history with porcupine.
func TestClusterLinearizableHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping linearizability check in short mode")
	}

	c := newCluster(t, 3, nil)
	c.checkSingleLeader()
	c.put("reg", "")

	const (
		clients      = 4
		opsPerClient = 8
	)

	start := time.Now()
	var mu sync.Mutex
	var history []porcupine.Operation

	record := func(clientId int, in registerInput, out string, call, ret int64) {
		mu.Lock()
		defer mu.Unlock()
		history = append(history, porcupine.Operation{
			ClientId: clientId,
			Input:    in,
			Output:   out,
			Call:     call,
			Return:   ret,
		})
	}

	var wg sync.WaitGroup
	for client := 0; client < clients; client++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < opsPerClient; i++ {
				call := time.Since(start).Nanoseconds()
				if (id+i)%2 == 0 {
					value := fmt.Sprintf("c%d-%d", id, i)
					c.put("reg", value)
					record(id, registerInput{op: opPut, value: value}, "", call, time.Since(start).Nanoseconds())
				} else {
					got := c.get("reg")
					record(id, registerInput{op: opGet}, string(got), call, time.Since(start).Nanoseconds())
				}
			}
		}(client)
	}
	wg.Wait()

	res := porcupine.CheckOperations(registerModel, history)
	require.True(t, res, "history is not linearizable")
}
