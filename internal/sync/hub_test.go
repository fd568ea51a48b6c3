package sync

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readLines pumps newline-delimited messages from conn onto a channel
// so hub writes (which block on net.Pipe until read) can proceed.
func readLines(t *testing.T, conn net.Conn) <-chan string {
	t.Helper()
	out := make(chan string, 8)
	go func() {
		sc := bufio.NewScanner(conn)
		for sc.Scan() {
			out <- sc.Text()
		}
		close(out)
	}()
	return out
}

func recvLine(t *testing.T, lines <-chan string) string {
	t.Helper()
	select {
	case line, ok := <-lines:
		require.True(t, ok, "connection closed before a line arrived")
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event line")
		return ""
	}
}

func TestHub_BroadcastReachesTCPSubscriber(t *testing.T) {
	hub := NewHub()
	server, client := net.Pipe()
	defer client.Close()

	lines := readLines(t, client)
	hub.Add(server)

	hub.BroadcastJSON(map[string]any{"type": "cart.add", "total_items": 3})

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(recvLine(t, lines)), &got))
	assert.Equal(t, "cart.add", got["type"])
	assert.Equal(t, float64(3), got["total_items"])
}

// TestHub_ReplaysLastEventToNewSubscriber: a watcher connecting between
// mutations still learns the current cart size right away.
func TestHub_ReplaysLastEventToNewSubscriber(t *testing.T) {
	hub := NewHub()
	hub.BroadcastJSON(map[string]any{"type": "cart.add", "total_items": 5})

	server, client := net.Pipe()
	defer client.Close()

	lines := readLines(t, client)
	hub.Add(server)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(recvLine(t, lines)), &got))
	assert.Equal(t, float64(5), got["total_items"])
	assert.Equal(t, Stats{TCPClients: 1}, hub.Stats())
}

func TestHub_DropsSubscriberOnWriteFailure(t *testing.T) {
	hub := NewHub()
	server, client := net.Pipe()

	lines := readLines(t, client)
	hub.Add(server)
	require.Equal(t, 1, hub.Stats().TCPClients)

	_ = client.Close()
	_ = server.Close()
	for range lines {
	}

	hub.BroadcastJSON(map[string]any{"type": "cart.clear"})
	assert.Equal(t, 0, hub.Stats().TCPClients)
}
