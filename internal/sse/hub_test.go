package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/special-brownies/booster-pack/internal/domain"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_FiltersByType(t *testing.T) {
	hub := startHub(t)
	all := hub.Register(nil)
	completions := hub.Register([]string{" " + domain.EventSetCompleted, ""})
	waitForClients(t, hub, 2)

	hub.Publish(context.Background(), domain.Event{Type: domain.EventSetMilestoneReached, SetID: "base2"})
	hub.Publish(context.Background(), domain.Event{Type: domain.EventSetCompleted, SetID: "base2"})

	assert.Equal(t, domain.EventSetMilestoneReached, receive(t, all).Type)
	assert.Equal(t, domain.EventSetCompleted, receive(t, all).Type)

	got := receive(t, completions)
	assert.Equal(t, domain.EventSetCompleted, got.Type)
	assert.Equal(t, "base2", got.Payload.(domain.Event).SetID)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	select {
	case <-hub.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}

	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "registering after Stop yields a closed channel")
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "set_completed", Timestamp: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "id: abc\nevent: set_completed\ndata: {"))
	assert.True(t, strings.HasSuffix(string(msg), "}\n\n"))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: keepalive\n"))
}

// readEvent returns the data payload of the next event on the stream.
func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if data, ok := strings.CutPrefix(strings.TrimRight(line, "\n"), "data: "); ok {
			var evt Event
			require.NoError(t, json.Unmarshal([]byte(data), &evt))
			return evt
		}
	}
}

func TestHandler_Streams(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?types=" + domain.EventSetCompleted)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ContentTypeStream, resp.Header.Get(HeaderContentType))

	r := bufio.NewReader(resp.Body)
	assert.Equal(t, EventTypeConnected, readEvent(t, r).Type)
	waitForClients(t, hub, 1)

	hub.Publish(context.Background(), domain.Event{Type: domain.EventSetMilestoneReached, SetID: "base2"})
	hub.Publish(context.Background(), domain.Event{Type: domain.EventSetCompleted, SetID: "jungle"})

	evt := readEvent(t, r)
	assert.Equal(t, domain.EventSetCompleted, evt.Type)
	payload, ok := evt.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jungle", payload["set_id"])

	hub.Stop()
	_, err = r.ReadString('\n')
	assert.Error(t, err, "stream ends once the hub stops")
}
