package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"go.uber.org/goleak"
)

func dial(t *testing.T, server *httptest.Server, origin string) *websocket.Conn {
	t.Helper()
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), header)
	require.NoError(t, err)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_Broadcast(t *testing.T) {
	defer goleak.VerifyNone(t)

	pending := []domain.Alert{{ID: "a1", Title: "ROI baixo"}}
	hub := NewHub(nil).WithSnapshot(func() []domain.Alert { return pending })
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server, "")
	defer conn.Close()

	hello := readMessage(t, conn)
	assert.Equal(t, MessageHello, hello.Type)
	assert.Len(t, hello.ClientID, 10)
	require.Len(t, hello.Alerts, 1)
	assert.Equal(t, "a1", hello.Alerts[0].ID)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Broadcast([]domain.Alert{{ID: "a2"}, {ID: "a3"}})
	msg := readMessage(t, conn)
	assert.Equal(t, MessageAlerts, msg.Type)
	assert.Len(t, msg.Alerts, 2)

	hub.Close()
	assert.Equal(t, 0, hub.ClientCount())

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func TestHub_BroadcastSemAlertasNaoEnvia(t *testing.T) {
	hub := NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server, "")
	defer conn.Close()
	readMessage(t, conn)

	hub.Broadcast(nil)
	hub.Broadcast([]domain.Alert{{ID: "a4"}})
	assert.Equal(t, "a4", readMessage(t, conn).Alerts[0].ID)

	hub.Close()
}

func TestHub_LimiteDeClientes(t *testing.T) {
	hub := NewHub(nil).WithMaxClients(1)
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server, "")
	defer conn.Close()
	readMessage(t, conn)

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	hub.Close()
}

func TestHub_LimiteDeClientesConcorrentes(t *testing.T) {
	hub := NewHub(nil).WithMaxClients(2)
	server := httptest.NewServer(hub)
	defer server.Close()

	const attempts = 8
	var (
		mu       sync.Mutex
		conns    []*websocket.Conn
		rejected int
		wg       sync.WaitGroup
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if resp != nil && resp.StatusCode == http.StatusServiceUnavailable {
					rejected++
				}
				return
			}
			conns = append(conns, conn)
		}()
	}
	wg.Wait()

	assert.Len(t, conns, 2)
	assert.Equal(t, attempts-2, rejected)
	assert.LessOrEqual(t, hub.ClientCount(), 2)

	for _, conn := range conns {
		conn.Close()
	}
	hub.Close()
}

func TestHub_CheckOrigin(t *testing.T) {
	hub := NewHub([]string{"http://localhost:3000"})
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server, "http://localhost:3000")
	readMessage(t, conn)
	conn.Close()

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"),
		http.Header{"Origin": []string{"https://evil.example"}})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	hub.Close()
}

func TestHub_CheckOriginWildcard(t *testing.T) {
	hub := NewHub([]string{"*"})
	server := httptest.NewServer(hub)
	defer server.Close()

	conn := dial(t, server, "https://qualquer.example")
	msg := readMessage(t, conn)
	assert.NotEmpty(t, msg.Type)
	conn.Close()

	hub.Close()
}
