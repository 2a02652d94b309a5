package stream

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errHubClosed = errors.New("hub encerrado")
	errHubFull   = errors.New("limite de conexões atingido")
)

const (
	DefaultMaxClients = 100

	MessageHello  = "hello"
	MessageAlerts = "alerts"

	sendBuffer   = 16
	writeTimeout = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 30 * time.Second
)

type Message struct {
	Type     string         `json:"type"`
	ClientID string         `json:"client_id,omitempty"`
	Alerts   []domain.Alert `json:"alerts,omitempty"`
	SentAt   time.Time      `json:"sent_at"`
}

// SnapshotFunc devolve os alertas enviados a um cliente assim que ele conecta
type SnapshotFunc func() []domain.Alert

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub mantém as conexões do feed /ws/alerts e repassa os alertas do painel
type Hub struct {
	upgrader   websocket.Upgrader
	maxClients int
	snapshot   SnapshotFunc

	mu       sync.RWMutex
	clients  map[string]*client
	reserved int // vagas reservadas por upgrades em andamento
	closed   bool
	wg       sync.WaitGroup
}

func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin) {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && u.Host == r.Host
			},
		},
		maxClients: DefaultMaxClients,
		clients:    make(map[string]*client),
	}
}

// WithSnapshot define os alertas enviados na conexão, normalmente os não reconhecidos
func (h *Hub) WithSnapshot(snapshot SnapshotFunc) *Hub {
	h.snapshot = snapshot
	return h
}

func (h *Hub) WithMaxClients(n int) *Hub {
	h.maxClients = n
	return h
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.reserve(); err != nil {
		http.Error(w, "Limite de conexões atingido", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.release()
		logrus.WithError(err).Warn("websocket: falha no upgrade")
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		h.release()
		logrus.WithError(err).Error("websocket: erro ao gerar id do cliente")
		_ = conn.Close()
		return
	}

	c := &client{id: id, conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "servidor encerrando"), time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}

	hello := Message{Type: MessageHello, ClientID: id, SentAt: time.Now().UTC()}
	if h.snapshot != nil {
		hello.Alerts = h.snapshot()
	}
	h.enqueue(c, hello)

	logrus.WithField("client_id", id).Info("websocket: cliente conectado")

	go h.writePump(c)
	go h.readPump(c)
}

// reserve ocupa uma vaga antes do upgrade; a checagem e a reserva acontecem sob o mesmo lock
func (h *Hub) reserve() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errHubClosed
	}
	if len(h.clients)+h.reserved >= h.maxClients {
		return errHubFull
	}
	h.reserved++
	return nil
}

func (h *Hub) release() {
	h.mu.Lock()
	h.reserved--
	h.mu.Unlock()
}

// register converte a vaga reservada em cliente
func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reserved--
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	h.wg.Add(2)
	return true
}

// unregister remove o cliente e fecha o canal de envio uma única vez
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
}

// readPump só existe para detectar a desconexão e responder aos pongs
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		h.wg.Done()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("client_id", c.id).Debug("websocket: leitura encerrada")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		h.wg.Done()
		logrus.WithField("client_id", c.id).Info("websocket: cliente desconectado")
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.unregister(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}

func (h *Hub) enqueue(c *client, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		logrus.WithError(err).Error("websocket: erro ao serializar mensagem")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	select {
	case c.send <- payload:
	default:
		logrus.WithField("client_id", c.id).Warn("websocket: cliente lento, mensagem descartada")
	}
}

// Broadcast envia os alertas a todos os clientes conectados
func (h *Hub) Broadcast(alerts []domain.Alert) {
	if len(alerts) == 0 {
		return
	}

	payload, err := json.Marshal(Message{Type: MessageAlerts, Alerts: alerts, SentAt: time.Now().UTC()})
	if err != nil {
		logrus.WithError(err).Error("websocket: erro ao serializar alertas")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- payload:
		default:
			logrus.WithField("client_id", c.id).Warn("websocket: cliente lento, alertas descartados")
		}
	}
}

// Close desconecta todos os clientes e aguarda as goroutines terminarem
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
	h.wg.Wait()
}
