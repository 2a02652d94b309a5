package alerting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

const (
	ChannelEmail     = "email"
	ChannelSlack     = "slack"
	ChannelDashboard = "dashboard"

	DefaultDashboardCapacity = 100
)

// Channel entrega alertas para um destino (email, Slack, painel)
type Channel interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, alerts []domain.Alert) error
}

// Broadcaster recebe os alertas guardados no painel, usado pelo feed de websocket
type Broadcaster interface {
	Broadcast(alerts []domain.Alert)
}

// DashboardChannel guarda os últimos alertas em memória para o painel
type DashboardChannel struct {
	mu          sync.RWMutex
	capacity    int
	alerts      []domain.Alert
	broadcaster Broadcaster
	now         func() time.Time
}

func NewDashboardChannel(capacity int) *DashboardChannel {
	if capacity <= 0 {
		capacity = DefaultDashboardCapacity
	}
	return &DashboardChannel{
		capacity: capacity,
		alerts:   []domain.Alert{},
		now:      time.Now,
	}
}

// SetBroadcaster liga o canal ao hub do websocket
func (c *DashboardChannel) SetBroadcaster(b Broadcaster) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcaster = b
}

func (c *DashboardChannel) Name() string     { return ChannelDashboard }
func (c *DashboardChannel) Configured() bool { return true }

// Send acrescenta os alertas mantendo apenas os mais recentes
func (c *DashboardChannel) Send(_ context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	c.mu.Lock()
	c.alerts = append(c.alerts, alerts...)
	if extra := len(c.alerts) - c.capacity; extra > 0 {
		c.alerts = append([]domain.Alert{}, c.alerts[extra:]...)
	}
	broadcaster := c.broadcaster
	c.mu.Unlock()

	if broadcaster != nil {
		broadcaster.Broadcast(alerts)
	}
	return nil
}

// Alerts retorna os alertas do mais recente para o mais antigo
func (c *DashboardChannel) Alerts() []domain.Alert {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Alert, 0, len(c.alerts))
	for i := len(c.alerts) - 1; i >= 0; i-- {
		out = append(out, c.alerts[i])
	}
	return out
}

func (c *DashboardChannel) Unacknowledged() []domain.Alert {
	return c.filter(func(a domain.Alert) bool { return !a.Acknowledged })
}

func (c *DashboardChannel) BySeverity(severity domain.AlertSeverity) []domain.Alert {
	return c.filter(func(a domain.Alert) bool { return a.Severity == severity })
}

func (c *DashboardChannel) filter(keep func(domain.Alert) bool) []domain.Alert {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []domain.Alert{}
	for _, a := range c.alerts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (c *DashboardChannel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = []domain.Alert{}
}

// Acknowledge marca o alerta como reconhecido. Retorna false se o id não estiver no painel.
func (c *DashboardChannel) Acknowledge(alertID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.alerts {
		if c.alerts[i].ID == alertID {
			now := c.now()
			c.alerts[i].Acknowledged = true
			c.alerts[i].AcknowledgedAt = &now
			return true
		}
	}
	return false
}

// CreateChannels monta os canais habilitados; o painel está sempre presente e é o primeiro
func CreateChannels(cfg *config.Config) []Channel {
	channels := []Channel{NewDashboardChannel(DefaultDashboardCapacity)}

	if email := NewEmailChannelFromConfig(cfg.Alerts); email != nil {
		channels = append(channels, email)
	}
	if slack := NewSlackChannelFromConfig(cfg.Alerts); slack != nil {
		channels = append(channels, slack)
	}

	return channels
}

func errNotConfigured(name string) error {
	return fmt.Errorf("canal %s não está configurado", name)
}
