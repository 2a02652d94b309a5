package alerting

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	slackTimeout   = 10 * time.Second
	slackMaxAlerts = 10
)

type SlackChannel struct {
	webhookURL string
	httpClient *http.Client
}

func NewSlackChannel(webhookURL string, httpClient *http.Client) *SlackChannel {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: slackTimeout}
	}
	return &SlackChannel{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

func NewSlackChannelFromConfig(cfg config.Alerts) *SlackChannel {
	if !cfg.SlackConfigured() {
		return nil
	}
	return NewSlackChannel(cfg.SlackWebhookURL, nil)
}

func (c *SlackChannel) Name() string     { return ChannelSlack }
func (c *SlackChannel) Configured() bool { return c.webhookURL != "" }

func (c *SlackChannel) Send(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if !c.Configured() {
		return errNotConfigured(c.Name())
	}

	body, err := json.Marshal(SlackPayload(alerts))
	if err != nil {
		return fmt.Errorf("erro ao serializar payload do Slack: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição para o Slack: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar alerta para o Slack: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook do Slack respondeu HTTP %d", resp.StatusCode)
	}

	logrus.WithField("alerts", len(alerts)).Info("alertas: mensagem enviada ao Slack")
	return nil
}

type SlackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type SlackBlock struct {
	Type     string      `json:"type"`
	Text     *SlackText  `json:"text,omitempty"`
	Fields   []SlackText `json:"fields,omitempty"`
	Elements []SlackText `json:"elements,omitempty"`
}

type SlackMessage struct {
	Blocks []SlackBlock `json:"blocks"`
}

var severityEmojis = map[domain.AlertSeverity]string{
	domain.AlertSeverityCritical: "🔴",
	domain.AlertSeverityWarning:  "🟡",
	domain.AlertSeverityInfo:     "🔵",
}

// SlackPayload monta a mensagem em Block Kit; apenas os 10 primeiros alertas são detalhados
func SlackPayload(alerts []domain.Alert) SlackMessage {
	critical := domain.CountBySeverity(alerts, domain.AlertSeverityCritical)
	warning := domain.CountBySeverity(alerts, domain.AlertSeverityWarning)
	info := domain.CountBySeverity(alerts, domain.AlertSeverityInfo)

	var header string
	switch {
	case critical > 0:
		header = fmt.Sprintf("🚨 Meta Ads Dashboard: %d Critical Alert(s)", critical)
	case warning > 0:
		header = fmt.Sprintf("⚠️ Meta Ads Dashboard: %d Warning(s)", warning)
	default:
		header = fmt.Sprintf("ℹ️ Meta Ads Dashboard: %d Info Alert(s)", info)
	}

	blocks := []SlackBlock{
		{Type: "header", Text: &SlackText{Type: "plain_text", Text: header, Emoji: true}},
		{Type: "divider"},
	}

	shown := alerts
	if len(shown) > slackMaxAlerts {
		shown = shown[:slackMaxAlerts]
	}
	for _, a := range shown {
		emoji, ok := severityEmojis[a.Severity]
		if !ok {
			emoji = "⚪"
		}
		blocks = append(blocks, SlackBlock{
			Type: "section",
			Text: &SlackText{Type: "mrkdwn", Text: fmt.Sprintf("%s *%s*\n%s", emoji, a.Title, a.Message)},
			Fields: []SlackText{
				{Type: "mrkdwn", Text: "*Campaign:*\n" + domain.OrDefault(a.CampaignName, "N/A")},
				{Type: "mrkdwn", Text: "*Time:*\n" + a.Timestamp.Format("15:04")},
			},
		})
	}

	if extra := len(alerts) - slackMaxAlerts; extra > 0 {
		blocks = append(blocks, SlackBlock{
			Type:     "context",
			Elements: []SlackText{{Type: "mrkdwn", Text: fmt.Sprintf("_...and %d more alerts_", extra)}},
		})
	}

	return SlackMessage{Blocks: blocks}
}
