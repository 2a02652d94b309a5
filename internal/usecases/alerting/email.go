package alerting

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/wneessen/go-mail"
)

const timestampLayout = "2006-01-02 15:04"

// MailSender é satisfeito por *mail.Client
type MailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type EmailChannel struct {
	host      string
	port      int
	user      string
	password  string
	from      string
	to        string
	newSender func() (MailSender, error)
}

func NewEmailChannel(host string, port int, user, password, from, to string) *EmailChannel {
	c := &EmailChannel{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		to:       to,
	}
	c.newSender = c.smtpClient
	return c
}

// WithSender substitui o cliente SMTP, usado nos testes
func (c *EmailChannel) WithSender(s MailSender) *EmailChannel {
	c.newSender = func() (MailSender, error) { return s, nil }
	return c
}

// smtpClient faz STARTTLS quando o servidor oferece; autenticação só com usuário e senha
func (c *EmailChannel) smtpClient() (MailSender, error) {
	opts := []mail.Option{
		mail.WithPort(c.port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if c.user != "" && c.password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.user),
			mail.WithPassword(c.password),
		)
	}

	client, err := mail.NewClient(c.host, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao configurar cliente SMTP: %w", err)
	}
	return client, nil
}

// NewEmailChannelFromConfig retorna nil quando o email está desabilitado ou incompleto
func NewEmailChannelFromConfig(cfg config.Alerts) *EmailChannel {
	if !cfg.EmailConfigured() {
		return nil
	}
	return NewEmailChannel(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom, cfg.EmailTo)
}

func (c *EmailChannel) Name() string { return ChannelEmail }

func (c *EmailChannel) Configured() bool {
	return c.host != "" && c.from != "" && c.to != ""
}

// Recipients separa ALERT_EMAIL_TO por vírgula
func (c *EmailChannel) Recipients() []string {
	var out []string
	for _, addr := range strings.Split(c.to, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func (c *EmailChannel) Send(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if !c.Configured() {
		return errNotConfigured(c.Name())
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	recipients := c.Recipients()
	msg, err := c.BuildMessage(alerts, recipients)
	if err != nil {
		return err
	}

	sender, err := c.newSender()
	if err != nil {
		return err
	}
	if err := sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("erro ao enviar email de alerta: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"alerts":     len(alerts),
		"recipients": len(recipients),
	}).Info("alertas: email enviado")
	return nil
}

// Subject resume a severidade mais grave presente
func Subject(alerts []domain.Alert) string {
	critical := domain.CountBySeverity(alerts, domain.AlertSeverityCritical)
	warning := domain.CountBySeverity(alerts, domain.AlertSeverityWarning)

	switch {
	case critical > 0:
		return fmt.Sprintf("🚨 CRITICAL: %d critical alert(s) - Meta Ads Dashboard", critical)
	case warning > 0:
		return fmt.Sprintf("⚠️ WARNING: %d warning(s) - Meta Ads Dashboard", warning)
	}
	return fmt.Sprintf("ℹ️ %d alert(s) - Meta Ads Dashboard", len(alerts))
}

// BuildMessage monta a mensagem multipart/alternative com texto e HTML
func (c *EmailChannel) BuildMessage(alerts []domain.Alert, recipients []string) (*mail.Msg, error) {
	htmlBody, err := HTMLBody(alerts)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return nil, fmt.Errorf("remetente inválido: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return nil, fmt.Errorf("destinatário inválido: %w", err)
	}
	msg.Subject(Subject(alerts))
	msg.SetBodyString(mail.TypeTextPlain, TextBody(alerts))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	return msg, nil
}

// TextBody é a versão em texto puro do email
func TextBody(alerts []domain.Alert) string {
	lines := []string{"Meta Ads Dashboard Alerts", strings.Repeat("=", 40), ""}
	for _, a := range alerts {
		lines = append(lines,
			fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Severity)), a.Title),
			"  "+a.Message,
			"  Campaign: "+domain.OrDefault(a.CampaignName, "N/A"),
			"  Time: "+a.Timestamp.Format(timestampLayout),
			"",
		)
	}
	return strings.Join(lines, "\n")
}

var severityColors = map[domain.AlertSeverity]string{
	domain.AlertSeverityCritical: "#dc3545",
	domain.AlertSeverityWarning:  "#ffc107",
	domain.AlertSeverityInfo:     "#17a2b8",
}

var htmlTemplate = template.Must(template.New("alerts").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; }
        table { border-collapse: collapse; width: 100%; }
        th { background-color: #f8f9fa; padding: 12px 8px; text-align: left; border-bottom: 2px solid #dee2e6; }
        td { padding: 8px; border-bottom: 1px solid #ddd; }
    </style>
</head>
<body>
    <h2>Meta Ads Dashboard Alerts</h2>
    <p>The following alerts have been triggered:</p>
    <table>
        <tr>
            <th>Severity</th>
            <th>Alert</th>
            <th>Details</th>
            <th>Campaign</th>
            <th>Time</th>
        </tr>
        {{- range .}}
        <tr>
            <td><span style="background-color: {{.Color}}; color: white; padding: 2px 8px; border-radius: 4px; font-size: 12px;">{{.Severity}}</span></td>
            <td>{{.Title}}</td>
            <td>{{.Message}}</td>
            <td>{{.Campaign}}</td>
            <td>{{.Time}}</td>
        </tr>
        {{- end}}
    </table>
    <p style="color: #6c757d; font-size: 12px; margin-top: 20px;">
        This is an automated message from your Meta Ads Dashboard.
    </p>
</body>
</html>
`))

type htmlRow struct {
	Color    template.CSS
	Severity string
	Title    string
	Message  string
	Campaign string
	Time     string
}

// HTMLBody renderiza a tabela de alertas; os textos são escapados pelo html/template
func HTMLBody(alerts []domain.Alert) (string, error) {
	rows := make([]htmlRow, 0, len(alerts))
	for _, a := range alerts {
		color, ok := severityColors[a.Severity]
		if !ok {
			color = "#6c757d"
		}
		rows = append(rows, htmlRow{
			Color:    template.CSS(color),
			Severity: strings.ToUpper(string(a.Severity)),
			Title:    a.Title,
			Message:  a.Message,
			Campaign: domain.OrDefault(a.CampaignName, "-"),
			Time:     a.Timestamp.Format(timestampLayout),
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, rows); err != nil {
		return "", fmt.Errorf("erro ao renderizar email: %w", err)
	}
	return buf.String(), nil
}
