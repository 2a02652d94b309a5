package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultLeadActionTypes = "lead,omni_lead,onsite_conversion.lead_grouped,offsite_conversion.fb_pixel_lead"

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	Sheets     Sheets     `mapstructure:",squash"`
	Leadspedia Leadspedia `mapstructure:",squash"`
	Alerts     Alerts     `mapstructure:",squash"`
	CachePrune CachePrune `mapstructure:",squash"`
	Mappings   Mappings   `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Auth struct {
	Secret       string        `mapstructure:"auth_secret"`
	PasswordHash string        `mapstructure:"dashboard_password_hash"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

// Enabled indica se o painel exige login
func (a Auth) Enabled() bool {
	return a.Secret != "" && a.PasswordHash != ""
}

type Meta struct {
	BaseURL         string   `mapstructure:"meta_base_url"`
	APIVersion      string   `mapstructure:"meta_api_version"`
	AccessToken     string   `mapstructure:"meta_access_token"`
	AdAccountID     string   `mapstructure:"meta_ad_account_id"`
	LeadActionTypes []string `mapstructure:"meta_lead_action_types"`
}

type Cache struct {
	DBPath     string `mapstructure:"meta_cache_db_path"`
	TTLSeconds int    `mapstructure:"meta_cache_ttl_seconds"`
}

// TTL retorna o tempo de vida das entradas do cache
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type Sheets struct {
	SpreadsheetID          string `mapstructure:"google_sheets_spreadsheet_id"`
	WorksheetName          string `mapstructure:"google_sheets_worksheet_name"`
	ServiceAccountJSONPath string `mapstructure:"google_service_account_json_path"`
}

// Configured indica se a exportação para o Google Sheets pode ser usada
func (s Sheets) Configured() bool {
	return s.SpreadsheetID != "" && s.ServiceAccountJSONPath != ""
}

type Leadspedia struct {
	APIKey         string `mapstructure:"leadspedia_api_key"`
	APISecret      string `mapstructure:"leadspedia_api_secret"`
	BaseURL        string `mapstructure:"leadspedia_base_url"`
	AffiliateID    string `mapstructure:"leadspedia_affiliate_id"`
	CampaignMapRaw string `mapstructure:"leadspedia_campaign_map"`
	BasicUser      string `mapstructure:"leadspedia_basic_user"`
	BasicPass      string `mapstructure:"leadspedia_basic_pass"`

	CampaignMap map[string]CampaignMapping `mapstructure:"-"`
}

type Alerts struct {
	ThresholdsRaw        string `mapstructure:"alert_thresholds"`
	EmailEnabled         bool   `mapstructure:"alert_email_enabled"`
	EmailTo              string `mapstructure:"alert_email_to"`
	EmailFrom            string `mapstructure:"alert_email_from"`
	SMTPHost             string `mapstructure:"alert_smtp_host"`
	SMTPPort             int    `mapstructure:"alert_smtp_port"`
	SMTPUser             string `mapstructure:"alert_smtp_user"`
	SMTPPassword         string `mapstructure:"alert_smtp_password"`
	SlackEnabled         bool   `mapstructure:"alert_slack_enabled"`
	SlackWebhookURL      string `mapstructure:"alert_slack_webhook_url"`
	CheckIntervalSeconds int    `mapstructure:"alert_check_interval_seconds"`
	MonitorEnabled       bool   `mapstructure:"alert_monitor_enabled"`
	LookbackDays         int    `mapstructure:"alert_lookback_days"`

	DefaultThresholds    AlertThresholds            `mapstructure:"-"`
	ThresholdsByVertical map[string]AlertThresholds `mapstructure:"-"`
}

// EmailConfigured indica se há dados suficientes para enviar email
func (a Alerts) EmailConfigured() bool {
	return a.EmailEnabled && a.SMTPHost != "" && a.EmailTo != "" && a.EmailFrom != ""
}

// SlackConfigured indica se há webhook do Slack
func (a Alerts) SlackConfigured() bool {
	return a.SlackEnabled && a.SlackWebhookURL != ""
}

type CachePrune struct {
	CronSchedule string        `mapstructure:"cache_prune_cron"`
	MaxAge       time.Duration `mapstructure:"cache_prune_max_age"`
	Enabled      bool          `mapstructure:"cache_prune_enabled"`
}

type Mappings struct {
	Path string `mapstructure:"campaign_mappings_path"`
}

// CampaignMapping é o mapeamento legado (via env) de campanha do Meta para o Leadspedia
type CampaignMapping struct {
	MetaCampaignID string  `json:"-"`
	AffiliateID    string  `json:"affiliate_id"`
	Vertical       string  `json:"vertical"`
	MinSellRate    float64 `json:"min_sell_rate"`
	MinROI         float64 `json:"min_roi"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000,http://127.0.0.1:8000")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_API_VERSION", "v24.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_LEAD_ACTION_TYPES", DefaultLeadActionTypes)

	viper.SetDefault("META_CACHE_DB_PATH", ".cache/meta_cache.sqlite")
	viper.SetDefault("META_CACHE_TTL_SECONDS", 900)

	viper.SetDefault("GOOGLE_SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEETS_WORKSHEET_NAME", "meta_lead_ads")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_JSON_PATH", "")

	viper.SetDefault("LEADSPEDIA_API_KEY", "")
	viper.SetDefault("LEADSPEDIA_API_SECRET", "")
	viper.SetDefault("LEADSPEDIA_BASE_URL", "https://api.leadspedia.com/core/v2/")
	viper.SetDefault("LEADSPEDIA_AFFILIATE_ID", "")
	viper.SetDefault("LEADSPEDIA_CAMPAIGN_MAP", "")
	viper.SetDefault("LEADSPEDIA_BASIC_USER", "")
	viper.SetDefault("LEADSPEDIA_BASIC_PASS", "")

	viper.SetDefault("ALERT_THRESHOLDS", "")
	viper.SetDefault("ALERT_EMAIL_ENABLED", "false")
	viper.SetDefault("ALERT_EMAIL_TO", "")
	viper.SetDefault("ALERT_EMAIL_FROM", "")
	viper.SetDefault("ALERT_SMTP_HOST", "")
	viper.SetDefault("ALERT_SMTP_PORT", 587)
	viper.SetDefault("ALERT_SMTP_USER", "")
	viper.SetDefault("ALERT_SMTP_PASSWORD", "")
	viper.SetDefault("ALERT_SLACK_ENABLED", "false")
	viper.SetDefault("ALERT_SLACK_WEBHOOK_URL", "")
	viper.SetDefault("ALERT_CHECK_INTERVAL_SECONDS", 300) // 5 minutos
	viper.SetDefault("ALERT_MONITOR_ENABLED", "false")
	viper.SetDefault("ALERT_LOOKBACK_DAYS", 1) // ontem e hoje

	viper.SetDefault("CACHE_PRUNE_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("CACHE_PRUNE_MAX_AGE", "168h")   // 7 dias
	viper.SetDefault("CACHE_PRUNE_ENABLED", "true")

	viper.SetDefault("CAMPAIGN_MAPPINGS_PATH", ".config/campaign_mappings.json")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	return Load(viper.GetViper())
}

// Load decodifica e valida a configuração a partir de uma instância do viper
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			stringToFlexibleBoolHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.normalize()
	config.Leadspedia.CampaignMap = parseCampaignMap(config.Leadspedia.CampaignMapRaw)
	config.Alerts.DefaultThresholds, config.Alerts.ThresholdsByVertical = parseAlertThresholds(config.Alerts.ThresholdsRaw)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Meta.APIVersion = strings.TrimSpace(c.Meta.APIVersion)
	c.Meta.AdAccountID = strings.TrimSpace(c.Meta.AdAccountID)
	c.Meta.AccessToken = strings.TrimSpace(c.Meta.AccessToken)
	c.Meta.BaseURL = strings.TrimRight(strings.TrimSpace(c.Meta.BaseURL), "/")

	leadTypes := make([]string, 0, len(c.Meta.LeadActionTypes))
	for _, t := range c.Meta.LeadActionTypes {
		if t = strings.TrimSpace(t); t != "" {
			leadTypes = append(leadTypes, t)
		}
	}
	c.Meta.LeadActionTypes = leadTypes

	c.Cache.DBPath = expandHome(strings.TrimSpace(c.Cache.DBPath))
	c.Sheets.ServiceAccountJSONPath = expandHome(strings.TrimSpace(c.Sheets.ServiceAccountJSONPath))
	c.Sheets.SpreadsheetID = strings.TrimSpace(c.Sheets.SpreadsheetID)
	c.Sheets.WorksheetName = strings.TrimSpace(c.Sheets.WorksheetName)

	c.Leadspedia.APIKey = strings.TrimSpace(c.Leadspedia.APIKey)
	c.Leadspedia.APISecret = strings.TrimSpace(c.Leadspedia.APISecret)
	c.Leadspedia.BaseURL = strings.TrimSpace(c.Leadspedia.BaseURL)
	c.Leadspedia.AffiliateID = strings.TrimSpace(c.Leadspedia.AffiliateID)
	c.Leadspedia.BasicUser = strings.TrimSpace(c.Leadspedia.BasicUser)
	c.Leadspedia.BasicPass = strings.TrimSpace(c.Leadspedia.BasicPass)

	c.Alerts.EmailTo = strings.TrimSpace(c.Alerts.EmailTo)
	c.Alerts.EmailFrom = strings.TrimSpace(c.Alerts.EmailFrom)
	c.Alerts.SMTPHost = strings.TrimSpace(c.Alerts.SMTPHost)
	c.Alerts.SlackWebhookURL = strings.TrimSpace(c.Alerts.SlackWebhookURL)
}

// Validate agrega todos os problemas encontrados em um único erro
func (c *Config) Validate() error {
	var problems []string

	if !strings.HasPrefix(c.Meta.APIVersion, "v") {
		problems = append(problems, "META_API_VERSION deve ter o formato v24.0")
	}
	if c.Meta.AdAccountID != "" && !strings.HasPrefix(c.Meta.AdAccountID, "act_") {
		problems = append(problems, "META_AD_ACCOUNT_ID deve ter o formato act_123...")
	}
	if c.Cache.TTLSeconds < 0 {
		problems = append(problems, "META_CACHE_TTL_SECONDS deve ser >= 0")
	}
	if c.Alerts.CheckIntervalSeconds < 60 {
		problems = append(problems, "ALERT_CHECK_INTERVAL_SECONDS deve ser >= 60")
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// ValidationError lista as variáveis de ambiente inválidas
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "configuração inválida: " + strings.Join(e.Problems, "; ")
}

// IsValidationError indica se err é um ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// EnsureLocalDirs cria o diretório do banco de cache
func (c *Config) EnsureLocalDirs() error {
	dir := filepath.Dir(c.Cache.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório do cache %s: %w", dir, err)
	}
	return nil
}

// LeadspediaEnabled indica se a integração com o Leadspedia está configurada
func (c *Config) LeadspediaEnabled() bool {
	return c.Leadspedia.APIKey != "" && c.Leadspedia.APISecret != ""
}

// AlertsEnabled indica se algum canal externo de alerta está habilitado
func (c *Config) AlertsEnabled() bool {
	return c.Alerts.EmailEnabled || c.Alerts.SlackEnabled
}

// ThresholdsForVertical retorna os limites da vertical ou os limites padrão
func (c *Config) ThresholdsForVertical(vertical string) AlertThresholds {
	if vertical != "" {
		if t, ok := c.Alerts.ThresholdsByVertical[vertical]; ok {
			return t
		}
	}
	return c.Alerts.DefaultThresholds
}

// CampaignMapping retorna o mapeamento legado de uma campanha do Meta, ou nil
func (c *Config) CampaignMapping(metaCampaignID string) *CampaignMapping {
	m, ok := c.Leadspedia.CampaignMap[metaCampaignID]
	if !ok {
		return nil
	}
	return &m
}

func parseCampaignMap(raw string) map[string]CampaignMapping {
	result := make(map[string]CampaignMapping)
	if strings.TrimSpace(raw) == "" {
		return result
	}

	var entries map[string]jsoniter.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logrus.WithError(err).Warn("LEADSPEDIA_CAMPAIGN_MAP não é um JSON válido, ignorando")
		return result
	}

	for campaignID, data := range entries {
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			continue
		}
		result[campaignID] = CampaignMapping{
			MetaCampaignID: campaignID,
			AffiliateID:    anyToString(fields["affiliate_id"]),
			Vertical:       anyToString(fields["vertical"]),
			MinSellRate:    anyToFloat(fields["min_sell_rate"], 95),
			MinROI:         anyToFloat(fields["min_roi"], 20),
		}
	}

	return result
}

// stringToFlexibleBoolHookFunc aceita true/1/yes/on, em qualquer caixa
func stringToFlexibleBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return ParseBool(data.(string), false), nil
	}
}

// ParseBool interpreta valores booleanos vindos de variáveis de ambiente
func ParseBool(value string, fallback bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func expandHome(p string) string {
	if p == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		// godotenv.Load não sobrescreve variáveis já definidas no ambiente
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
