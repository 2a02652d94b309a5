package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	v.Set("meta_api_version", "v24.0")
	v.Set("meta_base_url", "https://graph.facebook.com/")
	v.Set("alert_check_interval_seconds", 300)
	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		validate  func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "Booleanos flexíveis",
			overrides: map[string]any{
				"alert_email_enabled":   "YES",
				"alert_slack_enabled":   "On",
				"alert_monitor_enabled": "0",
				"cache_prune_enabled":   "talvez",
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.True(t, cfg.Alerts.EmailEnabled)
				assert.True(t, cfg.Alerts.SlackEnabled)
				assert.False(t, cfg.Alerts.MonitorEnabled)
				assert.False(t, cfg.CachePrune.Enabled)
				assert.True(t, cfg.AlertsEnabled())
			},
		},
		{
			name: "Listas separadas por vírgula",
			overrides: map[string]any{
				"cors_allowed_origins":   "http://localhost:3000,http://127.0.0.1:8000",
				"meta_lead_action_types": "lead, omni_lead,,",
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:8000"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, []string{"lead", "omni_lead"}, cfg.Meta.LeadActionTypes)
			},
		},
		{
			name: "Durações e normalização",
			overrides: map[string]any{
				"auth_token_ttl":         "12h",
				"cache_prune_max_age":    "168h",
				"meta_cache_ttl_seconds": 900,
				"meta_ad_account_id":     "  act_123  ",
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
				assert.Equal(t, 7*24*time.Hour, cfg.CachePrune.MaxAge)
				assert.Equal(t, 15*time.Minute, cfg.Cache.TTL())
				assert.Equal(t, "act_123", cfg.Meta.AdAccountID)
				assert.Equal(t, "https://graph.facebook.com", cfg.Meta.BaseURL)
			},
		},
		{
			name: "Erros de validação agregados",
			overrides: map[string]any{
				"meta_api_version":             "24.0",
				"meta_ad_account_id":           "123",
				"meta_cache_ttl_seconds":       -1,
				"alert_check_interval_seconds": 10,
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.True(t, IsValidationError(err))

				ve, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Len(t, ve.Problems, 4)
				assert.True(t, strings.HasPrefix(err.Error(), "configuração inválida: "))
				assert.Contains(t, err.Error(), "META_AD_ACCOUNT_ID")
				assert.Contains(t, err.Error(), "ALERT_CHECK_INTERVAL_SECONDS")
			},
		},
		{
			name: "Mapa legado de campanhas",
			overrides: map[string]any{
				"leadspedia_campaign_map": `{"123": {"affiliate_id": 7, "vertical": "auto", "min_roi": "15"}}`,
			},
			validate: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				m := cfg.CampaignMapping("123")
				require.NotNil(t, m)
				assert.Equal(t, "7", m.AffiliateID)
				assert.Equal(t, "auto", m.Vertical)
				assert.Equal(t, 95.0, m.MinSellRate)
				assert.Equal(t, 15.0, m.MinROI)
				assert.Nil(t, cfg.CampaignMapping("999"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(baseViper(tt.overrides))
			tt.validate(t, cfg, err)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, value := range []string{"true", "TRUE", "1", "yes", "YES", "On", " on "} {
		assert.True(t, ParseBool(value, false), value)
	}
	for _, value := range []string{"false", "0", "no", "off", "qualquer"} {
		assert.False(t, ParseBool(value, true), value)
	}
	assert.True(t, ParseBool("", true))
	assert.False(t, ParseBool("  ", false))
}

func TestThresholdsForVertical(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Sem configuração usa os limites padrão",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultAlertThresholds(), cfg.ThresholdsForVertical("auto"))
				assert.Equal(t, DefaultAlertThresholds(), cfg.ThresholdsForVertical(""))
			},
		},
		{
			name: "Vertical configurada e vertical desconhecida",
			raw:  `{"default": {"min_roi": 10}, "auto": {"min_sell_rate": "80", "alert_on_negative_margin": "no"}}`,
			validate: func(t *testing.T, cfg *Config) {
				auto := cfg.ThresholdsForVertical("auto")
				assert.Equal(t, 80.0, auto.MinSellRate)
				assert.Equal(t, 20.0, auto.MinROI)
				assert.Equal(t, 30, auto.MaxUnsoldTimeMinutes)
				assert.False(t, auto.AlertOnNegativeMargin)

				other := cfg.ThresholdsForVertical("saude")
				assert.Equal(t, 10.0, other.MinROI)
				assert.Equal(t, 95.0, other.MinSellRate)
				assert.True(t, other.AlertOnNegativeMargin)
			},
		},
		{
			name: "JSON inválido usa os limites padrão",
			raw:  `{"default": `,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultAlertThresholds(), cfg.ThresholdsForVertical("auto"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(baseViper(map[string]any{"alert_thresholds": tt.raw}))
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestCheckPathPermissions(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		ok     bool
		reason string
	}{
		{
			name:   "Arquivo inexistente",
			setup:  func(t *testing.T) string { return filepath.Join(dir, "nada.json") },
			ok:     true,
			reason: "not_found",
		},
		{
			name: "Arquivo protegido",
			setup: func(t *testing.T) string {
				path := filepath.Join(dir, "protegido.json")
				require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
				require.NoError(t, os.Chmod(path, 0o600))
				return path
			},
			ok:     true,
			reason: "ok",
		},
		{
			name: "Arquivo legível por outros",
			setup: func(t *testing.T) string {
				path := filepath.Join(dir, "aberto.json")
				require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
				require.NoError(t, os.Chmod(path, 0o644))
				return path
			},
			ok:     false,
			reason: "too_permissive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := CheckPathPermissions(tt.setup(t))
			assert.Equal(t, tt.ok, ok)
			assert.True(t, strings.HasPrefix(reason, tt.reason), reason)
		})
	}
}
