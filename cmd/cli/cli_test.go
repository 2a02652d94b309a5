package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-ads-dashboard/infrastructure/repository"
	repomocks "github.com/vfg2006/lead-ads-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/lead-ads-dashboard/internal/config"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/analysis"
	"github.com/vfg2006/lead-ads-dashboard/internal/usecases/authenticating"
	exportmocks "github.com/vfg2006/lead-ads-dashboard/internal/usecases/exporting/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	cfg      *config.Config
	cache    *repomocks.MockCacheRepository
	mappings *repomocks.MockCampaignMappingRepository
	exporter *exportmocks.MockExporter
	loads    int
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		cfg:      &config.Config{},
		cache:    repomocks.NewMockCacheRepository(ctrl),
		mappings: repomocks.NewMockCampaignMappingRepository(ctrl),
		exporter: exportmocks.NewMockExporter(ctrl),
	}
}

func (f *fixture) loader(ctx context.Context) (*app, error) {
	f.loads++
	return &app{cfg: f.cfg, cache: f.cache, mappings: f.mappings, exporter: f.exporter}, nil
}

func execute(loader appLoader, args ...string) (string, error) {
	cmd := newRootCmd(loader)
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	previous := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = previous })
}

func TestCacheCmd(t *testing.T) {
	oldest := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		args     []string
		setup    func(f *fixture)
		validate func(t *testing.T, out string, err error)
	}{
		{
			name: "Estatísticas em JSON",
			args: []string{"cache", "stats", "-o", "json"},
			setup: func(f *fixture) {
				f.cache.EXPECT().Stats(gomock.Any()).Return(&repository.CacheStats{Entries: 3, Oldest: &oldest}, nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, `"entries": 3`)
				assert.Contains(t, out, `"oldest": "2024-06-01T10:00:00Z"`)
			},
		},
		{
			name: "Estatísticas em tabela",
			args: []string{"cache", "stats"},
			setup: func(f *fixture) {
				f.cache.EXPECT().Stats(gomock.Any()).Return(&repository.CacheStats{Entries: 0}, nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "ENTRADAS")
				assert.Contains(t, out, "-")
			},
		},
		{
			name: "Erro ao ler estatísticas",
			args: []string{"cache", "stats"},
			setup: func(f *fixture) {
				f.cache.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("disco cheio"))
			},
			validate: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "disco cheio")
			},
		},
		{
			name: "Limpeza usa a idade configurada",
			args: []string{"cache", "prune"},
			setup: func(f *fixture) {
				f.cfg.CachePrune.MaxAge = 48 * time.Hour
				f.cache.EXPECT().Prune(gomock.Any(), 48*time.Hour).Return(int64(2), nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "REMOVIDAS")
				assert.Contains(t, out, "48h0m0s")
			},
		},
		{
			name: "Limpeza com --max-age",
			args: []string{"cache", "prune", "--max-age", "1h", "-o", "yaml"},
			setup: func(f *fixture) {
				f.cfg.CachePrune.MaxAge = 48 * time.Hour
				f.cache.EXPECT().Prune(gomock.Any(), time.Hour).Return(int64(5), nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "removed: 5")
				assert.Contains(t, out, "max_age: 1h0m0s")
			},
		},
		{
			name: "Limpeza sem configuração usa sete dias",
			args: []string{"cache", "prune"},
			setup: func(f *fixture) {
				f.cache.EXPECT().Prune(gomock.Any(), defaultPruneMaxAge).Return(int64(0), nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "168h0m0s")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			out, err := execute(f.loader, tt.args...)
			tt.validate(t, out, err)
		})
	}
}

func TestMappingsCmd(t *testing.T) {
	vertical := "v-9"

	tests := []struct {
		name     string
		args     []string
		setup    func(f *fixture)
		validate func(t *testing.T, out string, err error)
	}{
		{
			name: "Lista em YAML",
			args: []string{"mappings", "list", "-o", "yaml"},
			setup: func(f *fixture) {
				cfg := domain.NewCampaignConfig()
				cfg.AffiliateID = "aff-1"
				cfg.Mappings = append(cfg.Mappings, domain.CampaignVerticalMapping{MetaCampaignID: "c-1", VerticalID: "v-1"})
				f.mappings.EXPECT().Load().Return(cfg)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "affiliate_id: aff-1")
				assert.Contains(t, out, "meta_campaign_id: c-1")
			},
		},
		{
			name: "Lista em tabela",
			args: []string{"mappings", "list"},
			setup: func(f *fixture) {
				cfg := domain.NewCampaignConfig()
				cfg.DefaultVerticalID = &vertical
				cfg.Mappings = append(cfg.Mappings, domain.CampaignVerticalMapping{MetaCampaignID: "c-1", VerticalID: "v-1", MinSellRate: 90, MinROI: 15})
				f.mappings.EXPECT().Load().Return(cfg)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "v-9")
				assert.Contains(t, out, "CAMPANHA")
				assert.Contains(t, out, "90.0")
			},
		},
		{
			name: "Adiciona herdando as metas padrão",
			args: []string{"mappings", "add", " c-1 ", "v-1", "--name", "Campanha 1", "--min-roi", "30"},
			setup: func(f *fixture) {
				f.mappings.EXPECT().Load().Return(domain.NewCampaignConfig())
				f.mappings.EXPECT().AddMapping(domain.CampaignVerticalMapping{
					MetaCampaignID:   "c-1",
					MetaCampaignName: "Campanha 1",
					VerticalID:       "v-1",
					MinSellRate:      95,
					MinROI:           30,
				}).Return(nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "Campanha c-1 mapeada para a vertical v-1")
			},
		},
		{
			name:  "Adiciona sem vertical",
			args:  []string{"mappings", "add", "c-1", " "},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "obrigatórios")
			},
		},
		{
			name: "Remove campanha inexistente",
			args: []string{"mappings", "remove", "c-404"},
			setup: func(f *fixture) {
				f.mappings.EXPECT().RemoveMapping("c-404").Return(false, nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errMappingNotFound))
			},
		},
		{
			name: "Remove campanha",
			args: []string{"mappings", "rm", "c-1"},
			setup: func(f *fixture) {
				f.mappings.EXPECT().RemoveMapping("c-1").Return(true, nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "removido")
			},
		},
		{
			name: "Define afiliado",
			args: []string{"mappings", "set-affiliate", " aff-2 "},
			setup: func(f *fixture) {
				f.mappings.EXPECT().SetAffiliateID("aff-2").Return(nil)
			},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "aff-2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			out, err := execute(f.loader, tt.args...)
			tt.validate(t, out, err)
		})
	}
}

func TestExportCmd(t *testing.T) {
	fixNow(t, time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC))
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

	t.Run("CSV de insights na saída padrão", func(t *testing.T) {
		f := newFixture(t)
		f.exporter.EXPECT().InsightsCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.InsightFilters) ([]byte, error) {
				assert.Equal(t, day(3), filters.Since)
				assert.Equal(t, day(10), filters.Until)
				assert.Equal(t, domain.DefaultGuardrailMinSpend, filters.GuardrailMinSpend)
				return []byte("ad_id,spend\n1,10\n"), nil
			})

		out, err := execute(f.loader, "export", "csv")
		require.NoError(t, err)
		assert.Equal(t, "ad_id,spend\n1,10\n", out)
	})

	t.Run("CSV combinado em arquivo", func(t *testing.T) {
		f := newFixture(t)
		path := filepath.Join(t.TempDir(), "combinado.csv")
		f.exporter.EXPECT().CombinedCSV(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.InsightFilters) ([]byte, error) {
				assert.Equal(t, day(1), filters.Since)
				assert.Equal(t, day(5), filters.Until)
				return []byte("roi\n"), nil
			})

		out, err := execute(f.loader, "export", "csv", "--combined", "--since", "2024-06-01", "--until", "2024-06-05", "-f", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "roi\n", string(content))
	})

	t.Run("Período invertido não carrega dependências", func(t *testing.T) {
		f := newFixture(t)

		_, err := execute(f.loader, "export", "csv", "--since", "2024-06-05", "--until", "2024-06-01")
		require.Error(t, err)
		assert.Zero(t, f.loads)
	})

	t.Run("Preset desconhecido", func(t *testing.T) {
		f := newFixture(t)

		_, err := execute(f.loader, "export", "llm", "--preset", "90d")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "90d")
	})

	t.Run("Markdown para LLM com opções", func(t *testing.T) {
		f := newFixture(t)
		f.exporter.EXPECT().LLMMarkdown(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filters *domain.InsightFilters, opts analysis.LLMExportOptions) (string, error) {
				assert.Equal(t, day(10).AddDate(0, 0, -14), filters.Since)
				assert.Equal(t, 3, opts.TopN)
				assert.Equal(t, 5, opts.BottomN)
				assert.Equal(t, 100.0, opts.MinSpend)
				assert.False(t, opts.IncludeFullData)
				return "# Relatório\n", nil
			})

		out, err := execute(f.loader, "export", "llm", "--preset", "14d", "--top", "3", "--min-spend", "100", "--summary-only")
		require.NoError(t, err)
		assert.Equal(t, "# Relatório\n", out)
	})
}

func TestAuthCmd(t *testing.T) {
	t.Run("Gera senha e hash", func(t *testing.T) {
		out, err := execute(nil, "auth", "hash-password", "--generate", "16", "-o", "json")
		require.NoError(t, err)

		var result hashResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Len(t, result.Password, 16)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.Hash), []byte(result.Password)))
	})

	t.Run("Senha informada não aparece na saída", func(t *testing.T) {
		out, err := execute(nil, "auth", "hash-password", "Forte#Senha1")
		require.NoError(t, err)
		assert.Contains(t, out, "DASHBOARD_PASSWORD_HASH")
		assert.NotContains(t, out, "Forte#Senha1")
	})

	t.Run("Senha fraca", func(t *testing.T) {
		_, err := execute(nil, "auth", "hash-password", "fraca")
		require.Error(t, err)
		assert.True(t, errors.Is(err, authenticating.ErrWeakPassword))
	})

	t.Run("Sem senha", func(t *testing.T) {
		_, err := execute(nil, "auth", "hash-password")
		require.Error(t, err)
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("Formato de saída inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := execute(f.loader, "cache", "stats", "-o", "xml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errInvalidOutput))
		assert.Zero(t, f.loads)
	})

	t.Run("Erro ao carregar dependências", func(t *testing.T) {
		loader := func(ctx context.Context) (*app, error) { return nil, errors.New("config quebrada") }

		_, err := execute(loader, "mappings", "list")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config quebrada")
	})
}
