package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-ads-dashboard/internal/domain"
	"github.com/vfg2006/lead-ads-dashboard/pkg/utils"
)

const DefaultCampaignMappingsPath = ".config/campaign_mappings.json"

// CampaignMappingRepository persiste os mapeamentos campanha -> vertical em um arquivo JSON local
type CampaignMappingRepository interface {
	Load() *domain.CampaignConfig
	Reload() *domain.CampaignConfig
	Save(cfg *domain.CampaignConfig) error
	AddMapping(mapping domain.CampaignVerticalMapping) error
	RemoveMapping(metaCampaignID string) (bool, error)
	SetAffiliateID(affiliateID string) error
	SetDefaultVertical(verticalID *string) error
	SetDefaultThresholds(minSellRate, minROI float64) error
	GetMapping(metaCampaignID string) *domain.CampaignVerticalMapping
	GetVerticalID(metaCampaignID string) string
	Hash() string
}

type campaignMappingRepository struct {
	path   string
	mu     sync.Mutex
	config *domain.CampaignConfig
}

func NewCampaignMappingRepository(path string) CampaignMappingRepository {
	if path == "" {
		path = DefaultCampaignMappingsPath
	}
	return &campaignMappingRepository{path: path}
}

type rawMapping struct {
	MetaCampaignID   *string  `json:"meta_campaign_id"`
	MetaCampaignName string   `json:"meta_campaign_name"`
	VerticalID       *string  `json:"vertical_id"`
	VerticalName     string   `json:"vertical_name"`
	MinSellRate      *float64 `json:"min_sell_rate"`
	MinROI           *float64 `json:"min_roi"`
}

type rawCampaignConfig struct {
	AffiliateID        string       `json:"affiliate_id"`
	Mappings           []rawMapping `json:"mappings"`
	DefaultVerticalID  *string      `json:"default_vertical_id"`
	DefaultMinSellRate *float64     `json:"default_min_sell_rate"`
	DefaultMinROI      *float64     `json:"default_min_roi"`
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func decodeCampaignConfig(data []byte) (*domain.CampaignConfig, error) {
	var raw rawCampaignConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := domain.NewCampaignConfig()
	cfg.AffiliateID = raw.AffiliateID
	cfg.DefaultVerticalID = raw.DefaultVerticalID
	cfg.DefaultMinSellRate = floatOr(raw.DefaultMinSellRate, 95)
	cfg.DefaultMinROI = floatOr(raw.DefaultMinROI, 20)

	for _, m := range raw.Mappings {
		if m.MetaCampaignID == nil || m.VerticalID == nil {
			return nil, errors.New("mapeamento sem meta_campaign_id ou vertical_id")
		}
		cfg.Mappings = append(cfg.Mappings, domain.CampaignVerticalMapping{
			MetaCampaignID:   *m.MetaCampaignID,
			MetaCampaignName: m.MetaCampaignName,
			VerticalID:       *m.VerticalID,
			VerticalName:     m.VerticalName,
			MinSellRate:      floatOr(m.MinSellRate, 95),
			MinROI:           floatOr(m.MinROI, 20),
		})
	}

	return cfg, nil
}

func (r *campaignMappingRepository) loadLocked() *domain.CampaignConfig {
	if r.config != nil {
		return r.config
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logrus.WithError(err).WithField("path", r.path).Warn("mapeamentos: falha ao ler arquivo, usando configuração vazia")
		}
		r.config = domain.NewCampaignConfig()
		return r.config
	}

	cfg, err := decodeCampaignConfig(data)
	if err != nil {
		logrus.WithError(err).WithField("path", r.path).Warn("mapeamentos: arquivo inválido, usando configuração vazia")
		cfg = domain.NewCampaignConfig()
	}
	r.config = cfg
	return r.config
}

// Load retorna uma cópia da configuração, lendo o arquivo apenas na primeira chamada
func (r *campaignMappingRepository) Load() *domain.CampaignConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked().Clone()
}

func (r *campaignMappingRepository) Reload() *domain.CampaignConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = nil
	return r.loadLocked().Clone()
}

func (r *campaignMappingRepository) Save(cfg *domain.CampaignConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(cfg)
}

func (r *campaignMappingRepository) saveLocked(cfg *domain.CampaignConfig) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("erro ao criar diretório %s: %w", dir, err)
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		logrus.WithError(err).Debug("mapeamentos: não foi possível ajustar permissões do diretório")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar mapeamentos: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", r.path, err)
	}
	if err := os.Chmod(r.path, 0o600); err != nil {
		logrus.WithError(err).Debug("mapeamentos: não foi possível ajustar permissões do arquivo")
	}

	r.config = cfg.Clone()
	return nil
}

func (r *campaignMappingRepository) update(fn func(cfg *domain.CampaignConfig)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.loadLocked().Clone()
	fn(cfg)
	return r.saveLocked(cfg)
}

// AddMapping adiciona ou substitui o mapeamento da campanha
func (r *campaignMappingRepository) AddMapping(mapping domain.CampaignVerticalMapping) error {
	return r.update(func(cfg *domain.CampaignConfig) {
		kept := cfg.Mappings[:0]
		for _, m := range cfg.Mappings {
			if m.MetaCampaignID != mapping.MetaCampaignID {
				kept = append(kept, m)
			}
		}
		cfg.Mappings = append(kept, mapping)
	})
}

func (r *campaignMappingRepository) RemoveMapping(metaCampaignID string) (bool, error) {
	removed := false
	err := r.update(func(cfg *domain.CampaignConfig) {
		kept := cfg.Mappings[:0]
		for _, m := range cfg.Mappings {
			if m.MetaCampaignID == metaCampaignID {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		cfg.Mappings = kept
	})
	return removed, err
}

func (r *campaignMappingRepository) SetAffiliateID(affiliateID string) error {
	return r.update(func(cfg *domain.CampaignConfig) {
		cfg.AffiliateID = affiliateID
	})
}

func (r *campaignMappingRepository) SetDefaultVertical(verticalID *string) error {
	return r.update(func(cfg *domain.CampaignConfig) {
		cfg.DefaultVerticalID = verticalID
	})
}

func (r *campaignMappingRepository) SetDefaultThresholds(minSellRate, minROI float64) error {
	return r.update(func(cfg *domain.CampaignConfig) {
		cfg.DefaultMinSellRate = minSellRate
		cfg.DefaultMinROI = minROI
	})
}

func (r *campaignMappingRepository) GetMapping(metaCampaignID string) *domain.CampaignVerticalMapping {
	return r.Load().GetMapping(metaCampaignID)
}

func (r *campaignMappingRepository) GetVerticalID(metaCampaignID string) string {
	return r.Load().GetVerticalID(metaCampaignID)
}

// Hash identifica a versão atual dos mapeamentos nas chaves de cache
func (r *campaignMappingRepository) Hash() string {
	hash, err := utils.StableHash(r.Load())
	if err != nil {
		return ""
	}
	return hash
}
