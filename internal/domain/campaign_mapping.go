package domain

// CampaignVerticalMapping liga uma campanha do Meta a uma vertical do Leadspedia
type CampaignVerticalMapping struct {
	MetaCampaignID   string  `json:"meta_campaign_id" yaml:"meta_campaign_id"`
	MetaCampaignName string  `json:"meta_campaign_name" yaml:"meta_campaign_name"`
	VerticalID       string  `json:"vertical_id" yaml:"vertical_id"`
	VerticalName     string  `json:"vertical_name" yaml:"vertical_name"`
	MinSellRate      float64 `json:"min_sell_rate" yaml:"min_sell_rate"`
	MinROI           float64 `json:"min_roi" yaml:"min_roi"`
}

// CampaignConfig é o conteúdo persistido de .config/campaign_mappings.json
type CampaignConfig struct {
	AffiliateID        string                    `json:"affiliate_id" yaml:"affiliate_id"`
	Mappings           []CampaignVerticalMapping `json:"mappings" yaml:"mappings"`
	DefaultVerticalID  *string                   `json:"default_vertical_id" yaml:"default_vertical_id"`
	DefaultMinSellRate float64                   `json:"default_min_sell_rate" yaml:"default_min_sell_rate"`
	DefaultMinROI      float64                   `json:"default_min_roi" yaml:"default_min_roi"`
}

func NewCampaignConfig() *CampaignConfig {
	return &CampaignConfig{
		Mappings:           []CampaignVerticalMapping{},
		DefaultMinSellRate: 95,
		DefaultMinROI:      20,
	}
}

func (c *CampaignConfig) GetMapping(metaCampaignID string) *CampaignVerticalMapping {
	for i := range c.Mappings {
		if c.Mappings[i].MetaCampaignID == metaCampaignID {
			return &c.Mappings[i]
		}
	}
	return nil
}

// GetVerticalID retorna a vertical mapeada ou a vertical padrão
func (c *CampaignConfig) GetVerticalID(metaCampaignID string) string {
	if m := c.GetMapping(metaCampaignID); m != nil {
		return m.VerticalID
	}
	if c.DefaultVerticalID != nil {
		return *c.DefaultVerticalID
	}
	return ""
}

// Clone faz uma cópia profunda
func (c *CampaignConfig) Clone() *CampaignConfig {
	out := *c
	out.Mappings = append([]CampaignVerticalMapping{}, c.Mappings...)
	if c.DefaultVerticalID != nil {
		v := *c.DefaultVerticalID
		out.DefaultVerticalID = &v
	}
	return &out
}
