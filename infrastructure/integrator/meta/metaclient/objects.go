package metaclient

import (
	"context"
	"fmt"

	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) listObjects(ctx context.Context, path string, params map[string]any) ([]metadomain.Object, error) {
	items, err := c.GetPaged(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar %s: %w", path, err)
	}

	raw := make([]metadomain.RawObject, 0, len(items))
	for _, item := range items {
		var obj metadomain.RawObject
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		raw = append(raw, obj)
	}

	return metadomain.ToObjects(raw), nil
}

func (c *MetaClient) ListCampaigns(ctx context.Context, adAccountID string) ([]metadomain.Object, error) {
	return c.listObjects(ctx, adAccountID+"/campaigns", map[string]any{
		"fields": "id,name,effective_status",
		"limit":  5000,
	})
}

func (c *MetaClient) ListAdsets(ctx context.Context, adAccountID string, campaignIDs []string) ([]metadomain.Object, error) {
	params := map[string]any{
		"fields": "id,name,campaign_id,effective_status",
		"limit":  5000,
	}
	if len(campaignIDs) > 0 {
		params["filtering"] = []metadomain.Filter{{Field: "campaign.id", Operator: "IN", Value: campaignIDs}}
	}
	return c.listObjects(ctx, adAccountID+"/adsets", params)
}

func (c *MetaClient) ListAds(ctx context.Context, adAccountID string, adsetIDs []string) ([]metadomain.Object, error) {
	params := map[string]any{
		"fields": "id,name,adset_id,effective_status",
		"limit":  5000,
	}
	if len(adsetIDs) > 0 {
		params["filtering"] = []metadomain.Filter{{Field: "adset.id", Operator: "IN", Value: adsetIDs}}
	}
	return c.listObjects(ctx, adAccountID+"/ads", params)
}
