package leadspediaclient

import (
	"context"
	"fmt"

	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
)

const (
	endpointLeadsAll       = "leads/getAll.do"
	endpointLeadsSold      = "leads/getSold.do"
	endpointLeadsReturns   = "leads/getReturns.do"
	endpointLeadsDelivered = "leads/getDelivered.do"
	endpointAffiliateClick = "affiliateClicks/getAll"
	endpointLeadReport     = "reports/leads"
)

func (c *LeadspediaClient) paged(ctx context.Context, endpoint string, params map[string]string) ([]map[string]any, error) {
	rows, err := c.GetPaged(ctx, endpoint, params, DefaultPageSize, DefaultMaxPages)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", endpoint, err)
	}
	return rows, nil
}

// GetLeads retorna todos os leads do período (leads/getAll.do)
func (c *LeadspediaClient) GetLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error) {
	return c.paged(ctx, endpointLeadsAll, query.Params())
}

func (c *LeadspediaClient) GetSoldLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error) {
	return c.paged(ctx, endpointLeadsSold, query.Params())
}

// GetDeliveredLeads retorna leads entregues aos compradores, vendidos ou não
func (c *LeadspediaClient) GetDeliveredLeads(ctx context.Context, query lpdomain.LeadQuery) ([]map[string]any, error) {
	return c.paged(ctx, endpointLeadsDelivered, query.Params())
}

func (c *LeadspediaClient) GetReturns(ctx context.Context, query lpdomain.ReturnQuery) ([]map[string]any, error) {
	return c.paged(ctx, endpointLeadsReturns, query.Params())
}

func (c *LeadspediaClient) GetAffiliateClicks(ctx context.Context, query lpdomain.AffiliateClickQuery) ([]map[string]any, error) {
	return c.paged(ctx, endpointAffiliateClick, query.Params())
}

// GetLeadReport retorna o relatório agregado, sem paginação
func (c *LeadspediaClient) GetLeadReport(ctx context.Context, query lpdomain.LeadQuery) (map[string]any, error) {
	body, err := c.Get(ctx, endpointLeadReport, query.Params())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", endpointLeadReport, err)
	}
	report, _ := body.(map[string]any)
	return report, nil
}
