package leadspediaclient

import (
	"context"
	"fmt"
	"strconv"

	lpdomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/leadspedia/domain"
)

const (
	endpointAdvertisers     = "advertisers/getAll.do"
	endpointContracts       = "leadDistributionContracts/getAll.do"
	endpointVerticalsReport = "reports/getVerticalsReport.do"
	endpointAffiliates      = "affiliates/getAll"

	catalogLimit = 1000
)

func (c *LeadspediaClient) list(ctx context.Context, endpoint string) ([]map[string]any, error) {
	body, err := c.Get(ctx, endpoint, map[string]string{"limit": strconv.Itoa(catalogLimit)})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", endpoint, err)
	}
	return lpdomain.ListData(body), nil
}

// GetAdvertisers lista os compradores cadastrados
func (c *LeadspediaClient) GetAdvertisers(ctx context.Context) ([]lpdomain.Advertiser, error) {
	items, err := c.list(ctx, endpointAdvertisers)
	if err != nil {
		return nil, err
	}

	advertisers := make([]lpdomain.Advertiser, 0, len(items))
	for _, item := range items {
		advertisers = append(advertisers, lpdomain.ParseAdvertiser(item))
	}
	return advertisers, nil
}

// GetContracts lista os contratos de distribuição
func (c *LeadspediaClient) GetContracts(ctx context.Context) ([]lpdomain.Contract, error) {
	items, err := c.list(ctx, endpointContracts)
	if err != nil {
		return nil, err
	}

	contracts := make([]lpdomain.Contract, 0, len(items))
	for _, item := range items {
		contracts = append(contracts, lpdomain.ParseContract(item))
	}
	return contracts, nil
}

// GetVerticals usa o relatório de verticais do último ano, que exige Basic Auth
func (c *LeadspediaClient) GetVerticals(ctx context.Context) ([]lpdomain.Vertical, error) {
	today := c.now()
	params := map[string]string{
		"fromDate": today.AddDate(0, 0, -365).Format("2006-01-02"),
		"toDate":   today.Format("2006-01-02"),
	}

	body, err := c.GetWithBasicAuth(ctx, endpointVerticalsReport, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", endpointVerticalsReport, err)
	}

	items := lpdomain.ReportData(body, "data", "response", "verticals")
	verticals := make([]lpdomain.Vertical, 0, len(items))
	for _, item := range items {
		verticals = append(verticals, lpdomain.ParseVertical(item))
	}
	return verticals, nil
}

func (c *LeadspediaClient) GetAffiliates(ctx context.Context) ([]lpdomain.Affiliate, error) {
	body, err := c.Get(ctx, endpointAffiliates, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar %s: %w", endpointAffiliates, err)
	}

	items := lpdomain.ReportData(body, "data", "response")
	affiliates := make([]lpdomain.Affiliate, 0, len(items))
	for _, item := range items {
		affiliates = append(affiliates, lpdomain.ParseAffiliate(item))
	}
	return affiliates, nil
}
