package metaclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/lead-ads-dashboard/infrastructure/integrator/meta/domain"
)

// GetInsights busca todas as páginas de {act}/insights para a consulta
func (c *MetaClient) GetInsights(ctx context.Context, query metadomain.InsightsQuery) ([]metadomain.Insight, error) {
	items, err := c.GetPaged(ctx, query.Path(), query.Params())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da conta %s: %w", query.AdAccountID, err)
	}

	insights := make([]metadomain.Insight, 0, len(items))
	for _, item := range items {
		var insight metadomain.Insight
		if err := json.Unmarshal(item, &insight); err != nil {
			logrus.WithError(err).Warn("meta: linha de insight ignorada")
			continue
		}
		insights = append(insights, insight)
	}

	return insights, nil
}
