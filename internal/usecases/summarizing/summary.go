package summarizing

import (
	"context"

	"github.com/vfg2006/opportunity-summarizer/internal/domain"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
)

// BuildSummary agrega as oportunidades em uma única passada.
// Todas as oportunidades contam como negócio; apenas receitas numéricas entram na soma e na
// disputa pela conta de maior receita, onde a primeira ocorrência vence em caso de empate.
func BuildSummary(ctx context.Context, opportunities []domain.Opportunity) domain.Summary {
	logger := log.ForContext(ctx)

	summary := domain.Summary{
		DealCount: len(opportunities),
	}

	for _, opp := range opportunities {
		revenue, ok := opp.ResolveRevenue()
		if !ok {
			logger.WithField("account", opp.Account).
				Warnf("summarizing: opportunity with account %s does not have revenue data", opp.Account)
			summary.SkippedAccounts = append(summary.SkippedAccounts, opp.Account)
			continue
		}

		summary.TotalRevenue += revenue

		if revenue > summary.TopRevenue {
			summary.TopRevenue = revenue
			summary.TopAccount = opp.Account
		}
	}

	if summary.DealCount > 0 {
		summary.AverageDealSize = summary.TotalRevenue / float64(summary.DealCount)
	}

	return summary
}
