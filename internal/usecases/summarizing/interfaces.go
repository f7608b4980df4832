package summarizing

import (
	"context"

	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// OpportunityFetcher define a interface para buscar as oportunidades na API de CRM
type OpportunityFetcher interface {
	// FetchOpportunities retorna as oportunidades ou o erro da busca, já registrado em log
	FetchOpportunities(ctx context.Context) ([]domain.Opportunity, error)
}

// SummaryPublisher define a interface para entregar o resumo no canal de chat
type SummaryPublisher interface {
	PublishSummary(ctx context.Context, text string) error
}

// Summarizer executa o pipeline completo: busca, resumo e publicação
type Summarizer interface {
	Run(ctx context.Context) *domain.RunResult
}
