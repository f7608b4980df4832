package summarizing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/opportunity-summarizer/internal/domain"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
	"github.com/vfg2006/opportunity-summarizer/pkg/utils"
)

type Service struct {
	fetcher   OpportunityFetcher
	publisher SummaryPublisher
	now       func() time.Time
}

func NewService(fetcher OpportunityFetcher, publisher SummaryPublisher) *Service {
	return &Service{
		fetcher:   fetcher,
		publisher: publisher,
		now:       time.Now,
	}
}

// Run executa uma vez o pipeline busca → resumo → publicação.
// Nenhuma falha é propagada como pânico ou erro fatal: o resultado descreve o desfecho da execução.
func (s *Service) Run(ctx context.Context) *domain.RunResult {
	result := &domain.RunResult{
		StartedAt: s.now(),
	}
	defer func() {
		result.FinishedAt = s.now()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("summarizing: could not generate run id")
	}
	result.RunID = runID

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	logger.Info("summarizing: fetching opportunities")

	opportunities, err := s.fetcher.FetchOpportunities(ctx)
	if err != nil {
		result.Status = domain.RunStatusFetchFailed
		result.Err = fmt.Errorf("%w: %w", ErrFetchOpportunities, err)
		logger.WithError(err).Error("summarizing: run finished without summary")
		return result
	}

	if len(opportunities) == 0 {
		result.Status = domain.RunStatusNoData
		logger.Info("summarizing: no opportunity data found")
		return result
	}

	summary := BuildSummary(ctx, opportunities)
	result.Summary = &summary

	logger.WithFields(log.Fields{
		"deal_count":    summary.DealCount,
		"total_revenue": summary.TotalRevenue,
		"top_account":   summary.TopAccount,
		"skipped":       len(summary.SkippedAccounts),
	}).Info("summarizing: summary built")

	if err := s.publisher.PublishSummary(ctx, summary.Message()); err != nil {
		result.Status = domain.RunStatusPublishFailed
		result.Err = fmt.Errorf("%w: %w", ErrPublishSummary, err)
		logger.WithError(err).Error("summarizing: summary not delivered")
		return result
	}

	result.Status = domain.RunStatusPublished
	logger.Info("summarizing: summary posted")

	return result
}
