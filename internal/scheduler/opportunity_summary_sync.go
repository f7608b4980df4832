// Package scheduler contém o agendamento da execução periódica do resumo de oportunidades
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
	"github.com/vfg2006/opportunity-summarizer/internal/usecases/summarizing"
	"github.com/vfg2006/opportunity-summarizer/pkg/utils"
)

var (
	ErrSyncAlreadyRunning = errors.New("opportunity summary already running")
	ErrSyncPanicked       = errors.New("opportunity summary panicked")
)

type OpportunitySummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// OpportunitySummarySyncService agenda o pipeline de resumo e garante uma única execução por vez
type OpportunitySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              OpportunitySummarySyncConfig
	summarizer          summarizing.Summarizer
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.RunResult
}

func NewOpportunitySummarySyncService(
	summarizer summarizing.Summarizer,
	cfg *config.Config,
) *OpportunitySummarySyncService {
	syncConfig := OpportunitySummarySyncConfig{
		CronSchedule: cfg.SummarySchedule.CronSchedule,
		SyncEnabled:  cfg.SummarySchedule.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: opportunity summary schedule loaded")

	return &OpportunitySummarySyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		summarizer: summarizer,
		baseCtx:    context.Background(),
	}
}

// Start agenda o resumo conforme o cron configurado; não faz nada se o agendamento estiver desabilitado
func (s *OpportunitySummarySyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("scheduler: opportunity summary schedule disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting opportunity summary schedule")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSummary(ctx); err != nil {
			logrus.WithError(err).Warn("scheduler: scheduled opportunity summary skipped")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: error scheduling opportunity summary: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping opportunity summary schedule")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSummary executa o pipeline de forma síncrona, recusando execuções concorrentes
func (s *OpportunitySummarySyncService) RunSummary(ctx context.Context) (*domain.RunResult, error) {
	if !s.acquire() {
		return nil, ErrSyncAlreadyRunning
	}

	return s.execute(ctx), nil
}

// TriggerManualSync inicia o pipeline em background. Retorna false se já houver uma execução em andamento.
func (s *OpportunitySummarySyncService) TriggerManualSync() bool {
	if !s.acquire() {
		logrus.Info("scheduler: opportunity summary already running, ignoring manual trigger")
		return false
	}

	logrus.Info("scheduler: starting manual opportunity summary")

	go s.execute(s.baseCtx)

	return true
}

// GetStatus retorna o status atual do agendador e o desfecho da última execução
func (s *OpportunitySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_run_id"] = s.lastResult.RunID
		status["last_status"] = s.lastResult.Status
		if s.lastResult.Err != nil {
			status["last_error"] = s.lastResult.Err.Error()
		}
		if summary := s.lastResult.Summary; summary != nil {
			status["last_deal_count"] = summary.DealCount
			status["last_total_revenue"] = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
			status["last_top_account"] = summary.TopAccount
			status["last_average_deal_size"] = utils.RoundWithTwoDecimalPlace(summary.AverageDealSize)
		}
	}

	return status
}

// execute roda o pipeline com a trava já adquirida e sempre a libera, inclusive em caso de pânico
func (s *OpportunitySummarySyncService) execute(ctx context.Context) (result *domain.RunResult) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic_error", r).Error("scheduler: opportunity summary panicked")
			result = &domain.RunResult{
				Status: domain.RunStatusAborted,
				Err:    fmt.Errorf("%w: %v", ErrSyncPanicked, r),
			}
		}
		s.release(result)
	}()

	return s.summarizer.Run(ctx)
}

func (s *OpportunitySummarySyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("scheduler: opportunity summary already running")
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()

	return true
}

func (s *OpportunitySummarySyncService) release(result *domain.RunResult) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
}
