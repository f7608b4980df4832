package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/opportunity-summarizer/pkg/apiErrors"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=summary.go -destination=mocks/mock_summary.go -package=mocks

// SummaryTrigger é implementado pelo agendador do resumo de oportunidades
type SummaryTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunSummary dispara manualmente uma execução do resumo em background
func RunSummary(trigger SummaryTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("handler: manual summary run requested")

		if !trigger.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSummaryAlreadyRunning, "opportunity summary already running", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]any{"message": "opportunity summary started"}); err != nil {
			logger.WithError(err).Warn("handler: error encoding response")
		}
	}
}

// GetSummaryStatus retorna o status do agendador e o desfecho da última execução
func GetSummaryStatus(trigger SummaryTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trigger.GetStatus()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: error encoding response")
		}
	}
}
