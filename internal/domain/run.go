package domain

import "time"

type RunStatus string

const (
	RunStatusPublished     RunStatus = "published"
	RunStatusNoData        RunStatus = "no_data"
	RunStatusFetchFailed   RunStatus = "fetch_failed"
	RunStatusPublishFailed RunStatus = "publish_failed"
	RunStatusAborted       RunStatus = "aborted" // pânico durante a execução agendada
)

// RunResult é o resultado explícito de uma execução do pipeline (fetch → resumo → publicação)
type RunResult struct {
	RunID      string    `json:"run_id"`
	Status     RunStatus `json:"status"`
	Summary    *Summary  `json:"summary,omitempty"`
	Err        error     `json:"-"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (r *RunResult) Succeeded() bool {
	return r != nil && r.Status == RunStatusPublished
}
