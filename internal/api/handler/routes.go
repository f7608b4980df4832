package handler

import (
	"net/http"

	"github.com/vfg2006/opportunity-summarizer/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Summary(trigger SummaryTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summary/run",
			Method:  http.MethodPost,
			Handler: RunSummary(trigger),
		},
		{
			Path:    "/v1/summary/status",
			Method:  http.MethodGet,
			Handler: GetSummaryStatus(trigger),
		},
	}
}
