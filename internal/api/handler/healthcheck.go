package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type healthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HealthcheckHandler responde ao liveness probe do modo serve
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(healthcheckResponse{
			Status: "ok",
			Time:   time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("handler: error responding to healthcheck")
		}
	})
}
