package devrev

import (
	"context"
	"errors"

	"github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/devrev/devrevclient"
	devrevdomain "github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/devrev/domain"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
)

type DevRevIntegrator struct {
	Client devrevclient.Client
}

func New(client devrevclient.Client) *DevRevIntegrator {
	return &DevRevIntegrator{
		Client: client,
	}
}

// FetchOpportunities busca as oportunidades na DevRev.
// Falhas são registradas com o status e o corpo da resposta quando disponíveis e devolvidas ao chamador.
func (s *DevRevIntegrator) FetchOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	opportunities, err := s.Client.ListOpportunities(ctx)
	if err != nil {
		logger := log.ForContext(ctx)

		var apiErr *devrevdomain.APIError
		if errors.As(err, &apiErr) {
			logger.WithFields(log.Fields{
				"status_code": apiErr.StatusCode,
				"body":        apiErr.Body,
			}).Error("devrev: error fetching opportunities data")
		} else {
			logger.WithError(err).Error("devrev: error fetching opportunities data")
		}

		return nil, err
	}

	log.ForContext(ctx).WithField("opportunities", len(opportunities)).Debug("devrev: opportunities fetched")

	return opportunities, nil
}
