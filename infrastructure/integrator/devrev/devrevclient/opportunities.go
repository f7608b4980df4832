package devrevclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	devrevdomain "github.com/vfg2006/opportunity-summarizer/infrastructure/integrator/devrev/domain"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

const opportunitiesPath = "/v1/opportunities"

func (c *DevRevClient) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+opportunitiesPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "devrev: error creating request")
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "devrev: error executing request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "devrev: error reading response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &devrevdomain.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return devrevdomain.DecodeOpportunities(body)
}
