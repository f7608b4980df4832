package devrevclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

type Client interface {
	ListOpportunities(ctx context.Context) ([]domain.Opportunity, error)
}

type DevRevClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient cria o cliente da API da DevRev a partir da configuração carregada
func NewClient(cfg *config.Config) Client {
	return &DevRevClient{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
		},
		baseURL: cfg.DevRev.URL,
		apiKey:  cfg.DevRev.APIKey,
	}
}
