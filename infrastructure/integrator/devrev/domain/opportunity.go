package devrevdomain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListOpportunitiesResponse é o envelope retornado pelo endpoint de oportunidades
type ListOpportunitiesResponse struct {
	Opportunities []domain.Opportunity `json:"opportunities"`
}

// DecodeOpportunities aceita os dois formatos conhecidos do corpo da resposta:
// uma lista no primeiro nível ou um objeto com o campo "opportunities".
// Registros com formato inesperado não invalidam a lista: domain.Opportunity os decodifica sem falhar.
func DecodeOpportunities(body []byte) ([]domain.Opportunity, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("devrev: empty response body")
	}

	switch trimmed[0] {
	case '[':
		var opportunities []domain.Opportunity
		if err := json.Unmarshal(trimmed, &opportunities); err != nil {
			return nil, fmt.Errorf("devrev: error decoding opportunity list: %w", err)
		}
		return opportunities, nil
	case '{':
		var response ListOpportunitiesResponse
		if err := json.Unmarshal(trimmed, &response); err != nil {
			return nil, fmt.Errorf("devrev: error decoding opportunities envelope: %w", err)
		}
		return response.Opportunities, nil
	case 'n':
		if bytes.Equal(trimmed, []byte("null")) {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("devrev: unexpected response body: %.100s", trimmed)
}
