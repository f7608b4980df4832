package devrevdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

func TestDecodeOpportunities(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		expected []string
	}{
		{
			name:     "lista no primeiro nível",
			body:     `[{"account":"A","revenue":100},{"account":"B"}]`,
			expected: []string{"A", "B"},
		},
		{
			name:     "objeto com campo opportunities",
			body:     `{"opportunities":[{"account":"A","financials":{"revenue":1}}],"next_cursor":"x"}`,
			expected: []string{"A"},
		},
		{
			name:     "objeto sem campo opportunities",
			body:     `{"something":"else"}`,
			expected: []string{},
		},
		{
			name:     "corpo nulo",
			body:     "null",
			expected: []string{},
		},
		{
			name:     "espaços em volta do corpo",
			body:     "\n  [{\"account\":\"A\"}]  \n",
			expected: []string{"A"},
		},
		{
			name:     "financials em texto não derruba a lista",
			body:     `[{"account":"A","revenue":100},{"account":"B","financials":"n/a"}]`,
			expected: []string{"A", "B"},
		},
		{
			name:     "account numérico não derruba a lista",
			body:     `[{"account":"A","revenue":100},{"account":42,"revenue":5}]`,
			expected: []string{"A", "42"},
		},
		{
			name:     "envelope com financials em lista",
			body:     `{"opportunities":[{"account":"A","revenue":100},{"account":"C","financials":[1]}]}`,
			expected: []string{"A", "C"},
		},
		{
			name:     "registro que não é objeto ainda conta",
			body:     `[{"account":"A","revenue":100},"garbage",7]`,
			expected: []string{"A", "", ""},
		},
		{
			name:    "corpo vazio",
			body:    "",
			wantErr: true,
		},
		{
			name:    "json inválido",
			body:    `{"opportunities":[`,
			wantErr: true,
		},
		{
			name:    "escalar inesperado",
			body:    `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opportunities, err := DecodeOpportunities([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, accounts(opportunities))
		})
	}
}

func TestDecodeOpportunities_KeepsValidRecordsNextToMalformedOnes(t *testing.T) {
	body := `[{"account":"A","revenue":100},{"account":"B","financials":"n/a"},{"account":"C","financials":{"revenue":50}}]`

	opportunities, err := DecodeOpportunities([]byte(body))
	require.NoError(t, err)
	require.Len(t, opportunities, 3)

	revenue, ok := opportunities[0].ResolveRevenue()
	assert.True(t, ok)
	assert.Equal(t, 100.0, revenue)

	_, ok = opportunities[1].ResolveRevenue()
	assert.False(t, ok)
	assert.Nil(t, opportunities[1].Financials)

	revenue, ok = opportunities[2].ResolveRevenue()
	assert.True(t, ok)
	assert.Equal(t, 50.0, revenue)
}

func accounts(opportunities []domain.Opportunity) []string {
	result := make([]string, 0, len(opportunities))
	for _, opp := range opportunities {
		result = append(result, opp.Account)
	}
	return result
}
