package summarizing

import (
	"context"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/opportunity-summarizer/internal/domain"
)

func TestBuildSummary(t *testing.T) {
	tests := []struct {
		name          string
		opportunities []domain.Opportunity
		expected      domain.Summary
	}{
		{
			name: "exemplo com receita aninhada",
			opportunities: []domain.Opportunity{
				{Account: "A", Revenue: 100.0},
				{Account: "B", Revenue: 300.0},
				{Account: "C", Financials: &domain.Financials{Revenue: 50.0}},
			},
			expected: domain.Summary{
				DealCount:       3,
				TotalRevenue:    450,
				TopAccount:      "B",
				TopRevenue:      300,
				AverageDealSize: 150,
			},
		},
		{
			name: "todas com receita no primeiro nível",
			opportunities: []domain.Opportunity{
				{Account: "A", Revenue: 10.5},
				{Account: "B", Revenue: 20.25},
				{Account: "C", Revenue: 30.25},
				{Account: "D", Revenue: 39.0},
			},
			expected: domain.Summary{
				DealCount:       4,
				TotalRevenue:    100,
				TopAccount:      "D",
				TopRevenue:      39,
				AverageDealSize: 25,
			},
		},
		{
			name: "sem receita conta como negócio mas não soma",
			opportunities: []domain.Opportunity{
				{Account: "A", Revenue: 100.0},
				{Account: "B"},
				{Account: "C", Revenue: "300"},
				{Account: "D", Financials: &domain.Financials{}},
			},
			expected: domain.Summary{
				DealCount:       4,
				TotalRevenue:    100,
				TopAccount:      "A",
				TopRevenue:      100,
				AverageDealSize: 25,
				SkippedAccounts: []string{"B", "C", "D"},
			},
		},
		{
			name: "empate mantém a primeira conta",
			opportunities: []domain.Opportunity{
				{Account: "first", Revenue: 500.0},
				{Account: "second", Financials: &domain.Financials{Revenue: 500.0}},
				{Account: "third", Revenue: 100.0},
			},
			expected: domain.Summary{
				DealCount:       3,
				TotalRevenue:    1100,
				TopAccount:      "first",
				TopRevenue:      500,
				AverageDealSize: 1100.0 / 3,
			},
		},
		{
			name: "nenhuma receita válida",
			opportunities: []domain.Opportunity{
				{Account: "A"},
				{Account: "B", Revenue: true},
			},
			expected: domain.Summary{
				DealCount:       2,
				SkippedAccounts: []string{"A", "B"},
			},
		},
		{
			name: "duplicadas não são removidas",
			opportunities: []domain.Opportunity{
				{Account: "A", Revenue: 100.0},
				{Account: "A", Revenue: 100.0},
			},
			expected: domain.Summary{
				DealCount:       2,
				TotalRevenue:    200,
				TopAccount:      "A",
				TopRevenue:      100,
				AverageDealSize: 100,
			},
		},
		{
			name:          "lista vazia",
			opportunities: []domain.Opportunity{},
			expected:      domain.Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildSummary(context.Background(), tt.opportunities)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

func TestBuildSummary_RecordsWithUnexpectedShape(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected domain.Summary
	}{
		{
			name: "financials em texto",
			body: `[{"account":"A","revenue":100},{"account":"B","financials":"n/a"}]`,
			expected: domain.Summary{
				DealCount:       2,
				TotalRevenue:    100,
				TopAccount:      "A",
				TopRevenue:      100,
				AverageDealSize: 50,
				SkippedAccounts: []string{"B"},
			},
		},
		{
			name: "financials em lista e account numérico",
			body: `[{"account":"A","revenue":100},{"account":"C","financials":[1]},{"account":42,"revenue":300}]`,
			expected: domain.Summary{
				DealCount:       3,
				TotalRevenue:    400,
				TopAccount:      "42",
				TopRevenue:      300,
				AverageDealSize: 400.0 / 3,
				SkippedAccounts: []string{"C"},
			},
		},
		{
			name: "registro que não é objeto conta como negócio",
			body: `[{"account":"A","revenue":90},"garbage"]`,
			expected: domain.Summary{
				DealCount:       2,
				TotalRevenue:    90,
				TopAccount:      "A",
				TopRevenue:      90,
				AverageDealSize: 45,
				SkippedAccounts: []string{""},
			},
		},
	}

	json := jsoniter.ConfigCompatibleWithStandardLibrary

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opportunities []domain.Opportunity
			require.NoError(t, json.Unmarshal([]byte(tt.body), &opportunities))

			summary := BuildSummary(context.Background(), opportunities)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

func TestBuildSummary_WarnsAboutMissingRevenue(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	BuildSummary(context.Background(), []domain.Opportunity{
		{Account: "Acme"},
		{Account: "Globex", Revenue: 10.0},
	})

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level != logrus.WarnLevel {
			continue
		}
		warnings++
		assert.Equal(t, "Acme", entry.Data["account"])
		assert.Contains(t, entry.Message, "Acme")
	}
	assert.Equal(t, 1, warnings)
}
