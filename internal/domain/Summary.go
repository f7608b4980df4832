package domain

import (
	"fmt"
	"strings"

	"github.com/vfg2006/opportunity-summarizer/pkg/utils"
)

type Summary struct {
	DealCount       int      `json:"deal_count"`
	TotalRevenue    float64  `json:"total_revenue"`
	TopAccount      string   `json:"top_account"`
	TopRevenue      float64  `json:"top_revenue"`
	AverageDealSize float64  `json:"average_deal_size"`
	SkippedAccounts []string `json:"skipped_accounts,omitempty"` // Contas sem receita numérica
}

// Message renderiza o resumo no formato enviado ao canal
func (s Summary) Message() string {
	var b strings.Builder

	b.WriteString("*Opportunity Summary:*\n")
	fmt.Fprintf(&b, "- *Total Deals:* %d\n", s.DealCount)
	fmt.Fprintf(&b, "- *Total Revenue:* %s\n", utils.FormatCurrency(s.TotalRevenue))
	fmt.Fprintf(&b, "- *Top Account:* %s\n", s.TopAccount)
	fmt.Fprintf(&b, "- *Average Deal Size:* %s", utils.FormatCurrency(s.AverageDealSize))

	return b.String()
}
