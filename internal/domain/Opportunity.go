// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Opportunity é um registro do pipeline de vendas vindo da API externa.
// Os campos de receita não têm tipo fixo: podem estar ausentes, nulos ou com valores não numéricos.
type Opportunity struct {
	Account    string      `json:"account"`
	Revenue    any         `json:"revenue,omitempty"`
	Financials *Financials `json:"financials,omitempty"`
}

type Financials struct {
	Revenue any `json:"revenue,omitempty"`
}

// UnmarshalJSON lê o registro campo a campo sem nunca falhar.
// Um registro que não é objeto vira uma oportunidade vazia, que ainda conta como negócio;
// "financials" que não é objeto é tratado como ausente e "account" não textual é convertido quando possível.
func (o *Opportunity) UnmarshalJSON(data []byte) error {
	*o = Opportunity{}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil
	}

	o.Account = accountName(fields["account"])
	o.Revenue = fields["revenue"]
	if financials, ok := fields["financials"].(map[string]any); ok {
		o.Financials = &Financials{Revenue: financials["revenue"]}
	}

	return nil
}

func accountName(raw any) string {
	switch value := raw.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// ResolveRevenue resolve a receita da oportunidade.
// Usa o campo "revenue" de primeiro nível quando presente; caso contrário, "financials.revenue".
// Apenas números são aceitos: qualquer outro valor é tratado como ausente.
func (o Opportunity) ResolveRevenue() (float64, bool) {
	raw := o.Revenue
	if raw == nil && o.Financials != nil {
		raw = o.Financials.Revenue
	}

	return numericValue(raw)
}

func numericValue(raw any) (float64, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}
