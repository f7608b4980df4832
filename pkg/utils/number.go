package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário com prefixo "$" e duas casas decimais
func FormatCurrency(f float64) string {
	return fmt.Sprintf("$%.2f", f)
}
