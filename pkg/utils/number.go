package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para centavos; NaN e Inf viram 0
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// Ratio retorna part/total*100 arredondado; total <= 0 resulta em 0
func Ratio(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(part / total * 100)
}
