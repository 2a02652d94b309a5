package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}

// SafeDiv retorna 0 quando o denominador é zero
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// FormatCurrency formata valores como $1,234.56
func FormatCurrency(f float64) string {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	s := strconv.FormatFloat(f, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	return sign + "$" + groupThousands(intPart) + "." + decPart
}

// FormatInt formata inteiros com separador de milhar (1,234)
func FormatInt(n int) string {
	if n < 0 {
		return "-" + groupThousands(strconv.Itoa(-n))
	}
	return groupThousands(strconv.Itoa(n))
}

func groupThousands(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatOptionalCurrency formata ponteiros nulos como N/A
func FormatOptionalCurrency(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return FormatCurrency(*f)
}
