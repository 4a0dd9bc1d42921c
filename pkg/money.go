package pkg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Monetary values travel through the system as integer cents. These helpers
// render and parse the pt-BR display form ("R$ 1.234,56"); ParseCurrency is
// the exact left inverse of FormatCurrency.

var ErrValorMonetarioInvalido = errors.New("valor monetario invalido")

// FormatCurrency renders cents as "R$ 1.234,56" with thousand grouping.
func FormatCurrency(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}
	reais := centavos / 100
	cents := centavos % 100
	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), cents)
}

// ParseCurrency converts a "R$ 1.234,56" display string back to cents.
// Grouping dots and surrounding spaces are ignored; a missing decimal part
// is read as whole reais.
func ParseCurrency(valor string) (int64, error) {
	s := strings.TrimSpace(valor)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return 0, ErrValorMonetarioInvalido
	}

	intPart := s
	centPart := "00"
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		intPart, centPart = s[:idx], s[idx+1:]
		if len(centPart) != 2 {
			return 0, ErrValorMonetarioInvalido
		}
	}
	if intPart == "" {
		intPart = "0"
	}

	reais, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrValorMonetarioInvalido
	}
	cents, err := strconv.ParseInt(centPart, 10, 64)
	if err != nil {
		return 0, ErrValorMonetarioInvalido
	}

	total := reais*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

// FormatPercentual renders basis points as a percentage ("1550" -> "15.50%").
func FormatPercentual(centesimos int64) string {
	return fmt.Sprintf("%.2f%%", float64(centesimos)/100)
}

func groupThousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
