package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/laticiniossantana/notabase/internal/report"
)

// Header is the fixed column set shared by every renderer.
var Header = []string{"Fornecedor", "Data do pagamento", "Valor", "Pago por"}

// FormatDateBR renders a stored payment date as dd/mm/yyyy. Unparseable
// input is passed through untouched rather than dropped.
func FormatDateBR(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// FormatBRL renders a stored amount string as Brazilian currency,
// e.g. "1234.5" -> "R$ 1.234,50". Unparseable amounts render as zero.
func FormatBRL(amount string) string {
	return "R$ " + formatNumberBR(report.Amount(amount))
}

func formatNumberBR(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
