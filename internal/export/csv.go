package export

import (
	"bytes"
	"strings"

	"github.com/laticiniossantana/notabase/internal/models"
)

// CSVFileName is the download name for spreadsheet exports.
const CSVFileName = "documentos.csv"

// CSV renders the already-derived document list as semicolon-delimited text,
// UTF-8 with a byte-order marker so regional spreadsheet tools display
// accented characters correctly.
func CSV(docs []models.Document) []byte {
	var buf bytes.Buffer
	// UTF-8 BOM so Excel picks the right encoding
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	buf.WriteString(strings.Join(Header, ";"))
	buf.WriteByte('\n')

	for _, d := range docs {
		row := []string{
			escapeCSV(d.SourceName),
			escapeCSV(FormatDateBR(d.PaymentDate)),
			escapeCSV(FormatBRL(d.AmountPaid)),
			escapeCSV(d.PaidBy),
		}
		buf.WriteString(strings.Join(row, ";"))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// escapeCSV quotes any field containing a semicolon, quote or newline,
// doubling internal quotes. Empty fields render as an explicit empty pair.
func escapeCSV(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, ";\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
