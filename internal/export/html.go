package export

import (
	"bytes"
	"html/template"
	"time"

	"github.com/laticiniossantana/notabase/internal/models"
)

// reportTmpl is the self-contained printable document handed to the client's
// print / export-to-PDF facility. Data cells are escaped by html/template.
var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Relatório de Documentos</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; color: #333; }
    .header { text-align: center; margin-bottom: 30px; }
    .header h1 { margin: 0; color: #2563eb; font-size: 24px; }
    .header p { margin: 5px 0 0 0; color: #666; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid #333; padding: 8px; text-align: left; vertical-align: top; }
    th { background-color: #f0f0f0; font-weight: bold; text-align: center; }
    .footer { margin-top: 30px; text-align: center; font-size: 12px; color: #9ca3af; }
    @media print { table { page-break-inside: avoid; } }
  </style>
</head>
<body>
  <div class="header">
    <h1>Relatório de Documentos</h1>
    <p>Gerado em: {{.Date}} às {{.Time}}</p>
    <p>Total de documentos: {{.Count}}</p>
  </div>
  <table>
    <thead>
      <tr>
        <th>Fornecedor</th>
        <th>Data do pagamento</th>
        <th>Valor</th>
        <th>Pago por</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        <td>{{.Source}}</td>
        <td>{{.Date}}</td>
        <td>{{.Amount}}</td>
        <td>{{.Payer}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <div class="footer">
    <p>Base para Cadastramento de Notas - Sistema de Gerenciamento de Documentos</p>
  </div>
</body>
</html>
`))

type reportRow struct {
	Source string
	Date   string
	Amount string
	Payer  string
}

type reportData struct {
	Date  string
	Time  string
	Count int
	Rows  []reportRow
}

// HTML renders the already-derived document list as a printable report.
func HTML(docs []models.Document, now time.Time) ([]byte, error) {
	data := reportData{
		Date:  now.Format("02/01/2006"),
		Time:  now.Format("15:04:05"),
		Count: len(docs),
	}
	for _, d := range docs {
		data.Rows = append(data.Rows, reportRow{
			Source: d.SourceName,
			Date:   FormatDateBR(d.PaymentDate),
			Amount: FormatBRL(d.AmountPaid),
			Payer:  d.PaidBy,
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
