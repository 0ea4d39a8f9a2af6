package models

// Field describes one upload-form field: whether users see it and whether
// submission requires it. Invariant across all operations:
// required implies visible (equivalently, hidden implies optional).
type Field struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Visible     bool   `json:"visible"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// DefaultFields is the policy applied when no configuration is stored:
// every field visible, all but the free-text description required.
func DefaultFields() []Field {
	return []Field{
		{
			ID:          "file",
			Name:        "file",
			Label:       "Anexar Documento",
			Type:        "file",
			Visible:     true,
			Required:    true,
			Description: "Campo para upload de arquivos PDF, JPG ou PNG",
		},
		{
			ID:          "nomeFonte",
			Name:        "nomeFonte",
			Label:       "Nome Fonte",
			Type:        "text",
			Visible:     true,
			Required:    true,
			Description: "Nome da fonte do documento",
		},
		{
			ID:          "descricao",
			Name:        "descricao",
			Label:       "Descrição",
			Type:        "textarea",
			Visible:     true,
			Required:    false,
			Description: "Descrição opcional do documento",
		},
		{
			ID:          "pagoPor",
			Name:        "pagoPor",
			Label:       "Pago Por",
			Type:        "text",
			Visible:     true,
			Required:    true,
			Description: "Nome da empresa que efetuou o pagamento",
		},
		{
			ID:          "valorPago",
			Name:        "valorPago",
			Label:       "Valor Pago",
			Type:        "number",
			Visible:     true,
			Required:    true,
			Description: "Valor pago no documento",
		},
		{
			ID:          "dataPagamento",
			Name:        "dataPagamento",
			Label:       "Data do Pagamento",
			Type:        "date",
			Visible:     true,
			Required:    true,
			Description: "Data em que o pagamento foi realizado",
		},
	}
}

// Toggle flips one property of one field and returns the new configuration.
// Hiding a field clears its required flag; requiring a field makes it
// visible. All other toggles pass through unchanged.
func Toggle(fields []Field, fieldID, property string, value bool) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		if f.ID == fieldID {
			switch {
			case property == "visible" && !value:
				f.Visible = false
				f.Required = false
			case property == "required" && value:
				f.Visible = true
				f.Required = true
			case property == "visible":
				f.Visible = value
			case property == "required":
				f.Required = value
			}
		}
		out[i] = f
	}
	return out
}

// Normalize re-establishes the cross-field invariant on a configuration
// received wholesale (a hidden field cannot stay required).
func Normalize(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		if !f.Visible {
			f.Required = false
		}
		out[i] = f
	}
	return out
}

func FindField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
