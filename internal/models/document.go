package models

// Document is one uploaded receipt plus its metadata. The JSON field names
// follow the stored collection format ("nomeFonte", "pagoPor", ...), which is
// what reports and exports key on.
type Document struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	FileData    string `json:"fileData"` // data-URL, base64 payload
	SourceName  string `json:"nomeFonte"`
	Description string `json:"descricao"`
	PaidBy      string `json:"pagoPor"`
	PaymentDate string `json:"dataPagamento"` // calendar date, YYYY-MM-DD
	AmountPaid  string `json:"valorPago"`     // decimal string, may be empty
	CreatedAt   string `json:"createdAt"`     // RFC3339
	UserID      string `json:"userId"`        // uploader's email, weak reference
}

// DocumentResponse is a Document without the inlined file payload, for
// listings where shipping megabytes of base64 per row would be absurd.
type DocumentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	SourceName  string `json:"nomeFonte"`
	Description string `json:"descricao"`
	PaidBy      string `json:"pagoPor"`
	PaymentDate string `json:"dataPagamento"`
	AmountPaid  string `json:"valorPago"`
	CreatedAt   string `json:"createdAt"`
	UserID      string `json:"userId"`
}

func (d *Document) ToResponse() DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		FileType:    d.FileType,
		SourceName:  d.SourceName,
		Description: d.Description,
		PaidBy:      d.PaidBy,
		PaymentDate: d.PaymentDate,
		AmountPaid:  d.AmountPaid,
		CreatedAt:   d.CreatedAt,
		UserID:      d.UserID,
	}
}
