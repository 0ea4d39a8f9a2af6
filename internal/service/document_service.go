package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/repository"
)

// MaxFileSize is the upload ceiling in bytes (10MB).
const MaxFileSize = 10 * 1024 * 1024

var allowedFileTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

type DocumentService struct {
	docs   *repository.DocumentRepo
	fields *FieldConfigService
}

func NewDocumentService(docs *repository.DocumentRepo, fields *FieldConfigService) *DocumentService {
	return &DocumentService{docs: docs, fields: fields}
}

// UploadInput carries one submission: the file plus the metadata form values.
type UploadInput struct {
	FileName    string
	FileType    string
	Data        []byte
	SourceName  string
	Description string
	PaidBy      string
	PaymentDate string
	AmountPaid  string
}

// Create validates a submission against the upload constraints and the
// effective field configuration, then appends the record. Validation is
// first-violation-wins and a rejected submission leaves no partial state.
func (s *DocumentService) Create(in UploadInput, userEmail string) (*models.Document, error) {
	cfg, err := s.fields.Effective()
	if err != nil {
		return nil, err
	}

	if len(in.Data) > 0 {
		if !allowedFileTypes[in.FileType] {
			return nil, errors.New("Apenas arquivos PDF, JPG e PNG são permitidos")
		}
		if len(in.Data) > MaxFileSize {
			return nil, errors.New("O arquivo deve ter no máximo 10MB")
		}
	} else if fileField, ok := models.FindField(cfg, "file"); !ok || (fileField.Visible && fileField.Required) {
		return nil, errors.New("Por favor, selecione um arquivo")
	}

	values := map[string]string{
		"nomeFonte":     in.SourceName,
		"descricao":     in.Description,
		"pagoPor":       in.PaidBy,
		"dataPagamento": in.PaymentDate,
		"valorPago":     in.AmountPaid,
	}
	for _, f := range cfg {
		if f.Name == "file" || !f.Visible || !f.Required {
			continue
		}
		if strings.TrimSpace(values[f.Name]) == "" {
			return nil, fmt.Errorf("Por favor, preencha o campo: %s", f.Label)
		}
	}

	fileData := ""
	if len(in.Data) > 0 {
		fileData = "data:" + in.FileType + ";base64," + base64.StdEncoding.EncodeToString(in.Data)
	}

	existing, err := s.docs.List()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	doc := models.Document{
		ID: nextTimeID(now, func(id string) bool {
			for _, d := range existing {
				if d.ID == id {
					return true
				}
			}
			return false
		}),
		FileName:    in.FileName,
		FileType:    in.FileType,
		FileData:    fileData,
		SourceName:  in.SourceName,
		Description: in.Description,
		PaidBy:      in.PaidBy,
		PaymentDate: in.PaymentDate,
		AmountPaid:  in.AmountPaid,
		CreatedAt:   now.Format(time.RFC3339),
		UserID:      userEmail,
	}
	if err := s.docs.Append(doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a record permanently. Owner-or-admin gated; there is no
// tombstone and no undo.
func (s *DocumentService) Delete(id string, claims *auth.Claims) error {
	doc, err := s.docs.FindByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if !claims.IsAdmin() && doc.UserID != claims.Email {
		return ErrForbidden
	}
	found, err := s.docs.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Download returns the decoded file bytes and the record. Non-admins can only
// fetch their own documents.
func (s *DocumentService) Download(id string, claims *auth.Claims) ([]byte, *models.Document, error) {
	doc, err := s.docs.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, ErrNotFound
	}
	if !claims.IsAdmin() && doc.UserID != claims.Email {
		return nil, nil, ErrForbidden
	}
	data, err := decodeDataURL(doc.FileData)
	if err != nil {
		return nil, nil, fmt.Errorf("decode stored file: %w", err)
	}
	return data, doc, nil
}

func decodeDataURL(s string) ([]byte, error) {
	idx := strings.Index(s, ";base64,")
	if !strings.HasPrefix(s, "data:") || idx < 0 {
		return nil, errors.New("not a base64 data URL")
	}
	return base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
}
