package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laticiniossantana/notabase/internal/report"
)

func validUpload() UploadInput {
	return UploadInput{
		FileName:    "nota.pdf",
		FileType:    "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
		SourceName:  "Fornecedor Alfa",
		Description: "conta de luz",
		PaidBy:      "Empresa X",
		PaymentDate: "2026-03-05",
		AmountPaid:  "150.75",
	}
}

func TestCreateDocument(t *testing.T) {
	env := newTestEnv(t)

	doc, err := env.docs.Create(validUpload(), "jane@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "jane@x.com", doc.UserID)
	assert.True(t, strings.HasPrefix(doc.FileData, "data:application/pdf;base64,"))
	assert.NotEmpty(t, doc.CreatedAt)
}

func TestCreateDocumentRejectsBadFileType(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	in.FileType = "application/zip"

	_, err := env.docs.Create(in, "jane@x.com")
	assert.EqualError(t, err, "Apenas arquivos PDF, JPG e PNG são permitidos")
}

func TestCreateDocumentRejectsOversizedFile(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	in.Data = make([]byte, MaxFileSize+1)
	in.FileType = "image/png"

	_, err := env.docs.Create(in, "jane@x.com")
	assert.EqualError(t, err, "O arquivo deve ter no máximo 10MB")
}

func TestCreateDocumentRequiresFile(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	in.Data = nil

	_, err := env.docs.Create(in, "jane@x.com")
	assert.EqualError(t, err, "Por favor, selecione um arquivo")
}

func TestCreateDocumentHiddenFileFieldSkipsFileCheck(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.fields.Toggle("file", "visible", false)
	require.NoError(t, err)

	in := validUpload()
	in.Data = nil
	in.FileName = ""
	in.FileType = ""

	doc, err := env.docs.Create(in, "jane@x.com")
	require.NoError(t, err)
	assert.Empty(t, doc.FileData)
}

func TestCreateDocumentReportsFirstMissingFieldByLabel(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	in.SourceName = "  "
	in.PaidBy = ""

	_, err := env.docs.Create(in, "jane@x.com")
	assert.EqualError(t, err, "Por favor, preencha o campo: Nome Fonte")
}

func TestCreateDocumentHiddenMetadataFieldBecomesOptional(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.fields.Toggle("nomeFonte", "visible", false)
	require.NoError(t, err)

	in := validUpload()
	in.SourceName = ""

	_, err = env.docs.Create(in, "jane@x.com")
	require.NoError(t, err)
}

func TestCreateDocumentRejectionLeavesNoPartialState(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	in.PaidBy = ""

	_, err := env.docs.Create(in, "jane@x.com")
	require.Error(t, err)

	docs, err := env.reports.Query(adminClaims(), report.Filters{}, report.SortNewest)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDeleteDocumentScope(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.Create(validUpload(), "owner@x.com")
	require.NoError(t, err)

	assert.ErrorIs(t, env.docs.Delete(doc.ID, userClaims("other@x.com")), ErrForbidden)
	require.NoError(t, env.docs.Delete(doc.ID, userClaims("owner@x.com")))
	assert.ErrorIs(t, env.docs.Delete(doc.ID, adminClaims()), ErrNotFound)
}

func TestAdminCanDeleteAnyDocument(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.Create(validUpload(), "owner@x.com")
	require.NoError(t, err)

	require.NoError(t, env.docs.Delete(doc.ID, adminClaims()))
}

func TestDownloadRoundTripsFileBytes(t *testing.T) {
	env := newTestEnv(t)
	in := validUpload()
	doc, err := env.docs.Create(in, "owner@x.com")
	require.NoError(t, err)

	data, got, err := env.docs.Download(doc.ID, userClaims("owner@x.com"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(in.Data, data))
	assert.Equal(t, "nota.pdf", got.FileName)

	_, _, err = env.docs.Download(doc.ID, userClaims("other@x.com"))
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = env.docs.Download("missing", adminClaims())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentIDsAreUniqueUnderRapidInserts(t *testing.T) {
	env := newTestEnv(t)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		doc, err := env.docs.Create(validUpload(), "jane@x.com")
		require.NoError(t, err)
		assert.False(t, seen[doc.ID], "duplicate id %s", doc.ID)
		seen[doc.ID] = true
	}
}
