package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laticiniossantana/notabase/internal/models"
)

func TestEffectiveFallsBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	fields, err := env.fields.Effective()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFields(), fields)
}

func TestTogglePersistsAcrossReads(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.fields.Toggle("descricao", "visible", false)
	require.NoError(t, err)

	fields, err := env.fields.Effective()
	require.NoError(t, err)
	f, ok := models.FindField(fields, "descricao")
	require.True(t, ok)
	assert.False(t, f.Visible)
	assert.False(t, f.Required)
}

func TestToggleValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.fields.Toggle("file", "hidden", true)
	assert.EqualError(t, err, "property must be visible or required")

	_, err = env.fields.Toggle("nope", "visible", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveNormalizesWholesaleConfig(t *testing.T) {
	env := newTestEnv(t)
	in := models.DefaultFields()
	for i := range in {
		if in[i].Name == "pagoPor" {
			in[i].Visible = false // left required by the caller
		}
	}

	out, err := env.fields.Save(in)
	require.NoError(t, err)
	f, ok := models.FindField(out, "pagoPor")
	require.True(t, ok)
	assert.False(t, f.Required, "hidden field cannot arrive required")

	_, err = env.fields.Save(nil)
	assert.EqualError(t, err, "at least one field is required")
}

func TestResetRestoresDefaults(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.fields.Toggle("valorPago", "visible", false)
	require.NoError(t, err)

	fields, err := env.fields.Reset()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFields(), fields)

	fields, err = env.fields.Effective()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFields(), fields)
}
