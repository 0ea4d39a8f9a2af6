package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/repository"
	"github.com/laticiniossantana/notabase/internal/store"
)

// testEnv wires the full service stack over a throwaway SQLite file.
type testEnv struct {
	docs    *DocumentService
	users   *UserService
	fields  *FieldConfigService
	auth    *AuthService
	reports *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	docRepo := repository.NewDocumentRepo(st)
	userRepo := repository.NewUserRepo(st)
	fieldRepo := repository.NewFieldConfigRepo(st)

	fields := NewFieldConfigService(fieldRepo)
	return &testEnv{
		docs:    NewDocumentService(docRepo, fields),
		users:   NewUserService(userRepo),
		fields:  fields,
		auth:    NewAuthService(userRepo, "test-secret"),
		reports: NewReportService(docRepo, userRepo),
	}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{Email: "admin@exemplo.com", Role: "admin", Name: "Administrador"}
}

func userClaims(email string) *auth.Claims {
	return &auth.Claims{Email: email, Role: "user"}
}
