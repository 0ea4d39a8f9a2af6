package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laticiniossantana/notabase/internal/report"
)

func seedDocs(t *testing.T, env *testEnv) {
	t.Helper()
	for _, d := range []struct {
		owner  string
		payer  string
		amount string
	}{
		{"a@x.com", "Empresa A", "10.00"},
		{"a@x.com", "Empresa A", "5.50"},
		{"b@x.com", "Empresa B", "100"},
	} {
		in := validUpload()
		in.PaidBy = d.payer
		in.AmountPaid = d.amount
		_, err := env.docs.Create(in, d.owner)
		require.NoError(t, err)
	}
}

func TestQueryScopesNonAdmins(t *testing.T) {
	env := newTestEnv(t)
	seedDocs(t, env)

	docs, err := env.reports.Query(userClaims("a@x.com"), report.Filters{}, report.SortNewest)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = env.reports.Query(adminClaims(), report.Filters{}, report.SortNewest)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestQueryStripsOwnerFilterForNonAdmins(t *testing.T) {
	env := newTestEnv(t)
	seedDocs(t, env)

	docs, err := env.reports.Query(userClaims("a@x.com"), report.Filters{UserEmail: "b@x.com"}, report.SortNewest)
	require.NoError(t, err)
	assert.Len(t, docs, 2, "a non-admin cannot widen the scope to another owner")
}

func TestQueryResolvesOwnerFilterByUserID(t *testing.T) {
	env := newTestEnv(t)
	u, err := env.users.Create(UserInput{
		FirstName: "B", LastName: "User",
		Email: "b@x.com", Base: "Galpão", Password: "p",
	})
	require.NoError(t, err)
	seedDocs(t, env)

	byID, err := env.reports.Query(adminClaims(), report.Filters{UserEmail: u.ID}, report.SortNewest)
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "b@x.com", byID[0].UserID)

	byEmail, err := env.reports.Query(adminClaims(), report.Filters{UserEmail: "b@x.com"}, report.SortNewest)
	require.NoError(t, err)
	assert.Equal(t, byID, byEmail)
}

func TestSummaryGroupsAndTotals(t *testing.T) {
	env := newTestEnv(t)
	seedDocs(t, env)

	groups, total, err := env.reports.Summary(adminClaims(), report.Filters{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Empresa B", groups[0].PaidBy)
	assert.InDelta(t, 100, groups[0].TotalPaid, 1e-9)
	assert.InDelta(t, 15.50, groups[1].TotalPaid, 1e-9)
	assert.InDelta(t, 115.50, total, 1e-9)
}

func TestDashboardCountsOwnDocumentsOnly(t *testing.T) {
	env := newTestEnv(t)
	seedDocs(t, env)

	stats, err := env.reports.Dashboard(userClaims("a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.ThisMonth, "documents created just now count toward the month")
	assert.Equal(t, 2, stats.PDFCount)
	assert.Zero(t, stats.ImageCount)
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.users.SeedDefaults())
	seedDocs(t, env)

	stats, err := env.reports.AdminStats(adminClaims(), report.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.DocumentCount)
	assert.Equal(t, 5, stats.UserCount)
	assert.InDelta(t, 115.50, stats.TotalValue, 1e-9)
}
