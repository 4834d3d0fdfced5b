package analytics_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/iwr-crediario/internal/application/analytics"
	"github.com/jhoicas/iwr-crediario/internal/infrastructure/localstore"
)

func newDashboard(t *testing.T) *analytics.DashboardUseCase {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "crediario.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	customers := localstore.NewCustomerRepository(store)
	notes := localstore.NewNoteRepository(store)
	require.NoError(t, customers.Seed(time.Now()))
	require.NoError(t, notes.Seed(time.Now()))

	return analytics.NewDashboardUseCase(notes, customers)
}

func TestGetSummaryConDatosDeEjemplo(t *testing.T) {
	uc := newDashboard(t)

	summary, err := uc.GetSummary(time.Now())
	require.NoError(t, err)

	// Semilla: 1001 PENDING 300.00 (vence mañana), 1002 OVERDUE 450.00.
	assert.True(t, summary.PendingReceivable.Equal(decimal.NewFromFloat(750.00)),
		"receita pendente = notas no pagadas")
	assert.Equal(t, 1, summary.OverdueCount)
	assert.True(t, summary.OverdueTotal.Equal(decimal.NewFromFloat(450.00)))
	assert.True(t, summary.TotalSales.Equal(decimal.NewFromFloat(750.00)))
	assert.Equal(t, 2, summary.NotesCount)
	assert.Equal(t, 2, summary.CustomerCount)

	// Ninguna nota de la semilla vence HOY (una mañana, otra ayer).
	assert.Zero(t, summary.DueTodayCount)
	assert.True(t, summary.DueTodayTotal.IsZero())

	require.Len(t, summary.RecentNotes, 2, "con dos notas, las recientes son las dos")
	assert.NotEmpty(t, summary.DateLabel)
}

func TestDueDaysDelMes(t *testing.T) {
	uc := newDashboard(t)

	// La 1001 (PENDING) vence mañana; su día debe llevar badge en el mes
	// correspondiente.
	maniana := time.Now().AddDate(0, 0, 1)
	days, err := uc.DueDays(maniana.Year(), maniana.Month())
	require.NoError(t, err)
	assert.True(t, days[maniana.Day()])
}
