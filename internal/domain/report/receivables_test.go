package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func nota(id string, amount float64, status entity.NoteStatus, due time.Time) entity.PromissoryNote {
	return entity.PromissoryNote{
		ID:          id,
		TotalAmount: decimal.NewFromFloat(amount),
		Status:      status,
		IssueDate:   due.AddDate(0, 0, -30),
		DueDate:     due,
	}
}

func hoy() time.Time {
	now := time.Now().Local()
	return time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.Local)
}

func TestTotalSpentYOpenDebt(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("1", 300.00, entity.StatusPending, d),
		nota("2", 450.00, entity.StatusOverdue, d),
		nota("3", 100.00, entity.StatusPaid, d),
	}

	assert.True(t, report.TotalSpent(notes).Equal(decimal.NewFromFloat(850.00)),
		"TotalSpent debe sumar todas las notas")
	assert.True(t, report.OpenDebt(notes).Equal(decimal.NewFromFloat(750.00)),
		"OpenDebt debe excluir las notas pagadas")
}

func TestOpenDebtExcluyeNotaPagada(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("1", 300.00, entity.StatusPending, d),
		nota("2", 450.00, entity.StatusPending, d),
	}
	// Pagar la nota 2 y recalcular: la agregación es pura, se rederiva siempre.
	notes[1].Status = entity.StatusPaid

	assert.True(t, report.OpenDebt(notes).Equal(decimal.NewFromFloat(300.00)),
		"tras marcar PAID la nota sale de la deuda abierta")
}

func TestAverageTicket(t *testing.T) {
	d := hoy()

	t.Run("snapshot vacío devuelve cero, sin división por cero", func(t *testing.T) {
		assert.True(t, report.AverageTicket(nil).IsZero())
		assert.True(t, report.AverageTicket([]entity.PromissoryNote{}).IsZero())
	})

	t.Run("promedio simple", func(t *testing.T) {
		notes := []entity.PromissoryNote{
			nota("1", 300.00, entity.StatusPending, d),
			nota("2", 450.00, entity.StatusPaid, d),
		}
		assert.True(t, report.AverageTicket(notes).Equal(decimal.NewFromFloat(375.00)))
	})
}

func TestOverdueCount(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("1", 10, entity.StatusOverdue, d),
		nota("2", 10, entity.StatusOverdue, d),
		nota("3", 10, entity.StatusPending, d),
	}
	assert.Equal(t, 2, report.OverdueCount(notes))
	assert.Equal(t, 1, report.CountByStatus(notes, entity.StatusPending))
}

// TestDueOnGranularidadDia: dos notas vencen el mismo día calendario con horas
// distintas; DueOn debe sumar ambas (la comparación ignora la hora).
func TestDueOnGranularidadDia(t *testing.T) {
	base := hoy()
	maniana := time.Date(base.Year(), base.Month(), base.Day(), 8, 15, 0, 0, time.Local)
	noche := time.Date(base.Year(), base.Month(), base.Day(), 23, 45, 0, 0, time.Local)

	notes := []entity.PromissoryNote{
		nota("1", 300.00, entity.StatusPending, maniana),
		nota("2", 450.00, entity.StatusOverdue, noche),
		nota("3", 999.00, entity.StatusPending, base.AddDate(0, 0, 1)), // otro día
		nota("4", 100.00, entity.StatusPaid, base),                     // pagada, fuera
	}

	got := report.DueOn(notes, base)
	assert.True(t, got.Equal(decimal.NewFromFloat(750.00)),
		"DueOn debe sumar las dos notas del día sin importar la hora, got=%s", got)
}

func TestDueDaysSoloNoPagadas(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("1", 10, entity.StatusPending, d),
		nota("2", 10, entity.StatusPaid, d.AddDate(0, 0, 2)),
	}
	days := report.DueDays(notes, d.Year(), d.Month())
	assert.True(t, days[d.Day()], "el día con vencimiento pendiente lleva badge")
	assert.False(t, days[d.AddDate(0, 0, 2).Day()], "una nota pagada no marca el calendario")
}

func TestSortByDueDateEstable(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("c", 10, entity.StatusPending, d.AddDate(0, 0, 5)),
		nota("a", 10, entity.StatusPending, d),
		nota("b", 10, entity.StatusPending, d), // misma fecha que "a"
	}

	sorted := report.SortByDueDate(notes)

	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID, "orden estable: empate conserva orden de entrada")
	assert.Equal(t, "c", sorted[2].ID)
	assert.Equal(t, "c", notes[0].ID, "la entrada no se muta; se ordena una copia")
}

func TestSortByIssueDateDescEstable(t *testing.T) {
	d := hoy()
	n1 := nota("viejo", 10, entity.StatusPending, d)
	n1.IssueDate = d.AddDate(0, 0, -10)
	n2 := nota("nuevo", 10, entity.StatusPending, d)
	n2.IssueDate = d
	n3 := nota("empate", 10, entity.StatusPending, d)
	n3.IssueDate = d.AddDate(0, 0, -10) // empata con "viejo"

	sorted := report.SortByIssueDateDesc([]entity.PromissoryNote{n1, n2, n3})

	assert.Equal(t, "nuevo", sorted[0].ID)
	assert.Equal(t, "viejo", sorted[1].ID)
	assert.Equal(t, "empate", sorted[2].ID)
}

func TestStatusTotalYFiltros(t *testing.T) {
	d := hoy()
	notes := []entity.PromissoryNote{
		nota("1", 300.00, entity.StatusPending, d),
		nota("2", 450.00, entity.StatusOverdue, d),
		nota("3", 200.00, entity.StatusPending, d.AddDate(0, 0, 3)),
	}

	assert.True(t, report.StatusTotal(notes, entity.StatusPending).Equal(decimal.NewFromFloat(500.00)))
	assert.True(t, report.StatusTotal(notes, entity.StatusOverdue).Equal(decimal.NewFromFloat(450.00)))

	assert.Len(t, report.FilterByStatus(notes, entity.StatusPending), 2)
	assert.Len(t, report.FilterByDueDay(notes, d), 2)
}
