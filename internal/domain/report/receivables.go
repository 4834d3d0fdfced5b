// Package report contiene las agregaciones de cartera (recebíveis) como
// funciones puras sobre un snapshot de notas.
//
// No hay caché ni actualización incremental: cada vista recalcula sobre la
// colección completa, que para una cartera de tienda cabe en memoria.
// Los montos usan decimal.Decimal; nunca float64.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// TotalSpent suma TotalAmount de todas las notas del snapshot.
func TotalSpent(notes []entity.PromissoryNote) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		total = total.Add(n.TotalAmount)
	}
	return total
}

// OpenDebt suma TotalAmount de las notas aún no pagadas (status != PAID).
func OpenDebt(notes []entity.PromissoryNote) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		if n.Status != entity.StatusPaid {
			total = total.Add(n.TotalAmount)
		}
	}
	return total
}

// AverageTicket devuelve TotalSpent / |notas|, y cero para el snapshot vacío
// (guarda contra división por cero).
func AverageTicket(notes []entity.PromissoryNote) decimal.Decimal {
	if len(notes) == 0 {
		return decimal.Zero
	}
	return TotalSpent(notes).DivRound(decimal.NewFromInt(int64(len(notes))), 2)
}

// CountByStatus cuenta las notas con el estado indicado.
func CountByStatus(notes []entity.PromissoryNote, status entity.NoteStatus) int {
	count := 0
	for _, n := range notes {
		if n.Status == status {
			count++
		}
	}
	return count
}

// OverdueCount cuenta las notas con status OVERDUE almacenado.
func OverdueCount(notes []entity.PromissoryNote) int {
	return CountByStatus(notes, entity.StatusOverdue)
}

// DueOn suma TotalAmount de las notas no pagadas que vencen el día calendario
// de day. La comparación ignora hora, minuto y segundo.
func DueOn(notes []entity.PromissoryNote, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		if n.Status != entity.StatusPaid && SameDay(n.DueDate, day) {
			total = total.Add(n.TotalAmount)
		}
	}
	return total
}

// DueDays devuelve el conjunto de días del mes indicado con algún vencimiento
// no pagado (badges del calendario de la vista de títulos).
func DueDays(notes []entity.PromissoryNote, year int, month time.Month) map[int]bool {
	days := make(map[int]bool)
	for _, n := range notes {
		if n.Status == entity.StatusPaid {
			continue
		}
		due := n.DueDate.Local()
		if due.Year() == year && due.Month() == month {
			days[due.Day()] = true
		}
	}
	return days
}

// StatusTotal suma TotalAmount de las notas con el estado indicado.
func StatusTotal(notes []entity.PromissoryNote, status entity.NoteStatus) decimal.Decimal {
	total := decimal.Zero
	for _, n := range notes {
		if n.Status == status {
			total = total.Add(n.TotalAmount)
		}
	}
	return total
}

// FilterByStatus devuelve las notas con el estado indicado, en orden original.
func FilterByStatus(notes []entity.PromissoryNote, status entity.NoteStatus) []entity.PromissoryNote {
	var out []entity.PromissoryNote
	for _, n := range notes {
		if n.Status == status {
			out = append(out, n)
		}
	}
	return out
}

// FilterByDueDay devuelve las notas que vencen el día calendario de day.
func FilterByDueDay(notes []entity.PromissoryNote, day time.Time) []entity.PromissoryNote {
	var out []entity.PromissoryNote
	for _, n := range notes {
		if SameDay(n.DueDate, day) {
			out = append(out, n)
		}
	}
	return out
}

// SortByDueDate devuelve una copia ordenada por vencimiento ascendente
// (lo más urgente primero). Orden estable para fechas iguales.
func SortByDueDate(notes []entity.PromissoryNote) []entity.PromissoryNote {
	out := make([]entity.PromissoryNote, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// SortByIssueDateDesc devuelve una copia ordenada por emisión descendente
// (la más reciente primero). Orden estable para fechas iguales.
func SortByIssueDateDesc(notes []entity.PromissoryNote) []entity.PromissoryNote {
	out := make([]entity.PromissoryNote, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssueDate.After(out[j].IssueDate)
	})
	return out
}

// SameDay indica si a y b caen en el mismo día calendario (zona local).
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}
