// Package analytics contiene el caso de uso del dashboard: KPIs derivados
// del snapshot de notas y clientes en cada consulta.
package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/iwr-crediario/internal/application/dto"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/report"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

const dashboardRecentNotes = 4 // notas del widget "últimas movimentações"

// Meses en portugués para la etiqueta del período del dashboard.
var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DashboardUseCase construye el resumen de la vista principal.
//
// Sin caché ni estado: cada GetSummary relee las colecciones completas y
// rederiva todo. Las agregaciones son las funciones puras de domain/report.
type DashboardUseCase struct {
	notes     repository.NoteRepository
	customers repository.CustomerRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(notes repository.NoteRepository, customers repository.CustomerRepository) *DashboardUseCase {
	return &DashboardUseCase{notes: notes, customers: customers}
}

// GetSummary deriva los KPIs del dashboard para el instante now.
//
// "Vencidos" cuenta por estado ALMACENADO: si el barrido SweepOverdue no se
// ejecutó, una nota PENDING con fecha pasada no aparece aquí como vencida.
func (uc *DashboardUseCase) GetSummary(now time.Time) (*dto.DashboardSummaryDTO, error) {
	notes, err := uc.notes.List()
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}

	dueToday := report.DueOn(notes, now)
	dueTodayCount := 0
	for _, n := range notes {
		if n.Status != entity.StatusPaid && report.SameDay(n.DueDate, now) {
			dueTodayCount++
		}
	}

	recent := report.SortByIssueDateDesc(notes)
	if len(recent) > dashboardRecentNotes {
		recent = recent[:dashboardRecentNotes]
	}

	return &dto.DashboardSummaryDTO{
		PendingReceivable: report.OpenDebt(notes),
		OverdueCount:      report.OverdueCount(notes),
		OverdueTotal:      report.StatusTotal(notes, entity.StatusOverdue),
		TotalSales:        report.TotalSpent(notes),
		NotesCount:        len(notes),
		CustomerCount:     len(customers),
		DueTodayTotal:     dueToday,
		DueTodayCount:     dueTodayCount,
		RecentNotes:       toNoteResponses(recent),
		DateLabel:         dateLabel(now),
	}, nil
}

// DueDays expone el conjunto de días con vencimientos no pagados del mes
// (badges del calendario de la carteira).
func (uc *DashboardUseCase) DueDays(year int, month time.Month) (map[int]bool, error) {
	notes, err := uc.notes.List()
	if err != nil {
		return nil, err
	}
	return report.DueDays(notes, year, month), nil
}

// dateLabel etiqueta pt-BR del período, ej. "agosto de 2026".
func dateLabel(now time.Time) string {
	return fmt.Sprintf("%s de %d", mesesPtBR[now.Month()-1], now.Year())
}

func toNoteResponses(notes []entity.PromissoryNote) []dto.NoteResponse {
	out := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		items := make([]dto.LineItemResponse, 0, len(n.Items))
		for _, it := range n.Items {
			items = append(items, dto.LineItemResponse{
				ID:          it.ID,
				Description: it.Description,
				Quantity:    it.Quantity,
				Price:       it.Price,
			})
		}
		out = append(out, dto.NoteResponse{
			ID:            n.ID,
			CustomerID:    n.CustomerID,
			CustomerName:  n.CustomerName,
			CustomerPhone: n.CustomerPhone,
			CustomerCPF:   n.CustomerCPF,
			Items:         items,
			TotalAmount:   n.TotalAmount,
			IssueDate:     n.IssueDate,
			DueDate:       n.DueDate,
			Status:        string(n.Status),
			Notes:         n.Notes,
			WhatsappSent:  n.WhatsappSent,
		})
	}
	return out
}
