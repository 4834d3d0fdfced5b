package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO KPIs de la vista principal.
// Todo se deriva del snapshot de notas al momento de la consulta; no hay
// caché que invalidar.
type DashboardSummaryDTO struct {
	// Receita pendente: suma de notas con status distinto de PAID
	PendingReceivable decimal.Decimal `json:"pending_receivable"`

	// Títulos vencidos según el estado ALMACENADO (ver SweepOverdue)
	OverdueCount int             `json:"overdue_count"`
	OverdueTotal decimal.Decimal `json:"overdue_total"`

	// Ventas acumuladas (todas las notas, pagadas o no)
	TotalSales decimal.Decimal `json:"total_sales"`
	NotesCount int             `json:"notes_count"`

	// Base de clientes registrados
	CustomerCount int `json:"customer_count"`

	// Vencimientos del día calendario actual (no pagados)
	DueTodayTotal decimal.Decimal `json:"due_today_total"`
	DueTodayCount int             `json:"due_today_count"`

	// Últimas movimentações: las 4 notas más recientes por emisión
	RecentNotes []NoteResponse `json:"recent_notes"`

	// Etiqueta del período, ej: "agosto de 2026"
	DateLabel string `json:"date_label"`
}
