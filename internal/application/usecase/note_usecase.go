package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/iwr-crediario/internal/application/dto"
	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/report"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

// DefaultDueDays plazo de vencimiento por defecto del punto de venta.
const DefaultDueDays = 30

// NoteUseCase casos de uso del punto de venta y de la carteira de títulos.
type NoteUseCase struct {
	notes     repository.NoteRepository
	customers repository.CustomerRepository
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(notes repository.NoteRepository, customers repository.CustomerRepository) *NoteUseCase {
	return &NoteUseCase{notes: notes, customers: customers}
}

// RegisterSale registra el checkout del punto de venta: toma la foto de los
// datos del cliente, calcula el total (precio unitario × cantidad por línea)
// y emite la nota con estado PENDING.
//
// La foto es intencional: editar el cliente después NO debe alterar notas ya
// emitidas (son documentos históricos).
func (uc *NoteUseCase) RegisterSale(in dto.RegisterSaleRequest) (*dto.NoteResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	dueDays := in.DueDays
	if dueDays <= 0 {
		dueDays = DefaultDueDays
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if strings.TrimSpace(it.Description) == "" || it.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		item := entity.LineItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Quantity:    qty,
			Price:       it.Price,
		}
		items = append(items, item)
		total = total.Add(item.Total())
	}

	now := time.Now()
	note := &entity.PromissoryNote{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		CustomerCPF:   customer.CPF,
		Items:         items,
		TotalAmount:   total,
		IssueDate:     now,
		DueDate:       now.AddDate(0, 0, dueDays),
		Status:        entity.StatusPending,
		Notes:         in.Notes,
	}
	if err := uc.notes.Create(note); err != nil {
		return nil, err
	}
	out := toNoteResponse(*note)
	return &out, nil
}

// List devuelve la carteira filtrada (estado, día de vencimiento, búsqueda)
// ordenada por vencimiento ascendente: lo más urgente primero.
func (uc *NoteUseCase) List(filter dto.NoteFilter) ([]dto.NoteResponse, error) {
	notes, err := uc.notes.List()
	if err != nil {
		return nil, err
	}

	if filter.Status != "" && filter.Status != "ALL" {
		notes = report.FilterByStatus(notes, entity.NoteStatus(filter.Status))
	}
	if filter.DueDay != nil {
		notes = report.FilterByDueDay(notes, *filter.DueDay)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		needle := strings.ToLower(term)
		var matched []entity.PromissoryNote
		for _, n := range notes {
			if strings.Contains(strings.ToLower(n.CustomerName), needle) || strings.Contains(n.ID, term) {
				matched = append(matched, n)
			}
		}
		notes = matched
	}

	return toNoteResponses(report.SortByDueDate(notes)), nil
}

// ListForCustomer historial de un cliente, emisión descendente.
func (uc *NoteUseCase) ListForCustomer(customerID string) ([]dto.NoteResponse, error) {
	notes, err := uc.notes.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

// MarkPaid marca la nota como pagada. ID ausente es no-op.
func (uc *NoteUseCase) MarkPaid(id string) error {
	return uc.notes.UpdateStatus(id, entity.StatusPaid)
}

// UpdateStatus fija un estado arbitrario de los tres conocidos.
func (uc *NoteUseCase) UpdateStatus(id string, status entity.NoteStatus) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	return uc.notes.UpdateStatus(id, status)
}

// MarkWhatsappSent registra que se generó el recordatorio. ID ausente es no-op.
func (uc *NoteUseCase) MarkWhatsappSent(id string) error {
	return uc.notes.MarkWhatsappSent(id)
}

// SweepOverdue ejecuta la transición explícita PENDING → OVERDUE para toda
// nota cuyo día de vencimiento ya pasó. El estado almacenado es la única
// fuente de verdad; este barrido es responsabilidad del caller (típicamente
// al arrancar la aplicación o al abrir la carteira).
func (uc *NoteUseCase) SweepOverdue(now time.Time) (int, error) {
	return uc.notes.MarkOverdueBefore(now)
}

func toNoteResponse(n entity.PromissoryNote) dto.NoteResponse {
	items := make([]dto.LineItemResponse, 0, len(n.Items))
	for _, it := range n.Items {
		items = append(items, dto.LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return dto.NoteResponse{
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
	}
}

func toNoteResponses(notes []entity.PromissoryNote) []dto.NoteResponse {
	out := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out
}
