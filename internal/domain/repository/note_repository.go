package repository

import (
	"time"

	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// NoteRepository define el puerto de persistencia para PromissoryNote.
type NoteRepository interface {
	// Seed siembra la colección con las notas de ejemplo si el slot no
	// existe todavía. Idempotente.
	Seed(now time.Time) error
	List() ([]entity.PromissoryNote, error)
	// ListByCustomer filtra por cliente y ordena por fecha de emisión
	// descendente (la más reciente primero, orden estable).
	ListByCustomer(customerID string) ([]entity.PromissoryNote, error)
	GetByID(id string) (*entity.PromissoryNote, error)
	Create(note *entity.PromissoryNote) error
	// UpdateStatus no valida la legalidad de la transición: PAID → PENDING
	// está permitido (la caja corrige pagos marcados por error).
	UpdateStatus(id string, status entity.NoteStatus) error
	MarkWhatsappSent(id string) error
	// MarkOverdueBefore pasa a OVERDUE toda nota PENDING cuyo día de
	// vencimiento sea anterior al día calendario de cutoff. Devuelve cuántas
	// notas cambiaron.
	MarkOverdueBefore(cutoff time.Time) (int, error)
}
