package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/report"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación de NoteRepository sobre el slot `iwr_notes`.
type NoteRepo struct {
	store *Store
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(store *Store) *NoteRepo {
	return &NoteRepo{store: store}
}

// Seed siembra las notas de ejemplo si el slot no existe. Idempotente.
func (r *NoteRepo) Seed(now time.Time) error {
	_, exists, err := r.store.Get(SlotNotes)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.write(seedNotes(now))
}

// List devuelve la colección completa en orden de almacenamiento.
func (r *NoteRepo) List() ([]entity.PromissoryNote, error) {
	raw, exists, err := r.store.Get(SlotNotes)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []entity.PromissoryNote{}, nil
	}
	var notes []entity.PromissoryNote
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("%w: slot %s: %v", domain.ErrCorruptData, SlotNotes, err)
	}
	return notes, nil
}

// ListByCustomer filtra por cliente y ordena por emisión descendente.
func (r *NoteRepo) ListByCustomer(customerID string) ([]entity.PromissoryNote, error) {
	notes, err := r.List()
	if err != nil {
		return nil, err
	}
	var owned []entity.PromissoryNote
	for _, n := range notes {
		if n.CustomerID == customerID {
			owned = append(owned, n)
		}
	}
	return report.SortByIssueDateDesc(owned), nil
}

// GetByID busca una nota por ID. Devuelve (nil, nil) si no existe.
func (r *NoteRepo) GetByID(id string) (*entity.PromissoryNote, error) {
	notes, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, nil
}

// Create añade la nota al final de la colección y la persiste.
// Rechaza IDs duplicados con domain.ErrDuplicate. No verifica que
// CustomerID exista: una referencia colgante se tolera (la nota es una foto
// histórica, no un join).
func (r *NoteRepo) Create(note *entity.PromissoryNote) error {
	notes, err := r.List()
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.ID == note.ID {
			return domain.ErrDuplicate
		}
	}
	return r.write(append(notes, *note))
}

// UpdateStatus fija el estado de la nota. No-op si el ID no existe; no valida
// la legalidad de la transición.
func (r *NoteRepo) UpdateStatus(id string, status entity.NoteStatus) error {
	notes, err := r.List()
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Status = status
			return r.write(notes)
		}
	}
	return nil
}

// MarkWhatsappSent marca que ya se generó el recordatorio por WhatsApp.
// No-op si el ID no existe.
func (r *NoteRepo) MarkWhatsappSent(id string) error {
	notes, err := r.List()
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == id {
			notes[i].WhatsappSent = true
			return r.write(notes)
		}
	}
	return nil
}

// MarkOverdueBefore pasa a OVERDUE las notas PENDING con día de vencimiento
// anterior al día calendario de cutoff, en una sola reescritura.
func (r *NoteRepo) MarkOverdueBefore(cutoff time.Time) (int, error) {
	notes, err := r.List()
	if err != nil {
		return 0, err
	}
	flipped := 0
	for i := range notes {
		if notes[i].Status != entity.StatusPending {
			continue
		}
		if dayBefore(notes[i].DueDate, cutoff) {
			notes[i].Status = entity.StatusOverdue
			flipped++
		}
	}
	if flipped == 0 {
		return 0, nil
	}
	return flipped, r.write(notes)
}

// dayBefore indica si el día calendario de a es estrictamente anterior al de b.
func dayBefore(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	ad := time.Date(al.Year(), al.Month(), al.Day(), 0, 0, 0, 0, time.Local)
	bd := time.Date(bl.Year(), bl.Month(), bl.Day(), 0, 0, 0, 0, time.Local)
	return ad.Before(bd)
}

func (r *NoteRepo) write(notes []entity.PromissoryNote) error {
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("serializar notas: %w", err)
	}
	return r.store.Set(SlotNotes, raw)
}
