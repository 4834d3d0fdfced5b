package usecase

import (
	"github.com/jhoicas/iwr-crediario/internal/domain"
	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
	"github.com/jhoicas/iwr-crediario/internal/domain/repository"
)

// Issuer datos de la tienda emisora que aparecen en el documento impreso.
type Issuer struct {
	Name string // razón social, ej. "IWR MODA LTDA"
	City string // plaza de emisión, ej. "Matriz/SP"
}

// NotePDFGenerator puerto de generación del documento imprimible de la nota.
// La infraestructura (Maroto) lo implementa; disparar la impresión es
// responsabilidad del entorno anfitrión, no de este módulo.
type NotePDFGenerator interface {
	GenerateNotePDF(note *entity.PromissoryNote, issuer Issuer) ([]byte, error)
}

// DocumentUseCase genera la vía única imprimible de una nota promissória.
type DocumentUseCase struct {
	notes     repository.NoteRepository
	generator NotePDFGenerator
	issuer    Issuer
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(notes repository.NoteRepository, generator NotePDFGenerator, issuer Issuer) *DocumentUseCase {
	return &DocumentUseCase{notes: notes, generator: generator, issuer: issuer}
}

// GenerateByID busca la nota y devuelve los bytes del PDF.
func (uc *DocumentUseCase) GenerateByID(id string) ([]byte, error) {
	note, err := uc.notes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateNotePDF(note, uc.issuer)
}
