package repository

import (
	"time"

	"github.com/jhoicas/iwr-crediario/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
//
// Las mutaciones sobre un ID inexistente son no-op; los fallos del almacén
// se propagan siempre.
type CustomerRepository interface {
	// Seed siembra la colección con los datos de ejemplo si el slot no
	// existe todavía. Idempotente.
	Seed(now time.Time) error
	List() ([]entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(customer *entity.Customer) error
	ToggleVIP(id string) error
}
